package progress

import (
	"strconv"
	"strings"
)

const (
	identityMarker = "// Benchmark: "
	foundMarker    = "// ***** Found "
	remainedMarker = "// ** Remained "
	etaSuffix      = " from now) **"

	runFinishedPrefix = "// ***** BenchmarkRunner: Finish  *****"

	// StreamFinished is the last line the runner writes. It is intercepted
	// before classification.
	StreamFinished = "Artifacts cleanup is finished"
)

// Identity names a benchmark type and one of its methods.
type Identity struct {
	Name   string
	Method string
}

// Update is a parsed "Remained" progress line.
type Update struct {
	Remaining int
	Percent   float64
	ETA       string
}

// ParseIdentity finds "// Benchmark: <Type>.<Method>" in text.
func ParseIdentity(text string) (Identity, bool) {
	for rest := text; ; {
		i := strings.Index(rest, identityMarker)
		if i < 0 {
			return Identity{}, false
		}
		rest = rest[i+len(identityMarker):]

		name := alnumPrefix(rest)
		if name == "" || len(rest) == len(name) || rest[len(name)] != '.' {
			continue
		}
		method := alnumPrefix(rest[len(name)+1:])
		if method == "" {
			continue
		}
		return Identity{Name: name, Method: method}, true
	}
}

// ParseFound finds "// ***** Found <N>" in text.
func ParseFound(text string) (int, bool) {
	i := strings.Index(text, foundMarker)
	if i < 0 {
		return 0, false
	}
	digits := digitPrefix(text[i+len(foundMarker):])
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// ParseRemained parses "// ** Remained <N> (<P.P>%) ... (<Hh Mm> from now) **".
func ParseRemained(text string) (Update, bool) {
	i := strings.Index(text, remainedMarker)
	if i < 0 {
		return Update{}, false
	}
	rest := text[i+len(remainedMarker):]

	count := digitPrefix(rest)
	if count == "" {
		return Update{}, false
	}
	remaining, err := strconv.ParseInt(count, 10, 32)
	if err != nil {
		return Update{}, false
	}
	rest = rest[len(count):]

	if !strings.HasPrefix(rest, " (") {
		return Update{}, false
	}
	rest = rest[2:]
	percent, n, ok := decimalPrefix(rest)
	if !ok || !strings.HasPrefix(rest[n:], "%)") {
		return Update{}, false
	}
	rest = rest[n+2:]

	end := strings.LastIndex(rest, etaSuffix)
	if end < 0 {
		return Update{}, false
	}
	open := strings.LastIndexByte(rest[:end], '(')
	if open < 0 {
		return Update{}, false
	}
	eta := rest[open+1 : end]
	if !isDuration(eta) {
		return Update{}, false
	}

	return Update{Remaining: int(remaining), Percent: percent, ETA: eta}, true
}

// IsRunFinished reports whether text closes the whole benchmark run.
func IsRunFinished(text string) bool {
	return strings.HasPrefix(text, runFinishedPrefix)
}

// isDuration matches "<digits>h <digits>m".
func isDuration(s string) bool {
	h := digitPrefix(s)
	if h == "" || !strings.HasPrefix(s[len(h):], "h ") {
		return false
	}
	s = s[len(h)+2:]
	m := digitPrefix(s)
	return m != "" && s[len(m):] == "m"
}

// decimalPrefix parses "<digits>.<digits>" at the start of s.
func decimalPrefix(s string) (float64, int, bool) {
	whole := digitPrefix(s)
	if whole == "" || len(s) == len(whole) || s[len(whole)] != '.' {
		return 0, 0, false
	}
	frac := digitPrefix(s[len(whole)+1:])
	if frac == "" {
		return 0, 0, false
	}
	n := len(whole) + 1 + len(frac)
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return 0, 0, false
	}
	return v, n, true
}

func digitPrefix(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

func alnumPrefix(s string) string {
	i := 0
	for i < len(s) && isAlnum(s[i]) {
		i++
	}
	return s[:i]
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
