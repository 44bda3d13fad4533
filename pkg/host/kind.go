// Package host describes the contract a benchmark runner exposes to its
// loggers: the line classification, the logger interface and the runner
// configuration that carries the logger collection.
package host

import (
	"fmt"
	"strings"
)

// LogKind classifies a line emitted by the benchmark runner.
type LogKind int

const (
	KindDefault LogKind = iota
	KindHelp
	KindHeader
	KindStatistic
	KindInfo
	KindError
	KindHint
	KindWarning
)

var kindNames = map[LogKind]string{
	KindDefault:   "Default",
	KindHelp:      "Help",
	KindHeader:    "Header",
	KindStatistic: "Statistic",
	KindInfo:      "Info",
	KindError:     "Error",
	KindHint:      "Hint",
	KindWarning:   "Warning",
}

func (k LogKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("LogKind(%d)", int(k))
}

// ParseLogKind maps a kind name (case-insensitive) to its LogKind.
func ParseLogKind(s string) (LogKind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return KindDefault, fmt.Errorf("unknown log kind %q", s)
}
