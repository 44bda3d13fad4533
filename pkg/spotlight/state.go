// Package spotlight filters a benchmark runner's console stream. Hints,
// warnings, errors and result tables are written permanently; everything
// else is shown in a live progress region that is overwritten in place.
//
// # Transition protocol
//
// Every call runs the same protocol. The current state is asked which state
// should perform the write, repeatedly, until the answer no longer changes.
// If that is the current state, it performs the write; otherwise the
// protocol recurses into the resolved state. Finally the state after the
// write is resolved the same way and becomes current.
//
// States are compared by identity. A decorator has the identity of the
// state it wraps, so wrapping a state never counts as a transition.
package spotlight

import (
	"fmt"

	"github.com/dkoosis/spotlight/pkg/host"
)

// State is one of the logger's states. The set of implementations is
// closed; each operation dispatches over it in a single type switch.
type State interface {
	fmt.Stringer
	identity() State
}

func same(a, b State) bool {
	return a.identity() == b.identity()
}

// call is one write request.
type call struct {
	kind host.LogKind
	text string
	line bool // WriteLine rather than Write
	bare bool // WriteLine without kind or text
}

func writeCall(kind host.LogKind, text string) call {
	return call{kind: kind, text: text}
}

func lineCall(kind host.LogKind, text string) call {
	return call{kind: kind, text: text, line: true}
}

func bareCall() call {
	return call{kind: host.KindDefault, line: true, bare: true}
}

type stepFunc func(State, call) (State, error)

// transitions is the dispatch table the protocol drives.
type transitions struct {
	before  stepFunc
	perform func(State, call) error
	after   stepFunc
}

// run drives one call from cur and returns the state to hold afterwards.
func (t transitions) run(cur State, c call) (State, error) {
	return t.drive(cur, c, make(map[State]struct{}))
}

func (t transitions) drive(cur State, c call, seen map[State]struct{}) (State, error) {
	pre, err := t.resolve(cur, c, t.before, seen)
	if err != nil {
		return cur, err
	}

	if same(pre, cur) {
		if err := t.perform(pre, c); err != nil {
			return pre, err
		}
		return t.resolve(pre, c, t.after, make(map[State]struct{}))
	}

	mid, err := t.drive(pre, c, seen)
	if err != nil {
		return mid, err
	}
	return t.resolve(mid, c, t.after, make(map[State]struct{}))
}

// resolve applies step until it returns a state equal to its input. Every
// state a step produces is recorded in seen; producing one again means the
// states forward to each other, and start is returned instead.
func (t transitions) resolve(start State, c call, step stepFunc, seen map[State]struct{}) (State, error) {
	state := start
	for {
		next, err := step(state, c)
		if err != nil {
			return state, err
		}
		if same(next, state) {
			return state, nil
		}
		if _, ok := seen[next.identity()]; ok {
			return start, nil
		}
		seen[next.identity()] = struct{}{}
		state = next
	}
}
