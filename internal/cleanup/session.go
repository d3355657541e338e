package cleanup

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a Session is asked to move to a state
// that is not reachable from its current one.
var ErrInvalidTransition = errors.New("invalid state transition")

// State is a step in a single clean run.
type State int

const (
	Scanning State = iota
	Grouped
	NoDuplicates
	DuplicatesFound
	ReportedOnly
	Relocating
	Done
	Aborted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Scanning:
		return "Scanning"
	case Grouped:
		return "Grouped"
	case NoDuplicates:
		return "NoDuplicates"
	case DuplicatesFound:
		return "DuplicatesFound"
	case ReportedOnly:
		return "ReportedOnly"
	case Relocating:
		return "Relocating"
	case Done:
		return "Done"
	case Aborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

var transitions = map[State][]State{
	Scanning:        {Grouped},
	Grouped:         {NoDuplicates, DuplicatesFound},
	DuplicatesFound: {ReportedOnly, Relocating},
	Relocating:      {Done, Aborted},
}

// IsTerminal returns true if no transition leaves s.
func (s State) IsTerminal() bool {
	_, ok := transitions[s]
	return !ok
}

// Session tracks the state of one run. The zero value starts in Scanning.
type Session struct {
	state State
}

// NewSession returns a Session in the Scanning state.
func NewSession() *Session {
	return &Session{state: Scanning}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Transition moves the session to next.
func (s *Session) Transition(next State) error {
	for _, allowed := range transitions[s.state] {
		if allowed == next {
			s.state = next
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, next)
}
