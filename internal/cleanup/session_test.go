package cleanup

import (
	"errors"
	"testing"
)

func TestSession_ValidPaths(t *testing.T) {
	tests := []struct {
		name string
		path []State
	}{
		{"no duplicates", []State{Grouped, NoDuplicates}},
		{"report only", []State{Grouped, DuplicatesFound, ReportedOnly}},
		{"relocated", []State{Grouped, DuplicatesFound, Relocating, Done}},
		{"aborted", []State{Grouped, DuplicatesFound, Relocating, Aborted}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			for _, next := range tt.path {
				if err := s.Transition(next); err != nil {
					t.Fatalf("Transition(%s): %v", next, err)
				}
			}
			last := tt.path[len(tt.path)-1]
			if s.State() != last {
				t.Errorf("State() = %s, want %s", s.State(), last)
			}
			if !s.State().IsTerminal() {
				t.Errorf("%s should be terminal", s.State())
			}
		})
	}
}

func TestSession_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		path []State
		bad  State
	}{
		{"skip grouping", nil, DuplicatesFound},
		{"relocate without duplicates", []State{Grouped, NoDuplicates}, Relocating},
		{"done before relocating", []State{Grouped, DuplicatesFound}, Done},
		{"restart after done", []State{Grouped, DuplicatesFound, Relocating, Done}, Scanning},
		{"self loop", []State{Grouped}, Grouped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			for _, next := range tt.path {
				if err := s.Transition(next); err != nil {
					t.Fatalf("setup Transition(%s): %v", next, err)
				}
			}
			before := s.State()

			err := s.Transition(tt.bad)
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("expected ErrInvalidTransition, got %v", err)
			}
			if s.State() != before {
				t.Errorf("state changed to %s after rejected transition", s.State())
			}
		})
	}
}

func TestSession_ZeroValue(t *testing.T) {
	var s Session
	if s.State() != Scanning {
		t.Errorf("zero Session state = %s, want Scanning", s.State())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Scanning, "Scanning"},
		{Grouped, "Grouped"},
		{NoDuplicates, "NoDuplicates"},
		{DuplicatesFound, "DuplicatesFound"},
		{ReportedOnly, "ReportedOnly"},
		{Relocating, "Relocating"},
		{Done, "Done"},
		{Aborted, "Aborted"},
		{State(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
