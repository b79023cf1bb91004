// Package session models the interactive translate loop as a small state
// machine, keeping the pure extraction logic decoupled from whatever shell
// (TUI or plain stdin) drives it.
package session

import (
	"strings"

	"telex/internal/field"
)

// State of the interactive loop.
type State uint8

const (
	// StateAwaitingConfig: no configuration loaded yet.
	StateAwaitingConfig State = iota
	// StateAwaitingInput: configuration loaded, waiting for a raw data line.
	StateAwaitingInput
	// StateDone: the user quit or input reached EOF.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateAwaitingConfig:
		return "awaiting-config"
	case StateAwaitingInput:
		return "awaiting-input"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Session holds the loaded field definitions and the current loop state.
// The definitions are read-only after ConfigLoaded; the session performs no
// IO of its own.
type Session struct {
	state State
	defs  []field.Definition
}

func New() *Session {
	return &Session{state: StateAwaitingConfig}
}

func (s *Session) State() State {
	return s.state
}

// Fields returns the loaded definitions in configuration order.
func (s *Session) Fields() []field.Definition {
	return s.defs
}

// ConfigLoaded installs the loaded definitions and moves the session to
// awaiting-input.
func (s *Session) ConfigLoaded(defs []field.Definition) {
	s.defs = defs
	s.state = StateAwaitingInput
}

// Outcome of handling one raw input line.
type Outcome struct {
	// Quit is set when the input was a quit sentinel.
	Quit bool
	// Lines holds one Describe result per configured field, in order.
	Lines []string
}

// HandleInput processes one raw line from the user. Quit sentinels move the
// session to done; anything else is extracted against every configured
// field. Input is trimmed first, matching how raw packets are pasted into a
// terminal.
func (s *Session) HandleInput(raw string) Outcome {
	if IsQuit(raw) {
		s.state = StateDone
		return Outcome{Quit: true}
	}
	data := strings.TrimSpace(raw)
	lines := make([]string, 0, len(s.defs))
	for _, def := range s.defs {
		lines = append(lines, def.Describe(data))
	}
	return Outcome{Lines: lines}
}

// Quit ends the session unconditionally (EOF on stdin behaves like an
// explicit quit).
func (s *Session) Quit() {
	s.state = StateDone
}

// IsQuit reports whether raw is one of the quit sentinels, ignoring
// surrounding whitespace and letter case.
func IsQuit(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
