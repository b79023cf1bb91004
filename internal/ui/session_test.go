package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"telex/internal/field"
	"telex/internal/session"
)

func newTestModel() *sessionModel {
	sess := session.New()
	sess.ConfigLoaded([]field.Definition{
		{Name: "hour", Lower: 1, Upper: 2},
		{Name: "minute", Lower: 3, Upper: 4},
	})
	return NewSessionModel(sess, "filter_data.csv").(*sessionModel)
}

func typeString(m *sessionModel, s string) *sessionModel {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated.(*sessionModel)
}

func pressEnter(m *sessionModel) (*sessionModel, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(*sessionModel), cmd
}

func TestEnterRendersReport(t *testing.T) {
	m := newTestModel()
	m = typeString(m, "/231641h4259.91N")
	m, cmd := pressEnter(m)
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatalf("data line should not quit the session")
		}
	}
	view := m.View()
	if !strings.Contains(view, "hour:") || !strings.Contains(view, "23") {
		t.Fatalf("report missing from view:\n%s", view)
	}
	if !strings.Contains(view, "minute:") || !strings.Contains(view, "16") {
		t.Fatalf("report missing second field:\n%s", view)
	}
}

func TestQuitSentinelQuitsProgram(t *testing.T) {
	m := newTestModel()
	m = typeString(m, "quit")
	m, cmd := pressEnter(m)
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
	if m.sess.State() != session.StateDone {
		t.Fatalf("session state = %v, want done", m.sess.State())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(*sessionModel)
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
	if m.sess.State() != session.StateDone {
		t.Fatalf("session state = %v, want done", m.sess.State())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 0); got != "abcdef" {
		t.Fatalf("width 0 should be a no-op, got %q", got)
	}
	if got := truncate("abcdef", 10); got != "abcdef" {
		t.Fatalf("short value should pass through, got %q", got)
	}
	if got := truncate("abcdefgh", 6); got != "abc..." {
		t.Fatalf("long value should be ellipsized, got %q", got)
	}
}
