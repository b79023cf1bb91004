package main

import (
	"bufio"
	"strings"
	"testing"

	"telex/internal/diagfmt"
	"telex/internal/field"
	"telex/internal/session"
)

func newTestSession() *session.Session {
	sess := session.New()
	sess.ConfigLoaded([]field.Definition{
		{Name: "hour", Lower: 1, Upper: 2},
		{Name: "minute", Lower: 3, Upper: 4},
	})
	return sess
}

func scan(input string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(input))
}

func TestRunPlainSessionQuitSentinel(t *testing.T) {
	sess := newTestSession()
	var out strings.Builder
	err := runPlainSession(sess, scan("  QUIT  \n"), &out, diagfmt.PrettyOpts{}, false)
	if err != nil {
		t.Fatalf("runPlainSession failed: %v", err)
	}
	if sess.State() != session.StateDone {
		t.Fatalf("session state = %v, want done", sess.State())
	}
	if strings.Contains(out.String(), diagfmt.Separator) {
		t.Fatalf("quit input should not produce a report:\n%s", out.String())
	}
}

func TestRunPlainSessionExtracts(t *testing.T) {
	sess := newTestSession()
	var out strings.Builder
	err := runPlainSession(sess, scan("/231641h4259.91N\nq\n"), &out, diagfmt.PrettyOpts{}, false)
	if err != nil {
		t.Fatalf("runPlainSession failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "hour: 23") || !strings.Contains(got, "minute: 16") {
		t.Fatalf("report lines missing:\n%s", got)
	}
	if strings.Count(got, diagfmt.Separator) != 2 {
		t.Fatalf("report should be framed by two separators:\n%s", got)
	}
}

func TestRunPlainSessionEOFQuits(t *testing.T) {
	sess := newTestSession()
	var out strings.Builder
	if err := runPlainSession(sess, scan(""), &out, diagfmt.PrettyOpts{}, false); err != nil {
		t.Fatalf("runPlainSession failed: %v", err)
	}
	if sess.State() != session.StateDone {
		t.Fatalf("EOF should end the session, state = %v", sess.State())
	}
}

func TestRunPlainSessionWaitsForAck(t *testing.T) {
	sess := newTestSession()
	var out strings.Builder
	err := runPlainSession(sess, scan("/231641h4259.91N\n\nquit\n"), &out, diagfmt.PrettyOpts{}, true)
	if err != nil {
		t.Fatalf("runPlainSession failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Press enter to continue.") {
		t.Fatalf("ack prompt missing:\n%s", got)
	}
	if sess.State() != session.StateDone {
		t.Fatalf("session state = %v, want done", sess.State())
	}
}

func TestPromptForConfig(t *testing.T) {
	var out strings.Builder
	if got := promptForConfig(scan("  custom.csv  \n"), &out); got != "custom.csv" {
		t.Fatalf("promptForConfig = %q, want %q", got, "custom.csv")
	}
	if got := promptForConfig(scan("\n"), &out); got != "" {
		t.Fatalf("blank input should select the default, got %q", got)
	}
	if got := promptForConfig(scan(""), &out); got != "" {
		t.Fatalf("EOF should select the default, got %q", got)
	}
}
