package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "tournament.db"))
	for _, key := range []string{"R2_ACCOUNT_ID", "R2_ACCESS_KEY_ID", "R2_SECRET_ACCESS_KEY", "R2_BUCKET_NAME", "R2_PUBLIC_BASE_URL"} {
		t.Setenv(key, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("swissctl %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestTournamentRoundTrip(t *testing.T) {
	setupEnv(t)
	mustExecute(t, "migrate")

	for i, name := range []string{"A", "B", "C", "D"} {
		out := mustExecute(t, "register", name)
		if got, want := strings.TrimSpace(out), string(rune('1'+i)); got != want {
			t.Errorf("register %s printed %q; want %q", name, got, want)
		}
	}
	if got := strings.TrimSpace(mustExecute(t, "count")); got != "4" {
		t.Errorf("count = %q; want 4", got)
	}

	mustExecute(t, "report", "1", "2")
	mustExecute(t, "report", "3", "4")

	lines := strings.Split(strings.TrimSpace(mustExecute(t, "standings")), "\n")
	if len(lines) != 5 {
		t.Fatalf("standings printed %d lines; want header + 4:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	wantOrder := []string{"A", "C", "B", "D"}
	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 5 || fields[2] != wantOrder[i] {
			t.Errorf("standings row %d = %q; want player %s", i+1, line, wantOrder[i])
		}
	}

	pairings := mustExecute(t, "pairings")
	if !strings.Contains(pairings, "A (1)") || !strings.Contains(pairings, "C (3)") {
		t.Errorf("pairings output missing A vs C:\n%s", pairings)
	}

	mustExecute(t, "delete", "matches")
	mustExecute(t, "delete", "players")
	if got := strings.TrimSpace(mustExecute(t, "count")); got != "0" {
		t.Errorf("count after delete = %q; want 0", got)
	}
}

func TestCommandErrors(t *testing.T) {
	setupEnv(t)
	mustExecute(t, "migrate")
	for _, name := range []string{"A", "B", "C"} {
		mustExecute(t, "register", name)
	}

	cases := []struct {
		name string
		args []string
	}{
		{name: "odd field", args: []string{"pairings"}},
		{name: "same player", args: []string{"report", "1", "1"}},
		{name: "unknown player", args: []string{"report", "1", "42"}},
		{name: "non-numeric id", args: []string{"report", "one", "2"}},
		{name: "missing name", args: []string{"register"}},
		{name: "export disabled", args: []string{"export"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if out, err := execute(t, c.args...); err == nil {
				t.Errorf("swissctl %s succeeded:\n%s", strings.Join(c.args, " "), out)
			}
		})
	}
}
