package main

import (
	"strings"
	"testing"
)

func TestLogsShowsRecentEntries(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, nil, "logs")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "No log entries")

	if _, _, err := runCLI(t, env, nil, "new", "--title", "Porridge"); err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, _, err := runCLI(t, env, nil, "rm", "Porridge"); err != nil {
		t.Fatalf("rm: %v", err)
	}

	out, _, err = runCLI(t, env, nil, "logs", "-n", "1")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if got := strings.Count(strings.TrimSpace(out), "\n"); got != 0 {
		t.Fatalf("expected a single line, got:\n%s", out)
	}
	requireContains(t, out, "recipe deleted")

	if _, _, err := runCLI(t, env, nil, "logs", "-n", "-3"); err == nil {
		t.Fatal("expected negative --lines to fail")
	}
}
