package main

import (
	"strings"
	"testing"
)

func TestListNoHeaders(t *testing.T) {
	isolateConfig(t)
	out, _, err := execute(t, "list", "--no-headers")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected three puzzles, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "5\tSupply Stacks\tDay05.txt\t") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestListTable(t *testing.T) {
	isolateConfig(t)
	out, _, err := execute(t, "list")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "DAY") || !strings.Contains(out, "Tuning Trouble") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}
