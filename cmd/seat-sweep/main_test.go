package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"seat-ca/internal/seating"
)

const sample = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
`

func TestSweepKeepsInputOrder(t *testing.T) {
	layout := seating.MustParse(sample)
	sets := []scenario{
		{name: "a", layout: layout, rule: seating.Adjacent},
		{name: "b", layout: layout, rule: seating.Visible},
		{name: "c", layout: seating.MustParse("..\n.."), rule: seating.Visible},
	}
	logger := zerolog.Nop()
	cfg := sweepConfig{maxIterations: 100, workers: 3, stepWorkers: 2}
	got := sweep(sets, cfg, &logger)
	want := []struct {
		occupied, generations int
	}{{37, 5}, {26, 6}, {0, 0}}
	for i, w := range want {
		if got[i].err != nil || got[i].occupied != w.occupied || got[i].generations != w.generations {
			t.Fatalf("result %d = %+v, want occupied %d generations %d", i, got[i], w.occupied, w.generations)
		}
		if got[i].scenario.name != sets[i].name {
			t.Fatalf("result %d is for %q", i, got[i].scenario.name)
		}
	}
}

func TestRunReportsFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seats.txt")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	code := run([]string{"-max-iterations", "6", "-workers", "2", path}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit %d, want 1 (visible needs seven steps); stdout:\n%s", code, stdout.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Sweeping 2 scenarios") || !strings.Contains(out, "FAILED "+path+" visible") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "occupied=37") {
		t.Fatalf("adjacent result missing:\n%s", out)
	}
}

func TestRunRandomLayouts(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-random", "3", "-w", "12", "-h", "9", "-rules", "visible", "-top", "10"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d; stderr:\n%s", code, stderr.String())
	}
	if n := strings.Count(stdout.String(), "random(seed="); n != 3 {
		t.Fatalf("listed %d random scenarios, want 3:\n%s", n, stdout.String())
	}
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if code := run([]string{"-rules", ",", "-random", "1"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit %d, want 2 for an empty rule list", code)
	}
}

func TestParseRules(t *testing.T) {
	rules, err := parseRules(" visible, adjacent ")
	if err != nil || len(rules) != 2 || rules[0] != seating.Visible {
		t.Fatalf("parseRules = %v, %v", rules, err)
	}
	if _, err := parseRules("adjacent,sideways"); err == nil {
		t.Fatal("unknown rule accepted")
	}
}
