package ui

import (
	"slices"
	"testing"

	"seat-ca/internal/core"
)

type namedSim struct{ name string }

func (s namedSim) Name() string { return s.name }
func (namedSim) Size() core.Size { return core.Size{} }
func (namedSim) Reset(int64) {}
func (namedSim) Step() {}
func (namedSim) Cells() []uint8 { return nil }

func TestHUDLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Run", Params: []core.Parameter{
			core.StringParam("rule", "Rule", "visible"),
			core.IntParam("generation", "Generation", 3),
		}},
	}}
	got := hudLines("Seats", snap)
	want := []string{"Seats", "", "RUN", "Rule: visible", "Generation: 3"}
	if !slices.Equal(got, want) {
		t.Fatalf("hudLines = %q, want %q", got, want)
	}
}

func TestBuildTitle(t *testing.T) {
	if got := buildTitle(namedSim{name: "seats"}); got != "Seats" {
		t.Fatalf("title = %q", got)
	}
	if got := buildTitle(namedSim{}); got != "Parameters" {
		t.Fatalf("title = %q", got)
	}
	if got := buildTitle(nil); got != "Parameters" {
		t.Fatalf("title = %q", got)
	}
}
