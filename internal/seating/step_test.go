package seating

import "testing"

func TestStepSampleRounds(t *testing.T) {
	initial := MustParse(sampleLayout)
	round1 := Step(initial, Adjacent)
	if got := round1.String(); got != sampleAdjacentRound1 {
		t.Fatalf("round 1:\n%s\nwant:\n%s", got, sampleAdjacentRound1)
	}
	round2 := Step(round1, Adjacent)
	if got := round2.String(); got != sampleAdjacentRound2 {
		t.Fatalf("round 2:\n%s\nwant:\n%s", got, sampleAdjacentRound2)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	initial := MustParse(sampleLayout)
	before := initial.Clone()
	_ = Step(initial, Adjacent)
	_ = StepParallel(initial, Visible, 4)
	if !initial.Equal(before) {
		t.Fatal("Step modified its input grid")
	}
}

func TestStepIsSynchronous(t *testing.T) {
	// Updating in place would let the first seat's new occupant block the
	// second seat. Both must fill in the same generation.
	g := MustParse("L.L\n...\nL.L")
	next := Step(g, Adjacent)
	if got := next.String(); got != "#.#\n...\n#.#\n" {
		t.Fatalf("got:\n%s", got)
	}
	next = Step(MustParse("LL"), Adjacent)
	if got := next.String(); got != "##\n" {
		t.Fatalf("two touching empty seats: got %q, want both occupied", got)
	}
}

func TestStepParallelMatchesStep(t *testing.T) {
	grids := []*Grid{
		MustParse(sampleLayout),
		MustParse(sampleAdjacentRound1),
		RandomLayout(37, 23, 0.25, 7),
		MustParse("L"),
	}
	for _, g := range grids {
		for _, rule := range Rules() {
			want := Step(g, rule)
			for _, workers := range []int{0, 1, 2, 3, 8, 100} {
				if got := StepParallel(g, rule, workers); !got.Equal(want) {
					t.Fatalf("%v with %d workers differs from Step on %dx%d grid", rule, workers, g.Rows(), g.Cols())
				}
			}
		}
	}
}

func TestStepLeavesFloorAlone(t *testing.T) {
	g := MustParse("...\n...\n...")
	for _, rule := range Rules() {
		if next := Step(g, rule); !next.Equal(g) {
			t.Fatalf("%v changed an all-floor grid", rule)
		}
	}
}
