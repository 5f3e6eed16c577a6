package mbti_test

import (
	"testing"

	"github.com/mindtype/mindtype/internal/mbti"
)

func TestResolveTieBreakLaw(t *testing.T) {
	// Equal tallies, including zero-zero, resolve each pair to its second
	// letter: I, N, F, P.
	cases := []struct {
		name  string
		tally mbti.Tally
		want  string
	}{
		{"all zero", mbti.NewTally(), "INFP"},
		{"all tied nonzero", mbti.Tally{"E": 6, "I": 6, "S": 3, "N": 3, "T": 1, "F": 1, "J": 5, "P": 5}, "INFP"},
		{"first letters ahead", mbti.Tally{"E": 7, "I": 5, "S": 8, "N": 4, "T": 12, "F": 0, "J": 9, "P": 3}, "ESTJ"},
		{"mixed with one tie", mbti.Tally{"E": 2, "I": 1, "S": 4, "N": 4, "T": 0, "F": 2, "J": 1, "P": 6}, "ENFP"},
	}
	for _, c := range cases {
		if got := c.tally.Resolve(); got != c.want {
			t.Fatalf("%s: Resolve() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestBreakdownGuardsZeroTotal(t *testing.T) {
	bd := mbti.NewTally().Breakdown()
	if len(bd) != 4 {
		t.Fatalf("breakdown has %d entries, want 4", len(bd))
	}
	for _, d := range bd {
		if d.Percent != 0 {
			t.Fatalf("%s: percent = %d with no votes, want 0", d.Name, d.Percent)
		}
		if d.Dominant != d.Second {
			t.Fatalf("%s: dominant = %q on a 0-0 tie, want %q", d.Name, d.Dominant, d.Second)
		}
	}
}

func TestBreakdownPercent(t *testing.T) {
	tally := mbti.NewTally()
	tally["E"], tally["I"] = 8, 4
	bd := tally.Breakdown()

	ei := bd[0]
	if ei.Dominant != "E" || ei.DominantLabel == "" || ei.DominantDesc == "" {
		t.Fatalf("E/I dominant = %+v", ei)
	}
	if ei.Percent != 67 {
		t.Fatalf("E/I percent = %d, want 67", ei.Percent)
	}
	if ei.FirstScore != 8 || ei.SecondScore != 4 {
		t.Fatalf("E/I scores = %d/%d, want 8/4", ei.FirstScore, ei.SecondScore)
	}
}
