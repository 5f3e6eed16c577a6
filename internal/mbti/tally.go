package mbti

import "math"

// Tally maps each of the eight letters to its vote count.
type Tally map[Letter]int

// NewTally returns a tally with all eight letters present at zero, so JSON
// output and pair resolution always see every letter.
func NewTally() Tally {
	t := make(Tally, 8)
	for _, d := range Dimensions {
		t[d.First] = 0
		t[d.Second] = 0
	}
	return t
}

// Resolve concatenates the winning letter of each dimension, in order, into
// a 4-letter type code. A pair's first letter wins only when its count is
// strictly greater; equal counts resolve to the second letter. This exact
// tie-break is an output-compatibility contract and must not change.
func (t Tally) Resolve() string {
	code := make([]byte, 0, 4)
	for _, d := range Dimensions {
		if t[d.First] > t[d.Second] {
			code = append(code, d.First[0])
		} else {
			code = append(code, d.Second[0])
		}
	}
	return string(code)
}

// Breakdown computes the per-dimension display scores. A pair with zero
// total votes yields percent 0 rather than NaN and its second letter as
// dominant, consistent with Resolve.
func (t Tally) Breakdown() []DimensionScore {
	out := make([]DimensionScore, 0, len(Dimensions))
	for _, d := range Dimensions {
		first, second := t[d.First], t[d.Second]
		ds := DimensionScore{
			Name:        d.Name,
			First:       d.First,
			Second:      d.Second,
			FirstScore:  first,
			SecondScore: second,
		}
		if first > second {
			ds.Dominant, ds.DominantLabel, ds.DominantDesc = d.First, d.FirstLabel, d.FirstDesc
		} else {
			ds.Dominant, ds.DominantLabel, ds.DominantDesc = d.Second, d.SecondLabel, d.SecondDesc
		}
		if total := first + second; total > 0 {
			fp := int(math.Round(float64(first) / float64(total) * 100))
			sp := int(math.Round(float64(second) / float64(total) * 100))
			if fp > sp {
				ds.Percent = fp
			} else {
				ds.Percent = sp
			}
		}
		out = append(out, ds)
	}
	return out
}
