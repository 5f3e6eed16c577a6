package mbti

import "time"

// Option is one of the two answer choices a question offers. Picking it
// casts one vote for its letter.
type Option struct {
	Text   string `json:"text"`
	Letter Letter `json:"letter,omitempty"`
}

// Question is a single forced-choice item. Its two options carry the two
// opposite letters of exactly one dimension.
type Question struct {
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Dimension returns the pair this question measures, derived from the first
// option's letter. Valid only on a bank-validated question.
func (q Question) Dimension() (Dimension, bool) {
	if len(q.Options) == 0 {
		return Dimension{}, false
	}
	return DimensionOf(q.Options[0].Letter)
}

// Characteristic is one trait blurb of a type record.
type Characteristic struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// TypeRecord is the static descriptive content for one of the 16 types.
type TypeRecord struct {
	Code            string           `json:"code"`
	Title           string           `json:"title"`
	Subtitle        string           `json:"subtitle"`
	Description     string           `json:"description"`
	Characteristics []Characteristic `json:"characteristics"`
	Careers         []string         `json:"careers"`
}

// Progress describes how far through the bank a session's pointer sits.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// DimensionScore is the per-pair breakdown shown alongside a result.
// Percent is the dominant side's share of the pair's votes, 0 when the pair
// received no votes at all.
type DimensionScore struct {
	Name          string `json:"name"`
	First         Letter `json:"first"`
	Second        Letter `json:"second"`
	FirstScore    int    `json:"first_score"`
	SecondScore   int    `json:"second_score"`
	Dominant      Letter `json:"dominant"`
	DominantLabel string `json:"dominant_label"`
	DominantDesc  string `json:"dominant_desc"`
	Percent       int    `json:"percent"`
}

// Result is one completed test outcome. The engine produces it and does not
// retain it; persistence belongs to the history store.
type Result struct {
	TypeCode        string           `json:"type_code"`
	Scores          Tally            `json:"scores"`
	Record          TypeRecord       `json:"type_info"`
	Dimensions      []DimensionScore `json:"dimensions"`
	TestDate        time.Time        `json:"test_date"`
	DurationMinutes int              `json:"duration_minutes"`
	TotalQuestions  int              `json:"total_questions"`
}
