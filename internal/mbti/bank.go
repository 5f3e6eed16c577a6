package mbti

import "fmt"

// BlockSize is how many consecutive questions measure each dimension.
const BlockSize = 12

// Bank is the fixed, ordered question instrument. It is immutable after
// construction; validation runs once in NewBank so scoring can trust the
// block layout and option letters without per-call checks.
type Bank struct {
	questions []Question
}

// NewBank validates the instrument shape: four blocks of BlockSize questions
// in dimension order, every question offering exactly two options whose
// letters are the two opposite poles of that block's dimension.
func NewBank(questions []Question) (*Bank, error) {
	want := len(Dimensions) * BlockSize
	if len(questions) != want {
		return nil, fmt.Errorf("bank: have %d questions, want %d", len(questions), want)
	}
	for i, q := range questions {
		if q.Text == "" {
			return nil, fmt.Errorf("bank: question %d has no text", i)
		}
		if len(q.Options) != 2 {
			return nil, fmt.Errorf("bank: question %d has %d options, want 2", i, len(q.Options))
		}
		a, b := q.Options[0].Letter, q.Options[1].Letter
		if !a.Valid() || !b.Valid() {
			return nil, fmt.Errorf("bank: question %d has invalid letter %q/%q", i, a, b)
		}
		if !samePair(a, b) {
			return nil, fmt.Errorf("bank: question %d mixes dimensions %q/%q", i, a, b)
		}
		block := Dimensions[i/BlockSize]
		if a != block.First && a != block.Second {
			return nil, fmt.Errorf("bank: question %d measures %q outside its %s block", i, a, block.Name)
		}
	}
	return &Bank{questions: questions}, nil
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int { return len(b.questions) }

// Question returns the entry at index i.
func (b *Bank) Question(i int) (Question, bool) {
	if i < 0 || i >= len(b.questions) {
		return Question{}, false
	}
	return b.questions[i], true
}

// Questions returns a copy of the full ordered instrument. Options are
// copied too so callers cannot write through to the bank.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		opts := make([]Option, len(q.Options))
		copy(opts, q.Options)
		out[i] = Question{Text: q.Text, Options: opts}
	}
	return out
}

// Stage returns the dimension a question index belongs to, for progress-stage
// display. The block order is load-bearing for display only, not scoring.
func (b *Bank) Stage(i int) (Dimension, bool) {
	if i < 0 || i >= len(b.questions) {
		return Dimension{}, false
	}
	return Dimensions[i/BlockSize], true
}

// Redacted returns the questions with option letters stripped, safe to serve
// to test takers.
func (b *Bank) Redacted() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		opts := make([]Option, len(q.Options))
		for j, o := range q.Options {
			opts[j] = Option{Text: o.Text}
		}
		out[i] = Question{Text: q.Text, Options: opts}
	}
	return out
}

var defaultBank = mustBank(defaultQuestions)

// DefaultBank returns the built-in 48-question instrument.
func DefaultBank() *Bank { return defaultBank }

func mustBank(questions []Question) *Bank {
	b, err := NewBank(questions)
	if err != nil {
		panic(err)
	}
	return b
}
