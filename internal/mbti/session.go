package mbti

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrQuestionIndex reports a question index outside the bank.
	ErrQuestionIndex = errors.New("question index out of range")
	// ErrOptionIndex reports an option index other than 0 or 1.
	ErrOptionIndex = errors.New("option index out of range")
)

const unanswered = -1

// Session is one test attempt's scoring state. It is owned by the caller and
// holds no global state; all methods are synchronous and single-threaded.
// The zero value is not usable, construct with NewSession.
type Session struct {
	bank    *Bank
	catalog *Catalog
	now     func() time.Time

	current   int
	answers   []int
	startedAt time.Time
}

// NewSession builds a session over the given bank and catalog. now supplies
// the clock and may be nil for time.Now.
func NewSession(bank *Bank, catalog *Catalog, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{bank: bank, catalog: catalog, now: now}
	s.Start()
	return s
}

// Start resets the session to a fresh attempt: pointer at zero, no answers,
// started-at stamped now. Safe to call repeatedly.
func (s *Session) Start() {
	s.current = 0
	s.answers = make([]int, s.bank.Len())
	for i := range s.answers {
		s.answers[i] = unanswered
	}
	s.startedAt = s.now()
}

// RecordAnswer stores the chosen option for a question, overwriting any
// earlier choice. Out-of-range indices are a caller contract violation and
// rejected rather than silently written.
func (s *Session) RecordAnswer(question, option int) error {
	if question < 0 || question >= s.bank.Len() {
		return fmt.Errorf("%w: %d", ErrQuestionIndex, question)
	}
	if option != 0 && option != 1 {
		return fmt.Errorf("%w: %d", ErrOptionIndex, option)
	}
	s.answers[question] = option
	return nil
}

// Advance moves the pointer forward one question and reports whether it
// moved. It never leaves the bank's range.
func (s *Session) Advance() bool {
	if s.current < s.bank.Len()-1 {
		s.current++
		return true
	}
	return false
}

// Retreat moves the pointer back one question and reports whether it moved.
func (s *Session) Retreat() bool {
	if s.current > 0 {
		s.current--
		return true
	}
	return false
}

// Current returns the 0-based question pointer.
func (s *Session) Current() int { return s.current }

// CurrentQuestion returns the bank entry under the pointer.
func (s *Session) CurrentQuestion() Question {
	q, _ := s.bank.Question(s.current)
	return q
}

// Progress reports the pointer position as a 1-based counter and a rounded
// percentage. An empty bank yields 0 percent rather than NaN.
func (s *Session) Progress() Progress {
	total := s.bank.Len()
	p := Progress{Current: s.current + 1, Total: total}
	if total > 0 {
		p.Percent = int(math.Round(float64(s.current+1) / float64(total) * 100))
	}
	return p
}

// Complete reports whether every question has an answer. This is stricter
// than the last-slot-only predicate the instrument shipped with; see
// LastAnswered for that behavior.
func (s *Session) Complete() bool {
	for _, a := range s.answers {
		if a == unanswered {
			return false
		}
	}
	return len(s.answers) > 0
}

// LastAnswered reports whether the pointer sits on the final question and
// that question has an answer. It does not require earlier questions to be
// answered; callers gating submission should prefer Complete.
func (s *Session) LastAnswered() bool {
	last := s.bank.Len() - 1
	return s.current == last && last >= 0 && s.answers[last] != unanswered
}

// Answers returns a copy of the answer slots, unanswered entries as -1.
func (s *Session) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// StartedAt returns when the current attempt began.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Restore rehydrates a session from persisted state. Answer values must be
// -1, 0 or 1 and the slice must match the bank length.
func (s *Session) Restore(current int, answers []int, startedAt time.Time) error {
	if current < 0 || current >= s.bank.Len() {
		return fmt.Errorf("%w: %d", ErrQuestionIndex, current)
	}
	if len(answers) != s.bank.Len() {
		return fmt.Errorf("restore: %d answer slots, want %d", len(answers), s.bank.Len())
	}
	for i, a := range answers {
		if a != unanswered && a != 0 && a != 1 {
			return fmt.Errorf("%w: answer %d at question %d", ErrOptionIndex, a, i)
		}
	}
	s.current = current
	s.answers = append(s.answers[:0], answers...)
	s.startedAt = startedAt
	return nil
}

// Result scores the attempt. Recorded answers each cast one vote for their
// option's letter; unanswered questions do not vote. The four dimensions
// resolve independently (ties to the second letter) and concatenate into the
// type code. Result has no side effects and may be called repeatedly.
func (s *Session) Result() Result {
	scores := NewTally()
	for qi, oi := range s.answers {
		if oi == unanswered {
			continue
		}
		q, _ := s.bank.Question(qi)
		scores[q.Options[oi].Letter]++
	}
	code := scores.Resolve()

	record, ok := s.catalog.Lookup(code)
	if !ok {
		record = Placeholder(code)
	}

	now := s.now()
	duration := 0
	if !s.startedAt.IsZero() {
		duration = int(math.Round(now.Sub(s.startedAt).Minutes()))
	}

	return Result{
		TypeCode:        code,
		Scores:          scores,
		Record:          record,
		Dimensions:      scores.Breakdown(),
		TestDate:        now,
		DurationMinutes: duration,
		TotalQuestions:  s.bank.Len(),
	}
}
