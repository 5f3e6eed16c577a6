// Package quiz drives test sessions over the scoring engine: session
// lifecycle, answer recording, navigation and submission, with results
// handed to the history store.
package quiz

import (
	"time"

	"github.com/mindtype/mindtype/internal/mbti"
)

const (
	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted"
)

// Session is the persisted state of one test attempt. Answers holds one slot
// per question, -1 for unanswered.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	Current     int       `json:"current"`
	Answers     []int     `json:"answers"`
	StartedAt   time.Time `json:"started_at"`
	SubmittedAt time.Time `json:"submitted_at,omitempty"`

	// Result is set once the session is submitted.
	Result *mbti.Result `json:"result,omitempty"`
}

// View is the session shape served to takers: the row plus the redacted
// current question, its stage and progress.
type View struct {
	Session
	Question mbti.Question `json:"question"`
	Stage    string        `json:"stage"`
	Progress mbti.Progress `json:"progress"`
}
