package quiz_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mindtype/mindtype/internal/db"
	"github.com/mindtype/mindtype/internal/mbti"
	"github.com/mindtype/mindtype/internal/quiz"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "sessions.db")
	dbh, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return dbh
}

func TestSQLSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := quiz.NewSQLStore(openTestDB(t))

	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	answers := make([]int, 48)
	for i := range answers {
		answers[i] = -1
	}
	answers[0], answers[1] = 0, 1

	sess := quiz.Session{
		ID:        "s1",
		UserID:    "u1",
		Status:    quiz.StatusInProgress,
		Current:   2,
		Answers:   answers,
		StartedAt: started,
	}
	if err := st.Put(ctx, sess); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := st.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != "u1" || got.Status != quiz.StatusInProgress || got.Current != 2 {
		t.Fatalf("got = %+v", got)
	}
	if len(got.Answers) != 48 || got.Answers[0] != 0 || got.Answers[1] != 1 || got.Answers[2] != -1 {
		t.Fatalf("answers = %v", got.Answers[:3])
	}
	if !got.StartedAt.Equal(started) {
		t.Fatalf("started at = %v, want %v", got.StartedAt, started)
	}
	if got.Result != nil || !got.SubmittedAt.IsZero() {
		t.Fatalf("fresh session carries submit state: %+v", got)
	}
}

func TestSQLSessionUpdateSubmitted(t *testing.T) {
	ctx := context.Background()
	st := quiz.NewSQLStore(openTestDB(t))

	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sess := quiz.Session{
		ID:        "s1",
		UserID:    "u1",
		Status:    quiz.StatusInProgress,
		Answers:   []int{0, 1},
		StartedAt: started,
	}
	if err := st.Put(ctx, sess); err != nil {
		t.Fatalf("put: %v", err)
	}

	submitted := started.Add(9 * time.Minute)
	sess.Status = quiz.StatusSubmitted
	sess.Current = 47
	sess.SubmittedAt = submitted
	sess.Result = &mbti.Result{
		TypeCode:        "ESTJ",
		TestDate:        submitted,
		DurationMinutes: 9,
		TotalQuestions:  48,
	}
	if err := st.Update(ctx, sess); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := st.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != quiz.StatusSubmitted || got.Current != 47 {
		t.Fatalf("got = %+v", got)
	}
	if !got.SubmittedAt.Equal(submitted) {
		t.Fatalf("submitted at = %v, want %v", got.SubmittedAt, submitted)
	}
	if got.Result == nil || got.Result.TypeCode != "ESTJ" || got.Result.DurationMinutes != 9 {
		t.Fatalf("result = %+v", got.Result)
	}
}

func TestSQLSessionNotFound(t *testing.T) {
	ctx := context.Background()
	st := quiz.NewSQLStore(openTestDB(t))

	if _, err := st.Get(ctx, "nope"); !errors.Is(err, quiz.ErrSessionNotFound) {
		t.Fatalf("get unknown: %v", err)
	}
	err := st.Update(ctx, quiz.Session{ID: "nope", Status: quiz.StatusInProgress, Answers: []int{}})
	if !errors.Is(err, quiz.ErrSessionNotFound) {
		t.Fatalf("update unknown: %v", err)
	}
}
