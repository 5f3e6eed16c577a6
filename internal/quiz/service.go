package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindtype/mindtype/internal/eventlog"
	"github.com/mindtype/mindtype/internal/history"
	"github.com/mindtype/mindtype/internal/mbti"
	"github.com/mindtype/mindtype/internal/metrics"
)

var (
	// ErrForbidden is returned when a caller touches another user's session.
	ErrForbidden = errors.New("not session owner")
	// ErrAlreadySubmitted rejects mutations of a submitted session.
	ErrAlreadySubmitted = errors.New("session already submitted")
	// ErrIncomplete rejects submission before every question is answered.
	ErrIncomplete = errors.New("session incomplete")
	// ErrBadDirection rejects navigation directions other than next/prev.
	ErrBadDirection = errors.New("direction must be next or prev")
)

// Service owns the quiz flow. Sessions, results, events and metrics are all
// injected; events and metrics may be nil.
type Service struct {
	bank     *mbti.Bank
	catalog  *mbti.Catalog
	sessions SessionStore
	results  history.Store
	events   *eventlog.Repo
	metrics  *metrics.Metrics
	log      *zap.Logger
	now      func() time.Time
}

func NewService(bank *mbti.Bank, catalog *mbti.Catalog, sessions SessionStore, results history.Store,
	events *eventlog.Repo, m *metrics.Metrics, log *zap.Logger, now func() time.Time) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		bank: bank, catalog: catalog,
		sessions: sessions, results: results,
		events: events, metrics: m,
		log: log, now: now,
	}
}

// Start opens a fresh session for the user.
func (s *Service) Start(ctx context.Context, userID string) (Session, error) {
	eng := mbti.NewSession(s.bank, s.catalog, s.now)
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    StatusInProgress,
		Current:   eng.Current(),
		Answers:   eng.Answers(),
		StartedAt: eng.StartedAt(),
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return Session{}, err
	}
	s.record(ctx, eventlog.TypeSessionStarted, sess.ID, map[string]string{"user_id": userID})
	if s.metrics != nil {
		s.metrics.SessionsStarted.Inc()
	}
	s.log.Info("session started", zap.String("session_id", sess.ID), zap.String("user_id", userID))
	return sess, nil
}

// Get returns the owner's session with its current question and progress.
func (s *Service) Get(ctx context.Context, id, userID string) (View, error) {
	sess, err := s.owned(ctx, id, userID)
	if err != nil {
		return View{}, err
	}
	return s.view(sess)
}

// RecordAnswer stores one answer, overwriting any earlier choice for that
// question. Indices are validated by the engine before anything is written.
func (s *Service) RecordAnswer(ctx context.Context, id, userID string, question, option int) (View, error) {
	sess, err := s.owned(ctx, id, userID)
	if err != nil {
		return View{}, err
	}
	if sess.Status == StatusSubmitted {
		return View{}, ErrAlreadySubmitted
	}
	eng, err := s.engine(sess)
	if err != nil {
		return View{}, err
	}
	if err := eng.RecordAnswer(question, option); err != nil {
		return View{}, err
	}
	sess.Answers = eng.Answers()
	if err := s.sessions.Update(ctx, sess); err != nil {
		return View{}, err
	}
	return s.view(sess)
}

// Navigate moves the question pointer one step, clamped to the bank's range.
func (s *Service) Navigate(ctx context.Context, id, userID, direction string) (View, error) {
	sess, err := s.owned(ctx, id, userID)
	if err != nil {
		return View{}, err
	}
	if sess.Status == StatusSubmitted {
		return View{}, ErrAlreadySubmitted
	}
	eng, err := s.engine(sess)
	if err != nil {
		return View{}, err
	}
	switch direction {
	case "next":
		eng.Advance()
	case "prev":
		eng.Retreat()
	default:
		return View{}, fmt.Errorf("%w: %q", ErrBadDirection, direction)
	}
	sess.Current = eng.Current()
	if err := s.sessions.Update(ctx, sess); err != nil {
		return View{}, err
	}
	return s.view(sess)
}

// Submit scores a complete session, archives the result and marks the
// session submitted. Resubmitting returns the stored result unchanged.
func (s *Service) Submit(ctx context.Context, id, userID string) (mbti.Result, error) {
	sess, err := s.owned(ctx, id, userID)
	if err != nil {
		return mbti.Result{}, err
	}
	if sess.Status == StatusSubmitted && sess.Result != nil {
		return *sess.Result, nil
	}
	eng, err := s.engine(sess)
	if err != nil {
		return mbti.Result{}, err
	}
	if !eng.Complete() {
		return mbti.Result{}, ErrIncomplete
	}

	res := eng.Result()
	if err := s.results.Save(ctx, sess.UserID, res); err != nil {
		return mbti.Result{}, err
	}
	sess.Status = StatusSubmitted
	sess.SubmittedAt = res.TestDate
	sess.Result = &res
	if err := s.sessions.Update(ctx, sess); err != nil {
		return mbti.Result{}, err
	}

	s.record(ctx, eventlog.TypeSessionSubmitted, sess.ID, map[string]string{
		"user_id":   sess.UserID,
		"type_code": res.TypeCode,
	})
	if s.metrics != nil {
		s.metrics.SessionsSubmitted.Inc()
		s.metrics.ResultTypes.WithLabelValues(res.TypeCode).Inc()
	}
	s.log.Info("session submitted",
		zap.String("session_id", sess.ID),
		zap.String("type_code", res.TypeCode),
		zap.Int("duration_minutes", res.DurationMinutes))
	return res, nil
}

func (s *Service) owned(ctx context.Context, id, userID string) (Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if sess.UserID != userID {
		return Session{}, ErrForbidden
	}
	return sess, nil
}

// engine rehydrates the scoring engine from a session row.
func (s *Service) engine(sess Session) (*mbti.Session, error) {
	eng := mbti.NewSession(s.bank, s.catalog, s.now)
	if err := eng.Restore(sess.Current, sess.Answers, sess.StartedAt); err != nil {
		return nil, fmt.Errorf("session %s: %w", sess.ID, err)
	}
	return eng, nil
}

func (s *Service) view(sess Session) (View, error) {
	eng, err := s.engine(sess)
	if err != nil {
		return View{}, err
	}
	q := eng.CurrentQuestion()
	opts := make([]mbti.Option, len(q.Options))
	for i, o := range q.Options {
		opts[i] = mbti.Option{Text: o.Text}
	}
	stage, _ := s.bank.Stage(eng.Current())
	return View{
		Session:  sess,
		Question: mbti.Question{Text: q.Text, Options: opts},
		Stage:    stage.Name,
		Progress: eng.Progress(),
	}, nil
}

func (s *Service) record(ctx context.Context, typ, key string, data map[string]string) {
	if s.events == nil {
		return
	}
	if err := s.events.Append(ctx, typ, key, data); err != nil {
		s.log.Warn("event append failed", zap.String("type", typ), zap.Error(err))
	}
}
