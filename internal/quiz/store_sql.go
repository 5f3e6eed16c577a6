package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore keeps session rows in the sessions table, sqlite or postgres.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Put(ctx context.Context, sess Session) error {
	answers, err := json.Marshal(sess.Answers)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, status, current_index, answers_json, started_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		sess.ID, sess.UserID, sess.Status, sess.Current, string(answers), sess.StartedAt.Unix())
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, status, current_index, answers_json, result_json, started_at, submitted_at
		 FROM sessions WHERE id=$1`, id)

	var (
		sess        Session
		answers     string
		result      sql.NullString
		startedAt   int64
		submittedAt sql.NullInt64
	)
	if err := row.Scan(&sess.ID, &sess.UserID, &sess.Status, &sess.Current,
		&answers, &result, &startedAt, &submittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, err
	}
	if err := json.Unmarshal([]byte(answers), &sess.Answers); err != nil {
		return Session{}, err
	}
	if result.Valid && result.String != "" {
		if err := json.Unmarshal([]byte(result.String), &sess.Result); err != nil {
			return Session{}, err
		}
	}
	sess.StartedAt = time.Unix(startedAt, 0).UTC()
	if submittedAt.Valid {
		sess.SubmittedAt = time.Unix(submittedAt.Int64, 0).UTC()
	}
	return sess, nil
}

func (s *SQLStore) Update(ctx context.Context, sess Session) error {
	answers, err := json.Marshal(sess.Answers)
	if err != nil {
		return err
	}
	var result sql.NullString
	if sess.Result != nil {
		buf, err := json.Marshal(sess.Result)
		if err != nil {
			return err
		}
		result = sql.NullString{String: string(buf), Valid: true}
	}
	var submittedAt sql.NullInt64
	if !sess.SubmittedAt.IsZero() {
		submittedAt = sql.NullInt64{Int64: sess.SubmittedAt.Unix(), Valid: true}
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET status=$1, current_index=$2, answers_json=$3, result_json=$4, submitted_at=$5
		 WHERE id=$6`,
		sess.Status, sess.Current, string(answers), result, submittedAt, sess.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSessionNotFound
	}
	return nil
}
