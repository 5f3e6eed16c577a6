package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mindtype/mindtype/internal/mbti"
)

// SQLStore persists result archives in the results table, sqlite or
// postgres. Rows are ordered by insertion (created_at nanoseconds) and
// trimmed to the per-user limit after every write.
type SQLStore struct {
	db    *sql.DB
	limit int
	now   func() time.Time
}

// NewSQLStore wraps an opened database. limit <= 0 means DefaultLimit, now
// may be nil for time.Now.
func NewSQLStore(db *sql.DB, limit int, now func() time.Time) *SQLStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if now == nil {
		now = time.Now
	}
	return &SQLStore{db: db, limit: limit, now: now}
}

func (s *SQLStore) Save(ctx context.Context, userID string, r mbti.Result) error {
	buf, err := json.Marshal(r)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO results (id, user_id, type_code, test_date, duration_minutes, result_json, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		uuid.NewString(), userID, r.TypeCode, r.TestDate.UTC().Format(time.RFC3339Nano),
		r.DurationMinutes, string(buf), s.now().UnixNano())
	if err != nil {
		return err
	}
	return s.trim(ctx, userID)
}

func (s *SQLStore) List(ctx context.Context, userID string) ([]mbti.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT result_json FROM results WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []mbti.Result{}
	for rows.Next() {
		var buf string
		if err := rows.Scan(&buf); err != nil {
			return nil, err
		}
		var r mbti.Result
		if err := json.Unmarshal([]byte(buf), &r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) Latest(ctx context.Context, userID string) (mbti.Result, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT result_json FROM results WHERE user_id=$1 ORDER BY created_at DESC LIMIT 1`, userID)
	var buf string
	if err := row.Scan(&buf); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mbti.Result{}, ErrNoResults
		}
		return mbti.Result{}, err
	}
	var r mbti.Result
	if err := json.Unmarshal([]byte(buf), &r); err != nil {
		return mbti.Result{}, err
	}
	return r, nil
}

func (s *SQLStore) Import(ctx context.Context, userID string, results []mbti.Result) (int, error) {
	existing, err := s.keys(ctx, userID)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, r := range Dedupe(results) {
		k := r.TypeCode + "|" + r.TestDate.UTC().Format(time.RFC3339Nano)
		if existing[k] {
			continue
		}
		if err := s.Save(ctx, userID, r); err != nil {
			return added, err
		}
		existing[k] = true
		added++
	}
	return added, nil
}

func (s *SQLStore) Purge(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE user_id=$1`, userID)
	return err
}

func (s *SQLStore) keys(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT type_code, test_date FROM results WHERE user_id=$1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := map[string]bool{}
	for rows.Next() {
		var code, date string
		if err := rows.Scan(&code, &date); err != nil {
			return nil, err
		}
		keys[code+"|"+date] = true
	}
	return keys, rows.Err()
}

// trim drops rows beyond the newest limit for a user.
func (s *SQLStore) trim(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM results WHERE user_id=$1 AND id NOT IN (
		   SELECT id FROM results WHERE user_id=$2 ORDER BY created_at DESC LIMIT $3
		 )`, userID, userID, s.limit)
	return err
}
