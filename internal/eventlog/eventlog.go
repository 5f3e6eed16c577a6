// Package eventlog appends an audit trail of quiz activity to the event_log
// table.
package eventlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

const (
	TypeSessionStarted   = "SessionStarted"
	TypeSessionSubmitted = "SessionSubmitted"
	TypeResultsImported  = "ResultsImported"
	TypeResultsPurged    = "ResultsPurged"
)

type Event struct {
	Offset    int64
	SiteID    string
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

type Repo struct {
	db     *sql.DB
	siteID string
}

func NewRepo(db *sql.DB, siteID string) *Repo {
	if siteID == "" {
		siteID = "local"
	}
	return &Repo{db: db, siteID: siteID}
}

// Append writes one event row. key is the natural key, usually a session or
// user ID; data is marshaled to JSON.
func (r *Repo) Append(ctx context.Context, typ, key string, data map[string]string) error {
	buf, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		r.siteID, typ, key, string(buf), time.Now().Unix())
	return err
}
