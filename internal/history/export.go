package history

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/mindtype/mindtype/internal/mbti"
)

// Export is the portable envelope for a user's result archive.
type Export struct {
	ExportDate   time.Time     `json:"export_date"`
	TotalResults int           `json:"total_results"`
	Results      []mbti.Result `json:"results"`
}

// NewExport wraps results for download.
func NewExport(results []mbti.Result, now time.Time) Export {
	if results == nil {
		results = []mbti.Result{}
	}
	return Export{ExportDate: now, TotalResults: len(results), Results: results}
}

// ErrBadImport reports an import payload without a results array.
var ErrBadImport = errors.New("invalid import payload")

// ParseImport decodes an Export envelope and returns its results.
func ParseImport(data []byte) ([]mbti.Result, error) {
	var env struct {
		Results []mbti.Result `json:"results"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Results == nil {
		return nil, ErrBadImport
	}
	return env.Results, nil
}
