package history

import (
	"math"
	"time"

	"github.com/mindtype/mindtype/internal/mbti"
)

// recentWindow is how long a stored result still triggers the
// "welcome back" summary.
const recentWindow = 30 * 24 * time.Hour

// Summary is the lightweight shape persisted for the returning-visitor
// banner. It carries no catalog content; the display layer re-looks the
// record up by code and must tolerate a miss.
type Summary struct {
	TypeCode        string    `json:"type_code"`
	TestDate        time.Time `json:"test_date"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Recent returns a summary of the newest result when it is younger than 30
// days. ok is false otherwise.
func Recent(latest mbti.Result, now time.Time) (Summary, bool) {
	if latest.TestDate.IsZero() || now.Sub(latest.TestDate) >= recentWindow {
		return Summary{}, false
	}
	return Summary{
		TypeCode:        latest.TypeCode,
		TestDate:        latest.TestDate,
		DurationMinutes: latest.DurationMinutes,
	}, true
}

// Stats aggregates a user's retained results.
type Stats struct {
	TotalTests             int            `json:"total_tests"`
	TypeDistribution       map[string]int `json:"type_distribution"`
	AverageDurationMinutes int            `json:"average_duration_minutes"`
	OldestTest             time.Time      `json:"oldest_test"`
	NewestTest             time.Time      `json:"newest_test"`
}

// Compute derives Stats from a result list in any order.
func Compute(results []mbti.Result) Stats {
	stats := Stats{
		TotalTests:       len(results),
		TypeDistribution: map[string]int{},
	}
	if len(results) == 0 {
		return stats
	}
	total := 0
	for _, r := range results {
		stats.TypeDistribution[r.TypeCode]++
		total += r.DurationMinutes
		if stats.OldestTest.IsZero() || r.TestDate.Before(stats.OldestTest) {
			stats.OldestTest = r.TestDate
		}
		if r.TestDate.After(stats.NewestTest) {
			stats.NewestTest = r.TestDate
		}
	}
	stats.AverageDurationMinutes = int(math.Round(float64(total) / float64(len(results))))
	return stats
}
