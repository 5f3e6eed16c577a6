package history_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mindtype/mindtype/internal/db"
	"github.com/mindtype/mindtype/internal/history"
	"github.com/mindtype/mindtype/internal/mbti"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "history.db")
	dbh, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return dbh
}

// ticker hands out strictly increasing instants so created_at ordering is
// deterministic.
func ticker(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func sqlResult(code string, date time.Time, minutes int) mbti.Result {
	return mbti.Result{
		TypeCode:        code,
		TestDate:        date.UTC(),
		DurationMinutes: minutes,
		TotalQuestions:  48,
	}
}

func TestSQLStoreSaveListTrim(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	st := history.NewSQLStore(openTestDB(t), 3, ticker(base))

	for i := 0; i < 5; i++ {
		if err := st.Save(ctx, "u1", sqlResult("ENFP", base.Add(time.Duration(i)*time.Minute), i)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	list, err := st.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("kept %d results, want 3", len(list))
	}
	// Newest first, oldest two evicted.
	for i, want := range []int{4, 3, 2} {
		if list[i].DurationMinutes != want {
			t.Fatalf("list[%d].DurationMinutes = %d, want %d", i, list[i].DurationMinutes, want)
		}
	}

	latest, err := st.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.DurationMinutes != 4 || latest.TypeCode != "ENFP" {
		t.Fatalf("latest = %+v", latest)
	}
	if !latest.TestDate.Equal(base.Add(4 * time.Minute)) {
		t.Fatalf("latest test date = %v", latest.TestDate)
	}
}

func TestSQLStoreImportDedupe(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	st := history.NewSQLStore(openTestDB(t), 5, ticker(base))

	if err := st.Save(ctx, "u1", sqlResult("INTJ", base, 5)); err != nil {
		t.Fatalf("save: %v", err)
	}

	batch := []mbti.Result{
		sqlResult("INTJ", base, 5),                  // already stored
		sqlResult("ENFP", base.Add(time.Minute), 6), // new
		sqlResult("ENFP", base.Add(time.Minute), 6), // duplicate inside the batch
	}
	added, err := st.Import(ctx, "u1", batch)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if added != 1 {
		t.Fatalf("imported %d, want 1", added)
	}

	// Re-importing the same payload adds nothing.
	added, err = st.Import(ctx, "u1", batch)
	if err != nil {
		t.Fatalf("reimport: %v", err)
	}
	if added != 0 {
		t.Fatalf("reimport added %d, want 0", added)
	}

	list, _ := st.List(ctx, "u1")
	if len(list) != 2 {
		t.Fatalf("stored %d results, want 2", len(list))
	}
}

func TestSQLStorePurgeIsolation(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	st := history.NewSQLStore(openTestDB(t), 5, ticker(base))

	if err := st.Save(ctx, "u1", sqlResult("ISTP", base, 3)); err != nil {
		t.Fatalf("save u1: %v", err)
	}
	if err := st.Save(ctx, "u2", sqlResult("ESFJ", base, 4)); err != nil {
		t.Fatalf("save u2: %v", err)
	}

	if err := st.Purge(ctx, "u1"); err != nil {
		t.Fatalf("purge: %v", err)
	}
	if _, err := st.Latest(ctx, "u1"); !errors.Is(err, history.ErrNoResults) {
		t.Fatalf("latest after purge: %v", err)
	}
	if _, err := st.Latest(ctx, "u2"); err != nil {
		t.Fatalf("purge touched another user: %v", err)
	}
}
