package history_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mindtype/mindtype/internal/history"
	"github.com/mindtype/mindtype/internal/mbti"
)

func result(code string, date time.Time, minutes int) mbti.Result {
	return mbti.Result{
		TypeCode:        code,
		TestDate:        date,
		DurationMinutes: minutes,
		TotalQuestions:  48,
	}
}

func TestSaveCapsHistory(t *testing.T) {
	ctx := context.Background()
	st := history.NewInMemoryStore(0)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		if err := st.Save(ctx, "u1", result("INTJ", base.Add(time.Duration(i)*time.Hour), i)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	list, err := st.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != history.DefaultLimit {
		t.Fatalf("retained %d results, want %d", len(list), history.DefaultLimit)
	}
	// Newest first, the three oldest evicted.
	if !list[0].TestDate.Equal(base.Add(7 * time.Hour)) {
		t.Fatalf("newest = %v", list[0].TestDate)
	}
	if !list[len(list)-1].TestDate.Equal(base.Add(3 * time.Hour)) {
		t.Fatalf("oldest retained = %v", list[len(list)-1].TestDate)
	}
}

func TestLatest(t *testing.T) {
	ctx := context.Background()
	st := history.NewInMemoryStore(5)

	if _, err := st.Latest(ctx, "u1"); !errors.Is(err, history.ErrNoResults) {
		t.Fatalf("latest on empty store: %v", err)
	}

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	_ = st.Save(ctx, "u1", result("INTJ", base, 6))
	_ = st.Save(ctx, "u1", result("ENFP", base.Add(time.Hour), 7))

	latest, err := st.Latest(ctx, "u1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.TypeCode != "ENFP" {
		t.Fatalf("latest = %q, want ENFP", latest.TypeCode)
	}
}

func TestImportDedupes(t *testing.T) {
	ctx := context.Background()
	st := history.NewInMemoryStore(5)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	_ = st.Save(ctx, "u1", result("INTJ", base, 6))

	added, err := st.Import(ctx, "u1", []mbti.Result{
		result("INTJ", base, 6),                // duplicate of stored
		result("ENFP", base.Add(time.Hour), 7), // new
		result("ENFP", base.Add(time.Hour), 7), // duplicate within payload
	})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if added != 1 {
		t.Fatalf("added = %d, want 1", added)
	}
	list, _ := st.List(ctx, "u1")
	if len(list) != 2 {
		t.Fatalf("retained %d results, want 2", len(list))
	}
}

func TestImportRespectsCap(t *testing.T) {
	ctx := context.Background()
	st := history.NewInMemoryStore(3)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	batch := make([]mbti.Result, 6)
	for i := range batch {
		batch[i] = result("ISFP", base.Add(time.Duration(i)*time.Minute), i)
	}
	if _, err := st.Import(ctx, "u1", batch); err != nil {
		t.Fatalf("import: %v", err)
	}
	list, _ := st.List(ctx, "u1")
	if len(list) != 3 {
		t.Fatalf("retained %d results, want 3", len(list))
	}
}

func TestPurge(t *testing.T) {
	ctx := context.Background()
	st := history.NewInMemoryStore(5)
	_ = st.Save(ctx, "u1", result("INTJ", time.Now(), 6))
	_ = st.Save(ctx, "u2", result("ENFP", time.Now(), 6))

	if err := st.Purge(ctx, "u1"); err != nil {
		t.Fatalf("purge: %v", err)
	}
	if list, _ := st.List(ctx, "u1"); len(list) != 0 {
		t.Fatalf("u1 still has %d results", len(list))
	}
	if list, _ := st.List(ctx, "u2"); len(list) != 1 {
		t.Fatalf("u2 lost results: %d", len(list))
	}
}

func TestDedupe(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	in := []mbti.Result{
		result("INTJ", base, 1),
		result("INTJ", base, 1),
		result("INTJ", base.Add(time.Second), 1), // same code, different date: kept
		result("ENFP", base, 1),                  // same date, different code: kept
	}
	out := history.Dedupe(in)
	if len(out) != 3 {
		t.Fatalf("deduped to %d, want 3", len(out))
	}
}
