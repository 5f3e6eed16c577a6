package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	authmw "github.com/mindtype/mindtype/internal/auth/middleware"
	"github.com/mindtype/mindtype/internal/eventlog"
	"github.com/mindtype/mindtype/internal/history"
	"github.com/mindtype/mindtype/internal/mbti"
	"github.com/mindtype/mindtype/internal/rbac"
)

// rehydrate refreshes each result's catalog record by code. Codes the
// catalog no longer knows get a placeholder.
func rehydrate(catalog *mbti.Catalog, results []mbti.Result) []mbti.Result {
	for i, r := range results {
		rec, ok := catalog.Lookup(r.TypeCode)
		if !ok {
			rec = mbti.Placeholder(r.TypeCode)
		}
		results[i].Record = rec
	}
	return results
}

// GET /results
func ListResultsHandler(store history.Store, catalog *mbti.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		list, err := store.List(r.Context(), sub)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"total":   len(list),
			"results": rehydrate(catalog, list),
		})
	}
}

// GET /results/recent. 204 when the newest result is older than the
// welcome-back window or there are none.
func RecentResultHandler(store history.Store, catalog *mbti.Catalog, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		latest, err := store.Latest(r.Context(), sub)
		if errors.Is(err, history.ErrNoResults) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err != nil {
			writeErr(w, err)
			return
		}
		sum, ok := history.Recent(latest, now())
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		rec, ok := catalog.Lookup(sum.TypeCode)
		if !ok {
			rec = mbti.Placeholder(sum.TypeCode)
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"summary": sum,
			"type":    rec,
		})
	}
}

// GET /results/stats
func ResultStatsHandler(store history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		list, err := store.List(r.Context(), sub)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, history.Compute(list))
	}
}

// GET /results/export
func ExportResultsHandler(store history.Store, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		list, err := store.List(r.Context(), sub)
		if err != nil {
			writeErr(w, err)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="mindtype-results.json"`)
		writeJSON(w, http.StatusOK, history.NewExport(list, now()))
	}
}

// POST /results/import
func ImportResultsHandler(store history.Store, events *eventlog.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			http.Error(w, "read body", http.StatusBadRequest)
			return
		}
		results, err := history.ParseImport(body)
		if err != nil {
			writeErr(w, history.ErrBadImport)
			return
		}
		sub := authmw.SubjectFromContext(r.Context())
		added, err := store.Import(r.Context(), sub, results)
		if err != nil {
			writeErr(w, err)
			return
		}
		if events != nil {
			_ = events.Append(r.Context(), eventlog.TypeResultsImported, sub, map[string]string{
				"imported": strconv.Itoa(added),
			})
		}
		writeJSON(w, http.StatusOK, map[string]int{"imported": added})
	}
}

// DELETE /results?user_id=... Admins may purge any archive; takers only
// their own.
func PurgeResultsHandler(store history.Store, events *eventlog.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		target := strings.TrimSpace(r.URL.Query().Get("user_id"))
		if target == "" {
			target = sub
		}
		if target != sub && rbac.RoleFromContext(r.Context()) != "admin" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		if err := store.Purge(r.Context(), target); err != nil {
			writeErr(w, err)
			return
		}
		if events != nil {
			_ = events.Append(r.Context(), eventlog.TypeResultsPurged, target, nil)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
