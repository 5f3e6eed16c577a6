package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/mindtype/mindtype/internal/history"
	"github.com/mindtype/mindtype/internal/storage"
)

// POST /admin/export  { "user_id": "..." }
// Writes the user's archive to the blob store and returns where it landed.
func SnapshotHandler(store history.Store, bs storage.BlobStore, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID string `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
			http.Error(w, "user_id required", http.StatusBadRequest)
			return
		}
		list, err := store.List(r.Context(), req.UserID)
		if err != nil {
			writeErr(w, err)
			return
		}
		buf, err := json.Marshal(history.NewExport(list, now()))
		if err != nil {
			writeErr(w, err)
			return
		}
		key := storage.ExportKey(req.UserID, now())
		if _, err := bs.Put(key, bytes.NewReader(buf)); err != nil {
			writeErr(w, err)
			return
		}
		url, _ := bs.SignedURL(key)
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"key":     key,
			"url":     url,
			"results": len(list),
		})
	}
}
