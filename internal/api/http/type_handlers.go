package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mindtype/mindtype/internal/mbti"
)

// GET /types
func ListTypesHandler(catalog *mbti.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.Records())
	}
}

// GET /types/{code}. Unknown codes get a placeholder record rather
// than an error so clients always have something to render.
func GetTypeHandler(catalog *mbti.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(chi.URLParam(r, "code"))
		rec, ok := catalog.Lookup(code)
		if !ok {
			rec = mbti.Placeholder(code)
		}
		writeJSON(w, http.StatusOK, rec)
	}
}
