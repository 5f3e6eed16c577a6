// Package http holds the gateway's HTTP handlers. Handlers are thin:
// decode, call the service, map errors to status codes, encode.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mindtype/mindtype/internal/history"
	"github.com/mindtype/mindtype/internal/mbti"
	"github.com/mindtype/mindtype/internal/quiz"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusFor maps service errors to HTTP status codes. Unknown errors
// are a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, quiz.ErrSessionNotFound), errors.Is(err, history.ErrNoResults):
		return http.StatusNotFound
	case errors.Is(err, quiz.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, quiz.ErrAlreadySubmitted):
		return http.StatusConflict
	case errors.Is(err, quiz.ErrIncomplete),
		errors.Is(err, quiz.ErrBadDirection),
		errors.Is(err, mbti.ErrQuestionIndex),
		errors.Is(err, mbti.ErrOptionIndex),
		errors.Is(err, history.ErrBadImport):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeErr(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
