package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/mindtype/mindtype/internal/auth/middleware"
	"github.com/mindtype/mindtype/internal/quiz"
)

// POST /sessions
func CreateSessionHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		sess, err := svc.Start(r.Context(), sub)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sess)
	}
}

// GET /sessions/{sessionID}
func GetSessionHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		v, err := svc.Get(r.Context(), chi.URLParam(r, "sessionID"), sub)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /sessions/{sessionID}/answers  { "question": 0, "option": 1 }
func RecordAnswerHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Question int `json:"question"`
			Option   int `json:"option"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		sub := authmw.SubjectFromContext(r.Context())
		v, err := svc.RecordAnswer(r.Context(), chi.URLParam(r, "sessionID"), sub, req.Question, req.Option)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /sessions/{sessionID}/navigate  { "direction": "next" | "prev" }
func NavigateHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Direction string `json:"direction"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		sub := authmw.SubjectFromContext(r.Context())
		v, err := svc.Navigate(r.Context(), chi.URLParam(r, "sessionID"), sub, req.Direction)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

// POST /sessions/{sessionID}/submit
func SubmitSessionHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		res, err := svc.Submit(r.Context(), chi.URLParam(r, "sessionID"), sub)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
