package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindtype/mindtype/internal/mbti"
)

// GET /questions. Options carry no scoring letters.
func ListQuestionsHandler(bank *mbti.Bank) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"total":     bank.Len(),
			"questions": bank.Redacted(),
		})
	}
}

// GET /questions/{index}
func GetQuestionHandler(bank *mbti.Bank) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		i := parseIntDefault(chi.URLParam(r, "index"), -1)
		q, ok := bank.Question(i)
		if !ok {
			http.Error(w, "question index out of range", http.StatusNotFound)
			return
		}
		opts := make([]mbti.Option, len(q.Options))
		for j, o := range q.Options {
			opts[j] = mbti.Option{Text: o.Text}
		}
		stage, _ := bank.Stage(i)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"index":    i,
			"stage":    stage.Name,
			"question": mbti.Question{Text: q.Text, Options: opts},
		})
	}
}
