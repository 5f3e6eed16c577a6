package auth

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	authmw "github.com/mindtype/mindtype/internal/auth/middleware"
	"github.com/mindtype/mindtype/internal/config"
)

const guestCookie = "mt_guest_id"

// GuestLoginHandler mints a taker token for an anonymous visitor. The
// guest identity is remembered in a cookie so a returning browser keeps
// its result history.
func GuestLoginHandler(a *authmw.AuthService, cfg config.Config) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
		UserID      string `json:"user_id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !cfg.EnableGuestAuth {
			http.Error(w, "guest auth disabled", http.StatusForbidden)
			return
		}

		// Reuse the existing guest identity if the browser still has it.
		userID := ""
		if c, err := r.Cookie(guestCookie); err == nil && strings.HasPrefix(c.Value, "guest|") {
			userID = c.Value
		}
		if userID == "" {
			userID = "guest|" + strconv.FormatInt(time.Now().UnixNano(), 36)
		}

		tok, err := a.IssueJWT(userID, "taker")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     guestCookie,
			Value:    userID,
			Path:     "/",
			HttpOnly: true,
			Secure:   cfg.Mode == config.ModeOnline,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
		})
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok, UserID: userID})
	}
}
