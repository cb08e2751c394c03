package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/cockroachdb/errors"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/userctx"
)

// Session keys shared with the auth controller
const (
	SessionUserIDKey       = "user_id"
	SessionRedirectKey     = "redirect_after_login"
	SessionFlashSuccessKey = "flash_success"
	SessionFlashWarningKey = "flash_warning"
)

// ProfileLoader resolves a profile by its identity provider subject
type ProfileLoader interface {
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
}

// LoadUser puts the signed-in profile on the request context when the session has one.
// A session pointing at a missing profile is cleared.
func LoadUser(profiles ProfileLoader, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.GetSession(r)
			userID, _ := sess.Get(SessionUserIDKey).(string)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			profile, err := profiles.GetProfile(r.Context(), userID)
			switch {
			case errors.Is(err, models.ErrNotFound):
				sess.Delete(SessionUserIDKey)
				next.ServeHTTP(w, r)
				return
			case err != nil:
				logger.ErrorContext(r.Context(), "failed to load session profile", "user_id", userID, "error", err)
				http.Error(w, "Failed to load your profile", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(userctx.SetProfile(r.Context(), profile)))
		})
	}
}

// RequireAuth ensures the user is authenticated
// If not authenticated, redirects to /login and stores the intended destination
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userctx.GetProfile(r.Context()) == nil {
			sess := session.GetSession(r)
			sess.Set(SessionRedirectKey, r.URL.RequestURI())
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireRole lets through only signed-in users holding one of roles
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			profile := userctx.GetProfile(r.Context())
			if profile == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			if !profile.Role.In(roles...) {
				http.Error(w, "access denied", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
