package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"gitea.com/go-chi/session"

	"github.com/blogem/asset-tracker/authenticator"
	"github.com/blogem/asset-tracker/middleware"
	"github.com/blogem/asset-tracker/services"
)

const sessionStateKey = "state"

// AuthController handles the OpenID Connect login flow
type AuthController struct {
	auth     authenticator.Provider
	services *services.Services
	logger   *slog.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(auth authenticator.Provider, services *services.Services, logger *slog.Logger) *AuthController {
	return &AuthController{
		auth:     auth,
		services: services,
		logger:   logger,
	}
}

// Login handles GET /login
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	state, err := authenticator.GenerateState()
	if err != nil {
		http.Error(w, "Failed to start login", http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	session.GetSession(r).Set(sessionStateKey, state)

	http.Redirect(w, r, ac.auth.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles GET /callback from the identity provider
func (ac *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	storedState, _ := sess.Get(sessionStateKey).(string)
	if storedState == "" {
		http.Error(w, "State not found in session", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != storedState {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}
	sess.Delete(sessionStateKey)

	token, err := ac.auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		ac.logger.WarnContext(r.Context(), "code exchange failed", "error", err)
		http.Error(w, "Failed to exchange authorization code for a token", http.StatusUnauthorized)
		return
	}

	claims, err := ac.auth.GetClaims(r.Context(), token)
	if err != nil {
		ac.logger.WarnContext(r.Context(), "id token rejected", "error", err)
		http.Error(w, "Failed to verify ID Token", http.StatusUnauthorized)
		return
	}

	profile, err := ac.services.Profiles.SyncFromClaims(r.Context(), claims)
	if err != nil {
		renderError(w, r, ac.logger, err)
		return
	}

	sess.Set(middleware.SessionUserIDKey, profile.ID)
	ac.logger.InfoContext(r.Context(), "user signed in", "user_id", profile.ID, "role", profile.Role)

	redirect := "/"
	if target, ok := sess.Get(middleware.SessionRedirectKey).(string); ok && isLocalPath(target) {
		redirect = target
	}
	sess.Delete(middleware.SessionRedirectKey)

	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// Logout handles GET /logout
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete(middleware.SessionUserIDKey)
	sess.Delete(middleware.SessionRedirectKey)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func isLocalPath(target string) bool {
	return strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//")
}
