package userctx

import (
	"context"
	"log/slog"

	"github.com/blogem/asset-tracker/models"
)

// Context key type
type contextKey string

const userEmailKey contextKey = "user_email"
const UserIDKey contextKey = "user_id"
const profileKey contextKey = "profile"
const loggerKey contextKey = "logger"

// SetUserEmail adds user email to request context
func SetUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// GetUserEmail retrieves user email from request context
func GetUserEmail(ctx context.Context) string {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok {
		return "anonymous"
	}
	return email
}

// SetUserID adds user ID to request context
func SetUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// GetUserID retrieves user ID from request context
func GetUserID(ctx context.Context) string {
	if userID := ctx.Value(UserIDKey); userID != nil {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

// SetProfile stores the signed-in profile along with its ID and email
func SetProfile(ctx context.Context, profile *models.Profile) context.Context {
	ctx = context.WithValue(ctx, profileKey, profile)
	ctx = SetUserID(ctx, profile.ID)
	return SetUserEmail(ctx, profile.Email)
}

// GetProfile returns the signed-in profile, or nil
func GetProfile(ctx context.Context) *models.Profile {
	profile, _ := ctx.Value(profileKey).(*models.Profile)
	return profile
}

// GetRole returns the signed-in user's role, or "" when anonymous
func GetRole(ctx context.Context) models.Role {
	if profile := GetProfile(ctx); profile != nil {
		return profile.Role
	}
	return ""
}

// WithLogger attaches a request scoped logger
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger returns the request scoped logger, falling back to fallback
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}
