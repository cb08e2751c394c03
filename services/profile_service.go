package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/blogem/asset-tracker/authenticator"
	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/repositories"
	"github.com/blogem/asset-tracker/userctx"
)

// ProfileService interface defines employee profile business logic
type ProfileService interface {
	SyncFromClaims(ctx context.Context, claims authenticator.Claims) (*models.Profile, error)
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.ProfileDetails, error)
	GetEmployee(ctx context.Context, id string) (*models.ProfileDetails, error)
	ChangeRole(ctx context.Context, id string, role models.Role) error
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	adminEmails map[string]struct{}
	logger      *slog.Logger
}

// NewProfileService creates a profile service. Emails in adminEmails become
// admins the first time they sign in.
func NewProfileService(profileRepo repositories.ProfileRepository, adminEmails []string, logger *slog.Logger) ProfileService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		if email = normalizeEmail(email); email != "" {
			admins[email] = struct{}{}
		}
	}

	return &profileService{
		profileRepo: profileRepo,
		adminEmails: admins,
		logger:      logger,
	}
}

// SyncFromClaims creates or refreshes the profile for a signed-in identity
func (s *profileService) SyncFromClaims(ctx context.Context, claims authenticator.Claims) (*models.Profile, error) {
	subject := claimString(claims, "sub")
	if subject == "" {
		return nil, models.ValidationError{Field: "sub", Message: "identity token has no subject"}
	}

	email := normalizeEmail(claimString(claims, "email"))
	if email == "" {
		return nil, models.ValidationError{Field: "email", Message: "identity token has no email"}
	}

	firstName := claimString(claims, "given_name")
	lastName := claimString(claims, "family_name")
	if firstName == "" && lastName == "" {
		firstName, lastName = splitName(claimString(claims, "name"))
	}

	profile := &models.Profile{
		ID:        subject,
		Email:     email,
		FirstName: optional(firstName),
		LastName:  optional(lastName),
		Role:      models.RoleViewer,
	}

	_, err := s.profileRepo.GetByID(ctx, subject)
	switch {
	case errors.Is(err, models.ErrNotFound):
		if _, ok := s.adminEmails[email]; ok {
			profile.Role = models.RoleAdmin
		}
		s.logger.InfoContext(ctx, "new profile", "profile_id", subject, "email", email, "role", profile.Role)
	case err != nil:
		return nil, errors.Wrap(err, "failed to look up profile")
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	return profile, nil
}

// GetProfile retrieves a profile by ID
func (s *profileService) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

// ListProfiles retrieves every employee
func (s *profileService) ListProfiles(ctx context.Context) ([]models.ProfileDetails, error) {
	return s.profileRepo.GetAll(ctx)
}

// GetEmployee retrieves one employee with department and asset count
func (s *profileService) GetEmployee(ctx context.Context, id string) (*models.ProfileDetails, error) {
	return s.profileRepo.GetDetailsByID(ctx, id)
}

// ChangeRole sets the role of another employee
func (s *profileService) ChangeRole(ctx context.Context, id string, role models.Role) error {
	if !userctx.GetRole(ctx).CanManageUsers() {
		return errors.Wrap(models.ErrForbidden, "changing roles requires the admin role")
	}

	if !role.IsValid() {
		return models.ValidationError{Field: "role", Message: "Unknown role " + string(role)}
	}

	if id == userctx.GetUserID(ctx) {
		return models.ValidationError{Field: "role", Message: "You cannot change your own role"}
	}

	if err := s.profileRepo.UpdateRole(ctx, id, role); err != nil {
		return errors.Wrap(err, "failed to change role")
	}

	userctx.Logger(ctx, s.logger).InfoContext(ctx, "role changed",
		"profile_id", id,
		"role", role,
		"actor_id", userctx.GetUserID(ctx),
	)

	return nil
}

func claimString(claims authenticator.Claims, key string) string {
	return strings.TrimSpace(claims.String(key))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func splitName(name string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")
	return first, strings.TrimSpace(last)
}
