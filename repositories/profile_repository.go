package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/blogem/asset-tracker/models"
)

// ProfileRepository interface defines employee profile database operations
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetAll(ctx context.Context) ([]models.ProfileDetails, error)
	GetDetailsByID(ctx context.Context, id string) (*models.ProfileDetails, error)
	Upsert(ctx context.Context, profile *models.Profile) error
	UpdateRole(ctx context.Context, id string, role models.Role) error
}

// profileRepository implements ProfileRepository interface
type profileRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db, now: time.Now}
}

// GetByID retrieves a profile by its identity provider subject
func (r *profileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `
		SELECT id, email, first_name, last_name, role, department_id, created_at, updated_at
		FROM profiles
		WHERE id = ?
	`

	var (
		profile models.Profile
		role    string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.Email,
		&profile.FirstName,
		&profile.LastName,
		&role,
		&profile.DepartmentID,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(models.ErrNotFound, "profile with ID %s", id)
	}
	if err != nil {
		return nil, models.NewPersistenceError("failed to get profile", err)
	}

	profile.Role = models.Role(role)
	return &profile, nil
}

const selectProfileDetails = `
	SELECT p.id, p.email, p.first_name, p.last_name, p.role, p.department_id, p.created_at, p.updated_at,
	       d.name, (SELECT COUNT(*) FROM assets a WHERE a.assigned_to = p.id)
	FROM profiles p
	LEFT JOIN departments d ON d.id = p.department_id
`

func scanProfileDetails(row rowScanner) (*models.ProfileDetails, error) {
	var (
		profile models.ProfileDetails
		role    string
	)
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.FirstName,
		&profile.LastName,
		&role,
		&profile.DepartmentID,
		&profile.CreatedAt,
		&profile.UpdatedAt,
		&profile.DepartmentName,
		&profile.AssignedAssetsCount,
	)
	if err != nil {
		return nil, err
	}
	profile.Role = models.Role(role)
	return &profile, nil
}

// GetAll retrieves all profiles with department name and assigned asset count
func (r *profileRepository) GetAll(ctx context.Context) ([]models.ProfileDetails, error) {
	rows, err := r.db.QueryContext(ctx, selectProfileDetails+` ORDER BY p.last_name, p.first_name, p.email`)
	if err != nil {
		return nil, models.NewPersistenceError("failed to query profiles", err)
	}
	defer rows.Close()

	profiles := []models.ProfileDetails{}
	for rows.Next() {
		profile, err := scanProfileDetails(rows)
		if err != nil {
			return nil, models.NewPersistenceError("failed to scan profile", err)
		}
		profiles = append(profiles, *profile)
	}

	if err = rows.Err(); err != nil {
		return nil, models.NewPersistenceError("error iterating profiles", err)
	}

	return profiles, nil
}

// GetDetailsByID retrieves one profile with department name and assigned asset count
func (r *profileRepository) GetDetailsByID(ctx context.Context, id string) (*models.ProfileDetails, error) {
	profile, err := scanProfileDetails(r.db.QueryRowContext(ctx, selectProfileDetails+` WHERE p.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(models.ErrNotFound, "profile with ID %s", id)
	}
	if err != nil {
		return nil, models.NewPersistenceError("failed to get profile", err)
	}
	return profile, nil
}

// Upsert inserts a profile or refreshes its email and name. Role and
// department of an existing profile are left untouched.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (id, email, first_name, last_name, role, department_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			updated_at = excluded.updated_at
	`

	if profile.Role == "" {
		profile.Role = models.RoleViewer
	}
	if !profile.Role.IsValid() {
		return models.ValidationError{Field: "role", Message: "unknown role " + string(profile.Role)}
	}

	now := r.now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		profile.ID,
		profile.Email,
		profile.FirstName,
		profile.LastName,
		string(profile.Role),
		profile.DepartmentID,
		now,
		now,
	)
	if isUniqueViolation(err) {
		return errors.Wrapf(models.ErrConflict, "email %s already belongs to another profile", profile.Email)
	}
	if err != nil {
		return models.NewPersistenceError("failed to upsert profile", err)
	}

	stored, err := r.GetByID(ctx, profile.ID)
	if err != nil {
		return err
	}
	*profile = *stored
	return nil
}

// UpdateRole changes a profile's role
func (r *profileRepository) UpdateRole(ctx context.Context, id string, role models.Role) error {
	if !role.IsValid() {
		return models.ValidationError{Field: "role", Message: "unknown role " + string(role)}
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), r.now().UTC(), id,
	)
	if err != nil {
		return models.NewPersistenceError("failed to update profile role", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.NewPersistenceError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return errors.Wrapf(models.ErrNotFound, "profile with ID %s", id)
	}

	return nil
}
