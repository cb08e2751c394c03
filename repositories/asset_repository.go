package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/userctx"
)

// AssetRepository interface defines asset database operations
type AssetRepository interface {
	GetAll(ctx context.Context, filter models.AssetFilter) ([]models.AssetDetails, error)
	GetByID(ctx context.Context, id string) (*models.AssetDetails, error)
	Create(ctx context.Context, asset *models.Asset) error
	Update(ctx context.Context, asset *models.Asset) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (map[models.AssetStatus]int, error)
}

// assetRepository implements AssetRepository interface
type assetRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *sql.DB) AssetRepository {
	return &assetRepository{db: db, now: time.Now}
}

func selectAssets() sq.SelectBuilder {
	return sq.Select(
		"a.id", "a.asset_tag", "a.name", "a.description", "a.category_id",
		"a.brand", "a.model", "a.serial_number", "a.purchase_date", "a.purchase_cost",
		"a.warranty_expiry", "a.status", "a.location", "a.notes", "a.assigned_to",
		"a.assigned_date", "a.department_id", "a.created_by", "a.created_at", "a.updated_at",
		"c.name", "d.name", "p.first_name", "p.last_name", "p.email",
	).
		From("assets a").
		LeftJoin("asset_categories c ON c.id = a.category_id").
		LeftJoin("departments d ON d.id = a.department_id").
		LeftJoin("profiles p ON p.id = a.assigned_to")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*models.AssetDetails, error) {
	var (
		asset  models.AssetDetails
		status string
	)

	err := row.Scan(
		&asset.ID,
		&asset.AssetTag,
		&asset.Name,
		&asset.Description,
		&asset.CategoryID,
		&asset.Brand,
		&asset.Model,
		&asset.SerialNumber,
		&asset.PurchaseDate,
		&asset.PurchaseCost,
		&asset.WarrantyExpiry,
		&status,
		&asset.Location,
		&asset.Notes,
		&asset.AssignedTo,
		&asset.AssignedDate,
		&asset.DepartmentID,
		&asset.CreatedBy,
		&asset.CreatedAt,
		&asset.UpdatedAt,
		&asset.CategoryName,
		&asset.DepartmentName,
		&asset.AssigneeFirstName,
		&asset.AssigneeLastName,
		&asset.AssigneeEmail,
	)
	if err != nil {
		return nil, err
	}

	asset.Status = models.AssetStatus(status)
	return &asset, nil
}

// GetAll retrieves assets matching filter, newest first
func (r *assetRepository) GetAll(ctx context.Context, filter models.AssetFilter) ([]models.AssetDetails, error) {
	builder := selectAssets().OrderBy("a.created_at DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"a.status": string(filter.Status)})
	}
	if filter.DepartmentID != "" {
		builder = builder.Where(sq.Eq{"a.department_id": filter.DepartmentID})
	}
	if filter.AssignedTo != "" {
		builder = builder.Where(sq.Eq{"a.assigned_to": filter.AssignedTo})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		var matches sq.Or
		for _, column := range []string{"a.name", "a.asset_tag", "a.brand", "a.model", "a.serial_number"} {
			matches = append(matches, sq.Expr(column+` LIKE ? ESCAPE '\'`, pattern))
		}
		builder = builder.Where(matches)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build asset query")
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, models.NewPersistenceError("failed to query assets", err)
	}
	defer rows.Close()

	assets := []models.AssetDetails{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, models.NewPersistenceError("failed to scan asset", err)
		}
		assets = append(assets, *asset)
	}

	if err = rows.Err(); err != nil {
		return nil, models.NewPersistenceError("error iterating assets", err)
	}

	return assets, nil
}

// GetByID retrieves an asset by ID
func (r *assetRepository) GetByID(ctx context.Context, id string) (*models.AssetDetails, error) {
	query, args, err := selectAssets().Where(sq.Eq{"a.id": id}).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build asset query")
	}

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(models.ErrNotFound, "asset with ID %s", id)
	}
	if err != nil {
		return nil, models.NewPersistenceError("failed to get asset", err)
	}

	return asset, nil
}

// Create creates a new asset
func (r *assetRepository) Create(ctx context.Context, asset *models.Asset) error {
	query := `
		INSERT INTO assets (id, asset_tag, name, description, category_id, brand, model, serial_number,
		                    purchase_date, purchase_cost, warranty_expiry, status, location, notes,
		                    assigned_to, assigned_date, department_id, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}
	if asset.Status == "" {
		asset.Status = models.StatusAvailable
	}

	now := r.now().UTC()
	asset.CreatedAt = now
	asset.UpdatedAt = now
	if userID := userctx.GetUserID(ctx); userID != "" && !asset.CreatedBy.Valid {
		asset.CreatedBy.SetValid(userID)
	}

	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.AssetTag,
		asset.Name,
		asset.Description,
		asset.CategoryID,
		asset.Brand,
		asset.Model,
		asset.SerialNumber,
		asset.PurchaseDate,
		asset.PurchaseCost,
		asset.WarrantyExpiry,
		string(asset.Status),
		asset.Location,
		asset.Notes,
		asset.AssignedTo,
		asset.AssignedDate,
		asset.DepartmentID,
		asset.CreatedBy,
		asset.CreatedAt,
		asset.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return errors.Wrapf(models.ErrConflict, "asset tag %s already exists", asset.AssetTag)
	}
	if err != nil {
		return models.NewPersistenceError("failed to create asset", err)
	}

	return nil
}

// Update updates an existing asset
func (r *assetRepository) Update(ctx context.Context, asset *models.Asset) error {
	query := `
		UPDATE assets
		SET asset_tag = ?, name = ?, description = ?, category_id = ?, brand = ?, model = ?,
		    serial_number = ?, purchase_date = ?, purchase_cost = ?, warranty_expiry = ?,
		    status = ?, location = ?, notes = ?, assigned_to = ?, assigned_date = ?,
		    department_id = ?, updated_at = ?
		WHERE id = ?
	`

	now := r.now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		asset.AssetTag,
		asset.Name,
		asset.Description,
		asset.CategoryID,
		asset.Brand,
		asset.Model,
		asset.SerialNumber,
		asset.PurchaseDate,
		asset.PurchaseCost,
		asset.WarrantyExpiry,
		string(asset.Status),
		asset.Location,
		asset.Notes,
		asset.AssignedTo,
		asset.AssignedDate,
		asset.DepartmentID,
		now,
		asset.ID,
	)
	if isUniqueViolation(err) {
		return errors.Wrapf(models.ErrConflict, "asset tag %s already exists", asset.AssetTag)
	}
	if err != nil {
		return models.NewPersistenceError("failed to update asset", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.NewPersistenceError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return errors.Wrapf(models.ErrNotFound, "asset with ID %s", asset.ID)
	}

	asset.UpdatedAt = now
	return nil
}

// Delete deletes an asset by ID
func (r *assetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
	if err != nil {
		return models.NewPersistenceError("failed to delete asset", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.NewPersistenceError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return errors.Wrapf(models.ErrNotFound, "asset with ID %s", id)
	}

	return nil
}

// Count returns the total number of assets
func (r *assetRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets`).Scan(&count); err != nil {
		return 0, models.NewPersistenceError("failed to count assets", err)
	}
	return count, nil
}

// CountByStatus returns the number of assets per status
func (r *assetRepository) CountByStatus(ctx context.Context) (map[models.AssetStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM assets GROUP BY status`)
	if err != nil {
		return nil, models.NewPersistenceError("failed to count assets by status", err)
	}
	defer rows.Close()

	counts := make(map[models.AssetStatus]int, len(models.AllAssetStatuses()))
	for _, status := range models.AllAssetStatuses() {
		counts[status] = 0
	}

	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, models.NewPersistenceError("failed to scan asset count", err)
		}
		counts[models.AssetStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewPersistenceError("error iterating asset counts", err)
	}

	return counts, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
