package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/blogem/asset-tracker/models"
)

// DepartmentRepository defines department database operations
type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]models.Department, error)
	GetAllDetails(ctx context.Context) ([]models.DepartmentDetails, error)
	GetByID(ctx context.Context, id string) (*models.DepartmentDetails, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines asset category database operations
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetAllDetails(ctx context.Context) ([]models.CategoryDetails, error)
	GetByID(ctx context.Context, id string) (*models.CategoryDetails, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

type departmentRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *sql.DB) DepartmentRepository {
	return &departmentRepository{db: db, now: time.Now}
}

const selectDepartmentDetails = `
	SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
	       (SELECT COUNT(*) FROM profiles p WHERE p.department_id = d.id),
	       (SELECT COUNT(*) FROM assets a WHERE a.department_id = d.id)
	FROM departments d
`

func scanDepartmentDetails(row rowScanner) (*models.DepartmentDetails, error) {
	var department models.DepartmentDetails
	err := row.Scan(
		&department.ID,
		&department.Name,
		&department.Description,
		&department.CreatedAt,
		&department.UpdatedAt,
		&department.EmployeeCount,
		&department.AssetCount,
	)
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// GetAll retrieves all departments ordered by name
func (r *departmentRepository) GetAll(ctx context.Context) ([]models.Department, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, created_at, updated_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, models.NewPersistenceError("failed to query departments", err)
	}
	defer rows.Close()

	departments := []models.Department{}
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name, &department.Description, &department.CreatedAt, &department.UpdatedAt); err != nil {
			return nil, models.NewPersistenceError("failed to scan department", err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewPersistenceError("error iterating departments", err)
	}

	return departments, nil
}

// GetAllDetails retrieves all departments with employee and asset counts
func (r *departmentRepository) GetAllDetails(ctx context.Context) ([]models.DepartmentDetails, error) {
	rows, err := r.db.QueryContext(ctx, selectDepartmentDetails+` ORDER BY d.name`)
	if err != nil {
		return nil, models.NewPersistenceError("failed to query departments", err)
	}
	defer rows.Close()

	departments := []models.DepartmentDetails{}
	for rows.Next() {
		department, err := scanDepartmentDetails(rows)
		if err != nil {
			return nil, models.NewPersistenceError("failed to scan department", err)
		}
		departments = append(departments, *department)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewPersistenceError("error iterating departments", err)
	}

	return departments, nil
}

// GetByID retrieves a department with its counts
func (r *departmentRepository) GetByID(ctx context.Context, id string) (*models.DepartmentDetails, error) {
	department, err := scanDepartmentDetails(r.db.QueryRowContext(ctx, selectDepartmentDetails+` WHERE d.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(models.ErrNotFound, "department with ID %s", id)
	}
	if err != nil {
		return nil, models.NewPersistenceError("failed to get department", err)
	}
	return department, nil
}

// Create inserts a department, assigning its ID and timestamps
func (r *departmentRepository) Create(ctx context.Context, department *models.Department) error {
	if department.ID == "" {
		department.ID = uuid.NewString()
	}
	now := r.now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO departments (id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		department.ID, department.Name, department.Description, now, now,
	)
	if isUniqueViolation(err) {
		return errors.Wrapf(models.ErrConflict, "department %s already exists", department.Name)
	}
	if err != nil {
		return models.NewPersistenceError("failed to create department", err)
	}

	department.CreatedAt = now
	department.UpdatedAt = now
	return nil
}

// Update changes a department's name and description
func (r *departmentRepository) Update(ctx context.Context, department *models.Department) error {
	now := r.now().UTC()

	result, err := r.db.ExecContext(ctx,
		`UPDATE departments SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		department.Name, department.Description, now, department.ID,
	)
	if isUniqueViolation(err) {
		return errors.Wrapf(models.ErrConflict, "department %s already exists", department.Name)
	}
	if err != nil {
		return models.NewPersistenceError("failed to update department", err)
	}

	if err := requireRowAffected(result, "department", department.ID); err != nil {
		return err
	}

	department.UpdatedAt = now
	return nil
}

// Delete removes a department that no employee or asset references
func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM departments
		WHERE id = ?
		  AND NOT EXISTS (SELECT 1 FROM profiles WHERE department_id = ?)
		  AND NOT EXISTS (SELECT 1 FROM assets WHERE department_id = ?)
	`, id, id, id)
	if err != nil {
		return models.NewPersistenceError("failed to delete department", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.NewPersistenceError("failed to get rows affected", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return errors.Wrapf(models.ErrConflict, "department %s is still assigned to employees or assets", id)
}

type categoryRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db, now: time.Now}
}

const selectCategoryDetails = `
	SELECT c.id, c.name, c.description, c.created_at,
	       (SELECT COUNT(*) FROM assets a WHERE a.category_id = c.id)
	FROM asset_categories c
`

func scanCategoryDetails(row rowScanner) (*models.CategoryDetails, error) {
	var category models.CategoryDetails
	if err := row.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt, &category.AssetCount); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetAll retrieves all asset categories ordered by name
func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, created_at FROM asset_categories ORDER BY name`)
	if err != nil {
		return nil, models.NewPersistenceError("failed to query categories", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
			return nil, models.NewPersistenceError("failed to scan category", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewPersistenceError("error iterating categories", err)
	}

	return categories, nil
}

// GetAllDetails retrieves all categories with their asset counts
func (r *categoryRepository) GetAllDetails(ctx context.Context) ([]models.CategoryDetails, error) {
	rows, err := r.db.QueryContext(ctx, selectCategoryDetails+` ORDER BY c.name`)
	if err != nil {
		return nil, models.NewPersistenceError("failed to query categories", err)
	}
	defer rows.Close()

	categories := []models.CategoryDetails{}
	for rows.Next() {
		category, err := scanCategoryDetails(rows)
		if err != nil {
			return nil, models.NewPersistenceError("failed to scan category", err)
		}
		categories = append(categories, *category)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewPersistenceError("error iterating categories", err)
	}

	return categories, nil
}

// GetByID retrieves a category with its asset count
func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.CategoryDetails, error) {
	category, err := scanCategoryDetails(r.db.QueryRowContext(ctx, selectCategoryDetails+` WHERE c.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(models.ErrNotFound, "category with ID %s", id)
	}
	if err != nil {
		return nil, models.NewPersistenceError("failed to get category", err)
	}
	return category, nil
}

// Create inserts a category, assigning its ID when unset
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	now := r.now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO asset_categories (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		category.ID, category.Name, category.Description, now,
	)
	if isUniqueViolation(err) {
		return errors.Wrapf(models.ErrConflict, "category %s already exists", category.Name)
	}
	if err != nil {
		return models.NewPersistenceError("failed to create category", err)
	}

	category.CreatedAt = now
	return nil
}

// Update changes a category's name and description
func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE asset_categories SET name = ?, description = ? WHERE id = ?`,
		category.Name, category.Description, category.ID,
	)
	if isUniqueViolation(err) {
		return errors.Wrapf(models.ErrConflict, "category %s already exists", category.Name)
	}
	if err != nil {
		return models.NewPersistenceError("failed to update category", err)
	}

	return requireRowAffected(result, "category", category.ID)
}

// Delete removes a category no asset is filed under
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM asset_categories
		WHERE id = ?
		  AND NOT EXISTS (SELECT 1 FROM assets WHERE category_id = ?)
	`, id, id)
	if err != nil {
		return models.NewPersistenceError("failed to delete category", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.NewPersistenceError("failed to get rows affected", err)
	}
	if rowsAffected > 0 {
		return nil
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return errors.Wrapf(models.ErrConflict, "category %s is still used by assets", id)
}

func requireRowAffected(result sql.Result, entity, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.NewPersistenceError("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.ErrNotFound, "%s with ID %s", entity, id)
	}
	return nil
}
