package services

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/repositories"
	"github.com/blogem/asset-tracker/userctx"
)

// OrganizationService manages the department and asset category lookups
type OrganizationService interface {
	ListDepartments(ctx context.Context) ([]models.DepartmentDetails, error)
	GetDepartment(ctx context.Context, id string) (*models.DepartmentDetails, error)
	CreateDepartment(ctx context.Context, form *models.LookupForm) (*models.Department, error)
	UpdateDepartment(ctx context.Context, id string, form *models.LookupForm) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]models.CategoryDetails, error)
	CreateCategory(ctx context.Context, form *models.LookupForm) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, form *models.LookupForm) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type organizationService struct {
	departmentRepo repositories.DepartmentRepository
	categoryRepo   repositories.CategoryRepository
	logger         *slog.Logger
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(departmentRepo repositories.DepartmentRepository, categoryRepo repositories.CategoryRepository, logger *slog.Logger) OrganizationService {
	return &organizationService{
		departmentRepo: departmentRepo,
		categoryRepo:   categoryRepo,
		logger:         logger,
	}
}

func requireAdmin(ctx context.Context, what string) error {
	if !userctx.GetRole(ctx).CanManageUsers() {
		return errors.Wrapf(models.ErrForbidden, "%s requires the admin role", what)
	}
	return nil
}

func (s *organizationService) ListDepartments(ctx context.Context) ([]models.DepartmentDetails, error) {
	return s.departmentRepo.GetAllDetails(ctx)
}

func (s *organizationService) GetDepartment(ctx context.Context, id string) (*models.DepartmentDetails, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *organizationService) CreateDepartment(ctx context.Context, form *models.LookupForm) (*models.Department, error) {
	if err := requireAdmin(ctx, "managing departments"); err != nil {
		return nil, err
	}
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	department := &models.Department{}
	form.ApplyToDepartment(department)
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logChange(ctx, "department created", "department_id", department.ID, "name", department.Name)
	return department, nil
}

func (s *organizationService) UpdateDepartment(ctx context.Context, id string, form *models.LookupForm) (*models.Department, error) {
	if err := requireAdmin(ctx, "managing departments"); err != nil {
		return nil, err
	}
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	current, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	department := current.Department
	form.ApplyToDepartment(&department)
	if err := s.departmentRepo.Update(ctx, &department); err != nil {
		return nil, err
	}

	s.logChange(ctx, "department updated", "department_id", department.ID, "name", department.Name)
	return &department, nil
}

// DeleteDepartment fails with ErrConflict while employees or assets still reference it
func (s *organizationService) DeleteDepartment(ctx context.Context, id string) error {
	if err := requireAdmin(ctx, "managing departments"); err != nil {
		return err
	}
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logChange(ctx, "department deleted", "department_id", id)
	return nil
}

func (s *organizationService) ListCategories(ctx context.Context) ([]models.CategoryDetails, error) {
	return s.categoryRepo.GetAllDetails(ctx)
}

func (s *organizationService) CreateCategory(ctx context.Context, form *models.LookupForm) (*models.Category, error) {
	if err := requireAdmin(ctx, "managing categories"); err != nil {
		return nil, err
	}
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	category := &models.Category{}
	form.ApplyToCategory(category)
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logChange(ctx, "category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *organizationService) UpdateCategory(ctx context.Context, id string, form *models.LookupForm) (*models.Category, error) {
	if err := requireAdmin(ctx, "managing categories"); err != nil {
		return nil, err
	}
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	current, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category := current.Category
	form.ApplyToCategory(&category)
	if err := s.categoryRepo.Update(ctx, &category); err != nil {
		return nil, err
	}

	s.logChange(ctx, "category updated", "category_id", category.ID, "name", category.Name)
	return &category, nil
}

// DeleteCategory fails with ErrConflict while assets are still filed under it
func (s *organizationService) DeleteCategory(ctx context.Context, id string) error {
	if err := requireAdmin(ctx, "managing categories"); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logChange(ctx, "category deleted", "category_id", id)
	return nil
}

func (s *organizationService) logChange(ctx context.Context, msg string, args ...any) {
	args = append(args, "actor_id", userctx.GetUserID(ctx))
	userctx.Logger(ctx, s.logger).InfoContext(ctx, msg, args...)
}
