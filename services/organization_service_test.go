package services

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/repositories/mocks"
	"github.com/blogem/asset-tracker/userctx"
)

func newTestOrganizationService(t *testing.T) (OrganizationService, *mocks.MockDepartmentRepository, *mocks.MockCategoryRepository) {
	departmentRepo := mocks.NewMockDepartmentRepository(t)
	categoryRepo := mocks.NewMockCategoryRepository(t)
	return NewOrganizationService(departmentRepo, categoryRepo, discardLogger()), departmentRepo, categoryRepo
}

func adminContext() context.Context {
	return userctx.SetProfile(context.Background(), &models.Profile{ID: "admin-1", Role: models.RoleAdmin})
}

func TestOrganizationService_CreateDepartment(t *testing.T) {
	service, departmentRepo, _ := newTestOrganizationService(t)

	departmentRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, department *models.Department) { department.ID = "d-1" }).
		Return(nil).Once()

	department, err := service.CreateDepartment(adminContext(), &models.LookupForm{Name: "  Finance ", Description: " "})

	require.NoError(t, err)
	assert.Equal(t, "d-1", department.ID)
	assert.Equal(t, "Finance", department.Name)
	assert.False(t, department.Description.Valid)
}

func TestOrganizationService_RequiresAdmin(t *testing.T) {
	service, _, _ := newTestOrganizationService(t)
	form := &models.LookupForm{Name: "Finance"}

	for _, ctx := range []context.Context{staffContext(), context.Background()} {
		_, err := service.CreateDepartment(ctx, form)
		assert.ErrorIs(t, err, models.ErrForbidden)
		_, err = service.UpdateDepartment(ctx, "d-1", form)
		assert.ErrorIs(t, err, models.ErrForbidden)
		assert.ErrorIs(t, service.DeleteDepartment(ctx, "d-1"), models.ErrForbidden)
		_, err = service.CreateCategory(ctx, form)
		assert.ErrorIs(t, err, models.ErrForbidden)
		_, err = service.UpdateCategory(ctx, "c-1", form)
		assert.ErrorIs(t, err, models.ErrForbidden)
		assert.ErrorIs(t, service.DeleteCategory(ctx, "c-1"), models.ErrForbidden)
	}
}

func TestOrganizationService_ValidatesForm(t *testing.T) {
	service, _, _ := newTestOrganizationService(t)

	_, err := service.CreateDepartment(adminContext(), &models.LookupForm{Name: "   "})
	assert.True(t, models.IsValidationError(err))

	_, err = service.CreateCategory(adminContext(), &models.LookupForm{Name: "Tablet", Description: string(make([]byte, 501))})
	assert.True(t, models.IsValidationError(err))
}

func TestOrganizationService_UpdateDepartmentKeepsIdentity(t *testing.T) {
	service, departmentRepo, _ := newTestOrganizationService(t)

	departmentRepo.EXPECT().GetByID(mock.Anything, "d-1").Return(&models.DepartmentDetails{
		Department:    models.Department{ID: "d-1", Name: "Finance", Description: null.StringFrom("Money")},
		EmployeeCount: 4,
	}, nil).Once()
	departmentRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(d *models.Department) bool {
		return d.ID == "d-1" && d.Name == "Finance & Ops" && d.Description.String == "Money and operations"
	})).Return(nil).Once()

	department, err := service.UpdateDepartment(adminContext(), "d-1", &models.LookupForm{Name: "Finance & Ops", Description: "Money and operations"})

	require.NoError(t, err)
	assert.Equal(t, "Finance & Ops", department.Name)
}

func TestOrganizationService_UpdateMissingDepartment(t *testing.T) {
	service, departmentRepo, _ := newTestOrganizationService(t)
	departmentRepo.EXPECT().GetByID(mock.Anything, "nope").Return(nil, errors.Wrap(models.ErrNotFound, "department")).Once()

	_, err := service.UpdateDepartment(adminContext(), "nope", &models.LookupForm{Name: "X"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOrganizationService_DeleteInUse(t *testing.T) {
	service, departmentRepo, categoryRepo := newTestOrganizationService(t)
	departmentRepo.EXPECT().Delete(mock.Anything, "d-1").Return(errors.Wrap(models.ErrConflict, "in use")).Once()
	categoryRepo.EXPECT().Delete(mock.Anything, "laptop").Return(nil).Once()

	assert.ErrorIs(t, service.DeleteDepartment(adminContext(), "d-1"), models.ErrConflict)
	assert.NoError(t, service.DeleteCategory(adminContext(), "laptop"))
}

func TestOrganizationService_Lists(t *testing.T) {
	service, departmentRepo, categoryRepo := newTestOrganizationService(t)
	departmentRepo.EXPECT().GetAllDetails(mock.Anything).Return([]models.DepartmentDetails{{Department: models.Department{ID: "d-1"}}}, nil).Once()
	categoryRepo.EXPECT().GetAllDetails(mock.Anything).Return([]models.CategoryDetails{}, nil).Once()

	departments, err := service.ListDepartments(staffContext())
	require.NoError(t, err)
	assert.Len(t, departments, 1)

	categories, err := service.ListCategories(staffContext())
	require.NoError(t, err)
	assert.Empty(t, categories)
}
