package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/repositories"
	"github.com/blogem/asset-tracker/repositories/mocks"
	"github.com/blogem/asset-tracker/userctx"
)

func exportFixture() []models.ChangeRecordDetails {
	return []models.ChangeRecordDetails{
		{
			ChangeRecord: models.ChangeRecord{
				ID:          "rec-1",
				SubjectID:   "asset-1",
				Action:      models.ActionStatusChanged,
				BeforeState: models.FieldMap{"status": models.String("available")},
				AfterState:  models.FieldMap{"status": models.String("under_repair")},
				ActorID:     null.StringFrom("user-1"),
				Notes:       null.StringFrom("screen cracked, sent out"),
				OccurredAt:  time.Date(2024, 2, 3, 9, 5, 6, 0, time.UTC),
			},
			SubjectName:    null.StringFrom("Dell E6420"),
			SubjectTag:     null.StringFrom("LT-001"),
			ActorFirstName: null.StringFrom("Ada"),
			ActorLastName:  null.StringFrom("Lovelace"),
		},
		{
			ChangeRecord: models.ChangeRecord{
				ID:         "rec-0",
				SubjectID:  "asset-1",
				Action:     models.ActionCreated,
				AfterState: models.FieldMap{"name": models.String("Dell E6420")},
				OccurredAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
			},
			SubjectName: null.StringFrom("Dell E6420"),
			SubjectTag:  null.StringFrom("LT-001"),
		},
	}
}

func newTestExportService(t *testing.T) (*exportService, *mocks.MockChangeRecordRepository, *mocks.MockAssetRepository) {
	changeRecordRepo := mocks.NewMockChangeRecordRepository(t)
	assetRepo := mocks.NewMockAssetRepository(t)
	service := NewExportService(changeRecordRepo, assetRepo, mocks.NewMockProfileRepository(t), mocks.NewMockDepartmentRepository(t)).(*exportService)
	service.now = func() time.Time { return time.Date(2024, 2, 4, 12, 0, 0, 0, time.UTC) }
	return service, changeRecordRepo, assetRepo
}

func staffContext() context.Context {
	return userctx.SetProfile(context.Background(), &models.Profile{ID: "user-1", Role: models.RoleITStaff})
}

func TestExportService_AuditTrailCSV(t *testing.T) {
	service, changeRecordRepo, _ := newTestExportService(t)
	filter := models.ChangeRecordFilter{Range: models.RangeAll}
	changeRecordRepo.EXPECT().QueryAll(mock.Anything, filter, repositories.MaxQueryLimit).Return(exportFixture(), nil).Once()

	var buf bytes.Buffer
	err := service.ExportAuditTrail(staffContext(), FormatCSV, filter, &buf)
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.ChangeRecordExportColumns, rows[0])
	assert.Equal(t, []string{
		"Dell E6420",
		"LT-001",
		"status_changed",
		"Ada Lovelace",
		"2024-02-03T09:05:06Z",
		`{"status":"available"}`,
		`{"status":"under_repair"}`,
		"screen cracked, sent out",
	}, rows[1])
	assert.Equal(t, "System", rows[2][3])
	assert.Equal(t, "", rows[2][5])
}

func TestExportService_AuditTrailXLSX(t *testing.T) {
	service, changeRecordRepo, _ := newTestExportService(t)
	changeRecordRepo.EXPECT().QueryAll(mock.Anything, mock.Anything, repositories.MaxQueryLimit).Return(exportFixture(), nil).Once()

	var buf bytes.Buffer
	require.NoError(t, service.ExportAuditTrail(staffContext(), FormatXLSX, models.ChangeRecordFilter{}, &buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Audit Trail")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "performed_by", rows[0][3])
	assert.Equal(t, "Ada Lovelace", rows[1][3])
	assert.Equal(t, "created", rows[2][2])
}

func TestExportService_AuditTrailHTMLEscapes(t *testing.T) {
	service, changeRecordRepo, _ := newTestExportService(t)
	records := exportFixture()
	records[0].Notes = null.StringFrom("<script>alert(1)</script>")
	changeRecordRepo.EXPECT().QueryAll(mock.Anything, mock.Anything, repositories.MaxQueryLimit).Return(records, nil).Once()

	var buf bytes.Buffer
	require.NoError(t, service.ExportAuditTrail(staffContext(), FormatHTML, models.ChangeRecordFilter{}, &buf))

	out := buf.String()
	assert.Contains(t, out, "<h1>Audit Trail</h1>")
	assert.Contains(t, out, "Generated 2024-02-04T12:00:00Z")
	assert.Contains(t, out, "2 rows")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestExportService_AssetsCSV(t *testing.T) {
	service, _, assetRepo := newTestExportService(t)
	asset := models.AssetDetails{
		Asset: models.Asset{
			ID:           "asset-1",
			AssetTag:     "LT-001",
			Name:         "Dell E6420",
			Status:       models.StatusAvailable,
			PurchaseCost: null.FloatFrom(1299.5),
		},
		CategoryName: null.StringFrom("Laptop"),
	}
	assetRepo.EXPECT().GetAll(mock.Anything, models.AssetFilter{Status: models.StatusAvailable}).Return([]models.AssetDetails{asset}, nil).Once()

	var buf bytes.Buffer
	require.NoError(t, service.ExportAssets(staffContext(), FormatCSV, models.AssetFilter{Status: models.StatusAvailable}, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.AssetExportColumns, rows[0])
	assert.Equal(t, "LT-001", rows[1][0])
	assert.Equal(t, "Laptop", rows[1][3])
	assert.Equal(t, "1299.5", rows[1][8])
	assert.Equal(t, "available", rows[1][10])
}

func TestExportService_EmployeesCSV(t *testing.T) {
	service, _, _ := newTestExportService(t)
	profileRepo := mocks.NewMockProfileRepository(t)
	service.profileRepo = profileRepo

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	profileRepo.EXPECT().GetAll(mock.Anything).Return([]models.ProfileDetails{
		{
			Profile: models.Profile{
				ID:        "auth0|1",
				Email:     "ada@example.com",
				FirstName: null.StringFrom("Ada"),
				LastName:  null.StringFrom("Lovelace"),
				Role:      models.RoleITStaff,
				CreatedAt: created,
				UpdatedAt: created,
			},
			DepartmentName:      null.StringFrom("IT"),
			AssignedAssetsCount: 2,
		},
	}, nil).Once()

	var buf bytes.Buffer
	require.NoError(t, service.ExportEmployees(staffContext(), FormatCSV, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.EmployeeExportColumns, rows[0])
	assert.Equal(t, []string{"Ada", "Lovelace", "ada@example.com", "it_staff", "IT", "2", "2024-01-02T03:04:05Z", "2024-01-02T03:04:05Z"}, rows[1])
}

func TestExportService_DepartmentsXLSX(t *testing.T) {
	service, _, _ := newTestExportService(t)
	departmentRepo := mocks.NewMockDepartmentRepository(t)
	service.departmentRepo = departmentRepo

	departmentRepo.EXPECT().GetAllDetails(mock.Anything).Return([]models.DepartmentDetails{
		{Department: models.Department{ID: "d-1", Name: "Finance"}, EmployeeCount: 3, AssetCount: 7},
	}, nil).Once()

	var buf bytes.Buffer
	require.NoError(t, service.ExportDepartments(staffContext(), FormatXLSX, &buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Departments")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.DepartmentExportColumns, rows[0])
	assert.Equal(t, "Finance", rows[1][0])
	assert.Equal(t, "3", rows[1][2])
	assert.Equal(t, "7", rows[1][3])
}

func TestExportService_ViewerForbidden(t *testing.T) {
	service, _, _ := newTestExportService(t)
	viewer := userctx.SetProfile(context.Background(), &models.Profile{ID: "user-9", Role: models.RoleViewer})

	var buf bytes.Buffer
	assert.ErrorIs(t, service.ExportAuditTrail(viewer, FormatCSV, models.ChangeRecordFilter{}, &buf), models.ErrForbidden)
	assert.ErrorIs(t, service.ExportAssets(viewer, FormatCSV, models.AssetFilter{}, &buf), models.ErrForbidden)
	assert.ErrorIs(t, service.ExportEmployees(viewer, FormatCSV, &buf), models.ErrForbidden)
	assert.ErrorIs(t, service.ExportDepartments(viewer, FormatHTML, &buf), models.ErrForbidden)
	assert.Zero(t, buf.Len())
}

func TestParseExportFormat(t *testing.T) {
	format, err := ParseExportFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format)

	format, err = ParseExportFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, "audit-trail-2024-01-31.xlsx", format.Filename("audit-trail", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))

	_, err = ParseExportFormat("pdf")
	assert.True(t, models.IsValidationError(err))
}
