package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/repositories/mocks"
	"github.com/blogem/asset-tracker/userctx"
)

// AssetServiceTestSuite is a test suite for the asset mutation flows
type AssetServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	logs            *bytes.Buffer
	service         AssetService
	mockAssetRepo   *mocks.MockAssetRepository
	mockProfileRepo *mocks.MockProfileRepository
	mockChangeRepo  *mocks.MockChangeRecordRepository
	now             time.Time
}

// SetupTest sets up the test suite before each test
func (suite *AssetServiceTestSuite) SetupTest() {
	suite.ctx = userctx.SetProfile(context.Background(), &models.Profile{ID: "user-1", Email: "it@example.com", Role: models.RoleITStaff})
	suite.logs = &bytes.Buffer{}
	suite.mockAssetRepo = mocks.NewMockAssetRepository(suite.T())
	suite.mockProfileRepo = mocks.NewMockProfileRepository(suite.T())
	suite.mockChangeRepo = mocks.NewMockChangeRecordRepository(suite.T())
	suite.now = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	logger := slog.New(slog.NewJSONHandler(suite.logs, nil))
	service := NewAssetService(
		suite.mockAssetRepo,
		suite.mockProfileRepo,
		mocks.NewMockDepartmentRepository(suite.T()),
		mocks.NewMockCategoryRepository(suite.T()),
		NewAuditRecorder(suite.mockChangeRepo, logger),
		logger,
	).(*assetService)
	service.now = func() time.Time { return suite.now }
	suite.service = service
}

func (suite *AssetServiceTestSuite) existingAsset() *models.AssetDetails {
	return &models.AssetDetails{
		Asset: models.Asset{
			ID:       "asset-1",
			AssetTag: "LT-001",
			Name:     "Dell E6420",
			Location: null.StringFrom("HQ"),
			Status:   models.StatusAvailable,
		},
	}
}

// TestCreateAsset_ViewerForbidden tests that viewers cannot create assets
func (suite *AssetServiceTestSuite) TestCreateAsset_ViewerForbidden() {
	ctx := userctx.SetProfile(context.Background(), &models.Profile{ID: "user-2", Role: models.RoleViewer})

	result, err := suite.service.CreateAsset(ctx, &models.AssetForm{AssetTag: "LT-9", Name: "New"})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, models.ErrForbidden)
}

// TestCreateAsset_RecordsCreation tests that a created asset gets a creation record from the actor
func (suite *AssetServiceTestSuite) TestCreateAsset_RecordsCreation() {
	suite.mockAssetRepo.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, asset *models.Asset) error {
			asset.ID = "asset-9"
			return nil
		}).Once()

	var stored *models.ChangeRecord
	suite.mockChangeRepo.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, record *models.ChangeRecord) { stored = record }).
		Return(nil).Once()

	result, err := suite.service.CreateAsset(suite.ctx, &models.AssetForm{AssetTag: "LT-9", Name: "ThinkPad", Brand: "Lenovo"})

	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Degraded())
	assert.Equal(suite.T(), "asset-9", result.Asset.ID)
	assert.Equal(suite.T(), "user-1", result.Asset.CreatedBy.String)
	require.NotNil(suite.T(), stored)
	assert.Equal(suite.T(), models.ActionCreated, stored.Action)
	assert.Equal(suite.T(), "asset-9", stored.SubjectID)
	assert.Equal(suite.T(), "user-1", stored.ActorID.String)
	assert.Equal(suite.T(), models.String("Lenovo"), stored.AfterState["brand"])
}

// TestCreateAsset_InvalidForm tests that validation errors stop the flow before the store
func (suite *AssetServiceTestSuite) TestCreateAsset_InvalidForm() {
	result, err := suite.service.CreateAsset(suite.ctx, &models.AssetForm{})

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), models.IsValidationError(err))
}

// TestUpdateAsset_RecordsOnlyChangedFields tests that the update record contains just the diff
func (suite *AssetServiceTestSuite) TestUpdateAsset_RecordsOnlyChangedFields() {
	existing := suite.existingAsset()
	suite.mockAssetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(existing, nil).Once()
	suite.mockAssetRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(asset *models.Asset) bool {
		return asset.Location.String == "Remote"
	})).Return(nil).Once()

	var stored *models.ChangeRecord
	suite.mockChangeRepo.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, record *models.ChangeRecord) { stored = record }).
		Return(nil).Once()

	form := models.NewAssetForm(&existing.Asset)
	form.Location = "Remote"

	result, err := suite.service.UpdateAsset(suite.ctx, "asset-1", form, "moved")

	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Degraded())
	require.NotNil(suite.T(), stored)
	assert.Equal(suite.T(), models.FieldMap{"location": models.String("HQ")}, stored.BeforeState)
	assert.Equal(suite.T(), models.FieldMap{"location": models.String("Remote")}, stored.AfterState)
	assert.Equal(suite.T(), "moved", stored.Notes.String)
	assert.Equal(suite.T(), "HQ", existing.Location.String, "the loaded asset must not be modified in place")
}

// TestUpdateAsset_NoChanges tests that an unchanged form writes nothing
func (suite *AssetServiceTestSuite) TestUpdateAsset_NoChanges() {
	existing := suite.existingAsset()
	suite.mockAssetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(existing, nil).Once()

	result, err := suite.service.UpdateAsset(suite.ctx, "asset-1", models.NewAssetForm(&existing.Asset), "")

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), result.Record)
	suite.mockAssetRepo.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
	suite.mockChangeRepo.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything)
}

// TestAssignAsset tests assignment of an available asset
func (suite *AssetServiceTestSuite) TestAssignAsset() {
	suite.mockAssetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(suite.existingAsset(), nil).Once()
	suite.mockProfileRepo.EXPECT().GetByID(mock.Anything, "user-5").Return(&models.Profile{ID: "user-5"}, nil).Once()
	suite.mockAssetRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

	var stored *models.ChangeRecord
	suite.mockChangeRepo.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, record *models.ChangeRecord) { stored = record }).
		Return(nil).Once()

	result, err := suite.service.AssignAsset(suite.ctx, "asset-1", "user-5", "")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusAssigned, result.Asset.Status)
	assert.Equal(suite.T(), "user-5", result.Asset.AssignedTo.String)
	assert.True(suite.T(), result.Asset.AssignedDate.Time.Equal(suite.now))
	require.NotNil(suite.T(), stored)
	assert.Equal(suite.T(), models.ActionAssigned, stored.Action)
	assert.Nil(suite.T(), stored.BeforeState)
	assert.Equal(suite.T(), models.FieldMap{AssignedToField: models.String("user-5")}, stored.AfterState)
}

// TestAssignAsset_UnknownEmployee tests that assigning to a missing profile is a validation error
func (suite *AssetServiceTestSuite) TestAssignAsset_UnknownEmployee() {
	suite.mockAssetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(suite.existingAsset(), nil).Once()
	suite.mockProfileRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, models.ErrNotFound).Once()

	result, err := suite.service.AssignAsset(suite.ctx, "asset-1", "ghost", "")

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), models.IsValidationError(err))
}

// TestUnassignAsset_NotAssigned tests that unassigning a free asset is rejected
func (suite *AssetServiceTestSuite) TestUnassignAsset_NotAssigned() {
	suite.mockAssetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(suite.existingAsset(), nil).Once()

	result, err := suite.service.UnassignAsset(suite.ctx, "asset-1", "")

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), models.IsValidationError(err))
}

// TestUnassignAsset tests that the previous assignee is recorded
func (suite *AssetServiceTestSuite) TestUnassignAsset() {
	existing := suite.existingAsset()
	existing.AssignedTo = null.StringFrom("user-5")
	existing.Status = models.StatusAssigned
	suite.mockAssetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(existing, nil).Once()
	suite.mockAssetRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

	var stored *models.ChangeRecord
	suite.mockChangeRepo.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, record *models.ChangeRecord) { stored = record }).
		Return(nil).Once()

	result, err := suite.service.UnassignAsset(suite.ctx, "asset-1", "returned")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusAvailable, result.Asset.Status)
	assert.False(suite.T(), result.Asset.AssignedTo.Valid)
	assert.Equal(suite.T(), models.FieldMap{AssignedToField: models.String("user-5")}, stored.BeforeState)
	assert.Equal(suite.T(), models.FieldMap{AssignedToField: models.Null()}, stored.AfterState)
}

// TestChangeStatus_SameStatus tests that a no-op status change is rejected
func (suite *AssetServiceTestSuite) TestChangeStatus_SameStatus() {
	suite.mockAssetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(suite.existingAsset(), nil).Once()

	result, err := suite.service.ChangeStatus(suite.ctx, "asset-1", models.StatusAvailable, "")

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), models.IsValidationError(err))
}

// TestChangeStatus_AuditFailureKeepsMutation tests the degraded path: the asset changes, the failure is reported
func (suite *AssetServiceTestSuite) TestChangeStatus_AuditFailureKeepsMutation() {
	suite.mockAssetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(suite.existingAsset(), nil).Once()
	suite.mockAssetRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
	storeErr := models.NewPersistenceError("failed to append change record", errors.New("disk I/O error"))
	suite.mockChangeRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(storeErr).Once()

	result, err := suite.service.ChangeStatus(suite.ctx, "asset-1", models.StatusUnderRepair, "screen cracked")

	require.NoError(suite.T(), err)
	assert.True(suite.T(), result.Degraded())
	assert.Equal(suite.T(), models.StatusUnderRepair, result.Asset.Status)
	assert.True(suite.T(), models.IsPersistenceError(result.AuditErr))
	assert.Nil(suite.T(), result.Record)
	assert.Contains(suite.T(), suite.logs.String(), `"level":"ERROR"`)
	assert.Contains(suite.T(), suite.logs.String(), `"subject_id":"asset-1"`)
	assert.Contains(suite.T(), suite.logs.String(), `"action":"status_changed"`)
}

// TestDeleteAsset tests that deletion records the last known snapshot
func (suite *AssetServiceTestSuite) TestDeleteAsset() {
	suite.mockAssetRepo.EXPECT().GetByID(mock.Anything, "asset-1").Return(suite.existingAsset(), nil).Once()
	suite.mockAssetRepo.EXPECT().Delete(mock.Anything, "asset-1").Return(nil).Once()

	var stored *models.ChangeRecord
	suite.mockChangeRepo.EXPECT().Append(mock.Anything, mock.Anything).
		Run(func(_ context.Context, record *models.ChangeRecord) { stored = record }).
		Return(nil).Once()

	result, err := suite.service.DeleteAsset(suite.ctx, "asset-1", "")

	require.NoError(suite.T(), err)
	assert.False(suite.T(), result.Degraded())
	assert.Equal(suite.T(), models.ActionDeleted, stored.Action)
	assert.Nil(suite.T(), stored.AfterState)
	assert.Equal(suite.T(), models.String("LT-001"), stored.BeforeState["asset_tag"])
}

// TestDeleteAsset_NotFound tests that a missing asset is reported and nothing is recorded
func (suite *AssetServiceTestSuite) TestDeleteAsset_NotFound() {
	suite.mockAssetRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, models.ErrNotFound).Once()

	result, err := suite.service.DeleteAsset(suite.ctx, "missing", "")

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
}

// TestStats tests the dashboard totals
func (suite *AssetServiceTestSuite) TestStats() {
	suite.mockAssetRepo.EXPECT().Count(mock.Anything).Return(3, nil).Once()
	suite.mockAssetRepo.EXPECT().CountByStatus(mock.Anything).Return(map[models.AssetStatus]int{models.StatusAvailable: 3}, nil).Once()

	stats, err := suite.service.Stats(suite.ctx)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, stats.Total)
	assert.Equal(suite.T(), 3, stats.ByStatus[models.StatusAvailable])
}

// TestAssetServiceSuite runs the AssetService test suite
func TestAssetServiceSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
