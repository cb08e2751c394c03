package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/repositories"
	"github.com/blogem/asset-tracker/userctx"
)

// MutationResult is the outcome of a committed asset mutation.
// AuditErr is set when the asset changed but its change record could not be written.
type MutationResult struct {
	Asset    *models.Asset
	Record   *models.ChangeRecord
	AuditErr error
}

// Degraded reports whether the mutation committed without a change record
func (r *MutationResult) Degraded() bool {
	return r != nil && r.AuditErr != nil
}

// AssetFormOptions holds the lookup lists an asset form needs
type AssetFormOptions struct {
	Categories  []models.Category
	Departments []models.Department
	Employees   []models.ProfileDetails
}

// AssetService interface defines asset business logic
type AssetService interface {
	ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.AssetDetails, error)
	GetAsset(ctx context.Context, id string) (*models.AssetDetails, error)
	Stats(ctx context.Context) (*models.AssetStats, error)
	FormOptions(ctx context.Context) (*AssetFormOptions, error)
	CreateAsset(ctx context.Context, form *models.AssetForm) (*MutationResult, error)
	UpdateAsset(ctx context.Context, id string, form *models.AssetForm, notes string) (*MutationResult, error)
	AssignAsset(ctx context.Context, id, assigneeID, notes string) (*MutationResult, error)
	UnassignAsset(ctx context.Context, id, notes string) (*MutationResult, error)
	ChangeStatus(ctx context.Context, id string, status models.AssetStatus, notes string) (*MutationResult, error)
	DeleteAsset(ctx context.Context, id, notes string) (*MutationResult, error)
}

// assetService implements AssetService interface
type assetService struct {
	assetRepo      repositories.AssetRepository
	profileRepo    repositories.ProfileRepository
	departmentRepo repositories.DepartmentRepository
	categoryRepo   repositories.CategoryRepository
	recorder       AuditRecorder
	logger         *slog.Logger
	now            func() time.Time
}

// NewAssetService creates a new asset service
func NewAssetService(
	assetRepo repositories.AssetRepository,
	profileRepo repositories.ProfileRepository,
	departmentRepo repositories.DepartmentRepository,
	categoryRepo repositories.CategoryRepository,
	recorder AuditRecorder,
	logger *slog.Logger,
) AssetService {
	return &assetService{
		assetRepo:      assetRepo,
		profileRepo:    profileRepo,
		departmentRepo: departmentRepo,
		categoryRepo:   categoryRepo,
		recorder:       recorder,
		logger:         logger,
		now:            time.Now,
	}
}

// ListAssets retrieves assets matching filter
func (s *assetService) ListAssets(ctx context.Context, filter models.AssetFilter) ([]models.AssetDetails, error) {
	return s.assetRepo.GetAll(ctx, filter)
}

// GetAsset retrieves an asset by ID
func (s *assetService) GetAsset(ctx context.Context, id string) (*models.AssetDetails, error) {
	if id == "" {
		return nil, models.ValidationError{Field: "id", Message: "asset id is required"}
	}
	return s.assetRepo.GetByID(ctx, id)
}

// Stats returns inventory totals for the dashboard
func (s *assetService) Stats(ctx context.Context) (*models.AssetStats, error) {
	total, err := s.assetRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count assets")
	}

	byStatus, err := s.assetRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count assets by status")
	}

	return &models.AssetStats{Total: total, ByStatus: byStatus}, nil
}

// FormOptions loads categories, departments and employees for asset forms
func (s *assetService) FormOptions(ctx context.Context) (*AssetFormOptions, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load departments")
	}

	employees, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load employees")
	}

	return &AssetFormOptions{
		Categories:  categories,
		Departments: departments,
		Employees:   employees,
	}, nil
}

// CreateAsset creates a new asset with validation
func (s *assetService) CreateAsset(ctx context.Context, form *models.AssetForm) (*MutationResult, error) {
	actorID, err := s.requireManager(ctx)
	if err != nil {
		return nil, err
	}

	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	asset := &models.Asset{Status: models.StatusAvailable}
	form.ApplyTo(asset)
	if actorID != "" {
		asset.CreatedBy = null.StringFrom(actorID)
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, errors.Wrap(err, "failed to create asset")
	}

	result := &MutationResult{Asset: asset}
	s.audit(ctx, result, models.ActionCreated, actorID, func() (*models.ChangeRecord, error) {
		return s.recorder.RecordCreated(ctx, asset, actorID, "")
	})

	return result, nil
}

// UpdateAsset applies form to an asset and records only the fields that changed
func (s *assetService) UpdateAsset(ctx context.Context, id string, form *models.AssetForm, notes string) (*MutationResult, error) {
	actorID, err := s.requireManager(ctx)
	if err != nil {
		return nil, err
	}

	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	existing, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	asset := existing.Asset
	before := asset.EditableSnapshot()
	form.ApplyTo(&asset)
	after := asset.EditableSnapshot()

	changes := models.Diff(before, after)
	if len(changes) == 0 {
		return &MutationResult{Asset: &existing.Asset}, nil
	}

	if err := s.assetRepo.Update(ctx, &asset); err != nil {
		return nil, errors.Wrap(err, "failed to update asset")
	}

	changedBefore := make(models.FieldMap, len(changes))
	changedAfter := make(models.FieldMap, len(changes))
	for _, change := range changes {
		changedBefore[change.Field] = change.Old
		changedAfter[change.Field] = change.New
	}

	result := &MutationResult{Asset: &asset}
	s.audit(ctx, result, models.ActionUpdated, actorID, func() (*models.ChangeRecord, error) {
		return s.recorder.RecordUpdated(ctx, asset.ID, changedBefore, changedAfter, actorID, notes)
	})

	return result, nil
}

// AssignAsset hands an asset to an employee
func (s *assetService) AssignAsset(ctx context.Context, id, assigneeID, notes string) (*MutationResult, error) {
	actorID, err := s.requireManager(ctx)
	if err != nil {
		return nil, err
	}

	if assigneeID == "" {
		return nil, models.ValidationError{Field: "assigned_to", Message: "Select an employee to assign"}
	}

	existing, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.Status == models.StatusRetired {
		return nil, models.ValidationError{Field: "status", Message: "Retired assets cannot be assigned"}
	}
	if existing.AssignedTo.ValueOrZero() == assigneeID {
		return nil, models.ValidationError{Field: "assigned_to", Message: "Asset is already assigned to this employee"}
	}

	if _, err := s.profileRepo.GetByID(ctx, assigneeID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ValidationError{Field: "assigned_to", Message: "Employee not found"}
		}
		return nil, errors.Wrap(err, "failed to look up assignee")
	}

	asset := existing.Asset
	previousAssigneeID := asset.AssignedTo.ValueOrZero()
	asset.AssignedTo = null.StringFrom(assigneeID)
	asset.AssignedDate = null.TimeFrom(s.now().UTC())
	asset.Status = models.StatusAssigned

	if err := s.assetRepo.Update(ctx, &asset); err != nil {
		return nil, errors.Wrap(err, "failed to assign asset")
	}

	result := &MutationResult{Asset: &asset}
	s.audit(ctx, result, models.ActionAssigned, actorID, func() (*models.ChangeRecord, error) {
		return s.recorder.RecordAssigned(ctx, asset.ID, assigneeID, actorID, previousAssigneeID, notes)
	})

	return result, nil
}

// UnassignAsset returns an asset to the pool
func (s *assetService) UnassignAsset(ctx context.Context, id, notes string) (*MutationResult, error) {
	actorID, err := s.requireManager(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !existing.IsAssigned() {
		return nil, models.ValidationError{Field: "assigned_to", Message: "Asset is not assigned"}
	}

	asset := existing.Asset
	previousAssigneeID := asset.AssignedTo.String
	asset.AssignedTo = null.String{}
	asset.AssignedDate = null.Time{}
	asset.Status = models.StatusAvailable

	if err := s.assetRepo.Update(ctx, &asset); err != nil {
		return nil, errors.Wrap(err, "failed to unassign asset")
	}

	result := &MutationResult{Asset: &asset}
	s.audit(ctx, result, models.ActionUnassigned, actorID, func() (*models.ChangeRecord, error) {
		return s.recorder.RecordUnassigned(ctx, asset.ID, previousAssigneeID, actorID, notes)
	})

	return result, nil
}

// ChangeStatus moves an asset to a new lifecycle status
func (s *assetService) ChangeStatus(ctx context.Context, id string, status models.AssetStatus, notes string) (*MutationResult, error) {
	actorID, err := s.requireManager(ctx)
	if err != nil {
		return nil, err
	}

	if !status.IsValid() {
		return nil, models.ValidationError{Field: "status", Message: "Unknown status " + string(status)}
	}

	existing, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.Status == status {
		return nil, models.ValidationError{Field: "status", Message: "Asset already has status " + status.Label()}
	}
	if status == models.StatusAssigned && !existing.IsAssigned() {
		return nil, models.ValidationError{Field: "status", Message: "Assign the asset to an employee instead"}
	}

	asset := existing.Asset
	oldStatus := asset.Status
	asset.Status = status

	if err := s.assetRepo.Update(ctx, &asset); err != nil {
		return nil, errors.Wrap(err, "failed to change asset status")
	}

	result := &MutationResult{Asset: &asset}
	s.audit(ctx, result, models.ActionStatusChanged, actorID, func() (*models.ChangeRecord, error) {
		return s.recorder.RecordStatusChanged(ctx, asset.ID, oldStatus, status, actorID, notes)
	})

	return result, nil
}

// DeleteAsset removes an asset; its history is kept
func (s *assetService) DeleteAsset(ctx context.Context, id, notes string) (*MutationResult, error) {
	actorID, err := s.requireManager(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.assetRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete asset")
	}

	asset := existing.Asset
	result := &MutationResult{Asset: &asset}
	s.audit(ctx, result, models.ActionDeleted, actorID, func() (*models.ChangeRecord, error) {
		return s.recorder.RecordDeleted(ctx, &asset, actorID, notes)
	})

	return result, nil
}

// requireManager returns the acting user's ID, or ErrForbidden for roles that cannot manage assets
func (s *assetService) requireManager(ctx context.Context) (string, error) {
	if !userctx.GetRole(ctx).CanManageAssets() {
		return "", errors.Wrap(models.ErrForbidden, "managing assets requires the admin or it_staff role")
	}
	return userctx.GetUserID(ctx), nil
}

// audit runs record after a committed mutation. A failure never undoes the
// mutation; it is stored on result and logged.
func (s *assetService) audit(ctx context.Context, result *MutationResult, action models.Action, actorID string, record func() (*models.ChangeRecord, error)) {
	changeRecord, err := record()
	if err != nil {
		result.AuditErr = err
		userctx.Logger(ctx, s.logger).ErrorContext(ctx, "failed to record asset change",
			"subject_id", result.Asset.ID,
			"action", action,
			"actor_id", actorID,
			"error", err,
		)
		return
	}
	result.Record = changeRecord
}
