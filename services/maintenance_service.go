package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/repositories"
	"github.com/blogem/asset-tracker/userctx"
)

// PurgeResult describes a completed retention cleanup
type PurgeResult struct {
	Cutoff  time.Time
	Removed int64
}

// MaintenanceService runs administrative cleanup outside the normal audit contract
type MaintenanceService interface {
	RetentionDays() int
	PurgeAuditHistory(ctx context.Context, olderThanDays int) (*PurgeResult, error)
}

type maintenanceService struct {
	retentionRepo repositories.ChangeRecordRetentionRepository
	retentionDays int
	logger        *slog.Logger
	now           func() time.Time
}

// NewMaintenanceService creates a maintenance service; retentionDays is the default purge age
func NewMaintenanceService(retentionRepo repositories.ChangeRecordRetentionRepository, retentionDays int, logger *slog.Logger) MaintenanceService {
	return &maintenanceService{
		retentionRepo: retentionRepo,
		retentionDays: retentionDays,
		logger:        logger,
		now:           time.Now,
	}
}

// RetentionDays returns the configured default retention
func (s *maintenanceService) RetentionDays() int {
	return s.retentionDays
}

// PurgeAuditHistory deletes change records older than olderThanDays, falling
// back to the configured retention when olderThanDays is not positive
func (s *maintenanceService) PurgeAuditHistory(ctx context.Context, olderThanDays int) (*PurgeResult, error) {
	if !userctx.GetRole(ctx).CanManageUsers() {
		return nil, errors.Wrap(models.ErrForbidden, "purging audit history requires the admin role")
	}

	if olderThanDays <= 0 {
		olderThanDays = s.retentionDays
	}
	if olderThanDays <= 0 {
		return nil, models.ValidationError{Field: "older_than_days", Message: "Retention must be at least one day"}
	}

	cutoff := s.now().UTC().AddDate(0, 0, -olderThanDays)
	removed, err := s.retentionRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return nil, errors.Wrap(err, "failed to purge audit history")
	}

	userctx.Logger(ctx, s.logger).InfoContext(ctx, "audit history purged",
		"cutoff", cutoff,
		"removed", removed,
		"actor_id", userctx.GetUserID(ctx),
	)

	return &PurgeResult{Cutoff: cutoff, Removed: removed}, nil
}
