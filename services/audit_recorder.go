package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/guregu/null/v5"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/repositories"
)

// AssignedToField is the state key used by assignment records
const AssignedToField = "assigned_to"

// StatusField is the state key used by status change records
const StatusField = "status"

// AuditSubject is a tracked entity the recorder can snapshot
type AuditSubject interface {
	AuditSubjectID() string
	CreationSnapshot() models.FieldMap
	DeletionSnapshot() models.FieldMap
}

// AuditRecorder builds exactly one change record per mutation and appends it.
// An empty actorID marks a system action; blank notes are stored as absent.
type AuditRecorder interface {
	RecordCreated(ctx context.Context, subject AuditSubject, actorID, notes string) (*models.ChangeRecord, error)
	RecordUpdated(ctx context.Context, subjectID string, before, after models.FieldMap, actorID, notes string) (*models.ChangeRecord, error)
	RecordAssigned(ctx context.Context, subjectID, newAssigneeID, actorID, previousAssigneeID, notes string) (*models.ChangeRecord, error)
	RecordUnassigned(ctx context.Context, subjectID, previousAssigneeID, actorID, notes string) (*models.ChangeRecord, error)
	RecordStatusChanged(ctx context.Context, subjectID string, oldStatus, newStatus models.AssetStatus, actorID, notes string) (*models.ChangeRecord, error)
	RecordDeleted(ctx context.Context, subject AuditSubject, actorID, notes string) (*models.ChangeRecord, error)
}

type auditRecorder struct {
	repo   repositories.ChangeRecordRepository
	logger *slog.Logger
}

// NewAuditRecorder creates a recorder writing to repo
func NewAuditRecorder(repo repositories.ChangeRecordRepository, logger *slog.Logger) AuditRecorder {
	return &auditRecorder{
		repo:   repo,
		logger: logger,
	}
}

func (r *auditRecorder) RecordCreated(ctx context.Context, subject AuditSubject, actorID, notes string) (*models.ChangeRecord, error) {
	return r.append(ctx, &models.ChangeRecord{
		SubjectID:  subject.AuditSubjectID(),
		Action:     models.ActionCreated,
		AfterState: subject.CreationSnapshot(),
		ActorID:    optional(actorID),
		Notes:      optional(notes),
	})
}

func (r *auditRecorder) RecordUpdated(ctx context.Context, subjectID string, before, after models.FieldMap, actorID, notes string) (*models.ChangeRecord, error) {
	return r.append(ctx, &models.ChangeRecord{
		SubjectID:   subjectID,
		Action:      models.ActionUpdated,
		BeforeState: before.Clone(),
		AfterState:  after.Clone(),
		ActorID:     optional(actorID),
		Notes:       optional(notes),
	})
}

func (r *auditRecorder) RecordAssigned(ctx context.Context, subjectID, newAssigneeID, actorID, previousAssigneeID, notes string) (*models.ChangeRecord, error) {
	var before models.FieldMap
	if previousAssigneeID != "" {
		before = models.FieldMap{AssignedToField: models.String(previousAssigneeID)}
	}

	return r.append(ctx, &models.ChangeRecord{
		SubjectID:   subjectID,
		Action:      models.ActionAssigned,
		BeforeState: before,
		AfterState:  models.FieldMap{AssignedToField: models.StringOrNull(newAssigneeID)},
		ActorID:     optional(actorID),
		Notes:       optional(notes),
	})
}

func (r *auditRecorder) RecordUnassigned(ctx context.Context, subjectID, previousAssigneeID, actorID, notes string) (*models.ChangeRecord, error) {
	if strings.TrimSpace(previousAssigneeID) == "" {
		return nil, models.ValidationError{Field: AssignedToField, Message: "unassigned records require a previous assignee"}
	}

	return r.append(ctx, &models.ChangeRecord{
		SubjectID:   subjectID,
		Action:      models.ActionUnassigned,
		BeforeState: models.FieldMap{AssignedToField: models.StringOrNull(previousAssigneeID)},
		AfterState:  models.FieldMap{AssignedToField: models.Null()},
		ActorID:     optional(actorID),
		Notes:       optional(notes),
	})
}

func (r *auditRecorder) RecordStatusChanged(ctx context.Context, subjectID string, oldStatus, newStatus models.AssetStatus, actorID, notes string) (*models.ChangeRecord, error) {
	return r.append(ctx, &models.ChangeRecord{
		SubjectID:   subjectID,
		Action:      models.ActionStatusChanged,
		BeforeState: models.FieldMap{StatusField: models.String(string(oldStatus))},
		AfterState:  models.FieldMap{StatusField: models.String(string(newStatus))},
		ActorID:     optional(actorID),
		Notes:       optional(notes),
	})
}

func (r *auditRecorder) RecordDeleted(ctx context.Context, subject AuditSubject, actorID, notes string) (*models.ChangeRecord, error) {
	return r.append(ctx, &models.ChangeRecord{
		SubjectID:   subject.AuditSubjectID(),
		Action:      models.ActionDeleted,
		BeforeState: subject.DeletionSnapshot(),
		ActorID:     optional(actorID),
		Notes:       optional(notes),
	})
}

// append validates locally so malformed records never reach the store
func (r *auditRecorder) append(ctx context.Context, record *models.ChangeRecord) (*models.ChangeRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := r.repo.Append(ctx, record); err != nil {
		return nil, err
	}

	r.logger.DebugContext(ctx, "change recorded",
		"record_id", record.ID,
		"subject_id", record.SubjectID,
		"action", record.Action,
		"actor_id", record.ActorID.ValueOrZero(),
	)

	return record, nil
}

func optional(s string) null.String {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
