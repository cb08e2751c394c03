package services

import (
	"context"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/repositories"
)

// DefaultRecentActivityLimit is the dashboard feed size
const DefaultRecentActivityLimit = 10

// HistoryEntry is a stored change record with its field-level diff
type HistoryEntry struct {
	Record  models.ChangeRecordDetails
	Changes []models.FieldChange
}

// HistoryService reads change history for display.
// Errors are returned as-is so callers can tell "no history" from "history failed to load".
type HistoryService interface {
	SubjectHistory(ctx context.Context, subjectID string, limit int) ([]HistoryEntry, error)
	Trail(ctx context.Context, filter models.ChangeRecordFilter, limit int) ([]HistoryEntry, error)
	RecentActivity(ctx context.Context, limit int) ([]HistoryEntry, error)
}

type historyService struct {
	repo repositories.ChangeRecordRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(repo repositories.ChangeRecordRepository) HistoryService {
	return &historyService{repo: repo}
}

// SubjectHistory returns the newest entries for one subject
func (s *historyService) SubjectHistory(ctx context.Context, subjectID string, limit int) ([]HistoryEntry, error) {
	records, err := s.repo.QueryBySubject(ctx, subjectID, limit)
	if err != nil {
		return nil, err
	}
	return toHistoryEntries(records), nil
}

// Trail returns the newest entries across all subjects matching filter
func (s *historyService) Trail(ctx context.Context, filter models.ChangeRecordFilter, limit int) ([]HistoryEntry, error) {
	records, err := s.repo.QueryAll(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	return toHistoryEntries(records), nil
}

// RecentActivity returns the latest entries for the dashboard
func (s *historyService) RecentActivity(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentActivityLimit
	}
	return s.Trail(ctx, models.ChangeRecordFilter{Range: models.RangeAll}, limit)
}

func toHistoryEntries(records []models.ChangeRecordDetails) []HistoryEntry {
	entries := make([]HistoryEntry, len(records))
	for i, record := range records {
		entries[i] = HistoryEntry{
			Record:  record,
			Changes: record.Changes(),
		}
	}
	return entries
}
