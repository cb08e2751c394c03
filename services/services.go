package services

import (
	"log/slog"

	"github.com/blogem/asset-tracker/repositories"
)

// Options carries the configuration services depend on
type Options struct {
	AdminEmails        []string
	AuditRetentionDays int
}

// Services holds all service instances
type Services struct {
	Recorder     AuditRecorder
	History      HistoryService
	Assets       AssetService
	Export       ExportService
	Maintenance  MaintenanceService
	Profiles     ProfileService
	Organization OrganizationService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, opts Options, logger *slog.Logger) *Services {
	recorder := NewAuditRecorder(repos.ChangeRecords, logger)

	return &Services{
		Recorder:     recorder,
		History:      NewHistoryService(repos.ChangeRecords),
		Assets:       NewAssetService(repos.Assets, repos.Profiles, repos.Departments, repos.Categories, recorder, logger),
		Export:       NewExportService(repos.ChangeRecords, repos.Assets, repos.Profiles, repos.Departments),
		Maintenance:  NewMaintenanceService(repos.ChangeRecordRetention, opts.AuditRetentionDays, logger),
		Profiles:     NewProfileService(repos.Profiles, opts.AdminEmails, logger),
		Organization: NewOrganizationService(repos.Departments, repos.Categories, logger),
	}
}
