package controllers

import (
	"log/slog"
	"net/http"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/services"
	"github.com/blogem/asset-tracker/userctx"
)

// DashboardController handles dashboard-related requests
type DashboardController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services, logger *slog.Logger) *DashboardController {
	return &DashboardController{
		services: services,
		logger:   logger,
	}
}

// DashboardData is the dashboard view model
type DashboardData struct {
	Stats               *models.AssetStats
	Statuses            []models.AssetStatus
	Activity            []services.HistoryEntry
	ActivityUnavailable bool
}

// Index handles GET /
// Anonymous visitors get the landing page.
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	if userctx.GetProfile(r.Context()) == nil {
		renderTemplate(w, "landing.html", newPage(r, "Welcome", "dashboard", nil))
		return
	}

	stats, err := c.services.Assets.Stats(r.Context())
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	data := &DashboardData{
		Stats:    stats,
		Statuses: models.AllAssetStatuses(),
	}

	activity, err := c.services.History.RecentActivity(r.Context(), services.DefaultRecentActivityLimit)
	if err != nil {
		userctx.Logger(r.Context(), c.logger).ErrorContext(r.Context(), "failed to load recent activity", "error", err)
		data.ActivityUnavailable = true
	} else {
		data.Activity = activity
	}

	renderTemplate(w, "dashboard.html", newPage(r, "Dashboard", "dashboard", data))
}
