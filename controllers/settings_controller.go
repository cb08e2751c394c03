package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/blogem/asset-tracker/middleware"
	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/services"
)

// SettingsController handles administrative settings
type SettingsController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewSettingsController creates a new settings controller
func NewSettingsController(services *services.Services, logger *slog.Logger) *SettingsController {
	return &SettingsController{
		services: services,
		logger:   logger,
	}
}

// SettingsData is the settings view model
type SettingsData struct {
	RetentionDays int
}

// Index handles GET /settings
func (c *SettingsController) Index(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "settings.html", newPage(r, "Settings", "settings", &SettingsData{
		RetentionDays: c.services.Maintenance.RetentionDays(),
	}))
}

// PurgeAuditHistory handles POST /settings/audit/purge
func (c *SettingsController) PurgeAuditHistory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	var days int
	if raw := strings.TrimSpace(r.FormValue("older_than_days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			setFlash(r, sessionFlashErrorKey, "Retention must be a whole number of days.")
			http.Redirect(w, r, "/settings", http.StatusSeeOther)
			return
		}
		days = parsed
	}

	result, err := c.services.Maintenance.PurgeAuditHistory(r.Context(), days)
	switch {
	case models.IsValidationError(err):
		setFlash(r, sessionFlashErrorKey, errorMessages(err)[0])
	case err != nil:
		renderError(w, r, c.logger, err)
		return
	default:
		setFlash(r, middleware.SessionFlashSuccessKey, fmt.Sprintf("Removed %d change records older than %s.", result.Removed, models.FormatDate(result.Cutoff)))
	}

	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}
