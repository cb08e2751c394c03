package controllers

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/services"
	"github.com/blogem/asset-tracker/userctx"
)

// auditTrailLimit caps the rows shown on the audit trail page
const auditTrailLimit = 500

// AuditController handles the cross-asset audit trail
type AuditController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services, logger *slog.Logger) *AuditController {
	return &AuditController{
		services: services,
		logger:   logger,
	}
}

// AuditTrailData is the audit trail view model
type AuditTrailData struct {
	Entries     []services.HistoryEntry
	Unavailable bool
	Filter      models.ChangeRecordFilter
	Query       template.URL
	Actions     []models.Action
	Ranges      []models.DateRange
}

// Index handles GET /audit
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	filter := changeRecordFilterFromQuery(r.URL.Query())

	data := &AuditTrailData{
		Filter:  filter,
		Query:   template.URL(filterQuery(filter).Encode()),
		Actions: models.AllActions(),
		Ranges:  []models.DateRange{models.RangeAll, models.RangeToday, models.RangeWeek, models.RangeMonth},
	}

	entries, err := c.services.History.Trail(r.Context(), filter, auditTrailLimit)
	if err != nil {
		userctx.Logger(r.Context(), c.logger).ErrorContext(r.Context(), "failed to load audit trail", "error", err)
		data.Unavailable = true
	} else {
		data.Entries = entries
	}

	renderTemplate(w, "audit.html", newPage(r, "Audit Trail", "audit", data))
}

// changeRecordFilterFromQuery reads q, action and range. Unknown actions and ranges match everything.
func changeRecordFilterFromQuery(query url.Values) models.ChangeRecordFilter {
	filter := models.ChangeRecordFilter{
		Search: strings.TrimSpace(query.Get("q")),
		Range:  models.ParseDateRange(query.Get("range")),
	}
	if action, err := models.ParseAction(query.Get("action")); err == nil {
		filter.Action = action
	}
	return filter
}

func filterQuery(filter models.ChangeRecordFilter) url.Values {
	values := url.Values{}
	if filter.Search != "" {
		values.Set("q", filter.Search)
	}
	if filter.Action != "" {
		values.Set("action", string(filter.Action))
	}
	if filter.Range != "" && filter.Range != models.RangeAll {
		values.Set("range", string(filter.Range))
	}
	return values
}
