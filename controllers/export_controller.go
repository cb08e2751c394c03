package controllers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/services"
)

// ExportController serves downloadable exports
type ExportController struct {
	services *services.Services
	logger   *slog.Logger
	now      func() time.Time
}

// NewExportController creates a new export controller
func NewExportController(services *services.Services, logger *slog.Logger) *ExportController {
	return &ExportController{
		services: services,
		logger:   logger,
		now:      time.Now,
	}
}

// Download handles GET /export/{kind}?format=csv|xlsx|html
// The export is buffered so a failure still produces an error page.
func (c *ExportController) Download(w http.ResponseWriter, r *http.Request) {
	format, err := services.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	var (
		buf  bytes.Buffer
		base string
	)
	switch chi.URLParam(r, "kind") {
	case "audit":
		base = "audit-trail"
		err = c.services.Export.ExportAuditTrail(r.Context(), format, changeRecordFilterFromQuery(r.URL.Query()), &buf)
	case "assets":
		base = "assets"
		err = c.services.Export.ExportAssets(r.Context(), format, assetFilterFromQuery(r), &buf)
	case "employees":
		base = "employees"
		err = c.services.Export.ExportEmployees(r.Context(), format, &buf)
	case "departments":
		base = "departments"
		err = c.services.Export.ExportDepartments(r.Context(), format, &buf)
	default:
		renderError(w, r, c.logger, models.ErrNotFound)
		return
	}
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.Filename(base, c.now())+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
