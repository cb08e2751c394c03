package controllers

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"gitea.com/go-chi/session"
	"github.com/cockroachdb/errors"

	"github.com/blogem/asset-tracker/authenticator"
	"github.com/blogem/asset-tracker/middleware"
	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/services"
	"github.com/blogem/asset-tracker/templates"
	"github.com/blogem/asset-tracker/userctx"
)

const sessionFlashErrorKey = "flash_error"

var templateFuncs = template.FuncMap{
	"add":            func(a, b int) int { return a + b },
	"sub":            func(a, b int) int { return a - b },
	"eq":             func(a, b interface{}) bool { return a == b },
	"formatDate":     models.FormatDate,
	"formatDateTime": func(t time.Time) string { return models.FormatDateTime(t.Local()) },
	"timeAgo":        func(t time.Time) string { return models.TimeAgo(t, time.Now()) },
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, pageTemplate string, data interface{}) error {
	tmpl, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templates.FS, "layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// newPage builds the layout data for r, consuming any pending flash message
func newPage(r *http.Request, title, currentPage string, data interface{}) models.PageData {
	return models.PageData{
		Title:        title,
		CurrentPage:  currentPage,
		FlashMessage: popFlash(r),
		User:         userctx.GetProfile(r.Context()),
		Data:         data,
	}
}

func setFlash(r *http.Request, key, message string) {
	session.GetSession(r).Set(key, message)
}

func popFlash(r *http.Request) *models.FlashMessage {
	sess := session.GetSession(r)
	if sess == nil {
		return nil
	}

	for _, flash := range []struct{ key, kind string }{
		{sessionFlashErrorKey, "error"},
		{middleware.SessionFlashWarningKey, "warning"},
		{middleware.SessionFlashSuccessKey, "success"},
	} {
		if message, ok := sess.Get(flash.key).(string); ok && message != "" {
			sess.Delete(flash.key)
			return &models.FlashMessage{Type: flash.kind, Message: message}
		}
	}
	return nil
}

// errorStatus maps service errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case models.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// renderError renders the error page; internal details are only logged
func renderError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		userctx.Logger(r.Context(), logger).ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		message = "Something went wrong. Please try again."
	}

	renderTemplateWithStatus(w, status, "error.html", newPage(r, http.StatusText(status), "", message))
}

// flashMutation stores the outcome of an asset mutation for the next page
func flashMutation(r *http.Request, result *services.MutationResult, success string) {
	if result.Degraded() {
		setFlash(r, middleware.SessionFlashWarningKey, success+", but the activity log could not be updated.")
		return
	}
	setFlash(r, middleware.SessionFlashSuccessKey, success+".")
}

// Controllers holds all controller instances
type Controllers struct {
	Auth        *AuthController
	Dashboard   *DashboardController
	Assets      *AssetController
	Audit       *AuditController
	Export      *ExportController
	Employees   *EmployeeController
	Departments *DepartmentController
	Categories  *CategoryController
	Settings    *SettingsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, auth authenticator.Provider, logger *slog.Logger) *Controllers {
	return &Controllers{
		Auth:        NewAuthController(auth, services, logger),
		Dashboard:   NewDashboardController(services, logger),
		Assets:      NewAssetController(services, logger),
		Audit:       NewAuditController(services, logger),
		Export:      NewExportController(services, logger),
		Employees:   NewEmployeeController(services, logger),
		Departments: NewDepartmentController(services, logger),
		Categories:  NewCategoryController(services, logger),
		Settings:    NewSettingsController(services, logger),
	}
}
