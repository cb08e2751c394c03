package controllers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/asset-tracker/middleware"
	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/services"
)

// EmployeeController handles employee listing and role management
type EmployeeController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewEmployeeController creates a new employee controller
func NewEmployeeController(services *services.Services, logger *slog.Logger) *EmployeeController {
	return &EmployeeController{
		services: services,
		logger:   logger,
	}
}

// EmployeeListData is the employee list view model
type EmployeeListData struct {
	Employees []models.ProfileDetails
	Roles     []models.Role
}

// Index handles GET /employees
func (c *EmployeeController) Index(w http.ResponseWriter, r *http.Request) {
	employees, err := c.services.Profiles.ListProfiles(r.Context())
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	renderTemplate(w, "employees.html", newPage(r, "Employees", "employees", &EmployeeListData{
		Employees: employees,
		Roles:     models.AllRoles(),
	}))
}

// EmployeeDetailData is the employee page view model
type EmployeeDetailData struct {
	Employee *models.ProfileDetails
	Assets   []models.AssetDetails
}

// Show handles GET /employees/{id}
func (c *EmployeeController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	employee, err := c.services.Profiles.GetEmployee(r.Context(), id)
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	assets, err := c.services.Assets.ListAssets(r.Context(), models.AssetFilter{AssignedTo: id})
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	renderTemplate(w, "employee_detail.html", newPage(r, employee.DisplayName(), "employees", &EmployeeDetailData{
		Employee: employee,
		Assets:   assets,
	}))
}

// ChangeRole handles POST /employees/{id}/role
func (c *EmployeeController) ChangeRole(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	err := c.services.Profiles.ChangeRole(r.Context(), chi.URLParam(r, "id"), models.Role(r.FormValue("role")))
	switch {
	case models.IsValidationError(err):
		setFlash(r, sessionFlashErrorKey, errorMessages(err)[0])
	case err != nil:
		renderError(w, r, c.logger, err)
		return
	default:
		setFlash(r, middleware.SessionFlashSuccessKey, "Role updated.")
	}

	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}
