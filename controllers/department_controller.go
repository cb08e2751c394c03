package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"

	"github.com/blogem/asset-tracker/middleware"
	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/services"
)

// DepartmentController handles department pages and administration
type DepartmentController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewDepartmentController creates a new department controller
func NewDepartmentController(services *services.Services, logger *slog.Logger) *DepartmentController {
	return &DepartmentController{
		services: services,
		logger:   logger,
	}
}

// DepartmentListData is the department list view model
type DepartmentListData struct {
	Departments []models.DepartmentDetails
}

// DepartmentDetailData is the department page view model
type DepartmentDetailData struct {
	Department *models.DepartmentDetails
	Employees  []models.ProfileDetails
	Assets     []models.AssetDetails
}

// Index handles GET /departments
func (c *DepartmentController) Index(w http.ResponseWriter, r *http.Request) {
	departments, err := c.services.Organization.ListDepartments(r.Context())
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	renderTemplate(w, "departments.html", newPage(r, "Departments", "departments", &DepartmentListData{
		Departments: departments,
	}))
}

// Show handles GET /departments/{id}
func (c *DepartmentController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	department, err := c.services.Organization.GetDepartment(r.Context(), id)
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	profiles, err := c.services.Profiles.ListProfiles(r.Context())
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}
	employees := []models.ProfileDetails{}
	for _, profile := range profiles {
		if profile.DepartmentID.ValueOrZero() == id {
			employees = append(employees, profile)
		}
	}

	assets, err := c.services.Assets.ListAssets(r.Context(), models.AssetFilter{DepartmentID: id})
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	renderTemplate(w, "department_detail.html", newPage(r, department.Name, "departments", &DepartmentDetailData{
		Department: department,
		Employees:  employees,
		Assets:     assets,
	}))
}

// Create handles POST /departments
func (c *DepartmentController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	department, err := c.services.Organization.CreateDepartment(r.Context(), lookupFormFromRequest(r))
	if err == nil {
		setFlash(r, middleware.SessionFlashSuccessKey, "Department "+department.Name+" created.")
	}
	c.finish(w, r, err, "A department with this name already exists.", "/departments")
}

// Update handles POST /departments/{id}/edit
func (c *DepartmentController) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	_, err := c.services.Organization.UpdateDepartment(r.Context(), id, lookupFormFromRequest(r))
	if err == nil {
		setFlash(r, middleware.SessionFlashSuccessKey, "Department updated.")
	}
	c.finish(w, r, err, "A department with this name already exists.", "/departments/"+id)
}

// Delete handles POST /departments/{id}/delete
func (c *DepartmentController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.services.Organization.DeleteDepartment(r.Context(), chi.URLParam(r, "id"))
	if err == nil {
		setFlash(r, middleware.SessionFlashSuccessKey, "Department deleted.")
	}
	c.finish(w, r, err, "This department is still assigned to employees or assets.", "/departments")
}

func (c *DepartmentController) finish(w http.ResponseWriter, r *http.Request, err error, conflict, redirect string) {
	if !flashLookupError(r, err, conflict) && err != nil {
		renderError(w, r, c.logger, err)
		return
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// flashLookupError turns validation and conflict failures into an error flash.
// It reports whether err was handled that way.
func flashLookupError(r *http.Request, err error, conflict string) bool {
	switch {
	case models.IsValidationError(err):
		setFlash(r, sessionFlashErrorKey, strings.Join(errorMessages(err), " "))
		return true
	case errors.Is(err, models.ErrConflict):
		setFlash(r, sessionFlashErrorKey, conflict)
		return true
	default:
		return false
	}
}

func lookupFormFromRequest(r *http.Request) *models.LookupForm {
	return &models.LookupForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}
}
