package controllers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/asset-tracker/middleware"
	"github.com/blogem/asset-tracker/models"
	"github.com/blogem/asset-tracker/services"
)

// CategoryController handles asset category administration
type CategoryController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewCategoryController creates a new category controller
func NewCategoryController(services *services.Services, logger *slog.Logger) *CategoryController {
	return &CategoryController{
		services: services,
		logger:   logger,
	}
}

// CategoryListData is the category list view model
type CategoryListData struct {
	Categories []models.CategoryDetails
}

// Index handles GET /categories
func (c *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	categories, err := c.services.Organization.ListCategories(r.Context())
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	renderTemplate(w, "categories.html", newPage(r, "Categories", "categories", &CategoryListData{
		Categories: categories,
	}))
}

// Create handles POST /categories
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	category, err := c.services.Organization.CreateCategory(r.Context(), lookupFormFromRequest(r))
	if err == nil {
		setFlash(r, middleware.SessionFlashSuccessKey, "Category "+category.Name+" created.")
	}
	c.finish(w, r, err, "A category with this name already exists.")
}

// Update handles POST /categories/{id}/edit
func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	_, err := c.services.Organization.UpdateCategory(r.Context(), chi.URLParam(r, "id"), lookupFormFromRequest(r))
	if err == nil {
		setFlash(r, middleware.SessionFlashSuccessKey, "Category updated.")
	}
	c.finish(w, r, err, "A category with this name already exists.")
}

// Delete handles POST /categories/{id}/delete
func (c *CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.services.Organization.DeleteCategory(r.Context(), chi.URLParam(r, "id"))
	if err == nil {
		setFlash(r, middleware.SessionFlashSuccessKey, "Category deleted.")
	}
	c.finish(w, r, err, "This category is still used by assets.")
}

func (c *CategoryController) finish(w http.ResponseWriter, r *http.Request, err error, conflict string) {
	if !flashLookupError(r, err, conflict) && err != nil {
		renderError(w, r, c.logger, err)
		return
	}
	http.Redirect(w, r, "/categories", http.StatusSeeOther)
}
