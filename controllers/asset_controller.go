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
	"github.com/blogem/asset-tracker/userctx"
)

// assetHistoryLimit is the number of entries shown on the asset page
const assetHistoryLimit = 10

// AssetController handles asset inventory requests
type AssetController struct {
	services *services.Services
	logger   *slog.Logger
}

// NewAssetController creates a new asset controller
func NewAssetController(services *services.Services, logger *slog.Logger) *AssetController {
	return &AssetController{
		services: services,
		logger:   logger,
	}
}

// AssetListData is the asset list view model
type AssetListData struct {
	Assets   []models.AssetDetails
	Filter   models.AssetFilter
	Statuses []models.AssetStatus
}

// AssetDetailData is the asset page view model
type AssetDetailData struct {
	Asset              *models.AssetDetails
	History            []services.HistoryEntry
	HistoryUnavailable bool
	Employees          []models.ProfileDetails
	Statuses           []models.AssetStatus
}

// AssetFormData is the create/edit form view model
type AssetFormData struct {
	Form    *models.AssetForm
	Options *services.AssetFormOptions
	Errors  []string
	Action  string
	Cancel  string
	Editing bool
}

// Index handles GET /assets
func (c *AssetController) Index(w http.ResponseWriter, r *http.Request) {
	filter := assetFilterFromQuery(r)

	assets, err := c.services.Assets.ListAssets(r.Context(), filter)
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	renderTemplate(w, "assets.html", newPage(r, "Assets", "assets", &AssetListData{
		Assets:   assets,
		Filter:   filter,
		Statuses: models.AllAssetStatuses(),
	}))
}

// Show handles GET /assets/{id}
// A failed history read still renders the asset with "Activity unavailable".
func (c *AssetController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	asset, err := c.services.Assets.GetAsset(r.Context(), id)
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	data := &AssetDetailData{
		Asset:    asset,
		Statuses: models.AllAssetStatuses(),
	}

	history, err := c.services.History.SubjectHistory(r.Context(), id, assetHistoryLimit)
	if err != nil {
		userctx.Logger(r.Context(), c.logger).ErrorContext(r.Context(), "failed to load asset history", "subject_id", id, "error", err)
		data.HistoryUnavailable = true
	} else {
		data.History = history
	}

	if userctx.GetRole(r.Context()).CanManageAssets() && !asset.IsAssigned() {
		employees, err := c.services.Profiles.ListProfiles(r.Context())
		if err != nil {
			renderError(w, r, c.logger, err)
			return
		}
		data.Employees = employees
	}

	renderTemplate(w, "asset_detail.html", newPage(r, asset.Name, "assets", data))
}

// New handles GET /assets/new
func (c *AssetController) New(w http.ResponseWriter, r *http.Request) {
	c.renderForm(w, r, http.StatusOK, "New Asset", &AssetFormData{
		Form:   &models.AssetForm{},
		Action: "/assets/new",
		Cancel: "/assets",
	})
}

// Create handles POST /assets/new
func (c *AssetController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := assetFormFromRequest(r)
	result, err := c.services.Assets.CreateAsset(r.Context(), form)
	if err != nil {
		if status := errorStatus(err); status == http.StatusBadRequest || status == http.StatusConflict {
			c.renderForm(w, r, status, "New Asset", &AssetFormData{
				Form:   form,
				Errors: errorMessages(err),
				Action: "/assets/new",
				Cancel: "/assets",
			})
			return
		}
		renderError(w, r, c.logger, err)
		return
	}

	flashMutation(r, result, "Asset created")
	http.Redirect(w, r, "/assets/"+result.Asset.ID, http.StatusSeeOther)
}

// Edit handles GET /assets/{id}/edit
func (c *AssetController) Edit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	asset, err := c.services.Assets.GetAsset(r.Context(), id)
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	c.renderForm(w, r, http.StatusOK, "Edit "+asset.Name, &AssetFormData{
		Form:    models.NewAssetForm(&asset.Asset),
		Action:  "/assets/" + id + "/edit",
		Cancel:  "/assets/" + id,
		Editing: true,
	})
}

// Update handles POST /assets/{id}/edit
func (c *AssetController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := assetFormFromRequest(r)
	result, err := c.services.Assets.UpdateAsset(r.Context(), id, form, r.FormValue("change_notes"))
	if err != nil {
		if status := errorStatus(err); status == http.StatusBadRequest || status == http.StatusConflict {
			c.renderForm(w, r, status, "Edit Asset", &AssetFormData{
				Form:    form,
				Errors:  errorMessages(err),
				Action:  "/assets/" + id + "/edit",
				Cancel:  "/assets/" + id,
				Editing: true,
			})
			return
		}
		renderError(w, r, c.logger, err)
		return
	}

	if result.Record == nil && !result.Degraded() {
		setFlash(r, middleware.SessionFlashWarningKey, "No changes to save.")
	} else {
		flashMutation(r, result, "Asset updated")
	}
	http.Redirect(w, r, "/assets/"+id, http.StatusSeeOther)
}

// Assign handles POST /assets/{id}/assign
func (c *AssetController) Assign(w http.ResponseWriter, r *http.Request) {
	c.mutate(w, r, "Asset assigned", func(id string) (*services.MutationResult, error) {
		return c.services.Assets.AssignAsset(r.Context(), id, r.FormValue("assignee_id"), r.FormValue("notes"))
	})
}

// Unassign handles POST /assets/{id}/unassign
func (c *AssetController) Unassign(w http.ResponseWriter, r *http.Request) {
	c.mutate(w, r, "Asset unassigned", func(id string) (*services.MutationResult, error) {
		return c.services.Assets.UnassignAsset(r.Context(), id, r.FormValue("notes"))
	})
}

// ChangeStatus handles POST /assets/{id}/status
func (c *AssetController) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	c.mutate(w, r, "Status changed", func(id string) (*services.MutationResult, error) {
		return c.services.Assets.ChangeStatus(r.Context(), id, models.AssetStatus(r.FormValue("status")), r.FormValue("notes"))
	})
}

// Delete handles POST /assets/{id}/delete
func (c *AssetController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := c.services.Assets.DeleteAsset(r.Context(), id, r.FormValue("notes"))
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}

	flashMutation(r, result, "Asset deleted")
	http.Redirect(w, r, "/assets", http.StatusSeeOther)
}

// mutate runs a state change and redirects back to the asset page.
// Validation failures come back as an error flash instead of an error page.
func (c *AssetController) mutate(w http.ResponseWriter, r *http.Request, success string, fn func(id string) (*services.MutationResult, error)) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := fn(id)
	switch {
	case models.IsValidationError(err):
		setFlash(r, sessionFlashErrorKey, strings.Join(errorMessages(err), " "))
	case err != nil:
		renderError(w, r, c.logger, err)
		return
	default:
		flashMutation(r, result, success)
	}

	http.Redirect(w, r, "/assets/"+id, http.StatusSeeOther)
}

func (c *AssetController) renderForm(w http.ResponseWriter, r *http.Request, status int, title string, data *AssetFormData) {
	options, err := c.services.Assets.FormOptions(r.Context())
	if err != nil {
		renderError(w, r, c.logger, err)
		return
	}
	data.Options = options

	renderTemplateWithStatus(w, status, "asset_form.html", newPage(r, title, "assets", data))
}

func assetFilterFromQuery(r *http.Request) models.AssetFilter {
	query := r.URL.Query()
	filter := models.AssetFilter{
		Search:       strings.TrimSpace(query.Get("q")),
		DepartmentID: query.Get("department_id"),
		AssignedTo:   query.Get("assigned_to"),
	}
	if status := models.AssetStatus(query.Get("status")); status.IsValid() {
		filter.Status = status
	}
	return filter
}

func assetFormFromRequest(r *http.Request) *models.AssetForm {
	return &models.AssetForm{
		AssetTag:       r.FormValue("asset_tag"),
		Name:           r.FormValue("name"),
		Description:    r.FormValue("description"),
		CategoryID:     r.FormValue("category_id"),
		Brand:          r.FormValue("brand"),
		Model:          r.FormValue("model"),
		SerialNumber:   r.FormValue("serial_number"),
		PurchaseDate:   r.FormValue("purchase_date"),
		PurchaseCost:   r.FormValue("purchase_cost"),
		WarrantyExpiry: r.FormValue("warranty_expiry"),
		Location:       r.FormValue("location"),
		Notes:          r.FormValue("notes"),
		DepartmentID:   r.FormValue("department_id"),
	}
}

// errorMessages flattens validation errors for display
func errorMessages(err error) []string {
	var multi models.ValidationErrors
	if errors.As(err, &multi) {
		return multi.GetMessages()
	}
	var single models.ValidationError
	if errors.As(err, &single) {
		return []string{single.Message}
	}
	if errors.Is(err, models.ErrConflict) {
		return []string{"An asset with this tag or serial number already exists"}
	}
	return []string{err.Error()}
}
