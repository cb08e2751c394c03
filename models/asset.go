package models

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v5"
)

// AssetStatus is the lifecycle state of a hardware asset
type AssetStatus string

const (
	StatusAvailable   AssetStatus = "available"
	StatusAssigned    AssetStatus = "assigned"
	StatusUnderRepair AssetStatus = "under_repair"
	StatusRetired     AssetStatus = "retired"
)

// AllAssetStatuses returns every status in display order
func AllAssetStatuses() []AssetStatus {
	return []AssetStatus{StatusAvailable, StatusAssigned, StatusUnderRepair, StatusRetired}
}

// IsValid reports whether the status is known
func (s AssetStatus) IsValid() bool {
	for _, known := range AllAssetStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns a human readable status name
func (s AssetStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// Asset represents a tracked piece of hardware
type Asset struct {
	ID             string      `json:"id" db:"id"`
	AssetTag       string      `json:"asset_tag" db:"asset_tag"`
	Name           string      `json:"name" db:"name"`
	Description    null.String `json:"description" db:"description"`
	CategoryID     null.String `json:"category_id" db:"category_id"`
	Brand          null.String `json:"brand" db:"brand"`
	Model          null.String `json:"model" db:"model"`
	SerialNumber   null.String `json:"serial_number" db:"serial_number"`
	PurchaseDate   null.String `json:"purchase_date" db:"purchase_date"`
	PurchaseCost   null.Float  `json:"purchase_cost" db:"purchase_cost"`
	WarrantyExpiry null.String `json:"warranty_expiry" db:"warranty_expiry"`
	Status         AssetStatus `json:"status" db:"status"`
	Location       null.String `json:"location" db:"location"`
	Notes          null.String `json:"notes" db:"notes"`
	AssignedTo     null.String `json:"assigned_to" db:"assigned_to"`
	AssignedDate   null.Time   `json:"assigned_date" db:"assigned_date"`
	DepartmentID   null.String `json:"department_id" db:"department_id"`
	CreatedBy      null.String `json:"created_by" db:"created_by"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
}

// AssetDetails is an Asset with its lookups resolved for display
type AssetDetails struct {
	Asset

	CategoryName      null.String `json:"category_name"`
	DepartmentName    null.String `json:"department_name"`
	AssigneeFirstName null.String `json:"assignee_first_name"`
	AssigneeLastName  null.String `json:"assignee_last_name"`
	AssigneeEmail     null.String `json:"assignee_email"`
}

// AssigneeDisplayName returns the assignee's full name or email, or "" when unassigned
func (a AssetDetails) AssigneeDisplayName() string {
	if !a.AssignedTo.Valid {
		return ""
	}
	fullName := strings.TrimSpace(a.AssigneeFirstName.ValueOrZero() + " " + a.AssigneeLastName.ValueOrZero())
	if fullName != "" {
		return fullName
	}
	if a.AssigneeEmail.ValueOrZero() != "" {
		return a.AssigneeEmail.String
	}
	return a.AssignedTo.String
}

// IsAssigned reports whether the asset currently has an assignee
func (a *Asset) IsAssigned() bool {
	return a.AssignedTo.Valid && a.AssignedTo.String != ""
}

// AuditSubjectID implements AuditSubject
func (a *Asset) AuditSubjectID() string {
	return a.ID
}

// CreationSnapshot is the salient field set captured when an asset is created
func (a *Asset) CreationSnapshot() FieldMap {
	return FieldMap{
		"name":          String(a.Name),
		"asset_tag":     String(a.AssetTag),
		"status":        String(string(a.Status)),
		"category_id":   nullString(a.CategoryID),
		"brand":         nullString(a.Brand),
		"model":         nullString(a.Model),
		"serial_number": nullString(a.SerialNumber),
		"department_id": nullString(a.DepartmentID),
	}
}

// DeletionSnapshot is the salient field set captured when an asset is deleted
func (a *Asset) DeletionSnapshot() FieldMap {
	return FieldMap{
		"name":      String(a.Name),
		"asset_tag": String(a.AssetTag),
		"status":    String(string(a.Status)),
	}
}

// EditableSnapshot covers every field the edit form can change
func (a *Asset) EditableSnapshot() FieldMap {
	cost := Null()
	if a.PurchaseCost.Valid {
		cost = Number(a.PurchaseCost.Float64)
	}

	return FieldMap{
		"asset_tag":       String(a.AssetTag),
		"name":            String(a.Name),
		"description":     nullString(a.Description),
		"category_id":     nullString(a.CategoryID),
		"brand":           nullString(a.Brand),
		"model":           nullString(a.Model),
		"serial_number":   nullString(a.SerialNumber),
		"purchase_date":   nullString(a.PurchaseDate),
		"purchase_cost":   cost,
		"warranty_expiry": nullString(a.WarrantyExpiry),
		"location":        nullString(a.Location),
		"notes":           nullString(a.Notes),
		"department_id":   nullString(a.DepartmentID),
	}
}

func nullString(s null.String) FieldValue {
	if !s.Valid {
		return Null()
	}
	return String(s.String)
}

// AssetFilter narrows the asset list
type AssetFilter struct {
	Search       string
	Status       AssetStatus
	DepartmentID string
	AssignedTo   string
}

// AssetForm represents form data for creating/updating assets
type AssetForm struct {
	AssetTag       string `json:"asset_tag"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	CategoryID     string `json:"category_id"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	SerialNumber   string `json:"serial_number"`
	PurchaseDate   string `json:"purchase_date"`
	PurchaseCost   string `json:"purchase_cost"`
	WarrantyExpiry string `json:"warranty_expiry"`
	Location       string `json:"location"`
	Notes          string `json:"notes"`
	DepartmentID   string `json:"department_id"`
}

// NewAssetForm pre-fills a form from an existing asset
func NewAssetForm(a *Asset) *AssetForm {
	form := &AssetForm{
		AssetTag:       a.AssetTag,
		Name:           a.Name,
		Description:    a.Description.ValueOrZero(),
		CategoryID:     a.CategoryID.ValueOrZero(),
		Brand:          a.Brand.ValueOrZero(),
		Model:          a.Model.ValueOrZero(),
		SerialNumber:   a.SerialNumber.ValueOrZero(),
		PurchaseDate:   a.PurchaseDate.ValueOrZero(),
		WarrantyExpiry: a.WarrantyExpiry.ValueOrZero(),
		Location:       a.Location.ValueOrZero(),
		Notes:          a.Notes.ValueOrZero(),
		DepartmentID:   a.DepartmentID.ValueOrZero(),
	}
	if a.PurchaseCost.Valid {
		form.PurchaseCost = strconv.FormatFloat(a.PurchaseCost.Float64, 'f', -1, 64)
	}
	return form
}

// Validate validates the asset form data
func (f *AssetForm) Validate() ValidationErrors {
	var errs ValidationErrors

	tag := strings.TrimSpace(f.AssetTag)
	if tag == "" {
		errs = append(errs, ValidationError{Field: "asset_tag", Message: "Asset tag is required"})
	} else if len(tag) > 50 {
		errs = append(errs, ValidationError{Field: "asset_tag", Message: "Asset tag must be less than 50 characters"})
	}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "Name is required"})
	} else if len(name) > 255 {
		errs = append(errs, ValidationError{Field: "name", Message: "Name must be less than 255 characters"})
	}

	if cost := strings.TrimSpace(f.PurchaseCost); cost != "" {
		value, err := strconv.ParseFloat(cost, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			errs = append(errs, ValidationError{Field: "purchase_cost", Message: "Purchase cost must be a number"})
		} else if value < 0 {
			errs = append(errs, ValidationError{Field: "purchase_cost", Message: "Purchase cost cannot be negative"})
		}
	}

	if date := strings.TrimSpace(f.PurchaseDate); date != "" {
		if _, err := ParseDate(date); err != nil {
			errs = append(errs, ValidationError{Field: "purchase_date", Message: "Purchase date must be YYYY-MM-DD"})
		}
	}

	if date := strings.TrimSpace(f.WarrantyExpiry); date != "" {
		if _, err := ParseDate(date); err != nil {
			errs = append(errs, ValidationError{Field: "warranty_expiry", Message: "Warranty expiry must be YYYY-MM-DD"})
		}
	}

	return errs
}

// ApplyTo copies the validated form values onto an asset
func (f *AssetForm) ApplyTo(a *Asset) {
	a.AssetTag = strings.TrimSpace(f.AssetTag)
	a.Name = strings.TrimSpace(f.Name)
	a.Description = optionalString(f.Description)
	a.CategoryID = optionalString(f.CategoryID)
	a.Brand = optionalString(f.Brand)
	a.Model = optionalString(f.Model)
	a.SerialNumber = optionalString(f.SerialNumber)
	a.PurchaseDate = optionalString(f.PurchaseDate)
	a.WarrantyExpiry = optionalString(f.WarrantyExpiry)
	a.Location = optionalString(f.Location)
	a.Notes = optionalString(f.Notes)
	a.DepartmentID = optionalString(f.DepartmentID)

	a.PurchaseCost = null.Float{}
	if cost := strings.TrimSpace(f.PurchaseCost); cost != "" {
		if value, err := strconv.ParseFloat(cost, 64); err == nil {
			a.PurchaseCost = null.FloatFrom(value)
		}
	}
}

func optionalString(s string) null.String {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

// AssetStats summarises the inventory for the dashboard
type AssetStats struct {
	Total    int
	ByStatus map[AssetStatus]int
}
