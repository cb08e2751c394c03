package models

import (
	"time"

	"github.com/guregu/null/v5"
)

// ChangeRecordExportColumns is the column order of a flattened change record
var ChangeRecordExportColumns = []string{
	"asset_name",
	"asset_tag",
	"action",
	"performed_by",
	"performed_at",
	"old_values",
	"new_values",
	"notes",
}

// AssetExportColumns is the column order of a flattened asset
var AssetExportColumns = []string{
	"asset_tag",
	"name",
	"description",
	"category",
	"brand",
	"model",
	"serial_number",
	"purchase_date",
	"purchase_cost",
	"warranty_expiry",
	"status",
	"location",
	"assigned_to",
	"assigned_date",
	"department",
	"notes",
	"created_at",
	"updated_at",
}

// EmployeeExportColumns is the column order of a flattened employee
var EmployeeExportColumns = []string{
	"first_name",
	"last_name",
	"email",
	"role",
	"department",
	"assigned_assets",
	"created_at",
	"updated_at",
}

// DepartmentExportColumns is the column order of a flattened department
var DepartmentExportColumns = []string{
	"name",
	"description",
	"employees",
	"assets",
	"created_at",
	"updated_at",
}

// FlattenChangeRecord maps a record to flat column -> primitive values for tabular export.
// Snapshots are serialised as JSON strings.
func FlattenChangeRecord(d ChangeRecordDetails) (map[string]any, error) {
	oldValues, err := d.BeforeState.Encode()
	if err != nil {
		return nil, err
	}
	newValues, err := d.AfterState.Encode()
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"asset_name":   d.subjectField(d.SubjectName, "name"),
		"asset_tag":    d.subjectField(d.SubjectTag, "asset_tag"),
		"action":       string(d.Action),
		"performed_by": d.ActorDisplayName(),
		"performed_at": d.OccurredAt.UTC().Format(time.RFC3339),
		"old_values":   oldValues,
		"new_values":   newValues,
		"notes":        d.Notes.ValueOrZero(),
	}, nil
}

// subjectField prefers the joined value and falls back to the snapshots once the subject is gone
func (d ChangeRecordDetails) subjectField(joined null.String, key string) string {
	if joined.ValueOrZero() != "" {
		return joined.String
	}
	for _, state := range []FieldMap{d.BeforeState, d.AfterState} {
		if value, ok := state[key]; ok && value.Kind() == KindString && value.Display() != "" {
			return value.Display()
		}
	}
	return ""
}

// FlattenAsset maps an asset to flat column -> primitive values for tabular export
func FlattenAsset(a AssetDetails) map[string]any {
	var purchaseCost any = ""
	if a.PurchaseCost.Valid {
		purchaseCost = a.PurchaseCost.Float64
	}

	var assignedDate string
	if a.AssignedDate.Valid {
		assignedDate = a.AssignedDate.Time.UTC().Format(time.RFC3339)
	}

	return map[string]any{
		"asset_tag":       a.AssetTag,
		"name":            a.Name,
		"description":     a.Description.ValueOrZero(),
		"category":        a.CategoryName.ValueOrZero(),
		"brand":           a.Brand.ValueOrZero(),
		"model":           a.Model.ValueOrZero(),
		"serial_number":   a.SerialNumber.ValueOrZero(),
		"purchase_date":   a.PurchaseDate.ValueOrZero(),
		"purchase_cost":   purchaseCost,
		"warranty_expiry": a.WarrantyExpiry.ValueOrZero(),
		"status":          string(a.Status),
		"location":        a.Location.ValueOrZero(),
		"assigned_to":     a.AssigneeDisplayName(),
		"assigned_date":   assignedDate,
		"department":      a.DepartmentName.ValueOrZero(),
		"notes":           a.Notes.ValueOrZero(),
		"created_at":      a.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":      a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// FlattenEmployee maps an employee profile to flat column -> primitive values for tabular export
func FlattenEmployee(p ProfileDetails) map[string]any {
	return map[string]any{
		"first_name":      p.FirstName.ValueOrZero(),
		"last_name":       p.LastName.ValueOrZero(),
		"email":           p.Email,
		"role":            string(p.Role),
		"department":      p.DepartmentName.ValueOrZero(),
		"assigned_assets": p.AssignedAssetsCount,
		"created_at":      p.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":      p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// FlattenDepartment maps a department to flat column -> primitive values for tabular export
func FlattenDepartment(d DepartmentDetails) map[string]any {
	return map[string]any{
		"name":        d.Name,
		"description": d.Description.ValueOrZero(),
		"employees":   d.EmployeeCount,
		"assets":      d.AssetCount,
		"created_at":  d.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at":  d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
