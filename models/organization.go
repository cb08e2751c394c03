package models

import (
	"strings"
	"time"

	"github.com/guregu/null/v5"
)

// Category is an asset category lookup
type Category struct {
	ID          string      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Description null.String `json:"description" db:"description"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// CategoryDetails is a Category with the number of assets filed under it
type CategoryDetails struct {
	Category

	AssetCount int `json:"asset_count"`
}

// Department is an organizational unit assets and employees belong to
type Department struct {
	ID          string      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Description null.String `json:"description" db:"description"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// DepartmentDetails is a Department with its member and asset counts
type DepartmentDetails struct {
	Department

	EmployeeCount int `json:"employee_count"`
	AssetCount    int `json:"asset_count"`
}

// InUse reports whether employees or assets still reference the department
func (d DepartmentDetails) InUse() bool {
	return d.EmployeeCount > 0 || d.AssetCount > 0
}

// LookupForm is the name/description form shared by departments and categories
type LookupForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate validates the lookup form data
func (f *LookupForm) Validate() ValidationErrors {
	var errs ValidationErrors

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "Name is required"})
	} else if len(name) > 100 {
		errs = append(errs, ValidationError{Field: "name", Message: "Name must be less than 100 characters"})
	}

	if len(strings.TrimSpace(f.Description)) > 500 {
		errs = append(errs, ValidationError{Field: "description", Message: "Description must be less than 500 characters"})
	}

	return errs
}

// ApplyToDepartment copies the validated values onto d
func (f *LookupForm) ApplyToDepartment(d *Department) {
	d.Name = strings.TrimSpace(f.Name)
	d.Description = optionalString(f.Description)
}

// ApplyToCategory copies the validated values onto c
func (f *LookupForm) ApplyToCategory(c *Category) {
	c.Name = strings.TrimSpace(f.Name)
	c.Description = optionalString(f.Description)
}
