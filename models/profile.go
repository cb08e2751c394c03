package models

import (
	"strings"
	"time"

	"github.com/guregu/null/v5"
)

// Role gates what a user can do
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleITStaff Role = "it_staff"
	RoleViewer  Role = "viewer"
)

// AllRoles returns every role in display order
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleITStaff, RoleViewer}
}

// IsValid reports whether the role is known
func (r Role) IsValid() bool {
	return r.In(AllRoles()...)
}

// In reports whether r is one of roles
func (r Role) In(roles ...Role) bool {
	for _, role := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanManageAssets reports whether the role may mutate assets
func (r Role) CanManageAssets() bool {
	return r.In(RoleAdmin, RoleITStaff)
}

// CanExportData reports whether the role may export data
func (r Role) CanExportData() bool {
	return r.In(RoleAdmin, RoleITStaff)
}

// CanManageUsers reports whether the role may change roles and run maintenance
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// DisplayName returns the human readable role name
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleITStaff:
		return "IT Staff"
	case RoleViewer:
		return "Viewer"
	default:
		return "Unknown"
	}
}

// Profile is an employee known to the system, keyed by the identity provider subject
type Profile struct {
	ID           string      `json:"id" db:"id"`
	Email        string      `json:"email" db:"email"`
	FirstName    null.String `json:"first_name" db:"first_name"`
	LastName     null.String `json:"last_name" db:"last_name"`
	Role         Role        `json:"role" db:"role"`
	DepartmentID null.String `json:"department_id" db:"department_id"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// DisplayName returns the full name, falling back to email
func (p *Profile) DisplayName() string {
	fullName := strings.TrimSpace(p.FirstName.ValueOrZero() + " " + p.LastName.ValueOrZero())
	if fullName != "" {
		return fullName
	}
	return p.Email
}

// ProfileDetails is a Profile with its department and asset count resolved
type ProfileDetails struct {
	Profile

	DepartmentName      null.String `json:"department_name"`
	AssignedAssetsCount int         `json:"assigned_assets_count"`
}
