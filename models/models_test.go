package models

import (
	"testing"
	"time"

	"github.com/guregu/null/v5"
)

// Test AssetForm validation
func TestAssetFormValidation(t *testing.T) {
	// Test valid form
	validForm := AssetForm{
		AssetTag:     "LT-001",
		Name:         "Dell E6420",
		PurchaseCost: "1299.99",
		PurchaseDate: "2023-04-01",
	}
	errors := validForm.Validate()
	if errors.HasErrors() {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test invalid form
	invalidForm := AssetForm{
		AssetTag:       "",    // Empty tag
		Name:           "   ", // Blank name
		PurchaseCost:   "-5",
		WarrantyExpiry: "31/12/2025",
	}
	errors = invalidForm.Validate()
	if len(errors) != 4 {
		t.Errorf("Expected 4 errors for invalid form, got: %v", errors)
	}
	if errors.Err() == nil {
		t.Error("Expected Err() to return an error when validation fails")
	}

	if (ValidationErrors{}).Err() != nil {
		t.Error("Expected Err() to return nil without validation errors")
	}
}

// Test that non-finite purchase costs are rejected
func TestAssetFormRejectsNonFiniteCost(t *testing.T) {
	for _, cost := range []string{"Inf", "+Inf", "-Inf", "NaN", "infinity"} {
		form := AssetForm{AssetTag: "LT-001", Name: "Dell E6420", PurchaseCost: cost}
		errors := form.Validate()
		if len(errors) != 1 || errors[0].Field != "purchase_cost" {
			t.Errorf("Expected a purchase_cost error for %q, got: %v", cost, errors)
		}
	}
}

// Test that a form round-trips through an asset
func TestAssetFormApply(t *testing.T) {
	asset := &Asset{
		AssetTag:     "LT-001",
		Name:         "Dell E6420",
		Location:     null.StringFrom("HQ"),
		PurchaseCost: null.FloatFrom(800),
	}

	form := NewAssetForm(asset)
	if form.PurchaseCost != "800" {
		t.Errorf("Expected purchase cost '800', got %q", form.PurchaseCost)
	}

	form.Location = "  "
	form.Brand = " Dell "
	form.ApplyTo(asset)

	if asset.Location.Valid {
		t.Errorf("Expected blank location to be cleared, got %q", asset.Location.String)
	}
	if asset.Brand.String != "Dell" {
		t.Errorf("Expected trimmed brand 'Dell', got %q", asset.Brand.String)
	}
	if asset.PurchaseCost.Float64 != 800 {
		t.Errorf("Expected purchase cost to survive, got %v", asset.PurchaseCost)
	}
}

// Test role gating
func TestRoles(t *testing.T) {
	tests := []struct {
		role          Role
		manageAssets  bool
		exportData    bool
		manageUsers   bool
		expectedValid bool
	}{
		{RoleAdmin, true, true, true, true},
		{RoleITStaff, true, true, false, true},
		{RoleViewer, false, false, false, true},
		{Role(""), false, false, false, false},
		{Role("owner"), false, false, false, false},
	}

	for _, tt := range tests {
		if got := tt.role.CanManageAssets(); got != tt.manageAssets {
			t.Errorf("%q CanManageAssets = %v, want %v", tt.role, got, tt.manageAssets)
		}
		if got := tt.role.CanExportData(); got != tt.exportData {
			t.Errorf("%q CanExportData = %v, want %v", tt.role, got, tt.exportData)
		}
		if got := tt.role.CanManageUsers(); got != tt.manageUsers {
			t.Errorf("%q CanManageUsers = %v, want %v", tt.role, got, tt.manageUsers)
		}
		if got := tt.role.IsValid(); got != tt.expectedValid {
			t.Errorf("%q IsValid = %v, want %v", tt.role, got, tt.expectedValid)
		}
	}
}

// Test date utility functions
func TestDateUtilities(t *testing.T) {
	testDate := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)

	if formatted := FormatDate(testDate); formatted != "2024-01-15" {
		t.Errorf("Expected '2024-01-15', got '%s'", formatted)
	}

	if formatted := FormatDateTime(testDate); formatted != "2024-01-15 14:30" {
		t.Errorf("Expected '2024-01-15 14:30', got '%s'", formatted)
	}

	parsed, err := ParseDate("2024-01-15")
	if err != nil {
		t.Errorf("Failed to parse date: %v", err)
	}
	if !parsed.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Parsed date is incorrect: %v", parsed)
	}

	tests := []struct {
		ago      time.Duration
		expected string
	}{
		{10 * time.Second, "just now"},
		{time.Minute, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{3 * time.Hour, "3 hours ago"},
		{2 * 24 * time.Hour, "2 days ago"},
		{45 * 24 * time.Hour, "2023-12-01"},
	}
	for _, tt := range tests {
		if got := TimeAgo(testDate.Add(-tt.ago), testDate); got != tt.expected {
			t.Errorf("TimeAgo(%v) = %q, want %q", tt.ago, got, tt.expected)
		}
	}
}

// Test date range buckets
func TestDateRangeSince(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 45, 0, 0, time.UTC)

	since, ok := RangeToday.Since(now)
	if !ok || !since.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected start of day, got %v (%v)", since, ok)
	}

	since, ok = RangeWeek.Since(now)
	if !ok || !since.Equal(now.Add(-7*24*time.Hour)) {
		t.Errorf("Expected 7 days back, got %v", since)
	}

	since, ok = RangeMonth.Since(now)
	if !ok || !since.Equal(now.Add(-30*24*time.Hour)) {
		t.Errorf("Expected 30 days back, got %v", since)
	}

	if _, ok := RangeAll.Since(now); ok {
		t.Error("Expected no lower bound for all")
	}

	if ParseDateRange("fortnight") != RangeAll {
		t.Error("Expected unknown range to fall back to all")
	}
	if ParseDateRange("week") != RangeWeek {
		t.Error("Expected week range")
	}
}
