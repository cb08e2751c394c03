package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	ChangeRecords         ChangeRecordRepository
	ChangeRecordRetention ChangeRecordRetentionRepository
	Assets                AssetRepository
	Profiles              ProfileRepository
	Departments           DepartmentRepository
	Categories            CategoryRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		ChangeRecords:         NewChangeRecordRepository(db),
		ChangeRecordRetention: NewChangeRecordRetentionRepository(db),
		Assets:                NewAssetRepository(db),
		Profiles:              NewProfileRepository(db),
		Departments:           NewDepartmentRepository(db),
		Categories:            NewCategoryRepository(db),
	}
}
