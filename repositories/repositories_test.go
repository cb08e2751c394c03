package repositories

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/asset-tracker/database"
	"github.com/blogem/asset-tracker/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestDBAt(t *testing.T, dbPath string) *sql.DB {
	t.Helper()

	// Initialize test database using the actual migration system
	db, err := database.Initialize(context.Background(), dbPath, testLogger())
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func setupTestDB(t *testing.T) *sql.DB {
	return setupTestDBAt(t, filepath.Join(t.TempDir(), "test.db"))
}

func createTestProfile(t *testing.T, db *sql.DB, id, firstName, lastName, email string) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		ID:        id,
		Email:     email,
		FirstName: null.StringFrom(firstName),
		LastName:  null.StringFrom(lastName),
	}
	require.NoError(t, NewProfileRepository(db).Upsert(context.Background(), profile))
	return profile
}

func createTestAsset(t *testing.T, db *sql.DB, tag, name string) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		AssetTag: tag,
		Name:     name,
		Status:   models.StatusAvailable,
	}
	require.NoError(t, NewAssetRepository(db).Create(context.Background(), asset))
	return asset
}

func statusChange(subjectID, from, to string) *models.ChangeRecord {
	return &models.ChangeRecord{
		SubjectID:   subjectID,
		Action:      models.ActionStatusChanged,
		BeforeState: models.FieldMap{"status": models.String(from)},
		AfterState:  models.FieldMap{"status": models.String(to)},
	}
}

func TestChangeRecordRepository_Append(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewChangeRecordRepository(db)
	createTestProfile(t, db, "user-1", "Ada", "Lovelace", "ada@example.com")

	record := statusChange("asset-1", "available", "assigned")
	record.ActorID = null.StringFrom("user-1")

	before := time.Now().UTC().Add(-time.Second)
	require.NoError(t, repo.Append(ctx, record))

	assert.NotEmpty(t, record.ID)
	assert.False(t, record.OccurredAt.Before(before))
	assert.Equal(t, time.UTC, record.OccurredAt.Location())

	history, err := repo.QueryBySubject(ctx, "asset-1", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)

	stored := history[0]
	assert.Equal(t, record.ID, stored.ID)
	assert.Equal(t, models.ActionStatusChanged, stored.Action)
	assert.Equal(t, models.FieldMap{"status": models.String("available")}, stored.BeforeState)
	assert.Equal(t, models.FieldMap{"status": models.String("assigned")}, stored.AfterState)
	assert.False(t, stored.Notes.Valid)
	assert.Equal(t, "Ada Lovelace", stored.ActorDisplayName())
	assert.True(t, stored.OccurredAt.Equal(record.OccurredAt))
}

func TestChangeRecordRepository_AppendKeepsCallerIDAndTime(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewChangeRecordRepository(db)

	occurredAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.FixedZone("CET", 3600))
	record := statusChange("asset-1", "available", "retired")
	record.ID = "fixed-id"
	record.OccurredAt = occurredAt

	require.NoError(t, repo.Append(ctx, record))
	assert.Equal(t, "fixed-id", record.ID)
	assert.True(t, record.OccurredAt.Equal(occurredAt))

	history, err := repo.QueryBySubject(ctx, "asset-1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "fixed-id", history[0].ID)
	assert.True(t, history[0].OccurredAt.Equal(occurredAt))
}

func TestChangeRecordRepository_AppendRejectsInvalidRecords(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewChangeRecordRepository(db)

	tests := []struct {
		name   string
		record *models.ChangeRecord
	}{
		{
			name:   "no state",
			record: &models.ChangeRecord{SubjectID: "asset-1", Action: models.ActionUpdated},
		},
		{
			name: "unknown action",
			record: &models.ChangeRecord{
				SubjectID:  "asset-1",
				Action:     models.Action("archived"),
				AfterState: models.FieldMap{"status": models.String("retired")},
			},
		},
		{
			name: "missing subject",
			record: &models.ChangeRecord{
				Action:     models.ActionCreated,
				AfterState: models.FieldMap{"name": models.String("Laptop")},
			},
		},
		{
			name: "update without change",
			record: &models.ChangeRecord{
				SubjectID:   "asset-1",
				Action:      models.ActionUpdated,
				BeforeState: models.FieldMap{"location": models.String("HQ")},
				AfterState:  models.FieldMap{"location": models.String("HQ")},
			},
		},
		{
			name: "non-finite number",
			record: &models.ChangeRecord{
				SubjectID:   "asset-1",
				Action:      models.ActionUpdated,
				BeforeState: models.FieldMap{"purchase_cost": models.Number(10)},
				AfterState:  models.FieldMap{"purchase_cost": models.Number(math.Inf(1))},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Append(ctx, tt.record)
			require.Error(t, err)
			assert.True(t, models.IsValidationError(err), "expected validation error, got %v", err)
			assert.False(t, models.IsPersistenceError(err))
			assert.Empty(t, tt.record.ID)
		})
	}

	all, err := repo.QueryAll(ctx, models.ChangeRecordFilter{}, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestChangeRecordRepository_UnknownActorIsPersistenceError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChangeRecordRepository(db)

	record := statusChange("asset-1", "available", "retired")
	record.ActorID = null.StringFrom("ghost")

	err := repo.Append(context.Background(), record)
	require.Error(t, err)
	assert.True(t, models.IsPersistenceError(err))
}

func TestChangeRecordRepository_QueryBySubjectReturnsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewChangeRecordRepository(db)

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 15; i++ {
		record := statusChange("asset-1", "available", "under_repair")
		if i%2 == 1 {
			record = statusChange("asset-1", "under_repair", "available")
		}
		record.OccurredAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Append(ctx, record))
		ids = append(ids, record.ID)
	}

	// Another subject must not leak into the history
	require.NoError(t, repo.Append(ctx, statusChange("asset-2", "available", "retired")))

	history, err := repo.QueryBySubject(ctx, "asset-1", 10)
	require.NoError(t, err)
	require.Len(t, history, 10)

	for i, entry := range history {
		assert.Equal(t, ids[14-i], entry.ID)
		assert.Equal(t, "asset-1", entry.SubjectID)
		if i > 0 {
			assert.False(t, entry.OccurredAt.After(history[i-1].OccurredAt))
		}
	}
}

func TestChangeRecordRepository_DefaultAndMaximumLimits(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewChangeRecordRepository(db)

	for i := 0; i < DefaultSubjectHistoryLimit+2; i++ {
		require.NoError(t, repo.Append(ctx, statusChange("asset-1", "available", "retired")))
	}

	history, err := repo.QueryBySubject(ctx, "asset-1", 0)
	require.NoError(t, err)
	assert.Len(t, history, DefaultSubjectHistoryLimit)

	history, err = repo.QueryBySubject(ctx, "asset-1", MaxQueryLimit*10)
	require.NoError(t, err)
	assert.Len(t, history, DefaultSubjectHistoryLimit+2)

	assert.Equal(t, DefaultTrailLimit, clampLimit(-1, DefaultTrailLimit))
	assert.Equal(t, MaxQueryLimit, clampLimit(MaxQueryLimit+1, DefaultTrailLimit))
	assert.Equal(t, 25, clampLimit(25, DefaultTrailLimit))
}

func TestChangeRecordRepository_TiesKeepInsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewChangeRecordRepository(db)

	at := time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		record := statusChange("asset-1", "available", "retired")
		record.OccurredAt = at
		require.NoError(t, repo.Append(ctx, record))
		ids = append(ids, record.ID)
	}

	history, err := repo.QueryBySubject(ctx, "asset-1", 10)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{history[0].ID, history[1].ID, history[2].ID})
}

func TestChangeRecordRepository_ReadsAreRepeatable(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewChangeRecordRepository(db)

	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Append(ctx, statusChange("asset-1", "available", "retired")))
	}

	first, err := repo.QueryBySubject(ctx, "asset-1", 10)
	require.NoError(t, err)
	second, err := repo.QueryBySubject(ctx, "asset-1", 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestChangeRecordRepository_UnknownSubjectIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChangeRecordRepository(db)

	history, err := repo.QueryBySubject(context.Background(), "missing", 10)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestChangeRecordRepository_QueryAllFilters(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewChangeRecordRepository(db)

	createTestProfile(t, db, "user-1", "Grace", "Hopper", "grace@example.com")
	laptop := createTestAsset(t, db, "LT-001", "Dell E6420")
	monitor := createTestAsset(t, db, "MN-100", "Ultrasharp 27")

	created := &models.ChangeRecord{
		SubjectID:  laptop.ID,
		Action:     models.ActionCreated,
		AfterState: laptop.CreationSnapshot(),
		ActorID:    null.StringFrom("user-1"),
	}
	require.NoError(t, repo.Append(ctx, created))

	moved := &models.ChangeRecord{
		SubjectID:   monitor.ID,
		Action:      models.ActionUpdated,
		BeforeState: models.FieldMap{"location": models.String("HQ")},
		AfterState:  models.FieldMap{"location": models.String("Remote")},
		Notes:       null.StringFrom("shipped to 100% remote hire"),
	}
	require.NoError(t, repo.Append(ctx, moved))

	old := statusChange(monitor.ID, "available", "under_repair")
	old.OccurredAt = time.Now().Add(-40 * 24 * time.Hour)
	require.NoError(t, repo.Append(ctx, old))

	tests := []struct {
		name   string
		filter models.ChangeRecordFilter
		want   []string
	}{
		{name: "everything", filter: models.ChangeRecordFilter{}, want: []string{moved.ID, created.ID, old.ID}},
		{name: "by action", filter: models.ChangeRecordFilter{Action: models.ActionCreated}, want: []string{created.ID}},
		{name: "by asset name", filter: models.ChangeRecordFilter{Search: "e6420"}, want: []string{created.ID}},
		{name: "by asset tag", filter: models.ChangeRecordFilter{Search: "MN-1"}, want: []string{moved.ID, old.ID}},
		{name: "by actor name", filter: models.ChangeRecordFilter{Search: "hopper"}, want: []string{created.ID}},
		{name: "by actor email", filter: models.ChangeRecordFilter{Search: "grace@"}, want: []string{created.ID}},
		{name: "by notes", filter: models.ChangeRecordFilter{Search: "remote hire"}, want: []string{moved.ID}},
		{name: "like wildcards are literal", filter: models.ChangeRecordFilter{Search: "100%"}, want: []string{moved.ID}},
		{name: "by action name", filter: models.ChangeRecordFilter{Search: "status_changed"}, want: []string{old.ID}},
		{name: "last 30 days", filter: models.ChangeRecordFilter{Range: models.RangeMonth}, want: []string{moved.ID, created.ID}},
		{name: "combined", filter: models.ChangeRecordFilter{Action: models.ActionStatusChanged, Range: models.RangeWeek}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := repo.QueryAll(ctx, tt.filter, 0)
			require.NoError(t, err)

			got := make([]string, len(records))
			for i, record := range records {
				got[i] = record.ID
			}
			assert.Equal(t, tt.want, got)
		})
	}

	records, err := repo.QueryAll(ctx, models.ChangeRecordFilter{Action: models.ActionCreated}, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Dell E6420", records[0].SubjectDisplayName())
	assert.Equal(t, "LT-001", records[0].SubjectTag.String)
}

func TestChangeRecordRepository_HistoryOutlivesSubject(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewChangeRecordRepository(db)
	assets := NewAssetRepository(db)

	asset := createTestAsset(t, db, "LT-002", "ThinkPad")
	require.NoError(t, repo.Append(ctx, &models.ChangeRecord{
		SubjectID:   asset.ID,
		Action:      models.ActionDeleted,
		BeforeState: asset.DeletionSnapshot(),
	}))
	require.NoError(t, assets.Delete(ctx, asset.ID))

	history, err := repo.QueryBySubject(ctx, asset.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.False(t, history[0].SubjectName.Valid)
	assert.Equal(t, asset.ID, history[0].SubjectDisplayName())
	assert.Equal(t, "System", history[0].ActorDisplayName())
}

func TestChangeRecordRepository_StoredRecordsCannotBeUpdated(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewChangeRecordRepository(db)

	record := statusChange("asset-1", "available", "retired")
	require.NoError(t, repo.Append(ctx, record))

	_, err := db.ExecContext(ctx, `UPDATE change_records SET notes = 'edited' WHERE id = ?`, record.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "append-only")
}

func TestChangeRecordRepository_UnreachableStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")
	ctx := context.Background()

	db, err := database.Initialize(ctx, dbPath, testLogger())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	record := statusChange("asset-1", "available", "retired")
	err = NewChangeRecordRepository(db).Append(ctx, record)
	require.Error(t, err)
	assert.True(t, models.IsPersistenceError(err))
	assert.Empty(t, record.ID)

	// Connectivity restored
	restored := setupTestDBAt(t, dbPath)
	history, err := NewChangeRecordRepository(restored).QueryBySubject(ctx, "asset-1", 10)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = NewChangeRecordRepository(db).QueryBySubject(ctx, "asset-1", 10)
	assert.True(t, models.IsPersistenceError(err))
}

func TestChangeRecordRetentionRepository_DeleteOlderThan(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewChangeRecordRepository(db)
	retention := NewChangeRecordRetentionRepository(db)

	now := time.Now().UTC()
	for _, age := range []time.Duration{400 * 24 * time.Hour, 366 * 24 * time.Hour, 10 * 24 * time.Hour} {
		record := statusChange("asset-1", "available", "retired")
		record.OccurredAt = now.Add(-age)
		require.NoError(t, repo.Append(ctx, record))
	}

	removed, err := retention.DeleteOlderThan(ctx, now.AddDate(0, 0, -365))
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	remaining, err := repo.QueryBySubject(ctx, "asset-1", 10)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	removed, err = retention.DeleteOlderThan(ctx, now.AddDate(0, 0, -365))
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestAssetRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewAssetRepository(db)
	createTestProfile(t, db, "user-7", "Linus", "T", "linus@example.com")

	// Test Create
	asset := &models.Asset{
		AssetTag:     "LT-100",
		Name:         "MacBook Pro",
		CategoryID:   null.StringFrom("laptop"),
		Brand:        null.StringFrom("Apple"),
		PurchaseCost: null.FloatFrom(2499.5),
	}
	require.NoError(t, repo.Create(ctx, asset))
	assert.NotEmpty(t, asset.ID)
	assert.Equal(t, models.StatusAvailable, asset.Status)

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "MacBook Pro", retrieved.Name)
	assert.Equal(t, "Laptop", retrieved.CategoryName.String)
	assert.Equal(t, 2499.5, retrieved.PurchaseCost.Float64)
	assert.Equal(t, "", retrieved.AssigneeDisplayName())

	// Test duplicate tag
	err = repo.Create(ctx, &models.Asset{AssetTag: "LT-100", Name: "Other"})
	assert.True(t, errors.Is(err, models.ErrConflict))

	// Test Update
	retrieved.AssignedTo = null.StringFrom("user-7")
	retrieved.AssignedDate = null.TimeFrom(time.Now().UTC())
	retrieved.Status = models.StatusAssigned
	require.NoError(t, repo.Update(ctx, &retrieved.Asset))

	updated, err := repo.GetByID(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, updated.Status)
	assert.Equal(t, "Linus T", updated.AssigneeDisplayName())
	assert.True(t, updated.AssignedDate.Valid)

	// Test GetAll filters
	createTestAsset(t, db, "MN-200", "Dell Monitor")
	all, err := repo.GetAll(ctx, models.AssetFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assigned, err := repo.GetAll(ctx, models.AssetFilter{Status: models.StatusAssigned})
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, asset.ID, assigned[0].ID)

	searched, err := repo.GetAll(ctx, models.AssetFilter{Search: "mn-2"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "Dell Monitor", searched[0].Name)

	byAssignee, err := repo.GetAll(ctx, models.AssetFilter{AssignedTo: "user-7"})
	require.NoError(t, err)
	assert.Len(t, byAssignee, 1)

	// Test Count and CountByStatus
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	byStatus, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, byStatus[models.StatusAssigned])
	assert.Equal(t, 1, byStatus[models.StatusAvailable])
	assert.Equal(t, 0, byStatus[models.StatusRetired])

	// Test Delete
	require.NoError(t, repo.Delete(ctx, asset.ID))
	_, err = repo.GetByID(ctx, asset.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	assert.True(t, errors.Is(repo.Delete(ctx, asset.ID), models.ErrNotFound))
	assert.True(t, errors.Is(repo.Update(ctx, &models.Asset{ID: "missing", AssetTag: "X", Name: "X", Status: models.StatusAvailable}), models.ErrNotFound))
}

func TestProfileRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewProfileRepository(db)

	profile := &models.Profile{ID: "auth0|1", Email: "sam@example.com", FirstName: null.StringFrom("Sam")}
	require.NoError(t, repo.Upsert(ctx, profile))
	assert.Equal(t, models.RoleViewer, profile.Role)
	assert.False(t, profile.CreatedAt.IsZero())

	require.NoError(t, repo.UpdateRole(ctx, "auth0|1", models.RoleITStaff))

	// A later login refreshes the name but never the role
	refreshed := &models.Profile{ID: "auth0|1", Email: "sam@example.com", FirstName: null.StringFrom("Samantha"), Role: models.RoleViewer}
	require.NoError(t, repo.Upsert(ctx, refreshed))
	assert.Equal(t, models.RoleITStaff, refreshed.Role)
	assert.Equal(t, "Samantha", refreshed.FirstName.String)

	err := repo.Upsert(ctx, &models.Profile{ID: "auth0|2", Email: "sam@example.com"})
	assert.True(t, errors.Is(err, models.ErrConflict))

	asset := createTestAsset(t, db, "PH-1", "Pixel")
	asset.AssignedTo = null.StringFrom("auth0|1")
	asset.Status = models.StatusAssigned
	require.NoError(t, NewAssetRepository(db).Update(ctx, asset))

	profiles, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, 1, profiles[0].AssignedAssetsCount)

	_, err = repo.GetByID(ctx, "nobody")
	assert.True(t, errors.Is(err, models.ErrNotFound))

	assert.True(t, models.IsValidationError(repo.UpdateRole(ctx, "auth0|1", models.Role("owner"))))
	assert.True(t, errors.Is(repo.UpdateRole(ctx, "nobody", models.RoleAdmin), models.ErrNotFound))
}

func TestProfileRepository_GetDetailsByID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO departments (id, name, created_at, updated_at) VALUES ('it', 'IT', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	require.NoError(t, err)
	createTestProfile(t, db, "auth0|1", "Ada", "Lovelace", "ada@example.com")
	_, err = db.ExecContext(ctx, `UPDATE profiles SET department_id = 'it' WHERE id = 'auth0|1'`)
	require.NoError(t, err)

	asset := createTestAsset(t, db, "LT-1", "ThinkPad")
	asset.AssignedTo = null.StringFrom("auth0|1")
	asset.Status = models.StatusAssigned
	require.NoError(t, NewAssetRepository(db).Update(ctx, asset))

	repo := NewProfileRepository(db)
	profile, err := repo.GetDetailsByID(ctx, "auth0|1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", profile.DisplayName())
	assert.Equal(t, "IT", profile.DepartmentName.String)
	assert.Equal(t, 1, profile.AssignedAssetsCount)
	assert.Equal(t, models.RoleViewer, profile.Role)

	_, err = repo.GetDetailsByID(ctx, "nobody")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestLookupRepositories(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	categories, err := NewCategoryRepository(db).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 5)

	departmentRepo := NewDepartmentRepository(db)
	for _, name := range []string{"IT", "Finance"} {
		require.NoError(t, departmentRepo.Create(ctx, &models.Department{Name: name}))
	}

	departments, err := departmentRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Finance", departments[0].Name)
	assert.NotEmpty(t, departments[0].ID)
}

func TestDepartmentRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewDepartmentRepository(db)

	department := &models.Department{Name: "Engineering", Description: null.StringFrom("Builds things")}
	require.NoError(t, repo.Create(ctx, department))
	require.NotEmpty(t, department.ID)
	assert.False(t, department.CreatedAt.IsZero())

	assert.True(t, errors.Is(repo.Create(ctx, &models.Department{Name: "Engineering"}), models.ErrConflict))

	department.Name = "Platform Engineering"
	department.Description = null.String{}
	require.NoError(t, repo.Update(ctx, department))

	stored, err := repo.GetByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineering", stored.Name)
	assert.False(t, stored.Description.Valid)
	assert.False(t, stored.InUse())

	asset := createTestAsset(t, db, "LT-1", "ThinkPad")
	asset.DepartmentID = null.StringFrom(department.ID)
	require.NoError(t, NewAssetRepository(db).Update(ctx, asset))

	details, err := repo.GetAllDetails(ctx)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, 1, details[0].AssetCount)
	assert.Equal(t, 0, details[0].EmployeeCount)

	err = repo.Delete(ctx, department.ID)
	assert.True(t, errors.Is(err, models.ErrConflict), "department in use must not be deleted, got %v", err)

	asset.DepartmentID = null.String{}
	require.NoError(t, NewAssetRepository(db).Update(ctx, asset))
	require.NoError(t, repo.Delete(ctx, department.ID))

	_, err = repo.GetByID(ctx, department.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, department.ID), models.ErrNotFound))
	assert.True(t, errors.Is(repo.Update(ctx, &models.Department{ID: "missing", Name: "X"}), models.ErrNotFound))
}

func TestCategoryRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewCategoryRepository(db)

	category := &models.Category{Name: "Tablet"}
	require.NoError(t, repo.Create(ctx, category))
	assert.True(t, errors.Is(repo.Create(ctx, &models.Category{Name: "Laptop"}), models.ErrConflict))

	category.Description = null.StringFrom("Touch devices")
	require.NoError(t, repo.Update(ctx, category))

	asset := createTestAsset(t, db, "TB-1", "iPad")
	asset.CategoryID = null.StringFrom(category.ID)
	require.NoError(t, NewAssetRepository(db).Update(ctx, asset))

	stored, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Touch devices", stored.Description.String)
	assert.Equal(t, 1, stored.AssetCount)

	assert.True(t, errors.Is(repo.Delete(ctx, category.ID), models.ErrConflict))
	require.NoError(t, repo.Delete(ctx, "monitor"))

	all, err := repo.GetAllDetails(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.True(t, errors.Is(repo.Delete(ctx, "monitor"), models.ErrNotFound))
}
