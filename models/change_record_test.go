package models

import (
	"math"
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
)

func TestChangeRecordValidate(t *testing.T) {
	state := FieldMap{"status": String("available")}
	other := FieldMap{"status": String("retired")}

	tests := []struct {
		name    string
		record  ChangeRecord
		wantErr bool
	}{
		{name: "created with after", record: ChangeRecord{SubjectID: "a", Action: ActionCreated, AfterState: state}},
		{name: "created with before", record: ChangeRecord{SubjectID: "a", Action: ActionCreated, BeforeState: state, AfterState: other}, wantErr: true},
		{name: "created without after", record: ChangeRecord{SubjectID: "a", Action: ActionCreated, BeforeState: state}, wantErr: true},
		{name: "deleted with before", record: ChangeRecord{SubjectID: "a", Action: ActionDeleted, BeforeState: state}},
		{name: "deleted with after", record: ChangeRecord{SubjectID: "a", Action: ActionDeleted, BeforeState: state, AfterState: other}, wantErr: true},
		{name: "assigned without previous assignee", record: ChangeRecord{SubjectID: "a", Action: ActionAssigned, AfterState: FieldMap{"assigned_to": String("u")}}},
		{name: "assigned without after", record: ChangeRecord{SubjectID: "a", Action: ActionAssigned, BeforeState: state}, wantErr: true},
		{name: "status changed with both", record: ChangeRecord{SubjectID: "a", Action: ActionStatusChanged, BeforeState: state, AfterState: other}},
		{name: "status changed with one", record: ChangeRecord{SubjectID: "a", Action: ActionStatusChanged, AfterState: other}, wantErr: true},
		{name: "unassigned with both", record: ChangeRecord{SubjectID: "a", Action: ActionUnassigned, BeforeState: FieldMap{"assigned_to": String("u")}, AfterState: FieldMap{"assigned_to": Null()}}},
		{name: "unassigned without previous assignee", record: ChangeRecord{SubjectID: "a", Action: ActionUnassigned, BeforeState: FieldMap{"assigned_to": Null()}, AfterState: FieldMap{"assigned_to": Null()}}, wantErr: true},
		{name: "status changed to same status", record: ChangeRecord{SubjectID: "a", Action: ActionStatusChanged, BeforeState: state, AfterState: state}, wantErr: true},
		{name: "updated with infinite number", record: ChangeRecord{SubjectID: "a", Action: ActionUpdated, BeforeState: FieldMap{"purchase_cost": Null()}, AfterState: FieldMap{"purchase_cost": Number(math.Inf(1))}}, wantErr: true},
		{name: "created with NaN", record: ChangeRecord{SubjectID: "a", Action: ActionCreated, AfterState: FieldMap{"purchase_cost": Number(math.NaN())}}, wantErr: true},
		{name: "updated with change", record: ChangeRecord{SubjectID: "a", Action: ActionUpdated, BeforeState: state, AfterState: other}},
		{name: "updated without change", record: ChangeRecord{SubjectID: "a", Action: ActionUpdated, BeforeState: state, AfterState: state}, wantErr: true},
		{name: "updated with empty maps", record: ChangeRecord{SubjectID: "a", Action: ActionUpdated, BeforeState: FieldMap{}, AfterState: FieldMap{}}, wantErr: true},
		{name: "no state at all", record: ChangeRecord{SubjectID: "a", Action: ActionStatusChanged}, wantErr: true},
		{name: "unknown action", record: ChangeRecord{SubjectID: "a", Action: "moved", AfterState: state}, wantErr: true},
		{name: "missing subject", record: ChangeRecord{Action: ActionCreated, AfterState: state}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseAction(t *testing.T) {
	for _, action := range AllActions() {
		parsed, err := ParseAction(string(action))
		assert.NoError(t, err)
		assert.Equal(t, action, parsed)
	}

	_, err := ParseAction("archived")
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "status changed", ActionStatusChanged.Label())
}

func TestChangeRecordDetailsDisplayNames(t *testing.T) {
	system := ChangeRecordDetails{ChangeRecord: ChangeRecord{SubjectID: "asset-9"}}
	assert.True(t, system.IsSystemAction())
	assert.Equal(t, "System", system.ActorDisplayName())
	assert.Equal(t, "asset-9", system.SubjectDisplayName())

	unresolved := ChangeRecordDetails{ChangeRecord: ChangeRecord{ActorID: null.StringFrom("user-3")}}
	assert.Equal(t, "user-3", unresolved.ActorDisplayName())

	emailOnly := ChangeRecordDetails{
		ChangeRecord: ChangeRecord{ActorID: null.StringFrom("user-3")},
		ActorEmail:   null.StringFrom("ops@example.com"),
		SubjectTag:   null.StringFrom("LT-9"),
	}
	assert.Equal(t, "ops@example.com", emailOnly.ActorDisplayName())
	assert.Equal(t, "LT-9", emailOnly.SubjectDisplayName())
}

func TestAssetSnapshots(t *testing.T) {
	asset := &Asset{
		ID:       "asset-1",
		AssetTag: "LT-001",
		Name:     "Dell E6420",
		Status:   StatusAvailable,
		Brand:    null.StringFrom("Dell"),
	}

	created := asset.CreationSnapshot()
	assert.Equal(t, []string{"asset_tag", "brand", "category_id", "department_id", "model", "name", "serial_number", "status"}, created.SortedKeys())
	assert.Equal(t, String("Dell"), created["brand"])
	assert.True(t, created["model"].IsNull())

	deleted := asset.DeletionSnapshot()
	assert.Equal(t, []string{"asset_tag", "name", "status"}, deleted.SortedKeys())
	assert.Equal(t, "asset-1", asset.AuditSubjectID())
}
