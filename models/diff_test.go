package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name   string
		before FieldMap
		after  FieldMap
		want   []FieldChange
	}{
		{
			name:   "single changed field",
			before: FieldMap{"name": String("Dell E6420"), "location": String("HQ")},
			after:  FieldMap{"name": String("Dell E6420"), "location": String("Remote")},
			want:   []FieldChange{{Field: "location", Old: String("HQ"), New: String("Remote")}},
		},
		{
			name:   "missing before key counts as null",
			before: FieldMap{"status": String("available")},
			after:  FieldMap{"status": String("available"), "location": String("HQ")},
			want:   []FieldChange{{Field: "location", Old: Null(), New: String("HQ")}},
		},
		{
			name:   "null to value and value to null",
			before: FieldMap{"brand": Null(), "model": String("X1")},
			after:  FieldMap{"brand": String("Lenovo"), "model": Null()},
			want: []FieldChange{
				{Field: "brand", Old: Null(), New: String("Lenovo")},
				{Field: "model", Old: String("X1"), New: Null()},
			},
		},
		{
			name:   "keys only in before are not reported",
			before: FieldMap{"location": String("HQ"), "notes": String("spare")},
			after:  FieldMap{"location": String("Remote")},
			want:   []FieldChange{{Field: "location", Old: String("HQ"), New: String("Remote")}},
		},
		{
			name:   "kinds differ",
			before: FieldMap{"purchase_cost": String("100")},
			after:  FieldMap{"purchase_cost": Number(100)},
			want:   []FieldChange{{Field: "purchase_cost", Old: String("100"), New: Number(100)}},
		},
		{
			name:   "creation sets every non-null field",
			before: nil,
			after:  FieldMap{"name": String("Pixel"), "brand": Null(), "asset_tag": String("PH-1")},
			want: []FieldChange{
				{Field: "asset_tag", Old: Null(), New: String("PH-1")},
				{Field: "name", Old: Null(), New: String("Pixel")},
			},
		},
		{
			name:   "deletion clears every non-null field",
			before: FieldMap{"status": String("retired"), "brand": Null(), "name": String("Pixel")},
			after:  nil,
			want: []FieldChange{
				{Field: "name", Old: String("Pixel"), New: Null()},
				{Field: "status", Old: String("retired"), New: Null()},
			},
		},
		{
			name:   "identical states",
			before: FieldMap{"active": Bool(true)},
			after:  FieldMap{"active": Bool(true)},
			want:   []FieldChange{},
		},
		{
			name: "both absent",
			want: []FieldChange{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diff(tt.before, tt.after))
		})
	}
}

func TestDiffReportsExactlyTheDifferingKeys(t *testing.T) {
	before := FieldMap{"a": String("1"), "b": Number(2), "c": Bool(false), "d": Null()}
	after := FieldMap{"a": String("1"), "b": Number(3), "c": Bool(true), "d": Null(), "e": String("new")}

	var fields []string
	for _, change := range Diff(before, after) {
		fields = append(fields, change.Field)
		assert.NotEqual(t, change.Old, change.New)
	}

	assert.Equal(t, []string{"b", "c", "e"}, fields)
}

func TestFieldValueJSON(t *testing.T) {
	state := FieldMap{
		"name":   String("Dell"),
		"cost":   Number(12.5),
		"active": Bool(true),
		"notes":  Null(),
	}

	encoded, err := state.Encode()
	require.NoError(t, err)
	assert.Equal(t, `{"active":true,"cost":12.5,"name":"Dell","notes":null}`, encoded)

	decoded, err := DecodeFieldMap(encoded)
	require.NoError(t, err)
	assert.Equal(t, state, decoded)

	var value FieldValue
	assert.Error(t, json.Unmarshal([]byte(`{"nested":1}`), &value))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &value))

	_, err = DecodeFieldMap(`{"name":{"first":"x"}}`)
	assert.Error(t, err)

	empty, err := DecodeFieldMap("")
	require.NoError(t, err)
	assert.Nil(t, empty)

	absent, err := FieldMap(nil).Encode()
	require.NoError(t, err)
	assert.Equal(t, "", absent)

	assert.Equal(t, "12.5", Number(12.5).Display())
	assert.Equal(t, "null", Null().Display())
	assert.Equal(t, "false", Bool(false).Display())
	assert.True(t, StringOrNull("").IsNull())
}

func TestFlattenChangeRecord(t *testing.T) {
	record := ChangeRecordDetails{
		ChangeRecord: ChangeRecord{
			ID:          "rec-1",
			SubjectID:   "asset-1",
			Action:      ActionUpdated,
			BeforeState: FieldMap{"location": String("HQ")},
			AfterState:  FieldMap{"location": String("Remote")},
			ActorID:     null.StringFrom("user-1"),
			OccurredAt:  time.Date(2024, 2, 3, 4, 5, 6, 0, time.FixedZone("EST", -5*3600)),
		},
		SubjectName:    null.StringFrom("Dell E6420"),
		SubjectTag:     null.StringFrom("LT-001"),
		ActorFirstName: null.StringFrom("Ada"),
		ActorLastName:  null.StringFrom("Lovelace"),
	}

	flat, err := FlattenChangeRecord(record)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"asset_name":   "Dell E6420",
		"asset_tag":    "LT-001",
		"action":       "updated",
		"performed_by": "Ada Lovelace",
		"performed_at": "2024-02-03T09:05:06Z",
		"old_values":   `{"location":"HQ"}`,
		"new_values":   `{"location":"Remote"}`,
		"notes":        "",
	}, flat)

	for _, column := range ChangeRecordExportColumns {
		assert.Contains(t, flat, column)
	}
}

func TestFlattenChangeRecordOfDeletedSubject(t *testing.T) {
	record := ChangeRecordDetails{
		ChangeRecord: ChangeRecord{
			ID:          "rec-2",
			SubjectID:   "asset-9",
			Action:      ActionDeleted,
			BeforeState: FieldMap{"name": String("Old Monitor"), "asset_tag": String("MON-9"), "status": String("retired")},
			OccurredAt:  time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	flat, err := FlattenChangeRecord(record)
	require.NoError(t, err)
	assert.Equal(t, "Old Monitor", flat["asset_name"])
	assert.Equal(t, "MON-9", flat["asset_tag"])
	assert.Equal(t, "", flat["new_values"])

	record.SubjectName = null.StringFrom("Renamed Monitor")
	flat, err = FlattenChangeRecord(record)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Monitor", flat["asset_name"])

	record.BeforeState = FieldMap{"status": String("retired")}
	record.SubjectName = null.String{}
	flat, err = FlattenChangeRecord(record)
	require.NoError(t, err)
	assert.Equal(t, "", flat["asset_name"])
}

func TestFlattenAsset(t *testing.T) {
	asset := AssetDetails{
		Asset: Asset{
			AssetTag:   "LT-001",
			Name:       "Dell E6420",
			Status:     StatusAssigned,
			AssignedTo: null.StringFrom("user-1"),
		},
		AssigneeEmail: null.StringFrom("ada@example.com"),
	}

	flat := FlattenAsset(asset)
	assert.Len(t, flat, len(AssetExportColumns))
	assert.Equal(t, "ada@example.com", flat["assigned_to"])
	assert.Equal(t, "", flat["purchase_cost"])
	assert.Equal(t, "assigned", flat["status"])
}
