package models

// FieldChange is one old -> new delta between two snapshots
type FieldChange struct {
	Field string     `json:"field"`
	Old   FieldValue `json:"old"`
	New   FieldValue `json:"new"`
}

// Diff computes the field-level changes between two optional snapshots.
//
// With both states present only keys of after are considered; a key missing
// from before counts as null. Keys that exist only in before are not reported.
// A lone after state renders every non-null field as set, a lone before
// state renders every non-null field as cleared. Output is sorted by field.
func Diff(before, after FieldMap) []FieldChange {
	changes := []FieldChange{}

	switch {
	case before != nil && after != nil:
		for _, key := range after.SortedKeys() {
			newValue := after[key]
			oldValue, ok := before[key]
			if !ok {
				oldValue = Null()
			}
			if oldValue != newValue {
				changes = append(changes, FieldChange{Field: key, Old: oldValue, New: newValue})
			}
		}
	case after != nil:
		for _, key := range after.SortedKeys() {
			if value := after[key]; !value.IsNull() {
				changes = append(changes, FieldChange{Field: key, Old: Null(), New: value})
			}
		}
	case before != nil:
		for _, key := range before.SortedKeys() {
			if value := before[key]; !value.IsNull() {
				changes = append(changes, FieldChange{Field: key, Old: value, New: Null()})
			}
		}
	}

	return changes
}
