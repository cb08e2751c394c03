package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
)

// FieldKind identifies which scalar a FieldValue holds
type FieldKind uint8

const (
	KindNull FieldKind = iota
	KindString
	KindNumber
	KindBool
)

// FieldValue is a single scalar captured in a before/after snapshot.
// The zero value is null.
type FieldValue struct {
	kind FieldKind
	str  string
	num  float64
	b    bool
}

// String returns a string field value
func String(s string) FieldValue {
	return FieldValue{kind: KindString, str: s}
}

// Number returns a numeric field value
func Number(n float64) FieldValue {
	return FieldValue{kind: KindNumber, num: n}
}

// Bool returns a boolean field value
func Bool(b bool) FieldValue {
	return FieldValue{kind: KindBool, b: b}
}

// Null returns the null field value
func Null() FieldValue {
	return FieldValue{}
}

// StringOrNull maps an empty string to null
func StringOrNull(s string) FieldValue {
	if s == "" {
		return Null()
	}
	return String(s)
}

// Kind reports the kind of scalar held
func (v FieldValue) Kind() FieldKind {
	return v.kind
}

// IsNull reports whether the value is null
func (v FieldValue) IsNull() bool {
	return v.kind == KindNull
}

// Display renders the value for humans; null renders as "null"
func (v FieldValue) Display() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "null"
	}
}

// MarshalJSON encodes the value as a bare JSON scalar
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts strings, numbers, booleans and null only
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*v = Null()
		return nil
	}

	var raw any
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return errors.Wrap(err, "failed to decode field value")
	}

	switch typed := raw.(type) {
	case string:
		*v = String(typed)
	case float64:
		*v = Number(typed)
	case bool:
		*v = Bool(typed)
	default:
		return errors.Newf("field value must be a scalar, got %s", string(trimmed))
	}
	return nil
}

// FieldMap maps field names to snapshot values. A nil map means the state is absent.
type FieldMap map[string]FieldValue

// SortedKeys returns the field names ordered by name
func (m FieldMap) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of the map, preserving nil
func (m FieldMap) Clone() FieldMap {
	if m == nil {
		return nil
	}
	out := make(FieldMap, len(m))
	for key, value := range m {
		out[key] = value
	}
	return out
}

// Encode serialises the map as a JSON object with sorted keys.
// encoding/json sorts map keys, so the output is deterministic.
func (m FieldMap) Encode() (string, error) {
	if m == nil {
		return "", nil
	}
	data, err := json.Marshal(map[string]FieldValue(m))
	if err != nil {
		return "", errors.Wrap(err, "failed to encode field map")
	}
	return string(data), nil
}

// DecodeFieldMap parses a JSON object produced by Encode. An empty input yields a nil map.
func DecodeFieldMap(data string) (FieldMap, error) {
	if data == "" {
		return nil, nil
	}
	var out map[string]FieldValue
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil, errors.Wrap(err, "failed to decode field map")
	}
	if out == nil {
		return nil, nil
	}
	return FieldMap(out), nil
}
