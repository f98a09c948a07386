package models

import "encoding/json"

// NullableString represents a string field that can distinguish between:
// - Field absent in JSON: Set=false, Valid=false, Value=""
// - Field present with null: Set=true, Valid=false, Value=""
// - Field present with value: Set=true, Valid=true, Value="the value"
//
// PATCH semantics need this because Go's standard JSON unmarshaling treats
// both "field absent" and "field: null" as nil for pointer types, while the
// decisions API uses null to clear notes/meta and absence to leave them alone.
type NullableString struct {
	Value string
	Valid bool // true if Value is not null
	Set   bool // true if field was present in JSON
}

// UnmarshalJSON implements custom JSON unmarshaling for NullableString.
func (ns *NullableString) UnmarshalJSON(data []byte) error {
	ns.Set = true

	if string(data) == "null" {
		ns.Valid = false
		ns.Value = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ns.Value = s
	ns.Valid = true
	return nil
}

// MarshalJSON implements custom JSON marshaling for NullableString.
func (ns NullableString) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ns.Value)
}

// NullableMeta represents a meta field with the same three-state semantics
// as NullableString: absent leaves the stored meta untouched, null clears
// it, and a value is merged into it.
type NullableMeta struct {
	Value DecisionMeta
	Valid bool
	Set   bool
}

// UnmarshalJSON implements custom JSON unmarshaling for NullableMeta.
func (nm *NullableMeta) UnmarshalJSON(data []byte) error {
	nm.Set = true

	if string(data) == "null" {
		nm.Valid = false
		nm.Value = nil
		return nil
	}

	var m DecisionMeta
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	nm.Value = m
	nm.Valid = true
	return nil
}

// MarshalJSON implements custom JSON marshaling for NullableMeta.
func (nm NullableMeta) MarshalJSON() ([]byte, error) {
	if !nm.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(nm.Value)
}
