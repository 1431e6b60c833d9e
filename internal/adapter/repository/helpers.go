package repository

import (
	pbCore "github.com/pocketbase/pocketbase/core"
)

// jsonList reads a JSON field holding an array of strings.
func jsonList(record *pbCore.Record, field string) []string {
	var out []string
	if err := record.UnmarshalJSONField(field, &out); err != nil {
		return nil
	}
	return out
}

// The table override columns store 0 / "" for "not set", so the zero
// value maps to a nil pointer on the way out and back.

func floatPtr(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

func strPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func floatVal(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
