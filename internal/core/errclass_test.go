package core

import (
	"errors"
	"testing"
)

func TestIsAccessDenied(t *testing.T) {
	denied := []error{
		errors.New("permission denied for table budget_prop"),
		errors.New("Access denied"),
		errors.New("missing public list rule"),
		errors.New("Only superusers can perform this action."),
		errors.New("row violates row-level security policy"),
	}
	for _, err := range denied {
		if !IsAccessDenied(err) {
			t.Errorf("IsAccessDenied(%q) = false", err)
		}
	}

	allowed := []error{
		nil,
		errors.New("sql: no rows in result set"),
		errors.New("connection refused"),
	}
	for _, err := range allowed {
		if IsAccessDenied(err) {
			t.Errorf("IsAccessDenied(%v) = true", err)
		}
	}
}

func TestIsDuplicate(t *testing.T) {
	dupes := []error{
		errors.New("UNIQUE constraint failed: budget_prop.propfirm_id"),
		errors.New("Value must be unique."),
	}
	for _, err := range dupes {
		if !IsDuplicate(err) {
			t.Errorf("IsDuplicate(%q) = false", err)
		}
	}

	if IsDuplicate(nil) {
		t.Error("IsDuplicate(nil) = true")
	}
	if IsDuplicate(errors.New("sql: no rows in result set")) {
		t.Error("no-rows should not classify as duplicate")
	}
}
