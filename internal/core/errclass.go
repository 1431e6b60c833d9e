package core

import (
	"errors"
	"strings"
)

// ErrNoMatchingRecord is returned when a removal finds nothing to delete.
// A second removal of the same membership id must report this instead of
// silently succeeding.
var ErrNoMatchingRecord = errors.New("no matching record found")

// IsAccessDenied reports whether err looks like a store policy/permission
// failure. These are recoverable: the affected list degrades to empty with
// a guidance message instead of failing the whole operation.
func IsAccessDenied(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "permission denied") ||
		strings.Contains(msg, "access denied") ||
		strings.Contains(msg, "missing public") ||
		strings.Contains(msg, "only superusers") ||
		strings.Contains(msg, "policy")
}

// IsDuplicate reports whether err is a uniqueness violation. The store
// surfaces these either as a raw "UNIQUE constraint failed" or as a
// "must be unique" validation error depending on the write path.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}
