package chart

import "errors"

// ErrNoData is returned when, after zero-filling and filtering, no category
// has a nonzero commit count. Rendering an empty chart is never allowed.
var ErrNoData = errors.New("no commit data found for any period")

// FieldError reports a configuration or style field that failed its
// declared constraint.
type FieldError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}
