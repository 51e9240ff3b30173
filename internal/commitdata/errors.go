package commitdata

import "fmt"

// NotFoundError is returned when the referenced data file does not exist.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return "data file not found: " + e.Path
}

// KindError is returned when a file name carries no hour/day/month hint.
type KindError struct {
	Path string
}

// Error implements the error interface.
func (e *KindError) Error() string {
	return fmt.Sprintf("cannot determine period kind from file name %q (expected it to contain hour, day, or month)", e.Path)
}

// ParseError is returned for a line with the wrong token count or tokens that
// are not integers. Line numbers are 1-indexed.
type ParseError struct {
	Path   string
	Line   int
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", e.Path, e.Line, e.Reason)
}

// RangeError is returned when a period or count value lies outside its valid
// bound. Line is 0 when the record was not built from a file.
type RangeError struct {
	Field string // "period" or "count"
	Value int
	Kind  PeriodKind
	Line  int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	var msg string
	if e.Field == "count" {
		msg = fmt.Sprintf("count %d must be >= 0", e.Value)
	} else {
		min, max := e.Kind.Bounds()
		msg = fmt.Sprintf("%s period %d out of range [%d, %d]", e.Kind, e.Value, min, max)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}
