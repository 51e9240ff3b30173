// Package commitdata provides the commit-count record schema, validation, and
// the data-file parser for the commitviz toolkit.
package commitdata

import "fmt"

// PeriodKind is the semantic unit a commit count is bucketed by.
type PeriodKind int

// Period kinds in filename-inference priority order.
const (
	Hour PeriodKind = iota
	Day
	Month
)

// String returns the lowercase kind name used in file names and JSON.
func (k PeriodKind) String() string {
	switch k {
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Month:
		return "month"
	default:
		return fmt.Sprintf("PeriodKind(%d)", int(k))
	}
}

// ParseKind converts a kind name ("hour", "day", "month") to a PeriodKind.
func ParseKind(s string) (PeriodKind, error) {
	switch s {
	case "hour":
		return Hour, nil
	case "day":
		return Day, nil
	case "month":
		return Month, nil
	default:
		return 0, fmt.Errorf("unknown period kind %q (want hour, day, or month)", s)
	}
}

// Bounds returns the inclusive valid period range for the kind.
// Hours are 0-23, days of week 0-6 (Sunday=0), months 1-12.
func (k PeriodKind) Bounds() (min, max int) {
	switch k {
	case Hour:
		return 0, 23
	case Day:
		return 0, 6
	case Month:
		return 1, 12
	default:
		return 0, -1
	}
}

// Size returns the number of valid periods for the kind.
func (k PeriodKind) Size() int {
	min, max := k.Bounds()
	return max - min + 1
}

// Record is one validated commit count for a single period.
// Records are constructed through NewRecord and never mutated afterwards.
type Record struct {
	Period int        `json:"period"`
	Count  int        `json:"count"`
	Kind   PeriodKind `json:"period_kind"`
}

// NewRecord constructs a Record, rejecting out-of-range periods and negative
// counts with a *RangeError. Values are never clamped.
func NewRecord(kind PeriodKind, period, count int) (Record, error) {
	min, max := kind.Bounds()
	if period < min || period > max {
		return Record{}, &RangeError{Field: "period", Value: period, Kind: kind}
	}
	if count < 0 {
		return Record{}, &RangeError{Field: "count", Value: count, Kind: kind}
	}
	return Record{Period: period, Count: count, Kind: kind}, nil
}

// MarshalJSON emits the kind as its string name.
func (k PeriodKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON accepts the kind's string name.
func (k *PeriodKind) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("period kind must be a JSON string, got %s", data)
	}
	kind, err := ParseKind(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
