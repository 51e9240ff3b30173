// Package chart provides chart configuration, styling, validation, and
// palette derivation for commit visualizations.
package chart

import (
	"fmt"
	"strings"

	"github.com/redcedar/commitviz/internal/commitdata"
)

// Kind identifies a chart type.
type Kind int

// Supported chart kinds.
const (
	HourBar Kind = iota
	DayPie
	MonthPie
	DayMonthCombined
)

// Kinds lists all chart kinds in declaration order.
var Kinds = []Kind{HourBar, DayPie, MonthPie, DayMonthCombined}

// String returns the snake_case kind name used in JSON, flags, and tool names.
func (k Kind) String() string {
	switch k {
	case HourBar:
		return "hour_bar"
	case DayPie:
		return "day_pie"
	case MonthPie:
		return "month_pie"
	case DayMonthCombined:
		return "day_month_combined"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKindName converts a kind name to a Kind.
func ParseKindName(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown chart kind %q (want hour_bar, day_pie, month_pie, or day_month_combined)", s)
}

// DefaultTitle returns the default chart title for the kind.
func (k Kind) DefaultTitle() string {
	switch k {
	case HourBar:
		return "Commits by Hour"
	case DayPie:
		return "Commits by Day of Week"
	case MonthPie:
		return "Commits by Month"
	case DayMonthCombined:
		return "Commits by Day and Month"
	default:
		return "Commits"
	}
}

// DefaultStem returns the default output filename stem for the kind.
func (k Kind) DefaultStem() string {
	switch k {
	case HourBar:
		return "commits_by_hour"
	case DayPie:
		return "commits_by_day"
	case MonthPie:
		return "commits_by_month"
	case DayMonthCombined:
		return "commits_by_day_month"
	default:
		return "commits"
	}
}

// DataKinds returns the period kinds whose data files the chart consumes.
// Combined charts consume two record sets.
func (k Kind) DataKinds() []commitdata.PeriodKind {
	switch k {
	case HourBar:
		return []commitdata.PeriodKind{commitdata.Hour}
	case DayPie:
		return []commitdata.PeriodKind{commitdata.Day}
	case MonthPie:
		return []commitdata.PeriodKind{commitdata.Month}
	case DayMonthCombined:
		return []commitdata.PeriodKind{commitdata.Day, commitdata.Month}
	default:
		return nil
	}
}

// MarshalJSON emits the kind as its string name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON accepts the kind's string name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("chart kind must be a JSON string, got %s", data)
	}
	kind, err := ParseKindName(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// slugifyLabel converts a repository label into a filename-stem suffix:
// lowercased, with spaces and hyphens replaced by underscores.
func slugifyLabel(label string) string {
	slug := strings.ToLower(label)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "-", "_")
	return slug
}
