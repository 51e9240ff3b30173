package commitdata

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// KindFromPath infers the period kind from a file path by case-sensitive
// substring match, testing "hour", then "day", then "month".
//
// The priority order is part of the contract: a path like monthly_hours.txt
// resolves to Hour because "hour" is tested first. Callers that need a
// different mapping should name their files unambiguously.
func KindFromPath(path string) (PeriodKind, error) {
	switch {
	case strings.Contains(path, "hour"):
		return Hour, nil
	case strings.Contains(path, "day"):
		return Day, nil
	case strings.Contains(path, "month"):
		return Month, nil
	default:
		return 0, &KindError{Path: path}
	}
}

// FileName returns the canonical data file name for a kind,
// e.g. "commit_counts_hour.txt".
func FileName(kind PeriodKind) string {
	return "commit_counts_" + kind.String() + ".txt"
}

// LoadKind loads and validates the canonical data file for a kind from dir.
func LoadKind(dir string, kind PeriodKind) ([]Record, error) {
	return LoadFile(filepath.Join(dir, FileName(kind)))
}

// LoadFile reads a two-column "period count" data file into validated records,
// preserving line order. The period kind is inferred from the path via
// KindFromPath.
//
// Parsing is all-or-nothing: the first malformed or out-of-range line fails
// the whole call and no partial record list is returned. Blank lines are
// skipped; a file with no non-blank lines yields an empty slice.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("reading data file %s: %w", path, err)
	}

	kind, err := KindFromPath(path)
	if err != nil {
		return nil, err
	}

	return parseLines(path, kind, string(data))
}

// parseLines converts file content into records, reporting 1-indexed line
// numbers on failure.
func parseLines(path string, kind PeriodKind, content string) ([]Record, error) {
	var records []Record
	for i, raw := range strings.Split(content, "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &ParseError{
				Path:   path,
				Line:   lineNum,
				Reason: fmt.Sprintf("expected 'period count', got %d tokens", len(fields)),
			}
		}

		period, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNum, Reason: fmt.Sprintf("period %q is not an integer", fields[0])}
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNum, Reason: fmt.Sprintf("count %q is not an integer", fields[1])}
		}

		record, err := NewRecord(kind, period, count)
		if err != nil {
			var rangeErr *RangeError
			if errors.As(err, &rangeErr) {
				rangeErr.Line = lineNum
			}
			return nil, err
		}
		records = append(records, record)
	}

	if records == nil {
		records = []Record{}
	}
	return records, nil
}
