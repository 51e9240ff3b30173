package commitdata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeDataFile writes content to name inside a temp dir and returns the path.
func writeDataFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestKindFromPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    PeriodKind
		wantErr bool
	}{
		{name: "hour file", path: "commit_counts_hour.txt", want: Hour},
		{name: "day file", path: "commit_counts_day.txt", want: Day},
		{name: "month file", path: "commit_counts_month.txt", want: Month},
		{name: "hour wins over month", path: "monthly_hours.txt", want: Hour},
		{name: "day wins over month", path: "monday_data.txt", want: Day},
		{name: "kind in directory component", path: "/tmp/hour/counts.txt", want: Hour},
		{name: "case sensitive", path: "commit_counts_HOUR.txt", wantErr: true},
		{name: "no hint", path: "commit_counts.txt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KindFromPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("KindFromPath(%q) = %v, want error", tt.path, got)
				}
				var kindErr *KindError
				if !errors.As(err, &kindErr) {
					t.Errorf("error type = %T, want *KindError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("KindFromPath(%q) error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("KindFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoadFile_RoundTrip(t *testing.T) {
	path := writeDataFile(t, "commit_counts_hour.txt", "0 4\n9 120\n23 1\n")

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	want := []Record{
		{Period: 0, Count: 4, Kind: Hour},
		{Period: 9, Count: 120, Kind: Hour},
		{Period: 23, Count: 1, Kind: Hour},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, r := range records {
		if r != want[i] {
			t.Errorf("record[%d] = %+v, want %+v", i, r, want[i])
		}
	}
}

func TestLoadFile_BlankLinesSkipped(t *testing.T) {
	path := writeDataFile(t, "commit_counts_day.txt", "\n0 3\n\n  \n4 9\n\n")

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestLoadFile_EmptyFile(t *testing.T) {
	path := writeDataFile(t, "commit_counts_month.txt", "\n\n")

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile on empty file: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commit_counts_hour.txt")

	_, err := LoadFile(path)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v (%T), want *NotFoundError", err, err)
	}
	if notFound.Path != path {
		t.Errorf("NotFoundError.Path = %q, want %q", notFound.Path, path)
	}
}

func TestLoadFile_UndeterminableKind(t *testing.T) {
	path := writeDataFile(t, "commit_counts.txt", "0 4\n")

	_, err := LoadFile(path)
	var kindErr *KindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("error = %v (%T), want *KindError", err, err)
	}
}

func TestLoadFile_ParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{name: "wrong token count", content: "0 4\n1 2 3\n2 5\n", wantLine: 2},
		{name: "single token", content: "0 4\n7\n", wantLine: 2},
		{name: "non-integer period", content: "0 4\nnine 2\n", wantLine: 2},
		{name: "non-integer count", content: "0 4\n1 many\n", wantLine: 2},
		{name: "float count", content: "3 1.5\n", wantLine: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataFile(t, "commit_counts_hour.txt", tt.content)

			records, err := LoadFile(path)
			if records != nil {
				t.Errorf("got partial records %v, want nil on error", records)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("error = %v (%T), want *ParseError", err, err)
			}
			if parseErr.Line != tt.wantLine {
				t.Errorf("ParseError.Line = %d, want %d", parseErr.Line, tt.wantLine)
			}
		})
	}
}

func TestLoadFile_RangeErrorCarriesLine(t *testing.T) {
	path := writeDataFile(t, "commit_counts_hour.txt", "0 4\n24 9\n")

	records, err := LoadFile(path)
	if records != nil {
		t.Errorf("got partial records %v, want nil on error", records)
	}
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("error = %v (%T), want *RangeError", err, err)
	}
	if rangeErr.Line != 2 {
		t.Errorf("RangeError.Line = %d, want 2", rangeErr.Line)
	}
	if rangeErr.Value != 24 {
		t.Errorf("RangeError.Value = %d, want 24", rangeErr.Value)
	}
}

func TestLoadKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName(Day))
	if err := os.WriteFile(path, []byte("2 11\n"), 0600); err != nil {
		t.Fatalf("writing data file: %v", err)
	}

	records, err := LoadKind(dir, Day)
	if err != nil {
		t.Fatalf("LoadKind: %v", err)
	}
	if len(records) != 1 || records[0].Period != 2 || records[0].Count != 11 {
		t.Errorf("records = %+v, want one record {2 11 day}", records)
	}
}
