package collect

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redcedar/commitviz/internal/commitdata"
)

func TestAggregate(t *testing.T) {
	// Sunday 2024-03-03 14:05 and Monday 2024-03-04 14:30, local time.
	times := []time.Time{
		time.Date(2024, time.March, 3, 14, 5, 0, 0, time.Local),
		time.Date(2024, time.March, 4, 14, 30, 0, 0, time.Local),
		time.Date(2024, time.March, 4, 9, 0, 0, 0, time.Local),
	}

	buckets := Aggregate(times)

	if got := buckets[commitdata.Hour][14]; got != 2 {
		t.Errorf("hour 14 count = %d, want 2", got)
	}
	if got := buckets[commitdata.Hour][9]; got != 1 {
		t.Errorf("hour 9 count = %d, want 1", got)
	}
	if got := buckets[commitdata.Day][0]; got != 1 {
		t.Errorf("sunday count = %d, want 1", got)
	}
	if got := buckets[commitdata.Day][1]; got != 2 {
		t.Errorf("monday count = %d, want 2", got)
	}
	if got := buckets[commitdata.Month][3]; got != 3 {
		t.Errorf("march count = %d, want 3", got)
	}
	if got := len(buckets[commitdata.Month]); got != 1 {
		t.Errorf("months with commits = %d, want 1", got)
	}
}

func TestAggregate_Empty(t *testing.T) {
	buckets := Aggregate(nil)
	for kind, counts := range buckets {
		if len(counts) != 0 {
			t.Errorf("%s: got %d buckets, want 0", kind, len(counts))
		}
	}
}

func TestWriteCounts_SortedAndLoadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, commitdata.FileName(commitdata.Hour))

	if err := writeCounts(path, map[int]int{14: 2, 9: 1, 23: 5}); err != nil {
		t.Fatalf("writeCounts: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "9 1\n14 2\n23 5\n"
	if string(raw) != want {
		t.Errorf("file contents = %q, want %q", raw, want)
	}

	// What the collector writes must parse back through the validator.
	records, err := commitdata.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
	if records[0].Kind != commitdata.Hour {
		t.Errorf("kind = %s, want hour", records[0].Kind)
	}
}
