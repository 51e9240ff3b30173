package schemaorg

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/redcedar/commitviz/internal/chart"
)

func freezeClock(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })
}

func TestSoftwareApplication_RepositoryScoping(t *testing.T) {
	freezeClock(t)

	doc := SoftwareApplication("commitviz", "2.1.0")
	if doc["@type"] != "SoftwareApplication" {
		t.Errorf("@type = %v", doc["@type"])
	}
	if doc["name"] != "Git Commit Visualization Utilities - commitviz" {
		t.Errorf("name = %v", doc["name"])
	}
	if doc["softwareVersion"] != "2.1.0" {
		t.Errorf("softwareVersion = %v", doc["softwareVersion"])
	}

	plain := SoftwareApplication("", "")
	if plain["name"] != "Git Commit Visualization Utilities" {
		t.Errorf("unscoped name = %v", plain["name"])
	}
	if plain["softwareVersion"] != "1.0.0" {
		t.Errorf("default version = %v", plain["softwareVersion"])
	}
}

func TestDataset_Distribution(t *testing.T) {
	freezeClock(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "commit_counts_hour.txt")
	if err := os.WriteFile(path, []byte("9 4\n14 2\n"), 0600); err != nil {
		t.Fatal(err)
	}

	doc := Dataset(DatasetHourly, "myrepo", path, 2)
	if !strings.Contains(doc["name"].(string), "Hourly") {
		t.Errorf("name = %v", doc["name"])
	}

	dist, ok := doc["distribution"].(Document)
	if !ok {
		t.Fatalf("distribution missing: %v", doc["distribution"])
	}
	if dist["contentUrl"] != path {
		t.Errorf("contentUrl = %v", dist["contentUrl"])
	}
	if dist["numberOfRecords"] != 2 {
		t.Errorf("numberOfRecords = %v", dist["numberOfRecords"])
	}
}

func TestDataset_MissingFileOmitsDistribution(t *testing.T) {
	doc := Dataset(DatasetDaily, "", "/nonexistent/file.txt", 0)
	if _, ok := doc["distribution"]; ok {
		t.Error("distribution should be omitted for a missing file")
	}
}

func TestCreativeWork(t *testing.T) {
	freezeClock(t)

	doc := CreativeWork(chart.DayPie, "myrepo", "")
	if doc["name"] != "Daily Commit Pattern Chart - myrepo" {
		t.Errorf("name = %v", doc["name"])
	}
	basedOn := doc["isBasedOn"].(Document)
	if basedOn["name"] != "Git Commit Data - myrepo" {
		t.Errorf("isBasedOn name = %v", basedOn["name"])
	}
}

func TestGenerateAll(t *testing.T) {
	freezeClock(t)

	dir := t.TempDir()
	paths, err := GenerateAll("My Repo", "1.2.3", dir)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}

	want := []string{
		"software_application", "commit_dataset", "hourly_dataset",
		"daily_dataset", "monthly_dataset", "mcp_server",
	}
	if len(paths) != len(want) {
		t.Fatalf("got %d schemas, want %d", len(paths), len(want))
	}
	for _, name := range want {
		path, ok := paths[name]
		if !ok {
			t.Errorf("missing schema %q", name)
			continue
		}
		if !strings.HasSuffix(path, "_my_repo.jsonld") {
			t.Errorf("%s path = %q, want repo-sluged .jsonld name", name, path)
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%q): %v", path, err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Errorf("%s is not valid JSON: %v", name, err)
		}
		if decoded["@context"] != "https://schema.org" {
			t.Errorf("%s @context = %v", name, decoded["@context"])
		}
	}
}
