package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv("COMMITVIZ_CONFIG_HOME", "/tmp/explicit")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	if got := Dir(); got != "/tmp/explicit" {
		t.Errorf("Dir() = %q, want explicit override", got)
	}
}

func TestDir_XDG(t *testing.T) {
	t.Setenv("COMMITVIZ_CONFIG_HOME", "")
	os.Unsetenv("COMMITVIZ_CONFIG_HOME")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	want := filepath.Join("/tmp/xdg", "commitviz")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_HomeFallback(t *testing.T) {
	t.Setenv("COMMITVIZ_CONFIG_HOME", "")
	os.Unsetenv("COMMITVIZ_CONFIG_HOME")
	t.Setenv("XDG_CONFIG_HOME", "")
	os.Unsetenv("XDG_CONFIG_HOME")

	got := Dir()
	if got == "" {
		t.Skip("no home directory available")
	}
	if !strings.HasSuffix(got, filepath.Join("commitviz")) {
		t.Errorf("Dir() = %q, want a commitviz directory", got)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.DataDir != "data" || settings.OutputDir != "charts" {
		t.Errorf("settings = %+v, want defaults", settings)
	}
	if !settings.AutoDetect() {
		t.Error("AutoDetect should default to true")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	autoDetect := false
	resolution := 150
	primary := "#112233"
	in := Settings{
		DataDir:        "my-data",
		OutputDir:      "my-charts",
		Database:       "commitviz.db",
		AutoDetectRepo: &autoDetect,
		Style: StyleSettings{
			Resolution:   &resolution,
			PrimaryColor: &primary,
		},
	}

	if err := Save(dir, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if out.DataDir != "my-data" || out.Database != "commitviz.db" {
		t.Errorf("settings = %+v", out)
	}
	if out.AutoDetect() {
		t.Error("AutoDetect should be false")
	}

	style := out.PlotStyle()
	if style.Resolution != 150 {
		t.Errorf("resolution = %d, want 150", style.Resolution)
	}
	if style.PrimaryColor != "#112233" {
		t.Errorf("primary = %q", style.PrimaryColor)
	}
	// Untouched fields keep their defaults.
	if style.SecondaryColor != "#2e4977" {
		t.Errorf("secondary = %q, want default", style.SecondaryColor)
	}
	if style.FigureSize.Width != 12 || style.FigureSize.Height != 8 {
		t.Errorf("figure size = %+v, want default", style.FigureSize)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte("data_dir: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
