package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/redcedar/commitviz/internal/chart"
)

// SettingsFile is the settings file name inside the config directory.
const SettingsFile = "settings.yaml"

// Settings holds the persistent user configuration. Zero values mean
// "use the built-in default".
type Settings struct {
	// DataDir is where collected commit count files live.
	DataDir string `yaml:"data_dir"`
	// OutputDir is where chart images and schema files are written.
	OutputDir string `yaml:"output_dir"`
	// Database is the sqlite path; empty disables persistence.
	Database string `yaml:"database"`
	// AutoDetectRepo controls whether the repository label is derived
	// from git when not given explicitly.
	AutoDetectRepo *bool `yaml:"auto_detect_repo"`
	// Style overrides applied on top of the default plot style.
	Style StyleSettings `yaml:"style"`
}

// StyleSettings mirrors the plot style with optional fields.
type StyleSettings struct {
	Resolution     *int     `yaml:"resolution"`
	FigureWidth    *float64 `yaml:"figure_width"`
	FigureHeight   *float64 `yaml:"figure_height"`
	PrimaryColor   *string  `yaml:"primary_color"`
	SecondaryColor *string  `yaml:"secondary_color"`
	BaseFontSize   *int     `yaml:"base_font_size"`
	TitleFontSize  *int     `yaml:"title_font_size"`
	GridOpacity    *float64 `yaml:"grid_opacity"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		DataDir:   "data",
		OutputDir: "charts",
	}
}

// Load reads settings from dir, falling back to defaults when the file is
// missing. Unset fields take their default values.
func Load(dir string) (Settings, error) {
	settings := DefaultSettings()

	raw, err := os.ReadFile(filepath.Join(dir, SettingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if settings.DataDir == "" {
		settings.DataDir = DefaultSettings().DataDir
	}
	if settings.OutputDir == "" {
		settings.OutputDir = DefaultSettings().OutputDir
	}
	return settings, nil
}

// Save writes settings to dir, creating it if needed.
func Save(dir string, settings Settings) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), data, 0600); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// AutoDetect reports whether the repository label should be derived from
// git. Defaults to true when unset.
func (s Settings) AutoDetect() bool {
	if s.AutoDetectRepo == nil {
		return true
	}
	return *s.AutoDetectRepo
}

// PlotStyle applies the style overrides onto the default plot style.
func (s Settings) PlotStyle() chart.PlotStyle {
	style := chart.DefaultStyle()
	o := s.Style
	if o.Resolution != nil {
		style.Resolution = *o.Resolution
	}
	if o.FigureWidth != nil {
		style.FigureSize.Width = *o.FigureWidth
	}
	if o.FigureHeight != nil {
		style.FigureSize.Height = *o.FigureHeight
	}
	if o.PrimaryColor != nil {
		style.PrimaryColor = *o.PrimaryColor
	}
	if o.SecondaryColor != nil {
		style.SecondaryColor = *o.SecondaryColor
	}
	if o.BaseFontSize != nil {
		style.BaseFontSize = *o.BaseFontSize
	}
	if o.TitleFontSize != nil {
		style.TitleFontSize = *o.TitleFontSize
	}
	if o.GridOpacity != nil {
		style.GridOpacity = *o.GridOpacity
	}
	return style
}
