package chart

import (
	"encoding/json"
	"fmt"
	"strings"
)

// reservedNameChars are filesystem characters rejected in output names.
const reservedNameChars = `/\:*?"<>|`

// Configuration is a fully validated chart request. Instances come from
// NewConfiguration or ConfigurationFromJSON and are not mutated afterwards;
// validation happens at construction, never at render time.
type Configuration struct {
	Title           string    `json:"title"`
	OutputName      string    `json:"output_name"`
	Kind            Kind      `json:"chart_kind"`
	RepositoryLabel string    `json:"repository_label,omitempty"`
	Style           PlotStyle `json:"style"`
}

// Options holds caller-supplied overrides for NewConfiguration.
// Zero values mean "use the derived default".
type Options struct {
	Title           string
	OutputName      string
	RepositoryLabel string
	Style           *PlotStyle
}

// NewConfiguration merges defaults with overrides and validates the result.
//
// Title and output-name defaults derive from the kind; a repository label
// appends " - {label}" to the title and "_{slug}" to the filename stem.
// Explicit Title or OutputName overrides win outright, with no concatenation.
func NewConfiguration(kind Kind, opts Options) (Configuration, error) {
	title := kind.DefaultTitle()
	stem := kind.DefaultStem()
	if opts.RepositoryLabel != "" {
		title = title + " - " + opts.RepositoryLabel
		stem = stem + "_" + slugifyLabel(opts.RepositoryLabel)
	}
	if opts.Title != "" {
		title = opts.Title
	}
	if opts.OutputName != "" {
		stem = opts.OutputName
	}

	style := DefaultStyle()
	if opts.Style != nil {
		style = *opts.Style
	}

	cfg := Configuration{
		Title:           title,
		OutputName:      stem,
		Kind:            kind,
		RepositoryLabel: opts.RepositoryLabel,
		Style:           style,
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// Validate checks the configuration and its owned style.
func (c Configuration) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return &FieldError{Field: "title", Reason: "must not be empty"}
	}
	if c.OutputName == "" {
		return &FieldError{Field: "output_name", Reason: "must not be empty"}
	}
	if i := strings.IndexAny(c.OutputName, reservedNameChars); i >= 0 {
		return &FieldError{
			Field:  "output_name",
			Reason: fmt.Sprintf("contains reserved character %q", string(c.OutputName[i])),
		}
	}
	if _, err := ParseKindName(c.Kind.String()); err != nil {
		return &FieldError{Field: "chart_kind", Reason: err.Error()}
	}
	return c.Style.Validate()
}

// FileName returns the image file name the renderer will write.
func (c Configuration) FileName() string {
	return c.OutputName + ".png"
}

// configurationJSON mirrors Configuration with optional fields for decoding.
type configurationJSON struct {
	Title           string     `json:"title"`
	OutputName      string     `json:"output_name"`
	Kind            *Kind      `json:"chart_kind"`
	RepositoryLabel string     `json:"repository_label"`
	Style           *styleJSON `json:"style"`
}

// styleJSON mirrors PlotStyle with pointer fields so absent keys fall back
// to defaults. Unknown fields are ignored by encoding/json.
type styleJSON struct {
	Resolution     *int        `json:"resolution"`
	FigureSize     *FigureSize `json:"figure_size"`
	PrimaryColor   *string     `json:"primary_color"`
	SecondaryColor *string     `json:"secondary_color"`
	BaseFontSize   *int        `json:"base_font_size"`
	TitleFontSize  *int        `json:"title_font_size"`
	GridOpacity    *float64    `json:"grid_opacity"`
}

// apply overlays the present fields onto base.
func (s *styleJSON) apply(base PlotStyle) PlotStyle {
	if s == nil {
		return base
	}
	if s.Resolution != nil {
		base.Resolution = *s.Resolution
	}
	if s.FigureSize != nil {
		base.FigureSize = *s.FigureSize
	}
	if s.PrimaryColor != nil {
		base.PrimaryColor = *s.PrimaryColor
	}
	if s.SecondaryColor != nil {
		base.SecondaryColor = *s.SecondaryColor
	}
	if s.BaseFontSize != nil {
		base.BaseFontSize = *s.BaseFontSize
	}
	if s.TitleFontSize != nil {
		base.TitleFontSize = *s.TitleFontSize
	}
	if s.GridOpacity != nil {
		base.GridOpacity = *s.GridOpacity
	}
	return base
}

// ConfigurationFromJSON decodes a configuration from a JSON object with
// snake_case field names. Missing optional fields take their defaults;
// unknown fields are ignored; chart_kind is required. The decoded
// configuration is validated before being returned.
func ConfigurationFromJSON(data []byte) (Configuration, error) {
	var raw configurationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return Configuration{}, fmt.Errorf("decoding chart configuration: %w", err)
	}
	if raw.Kind == nil {
		return Configuration{}, &FieldError{Field: "chart_kind", Reason: "is required"}
	}

	style := raw.Style.apply(DefaultStyle())
	return NewConfiguration(*raw.Kind, Options{
		Title:           raw.Title,
		OutputName:      raw.OutputName,
		RepositoryLabel: raw.RepositoryLabel,
		Style:           &style,
	})
}
