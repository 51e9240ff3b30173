package chart

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Style bounds. Resolution is DPI, font sizes are points.
const (
	MinResolution    = 72
	MaxResolution    = 600
	MinBaseFontSize  = 8
	MaxBaseFontSize  = 24
	MinTitleFontSize = 10
	MaxTitleFontSize = 32
)

// FigureSize is a (width, height) pair in inches.
// It serializes as a two-element JSON array to match the config wire format.
type FigureSize struct {
	Width  float64
	Height float64
}

// MarshalJSON emits [width, height].
func (f FigureSize) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{f.Width, f.Height})
}

// UnmarshalJSON accepts [width, height].
func (f *FigureSize) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("figure_size must be a [width, height] array: %w", err)
	}
	f.Width, f.Height = pair[0], pair[1]
	return nil
}

// PlotStyle holds the styling parameters for one chart.
type PlotStyle struct {
	Resolution     int        `json:"resolution"`
	FigureSize     FigureSize `json:"figure_size"`
	PrimaryColor   string     `json:"primary_color"`
	SecondaryColor string     `json:"secondary_color"`
	BaseFontSize   int        `json:"base_font_size"`
	TitleFontSize  int        `json:"title_font_size"`
	GridOpacity    float64    `json:"grid_opacity"`
}

// DefaultStyle returns the built-in plot style.
func DefaultStyle() PlotStyle {
	return PlotStyle{
		Resolution:     300,
		FigureSize:     FigureSize{Width: 12, Height: 8},
		PrimaryColor:   "#4e79a7",
		SecondaryColor: "#2e4977",
		BaseFontSize:   12,
		TitleFontSize:  16,
		GridOpacity:    0.3,
	}
}

// Validate checks every field against its declared constraint.
// The first violation is returned as a *FieldError.
func (s PlotStyle) Validate() error {
	if s.Resolution < MinResolution || s.Resolution > MaxResolution {
		return &FieldError{
			Field:  "resolution",
			Reason: fmt.Sprintf("%d is outside [%d, %d] DPI", s.Resolution, MinResolution, MaxResolution),
		}
	}
	if s.FigureSize.Width <= 0 || s.FigureSize.Height <= 0 {
		return &FieldError{
			Field:  "figure_size",
			Reason: fmt.Sprintf("width and height must be positive, got (%g, %g)", s.FigureSize.Width, s.FigureSize.Height),
		}
	}
	if _, _, _, err := ParseHexColor(s.PrimaryColor); err != nil {
		return &FieldError{Field: "primary_color", Reason: err.Error()}
	}
	if _, _, _, err := ParseHexColor(s.SecondaryColor); err != nil {
		return &FieldError{Field: "secondary_color", Reason: err.Error()}
	}
	if s.BaseFontSize < MinBaseFontSize || s.BaseFontSize > MaxBaseFontSize {
		return &FieldError{
			Field:  "base_font_size",
			Reason: fmt.Sprintf("%d is outside [%d, %d]", s.BaseFontSize, MinBaseFontSize, MaxBaseFontSize),
		}
	}
	if s.TitleFontSize < MinTitleFontSize || s.TitleFontSize > MaxTitleFontSize {
		return &FieldError{
			Field:  "title_font_size",
			Reason: fmt.Sprintf("%d is outside [%d, %d]", s.TitleFontSize, MinTitleFontSize, MaxTitleFontSize),
		}
	}
	if s.GridOpacity < 0 || s.GridOpacity > 1 {
		return &FieldError{
			Field:  "grid_opacity",
			Reason: fmt.Sprintf("%g is outside [0.0, 1.0]", s.GridOpacity),
		}
	}
	return nil
}

// ParseHexColor decodes a strict "#RRGGBB" color into channel bytes.
// Any other form (short form, missing '#', non-hex digits) is an error.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("color %q must be in #RRGGBB form", s)
	}
	value, parseErr := strconv.ParseUint(s[1:], 16, 32)
	if parseErr != nil {
		return 0, 0, 0, fmt.Errorf("color %q has non-hex digits", s)
	}
	return uint8(value >> 16), uint8(value >> 8), uint8(value), nil
}
