package chart

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPlotStyle_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*PlotStyle)
		wantField string
	}{
		{name: "defaults valid", modify: func(s *PlotStyle) {}},
		{name: "resolution too low", modify: func(s *PlotStyle) { s.Resolution = 71 }, wantField: "resolution"},
		{name: "resolution too high", modify: func(s *PlotStyle) { s.Resolution = 601 }, wantField: "resolution"},
		{name: "zero width", modify: func(s *PlotStyle) { s.FigureSize.Width = 0 }, wantField: "figure_size"},
		{name: "negative height", modify: func(s *PlotStyle) { s.FigureSize.Height = -1 }, wantField: "figure_size"},
		{name: "missing hash", modify: func(s *PlotStyle) { s.PrimaryColor = "4e79a7" }, wantField: "primary_color"},
		{name: "short hex", modify: func(s *PlotStyle) { s.PrimaryColor = "#fff" }, wantField: "primary_color"},
		{name: "non-hex digits", modify: func(s *PlotStyle) { s.SecondaryColor = "#gggggg" }, wantField: "secondary_color"},
		{name: "too long", modify: func(s *PlotStyle) { s.SecondaryColor = "#4e79a7ff" }, wantField: "secondary_color"},
		{name: "base font too small", modify: func(s *PlotStyle) { s.BaseFontSize = 7 }, wantField: "base_font_size"},
		{name: "base font too large", modify: func(s *PlotStyle) { s.BaseFontSize = 25 }, wantField: "base_font_size"},
		{name: "title font too small", modify: func(s *PlotStyle) { s.TitleFontSize = 9 }, wantField: "title_font_size"},
		{name: "title font too large", modify: func(s *PlotStyle) { s.TitleFontSize = 33 }, wantField: "title_font_size"},
		{name: "opacity below zero", modify: func(s *PlotStyle) { s.GridOpacity = -0.1 }, wantField: "grid_opacity"},
		{name: "opacity above one", modify: func(s *PlotStyle) { s.GridOpacity = 1.1 }, wantField: "grid_opacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := DefaultStyle()
			tt.modify(&style)

			err := style.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				return
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("error = %v (%T), want *FieldError", err, err)
			}
			if fieldErr.Field != tt.wantField {
				t.Errorf("FieldError.Field = %q, want %q", fieldErr.Field, tt.wantField)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	r, g, b, err := ParseHexColor("#4e79a7")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if r != 0x4e || g != 0x79 || b != 0xa7 {
		t.Errorf("channels = (%#x, %#x, %#x), want (0x4e, 0x79, 0xa7)", r, g, b)
	}
}

func TestFigureSize_JSON(t *testing.T) {
	style := DefaultStyle()

	data, err := json.Marshal(style)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"figure_size":[12,8]`) {
		t.Errorf("figure_size not serialized as array: %s", data)
	}

	var decoded PlotStyle
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded != style {
		t.Errorf("round trip = %+v, want %+v", decoded, style)
	}
}
