// Package render turns validated chart configurations and commit records
// into PNG images using go-chart.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/redcedar/commitviz/internal/chart"
	"github.com/redcedar/commitviz/internal/commitdata"
	"github.com/redcedar/commitviz/internal/output"
)

// Inputs carries the record sets a chart may consume. Only the sets named
// by the configuration's kind need to be populated.
type Inputs struct {
	Hour  []commitdata.Record
	Day   []commitdata.Record
	Month []commitdata.Record
}

// Renderer writes chart images into OutputDir.
type Renderer struct {
	OutputDir string
}

// Render draws the chart described by cfg and writes it as
// {output_name}.png under OutputDir, returning the written path.
//
// Data errors (chart.ErrNoData, style problems surfacing as *chart.FieldError)
// pass through untouched so callers can map them to user-facing failures.
func (r Renderer) Render(cfg chart.Configuration, in Inputs) (string, error) {
	img, err := r.draw(cfg, in)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.OutputDir, 0750); err != nil {
		return "", output.NewSystemErrorWithCause("creating output directory "+r.OutputDir, err)
	}
	path := filepath.Join(r.OutputDir, cfg.FileName())
	if err := os.WriteFile(path, img, 0600); err != nil {
		return "", output.NewSystemErrorWithCause("writing chart image "+path, err)
	}
	return path, nil
}

func (r Renderer) draw(cfg chart.Configuration, in Inputs) ([]byte, error) {
	switch cfg.Kind {
	case chart.HourBar:
		return barChartPNG(cfg, in.Hour)
	case chart.DayPie:
		slices, err := chart.DaySlices(in.Day, false)
		if err != nil {
			return nil, err
		}
		width, height := pixelSize(cfg.Style)
		return pieChartPNG(cfg.Title, cfg.Style, slices, width, height)
	case chart.MonthPie:
		slices, err := chart.MonthSlices(in.Month, false)
		if err != nil {
			return nil, err
		}
		width, height := pixelSize(cfg.Style)
		return pieChartPNG(cfg.Title, cfg.Style, slices, width, height)
	case chart.DayMonthCombined:
		return combinedPNG(cfg.Style, in.Day, in.Month)
	default:
		return nil, fmt.Errorf("unknown chart kind %s", cfg.Kind)
	}
}

// pixelSize converts the style's figure size in inches to pixels at the
// configured resolution.
func pixelSize(style chart.PlotStyle) (width, height int) {
	return int(style.FigureSize.Width * float64(style.Resolution)),
		int(style.FigureSize.Height * float64(style.Resolution))
}

// colorFromHex adapts a validated "#RRGGBB" string to a drawing color.
func colorFromHex(hex string) drawing.Color {
	return drawing.ColorFromHex(hex[1:])
}
