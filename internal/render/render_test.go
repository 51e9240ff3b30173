package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/redcedar/commitviz/internal/chart"
	"github.com/redcedar/commitviz/internal/commitdata"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// smallStyle keeps render tests fast; full-resolution images are slow to draw.
func smallStyle() chart.PlotStyle {
	style := chart.DefaultStyle()
	style.Resolution = 72
	style.FigureSize = chart.FigureSize{Width: 6, Height: 4}
	return style
}

func testConfig(t *testing.T, kind chart.Kind) chart.Configuration {
	t.Helper()
	style := smallStyle()
	cfg, err := chart.NewConfiguration(kind, chart.Options{Style: &style})
	if err != nil {
		t.Fatalf("NewConfiguration: %v", err)
	}
	return cfg
}

func records(t *testing.T, kind commitdata.PeriodKind, pairs ...int) []commitdata.Record {
	t.Helper()
	var out []commitdata.Record
	for i := 0; i+1 < len(pairs); i += 2 {
		r, err := commitdata.NewRecord(kind, pairs[i], pairs[i+1])
		if err != nil {
			t.Fatalf("NewRecord(%d, %d): %v", pairs[i], pairs[i+1], err)
		}
		out = append(out, r)
	}
	return out
}

func TestRender_AllKinds(t *testing.T) {
	hour := records(t, commitdata.Hour, 9, 4, 14, 7, 22, 1)
	day := records(t, commitdata.Day, 0, 3, 1, 8, 5, 2)
	month := records(t, commitdata.Month, 1, 5, 6, 9, 12, 2)
	in := Inputs{Hour: hour, Day: day, Month: month}

	for _, kind := range chart.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			r := Renderer{OutputDir: t.TempDir()}
			cfg := testConfig(t, kind)

			path, err := r.Render(cfg, in)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if filepath.Base(path) != cfg.FileName() {
				t.Errorf("path = %q, want file %q", path, cfg.FileName())
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if !bytes.HasPrefix(data, pngMagic) {
				t.Errorf("output is not a PNG (starts with % x)", data[:4])
			}
		})
	}
}

func TestRender_NoData(t *testing.T) {
	r := Renderer{OutputDir: t.TempDir()}

	for _, kind := range chart.Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			cfg := testConfig(t, kind)
			_, err := r.Render(cfg, Inputs{})
			if !errors.Is(err, chart.ErrNoData) {
				t.Errorf("Render with empty inputs: err = %v, want ErrNoData", err)
			}
		})
	}
}

func TestRender_PartialDataStillDraws(t *testing.T) {
	// A single nonzero day is enough for a one-slice pie.
	r := Renderer{OutputDir: t.TempDir()}
	cfg := testConfig(t, chart.DayPie)

	path, err := r.Render(cfg, Inputs{Day: records(t, commitdata.Day, 3, 1)})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Stat(%q): %v", path, err)
	}
}
