package render

import (
	"bytes"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/redcedar/commitviz/internal/chart"
	"github.com/redcedar/commitviz/internal/commitdata"
)

// barChartPNG draws the 24-hour bar chart. All 24 hours appear as bars,
// zero-count hours included; only even hours get an axis label.
func barChartPNG(cfg chart.Configuration, records []commitdata.Record) ([]byte, error) {
	counts := chart.HourSeries(records)

	total := 0
	for _, c := range counts {
		total += c
	}
	// go-chart cannot autoscale an all-zero series.
	if total == 0 {
		return nil, chart.ErrNoData
	}

	primary := colorFromHex(cfg.Style.PrimaryColor)
	secondary := colorFromHex(cfg.Style.SecondaryColor)

	bars := make([]gochart.Value, 0, len(counts))
	for hour, count := range counts {
		label := ""
		if hour%2 == 0 {
			label = strconv.Itoa(hour)
		}
		bars = append(bars, gochart.Value{
			Value: float64(count),
			Label: label,
			Style: gochart.Style{
				FillColor:   primary,
				StrokeColor: secondary,
				StrokeWidth: 1,
			},
		})
	}

	width, height := pixelSize(cfg.Style)
	bc := gochart.BarChart{
		Title: cfg.Title,
		TitleStyle: gochart.Style{
			FontSize: float64(cfg.Style.TitleFontSize),
		},
		Width:    width,
		Height:   height,
		DPI:      float64(cfg.Style.Resolution),
		BarWidth: width / 32,
		XAxis: gochart.Style{
			FontSize: float64(cfg.Style.BaseFontSize),
		},
		YAxis: gochart.YAxis{
			Style: gochart.Style{
				FontSize: float64(cfg.Style.BaseFontSize),
			},
			GridMajorStyle: gochart.Style{
				StrokeColor: drawing.Color{A: uint8(cfg.Style.GridOpacity * 255)},
				StrokeWidth: 1,
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
