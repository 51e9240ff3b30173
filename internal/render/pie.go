package render

import (
	"bytes"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/redcedar/commitviz/internal/chart"
)

// pieChartPNG draws one pie from already-filtered nonzero slices, coloring
// them with the palette derived from the style's primary and secondary colors.
func pieChartPNG(title string, style chart.PlotStyle, slices []chart.Slice, width, height int) ([]byte, error) {
	colors, err := chart.Palette(style, len(slices))
	if err != nil {
		return nil, err
	}

	values := make([]gochart.Value, len(slices))
	for i, s := range slices {
		values[i] = gochart.Value{
			Value: float64(s.Count),
			Label: s.Label,
			Style: gochart.Style{
				FillColor: colorFromHex(colors[i]),
				FontSize:  float64(style.BaseFontSize),
			},
		}
	}

	pc := gochart.PieChart{
		Title: title,
		TitleStyle: gochart.Style{
			FontSize: float64(style.TitleFontSize),
		},
		Width:  width,
		Height: height,
		DPI:    float64(style.Resolution),
		Values: values,
	}

	var buf bytes.Buffer
	if err := pc.Render(gochart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
