package render

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	"github.com/redcedar/commitviz/internal/chart"
	"github.com/redcedar/commitviz/internal/commitdata"
	"github.com/redcedar/commitviz/internal/output"
)

// combinedPNG draws the day and month pies side by side on one canvas.
// Each pie gets half the figure width and abbreviated category labels.
func combinedPNG(style chart.PlotStyle, day, month []commitdata.Record) ([]byte, error) {
	daySlices, err := chart.DaySlices(day, true)
	if err != nil {
		return nil, err
	}
	monthSlices, err := chart.MonthSlices(month, true)
	if err != nil {
		return nil, err
	}

	width, height := pixelSize(style)
	half := width / 2

	dayPNG, err := pieChartPNG("By Day of Week", style, daySlices, half, height)
	if err != nil {
		return nil, err
	}
	monthPNG, err := pieChartPNG("By Month", style, monthSlices, half, height)
	if err != nil {
		return nil, err
	}

	left, err := png.Decode(bytes.NewReader(dayPNG))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("decoding day pie image", err)
	}
	right, err := png.Decode(bytes.NewReader(monthPNG))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("decoding month pie image", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, half, height), left, image.Point{}, draw.Over)
	draw.Draw(canvas, image.Rect(half, 0, width, height), right, image.Point{}, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, output.NewSystemErrorWithCause("encoding combined chart image", err)
	}
	return buf.Bytes(), nil
}
