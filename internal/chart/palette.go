package chart

import (
	"fmt"
	"math"
)

// Palette derives the ordered hex colors for n visible chart elements.
//
//   - n == 1 yields [primary]
//   - n == 2 yields [primary, secondary]
//   - n >= 3 steps linearly from primary to secondary in RGB space,
//     inclusive of both endpoints, flooring each channel
//
// n must be positive; callers filter to nonzero categories first and fail
// with ErrNoData before ever requesting a zero-length palette.
func Palette(style PlotStyle, n int) ([]string, error) {
	if n <= 0 {
		return nil, &FieldError{Field: "palette", Reason: fmt.Sprintf("requested %d colors, need at least 1", n)}
	}

	switch n {
	case 1:
		return []string{style.PrimaryColor}, nil
	case 2:
		return []string{style.PrimaryColor, style.SecondaryColor}, nil
	}

	pr, pg, pb, err := ParseHexColor(style.PrimaryColor)
	if err != nil {
		return nil, &FieldError{Field: "primary_color", Reason: err.Error()}
	}
	sr, sg, sb, err := ParseHexColor(style.SecondaryColor)
	if err != nil {
		return nil, &FieldError{Field: "secondary_color", Reason: err.Error()}
	}

	colors := make([]string, n)
	for i := 0; i < n; i++ {
		ratio := float64(i) / float64(n-1)
		r := lerpChannel(pr, sr, ratio)
		g := lerpChannel(pg, sg, ratio)
		b := lerpChannel(pb, sb, ratio)
		colors[i] = fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return colors, nil
}

// lerpChannel interpolates one color channel, flooring the result.
// Interpolated values never leave [from, to], so flooring matches integer
// truncation on the non-negative range.
func lerpChannel(from, to uint8, ratio float64) uint8 {
	value := float64(from) + (float64(to)-float64(from))*ratio
	return uint8(math.Floor(value))
}
