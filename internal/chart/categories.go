package chart

import "github.com/redcedar/commitviz/internal/commitdata"

// Slice is one visible pie category: a display label and its commit count.
type Slice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var dayAbbrevs = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthAbbrevs = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// DaySlices zero-fills the 7-day week, overlays the given records, and drops
// days whose final count is zero. Returns ErrNoData if nothing remains.
// Abbreviated labels (Sun, Mon, ...) are used in the combined chart.
func DaySlices(records []commitdata.Record, abbreviated bool) ([]Slice, error) {
	labels := dayNames[:]
	if abbreviated {
		labels = dayAbbrevs[:]
	}

	counts := make([]int, 7)
	for _, r := range records {
		counts[r.Period] = r.Count
	}
	return filterSlices(labels, counts)
}

// MonthSlices zero-fills the 12-month year, overlays the given records
// (months are 1-indexed), and drops months whose final count is zero.
// Returns ErrNoData if nothing remains.
func MonthSlices(records []commitdata.Record, abbreviated bool) ([]Slice, error) {
	labels := monthNames[:]
	if abbreviated {
		labels = monthAbbrevs[:]
	}

	counts := make([]int, 12)
	for _, r := range records {
		counts[r.Period-1] = r.Count
	}
	return filterSlices(labels, counts)
}

// HourSeries zero-fills the 24-hour day and overlays the given records.
// Bar charts keep zero-count hours, so no filtering or no-data check applies.
func HourSeries(records []commitdata.Record) [24]int {
	var counts [24]int
	for _, r := range records {
		counts[r.Period] = r.Count
	}
	return counts
}

// filterSlices pairs labels with nonzero counts, preserving category order.
func filterSlices(labels []string, counts []int) ([]Slice, error) {
	var slices []Slice
	for i, count := range counts {
		if count > 0 {
			slices = append(slices, Slice{Label: labels[i], Count: count})
		}
	}
	if len(slices) == 0 {
		return nil, ErrNoData
	}
	return slices, nil
}
