package chart

import (
	"errors"
	"testing"

	"github.com/redcedar/commitviz/internal/commitdata"
)

func TestDaySlices(t *testing.T) {
	records := []commitdata.Record{
		{Period: 1, Count: 10, Kind: commitdata.Day},
		{Period: 3, Count: 0, Kind: commitdata.Day},
		{Period: 5, Count: 4, Kind: commitdata.Day},
	}

	slices, err := DaySlices(records, false)
	if err != nil {
		t.Fatalf("DaySlices: %v", err)
	}

	want := []Slice{
		{Label: "Monday", Count: 10},
		{Label: "Friday", Count: 4},
	}
	if len(slices) != len(want) {
		t.Fatalf("got %d slices, want %d: %+v", len(slices), len(want), slices)
	}
	for i := range slices {
		if slices[i] != want[i] {
			t.Errorf("slice[%d] = %+v, want %+v", i, slices[i], want[i])
		}
	}
}

func TestDaySlices_Abbreviated(t *testing.T) {
	records := []commitdata.Record{{Period: 0, Count: 1, Kind: commitdata.Day}}

	slices, err := DaySlices(records, true)
	if err != nil {
		t.Fatalf("DaySlices: %v", err)
	}
	if slices[0].Label != "Sun" {
		t.Errorf("label = %q, want Sun", slices[0].Label)
	}
}

func TestMonthSlices_OneIndexed(t *testing.T) {
	records := []commitdata.Record{
		{Period: 1, Count: 3, Kind: commitdata.Month},
		{Period: 12, Count: 7, Kind: commitdata.Month},
	}

	slices, err := MonthSlices(records, false)
	if err != nil {
		t.Fatalf("MonthSlices: %v", err)
	}

	want := []Slice{
		{Label: "January", Count: 3},
		{Label: "December", Count: 7},
	}
	for i := range want {
		if slices[i] != want[i] {
			t.Errorf("slice[%d] = %+v, want %+v", i, slices[i], want[i])
		}
	}
}

func TestSlices_AllZeroIsNoData(t *testing.T) {
	zeroDays := []commitdata.Record{
		{Period: 2, Count: 0, Kind: commitdata.Day},
	}
	if _, err := DaySlices(zeroDays, false); !errors.Is(err, ErrNoData) {
		t.Errorf("DaySlices error = %v, want ErrNoData", err)
	}

	if _, err := MonthSlices(nil, false); !errors.Is(err, ErrNoData) {
		t.Errorf("MonthSlices error = %v, want ErrNoData", err)
	}
}

func TestHourSeries(t *testing.T) {
	records := []commitdata.Record{
		{Period: 0, Count: 2, Kind: commitdata.Hour},
		{Period: 23, Count: 9, Kind: commitdata.Hour},
	}

	series := HourSeries(records)
	if series[0] != 2 || series[23] != 9 {
		t.Errorf("series endpoints = (%d, %d), want (2, 9)", series[0], series[23])
	}
	for i := 1; i < 23; i++ {
		if series[i] != 0 {
			t.Errorf("series[%d] = %d, want 0", i, series[i])
		}
	}
}
