// Package collect aggregates git commit timestamps into the per-hour, per-day,
// and per-month count files the validator and renderer consume.
package collect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/redcedar/commitviz/internal/commitdata"
	"github.com/redcedar/commitviz/internal/git"
	"github.com/redcedar/commitviz/internal/output"
)

// Result reports what a collection run produced.
type Result struct {
	Commits int                              `json:"commits"`
	Files   map[commitdata.PeriodKind]string `json:"files"`
}

// Collector writes commit-count data files into DataDir.
type Collector struct {
	DataDir string
}

// Collect reads the full commit history, buckets the timestamps, and writes
// one data file per period kind. Only periods with at least one commit are
// written; the chart layer zero-fills the gaps.
func (c Collector) Collect(ctx context.Context) (Result, error) {
	times, err := git.CommitTimes(ctx)
	if err != nil {
		return Result{}, err
	}

	buckets := Aggregate(times)

	if err := os.MkdirAll(c.DataDir, 0750); err != nil {
		return Result{}, output.NewSystemErrorWithCause("creating data directory "+c.DataDir, err)
	}

	result := Result{
		Commits: len(times),
		Files:   make(map[commitdata.PeriodKind]string, len(buckets)),
	}
	for kind, counts := range buckets {
		path := filepath.Join(c.DataDir, commitdata.FileName(kind))
		if err := writeCounts(path, counts); err != nil {
			return Result{}, err
		}
		result.Files[kind] = path
	}
	return result, nil
}

// Aggregate buckets commit timestamps by hour of day, day of week (Sunday=0),
// and month of year (1-12), in local time.
func Aggregate(times []time.Time) map[commitdata.PeriodKind]map[int]int {
	buckets := map[commitdata.PeriodKind]map[int]int{
		commitdata.Hour:  make(map[int]int),
		commitdata.Day:   make(map[int]int),
		commitdata.Month: make(map[int]int),
	}
	for _, t := range times {
		buckets[commitdata.Hour][t.Hour()]++
		buckets[commitdata.Day][int(t.Weekday())]++
		buckets[commitdata.Month][int(t.Month())]++
	}
	return buckets
}

// writeCounts writes "period count" lines in ascending period order.
func writeCounts(path string, counts map[int]int) error {
	periods := make([]int, 0, len(counts))
	for p := range counts {
		periods = append(periods, p)
	}
	sort.Ints(periods)

	var b strings.Builder
	for _, p := range periods {
		fmt.Fprintf(&b, "%d %d\n", p, counts[p])
	}

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return output.NewSystemErrorWithCause("writing data file "+path, err)
	}
	return nil
}
