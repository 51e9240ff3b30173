package commitdata

// Stats summarizes a validated record sequence for reporting.
type Stats struct {
	Records      int     `json:"total_records"`
	TotalCommits int     `json:"total_commits"`
	MaxCount     int     `json:"max_commits_per_period"`
	MinCount     int     `json:"min_commits_per_period"`
	AvgCount     float64 `json:"avg_commits_per_period"`
}

// Summarize computes aggregate statistics over records.
// An empty sequence yields the zero Stats.
func Summarize(records []Record) Stats {
	if len(records) == 0 {
		return Stats{}
	}

	stats := Stats{
		Records:  len(records),
		MaxCount: records[0].Count,
		MinCount: records[0].Count,
	}
	for _, r := range records {
		stats.TotalCommits += r.Count
		if r.Count > stats.MaxCount {
			stats.MaxCount = r.Count
		}
		if r.Count < stats.MinCount {
			stats.MinCount = r.Count
		}
	}
	stats.AvgCount = float64(stats.TotalCommits) / float64(len(records))
	return stats
}
