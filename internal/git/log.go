package git

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redcedar/commitviz/internal/output"
)

// Commit represents a git commit with the metadata commitviz records.
type Commit struct {
	SHA     string    // Full 40-character SHA
	Author  string    // Author name
	Email   string    // Author email
	Subject string    // First line of commit message
	Date    time.Time // Author date
}

// fieldSeparator delimits fields within a log line. Unit separator, which
// cannot appear in commit subjects git emits on a single %s line.
const fieldSeparator = "\x1f"

// Log returns all commits reachable from HEAD, newest first.
func Log(ctx context.Context) ([]Commit, error) {
	format := strings.Join([]string{
		"%H",  // Full SHA
		"%an", // Author name
		"%ae", // Author email
		"%s",  // Subject
		"%at", // Unix timestamp
	}, fieldSeparator)

	out, err := RunContext(ctx, "log", "--pretty=format:"+format)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to get git log", err)
	}

	return parseCommits(out)
}

// CommitTimes returns the author timestamps of all commits reachable from
// HEAD in local time, newest first. This is the collector's only git input.
func CommitTimes(ctx context.Context) ([]time.Time, error) {
	out, err := RunContext(ctx, "log", "--pretty=format:%at")
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to get commit timestamps", err)
	}

	var times []time.Time
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		unix, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, output.NewSystemError("unexpected git log output: " + line)
		}
		times = append(times, time.Unix(unix, 0))
	}
	return times, nil
}

// CommitCount returns the number of commits reachable from HEAD.
func CommitCount(ctx context.Context) (int, error) {
	out, err := RunContext(ctx, "rev-list", "--count", "HEAD")
	if err != nil {
		return 0, output.NewSystemErrorWithCause("failed to count commits", err)
	}
	count, err := strconv.Atoi(out)
	if err != nil {
		return 0, output.NewSystemError("unexpected rev-list output: " + out)
	}
	return count, nil
}

// parseCommits converts formatted log output into Commit values.
// Empty output yields an empty slice (repository with no commits).
func parseCommits(out string) ([]Commit, error) {
	if strings.TrimSpace(out) == "" {
		return []Commit{}, nil
	}

	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, fieldSeparator)
		if len(fields) != 5 {
			return nil, output.NewSystemError("unexpected git log line: " + line)
		}
		unix, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			return nil, output.NewSystemError("unexpected commit timestamp: " + fields[4])
		}
		commits = append(commits, Commit{
			SHA:     fields[0],
			Author:  fields[1],
			Email:   fields[2],
			Subject: fields[3],
			Date:    time.Unix(unix, 0),
		})
	}
	return commits, nil
}
