package git

import (
	"strings"
	"testing"
	"time"
)

func logLine(fields ...string) string {
	return strings.Join(fields, fieldSeparator)
}

func TestParseCommits(t *testing.T) {
	out := strings.Join([]string{
		logLine("aaaa111", "Ada Lovelace", "ada@example.com", "add parser", "1700000000"),
		logLine("bbbb222", "Grace Hopper", "grace@example.com", "fix off-by-one", "1690000000"),
	}, "\n")

	commits, err := parseCommits(out)
	if err != nil {
		t.Fatalf("parseCommits: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("got %d commits, want 2", len(commits))
	}

	first := commits[0]
	if first.SHA != "aaaa111" || first.Author != "Ada Lovelace" || first.Subject != "add parser" {
		t.Errorf("first commit = %+v", first)
	}
	if !first.Date.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("date = %v, want %v", first.Date, time.Unix(1700000000, 0))
	}
}

func TestParseCommits_Empty(t *testing.T) {
	commits, err := parseCommits("")
	if err != nil {
		t.Fatalf("parseCommits on empty output: %v", err)
	}
	if len(commits) != 0 {
		t.Errorf("got %d commits, want 0", len(commits))
	}
}

func TestParseCommits_MalformedLine(t *testing.T) {
	_, err := parseCommits("not a log line")
	if err == nil {
		t.Error("expected error for malformed line")
	}
}

func TestNameFromRemoteURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{url: "git@github.com:redcedar/commitviz.git", want: "commitviz"},
		{url: "https://github.com/redcedar/commitviz.git", want: "commitviz"},
		{url: "https://github.com/redcedar/commitviz", want: "commitviz"},
		{url: "commitviz", want: "commitviz"},
	}

	for _, tt := range tests {
		if got := NameFromRemoteURL(tt.url); got != tt.want {
			t.Errorf("NameFromRemoteURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
