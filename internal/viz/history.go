package viz

import (
	"context"
	"time"

	"github.com/redcedar/commitviz/internal/collect"
	"github.com/redcedar/commitviz/internal/commitdata"
	"github.com/redcedar/commitviz/internal/git"
	"github.com/redcedar/commitviz/internal/output"
	"github.com/redcedar/commitviz/internal/store"
)

// SyncResult reports a history sync run.
type SyncResult struct {
	Repository   string `json:"repository"`
	TotalCommits int    `json:"total_commits"`
	NewCommits   int    `json:"new_commits"`
}

func (s *Service) requireStore() error {
	if s.Store == nil {
		return output.NewUserError("no database configured, set 'database' in settings")
	}
	return nil
}

// SyncHistory ingests the full commit log and per-period summaries into
// the configured database.
func (s *Service) SyncHistory(ctx context.Context) (*SyncResult, error) {
	if err := s.requireStore(); err != nil {
		return nil, err
	}

	name, err := git.RepoName()
	if err != nil {
		return nil, err
	}
	branch, _ := git.CurrentBranch()

	commits, err := git.Log(ctx)
	if err != nil {
		return nil, err
	}

	repoID, err := s.Store.UpsertRepository(name, git.RemoteURL(), branch, len(commits))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("syncing repository", err)
	}

	inserted, err := s.Store.InsertCommits(repoID, commits)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("syncing commits", err)
	}

	times := make([]time.Time, len(commits))
	for i, c := range commits {
		times[i] = c.Date
	}
	buckets := collect.Aggregate(times)
	for kind, counts := range buckets {
		records := make([]commitdata.Record, 0, len(counts))
		for period, count := range counts {
			record, err := commitdata.NewRecord(kind, period, count)
			if err != nil {
				return nil, output.NewSystemErrorWithCause("aggregating history", err)
			}
			records = append(records, record)
		}
		if err := s.Store.UpsertSummaries(repoID, kind, records); err != nil {
			return nil, output.NewSystemErrorWithCause("syncing summaries", err)
		}
	}

	return &SyncResult{Repository: name, TotalCommits: len(commits), NewCommits: inserted}, nil
}

// HistorySummary returns the stored per-period counts for one period kind.
func (s *Service) HistorySummary(repositoryName string, kind commitdata.PeriodKind) ([]commitdata.Record, error) {
	if err := s.requireStore(); err != nil {
		return nil, err
	}
	repo, err := s.resolveRepository(repositoryName)
	if err != nil {
		return nil, err
	}
	records, err := s.Store.Summaries(repo.ID, kind)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("reading summaries", err)
	}
	return records, nil
}

// ChartHistory returns stored chart metadata, newest first.
func (s *Service) ChartHistory(repositoryName string, limit int) ([]store.ChartRecord, error) {
	if err := s.requireStore(); err != nil {
		return nil, err
	}
	repo, err := s.resolveRepository(repositoryName)
	if err != nil {
		return nil, err
	}
	charts, err := s.Store.Charts(repo.ID, limit)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("reading chart history", err)
	}
	return charts, nil
}

// resolveRepository looks up a repository row, deriving the name from git
// when not given.
func (s *Service) resolveRepository(name string) (*store.Repository, error) {
	if name == "" {
		detected, err := git.RepoName()
		if err != nil {
			return nil, output.NewUserError("repository name required outside a git repository")
		}
		name = detected
	}
	repo, err := s.Store.GetRepository(name)
	if err != nil {
		return nil, output.NewUserError("repository " + name + " not synced yet, run 'commitviz history sync'")
	}
	return repo, nil
}
