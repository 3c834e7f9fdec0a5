// Package store persists scoring runs so results can be revisited and
// compared later. Two backends: SQLite for single-user CLI use and
// Postgres for the serve mode.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/btc-haven/haven-cli/internal/model"
	"github.com/btc-haven/haven-cli/internal/scorer"
)

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = eris.New("store: run not found")

// Run is one persisted scoring run: the inputs and the ranked output.
type Run struct {
	ID        string                      `json:"id"`
	Answers   model.QuizAnswers           `json:"answers"`
	Preset    scorer.Preset               `json:"preset"`
	Overrides *scorer.WeightOverrides     `json:"overrides,omitempty"`
	Results   []scorer.ScoredJurisdiction `json:"results"`
	CreatedAt time.Time                   `json:"created_at"`
}

// TopResult returns the highest-ranked jurisdiction of the run, or nil
// for a run with no results.
func (r *Run) TopResult() *scorer.ScoredJurisdiction {
	if len(r.Results) == 0 {
		return nil
	}
	return &r.Results[0]
}

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Preset scorer.Preset `json:"preset,omitempty"`
	Limit  int           `json:"limit,omitempty"`
	Offset int           `json:"offset,omitempty"`
}

// Store defines the persistence interface for scoring runs.
type Store interface {
	SaveRun(ctx context.Context, answers model.QuizAnswers, preset scorer.Preset, overrides *scorer.WeightOverrides, results []scorer.ScoredJurisdiction) (*Run, error)
	GetRun(ctx context.Context, runID string) (*Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]Run, error)
	DeleteRun(ctx context.Context, runID string) error

	Migrate(ctx context.Context) error
	Close() error
}
