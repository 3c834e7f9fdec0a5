package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/btc-haven/haven-cli/internal/model"
	"github.com/btc-haven/haven-cli/internal/scorer"
)

// pgPool is the subset of pgxpool.Pool the store uses. pgxmock's pool
// satisfies it, which is what the unit tests run against.
type pgPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool pgPool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS scoring_runs (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	answers    JSONB NOT NULL,
	preset     TEXT NOT NULL,
	overrides  JSONB,
	results    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_scoring_runs_preset ON scoring_runs(preset);
CREATE INDEX IF NOT EXISTS idx_scoring_runs_created_at ON scoring_runs(created_at);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveRun(ctx context.Context, answers model.QuizAnswers, preset scorer.Preset, overrides *scorer.WeightOverrides, results []scorer.ScoredJurisdiction) (*Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	answersJSON, overridesJSON, resultsJSON, err := marshalRun(answers, overrides, results)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal run")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO scoring_runs (id, answers, preset, overrides, results, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, answersJSON, string(preset), overridesJSON, resultsJSON, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert run")
	}

	return &Run{
		ID:        id,
		Answers:   answers,
		Preset:    preset,
		Overrides: overrides,
		Results:   results,
		CreatedAt: now,
	}, nil
}

func (s *PostgresStore) GetRun(ctx context.Context, runID string) (*Run, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, answers, preset, overrides, results, created_at FROM scoring_runs WHERE id = $1`,
		runID,
	)

	r, err := scanRun(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get run %s", runID)
	}
	return r, nil
}

func (s *PostgresStore) ListRuns(ctx context.Context, filter RunFilter) ([]Run, error) {
	query := `SELECT id, answers, preset, overrides, results, created_at FROM scoring_runs WHERE 1=1`
	var args []any

	if filter.Preset != "" {
		args = append(args, string(filter.Preset))
		query += ` AND preset = $1`
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows.Scan)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan run")
		}
		runs = append(runs, *r)
	}
	return runs, eris.Wrap(rows.Err(), "postgres: list runs iterate")
}

func (s *PostgresStore) DeleteRun(ctx context.Context, runID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM scoring_runs WHERE id = $1`, runID)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete run %s", runID)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
