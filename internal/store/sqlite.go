package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/btc-haven/haven-cli/internal/model"
	"github.com/btc-haven/haven-cli/internal/scorer"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS scoring_runs (
	id         TEXT PRIMARY KEY,
	answers    TEXT NOT NULL,
	preset     TEXT NOT NULL,
	overrides  TEXT,
	results    TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_scoring_runs_preset ON scoring_runs(preset);
CREATE INDEX IF NOT EXISTS idx_scoring_runs_created_at ON scoring_runs(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveRun(ctx context.Context, answers model.QuizAnswers, preset scorer.Preset, overrides *scorer.WeightOverrides, results []scorer.ScoredJurisdiction) (*Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	answersJSON, overridesJSON, resultsJSON, err := marshalRun(answers, overrides, results)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal run")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scoring_runs (id, answers, preset, overrides, results, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, answersJSON, string(preset), overridesJSON, resultsJSON, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
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

func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, answers, preset, overrides, results, created_at FROM scoring_runs WHERE id = ?`,
		runID,
	)

	r, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get run %s", runID)
	}
	return r, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, filter RunFilter) ([]Run, error) {
	query := `SELECT id, answers, preset, overrides, results, created_at FROM scoring_runs WHERE 1=1`
	var args []any

	if filter.Preset != "" {
		query += ` AND preset = ?`
		args = append(args, string(filter.Preset))
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows.Scan)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan run")
		}
		runs = append(runs, *r)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: list runs iterate")
}

func (s *SQLiteStore) DeleteRun(ctx context.Context, runID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scoring_runs WHERE id = ?`, runID)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete run %s", runID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// marshalRun serializes the JSON columns shared by both backends.
func marshalRun(answers model.QuizAnswers, overrides *scorer.WeightOverrides, results []scorer.ScoredJurisdiction) (string, *string, string, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return "", nil, "", eris.Wrap(err, "marshal answers")
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return "", nil, "", eris.Wrap(err, "marshal results")
	}
	var overridesJSON *string
	if overrides != nil {
		b, err := json.Marshal(overrides)
		if err != nil {
			return "", nil, "", eris.Wrap(err, "marshal overrides")
		}
		s := string(b)
		overridesJSON = &s
	}
	return string(answersJSON), overridesJSON, string(resultsJSON), nil
}

// scanRun decodes one scoring_runs row via the given Scan function, so
// it works for both sql.Row and sql.Rows as well as pgx rows.
func scanRun(scan func(...any) error) (*Run, error) {
	var (
		r             Run
		answersJSON   string
		preset        string
		overridesJSON *string
		resultsJSON   string
	)
	if err := scan(&r.ID, &answersJSON, &preset, &overridesJSON, &resultsJSON, &r.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(answersJSON), &r.Answers); err != nil {
		return nil, eris.Wrap(err, "unmarshal answers")
	}
	r.Preset = scorer.Preset(preset)
	if overridesJSON != nil {
		r.Overrides = &scorer.WeightOverrides{}
		if err := json.Unmarshal([]byte(*overridesJSON), r.Overrides); err != nil {
			return nil, eris.Wrap(err, "unmarshal overrides")
		}
	}
	if err := json.Unmarshal([]byte(resultsJSON), &r.Results); err != nil {
		return nil, eris.Wrap(err, "unmarshal results")
	}
	return &r, nil
}
