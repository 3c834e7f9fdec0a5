package store

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btc-haven/haven-cli/internal/model"
	"github.com/btc-haven/haven-cli/internal/scorer"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_GetRun_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, answers, preset, overrides, results, created_at FROM scoring_runs WHERE id = \$1`).
		WithArgs("nonexistent-run").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetRun(context.Background(), "nonexistent-run")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO scoring_runs`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), "balanced", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	run, err := s.SaveRun(context.Background(), model.DefaultAnswers(), scorer.PresetBalanced, nil, sampleResults())
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, scorer.PresetBalanced, run.Preset)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteRun_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`DELETE FROM scoring_runs WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, s.DeleteRun(context.Background(), "missing"), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListRuns_PresetPlaceholders(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rows := pgxmock.NewRows([]string{"id", "answers", "preset", "overrides", "results", "created_at"})
	mock.ExpectQuery(`SELECT id, answers, preset, overrides, results, created_at FROM scoring_runs WHERE 1=1 AND preset = \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("family-first", 10, 5).
		WillReturnRows(rows)

	runs, err := s.ListRuns(context.Background(), RunFilter{
		Preset: scorer.PresetFamilyFirst,
		Limit:  10,
		Offset: 5,
	})
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
