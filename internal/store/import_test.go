package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct{ err error }

func (r fakeRow) Scan(...any) error { return r.err }

// fakeTx stands in for the pool, a transaction or a savepoint. Begin
// hands out the next level. Methods the import path does not use fall
// through to the nil embedded pgx.Tx.
type fakeTx struct {
	pgx.Tx
	rowErr      error
	rollbackErr error
	next        *fakeTx

	rollbacks int
	execs     []string
}

func (f *fakeTx) Begin(context.Context) (pgx.Tx, error) { return f.next, nil }
func (f *fakeTx) Commit(context.Context) error          { return nil }

func (f *fakeTx) Rollback(context.Context) error {
	f.rollbacks++
	return f.rollbackErr
}

func (f *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row {
	return fakeRow{err: f.rowErr}
}

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.CommandTag{}, nil
}

func TestImportCalendar_BadRowIsSkipped(t *testing.T) {
	sp := &fakeTx{rowErr: errors.New("connection reset")}
	tx := &fakeTx{next: sp}
	db := &fakeTx{next: tx}

	res, err := New(db).ImportCalendar(context.Background(), 1, "https://www.marca.com/x", []ImportRow{
		{Jornada: 1, HomeTeamID: 1, AwayTeamID: 2},
		{Jornada: 2, HomeTeamID: 2, AwayTeamID: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, sp.rollbacks)
	assert.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "row 1 (jornada 1)")
	assert.Zero(t, res.MatchesCreated)
	require.Len(t, tx.execs, 1)
	assert.Contains(t, tx.execs[0], "calendar_generated = TRUE")
}

func TestImportCalendar_FailedSavepointRollbackAborts(t *testing.T) {
	rbErr := errors.New("savepoint lost")
	sp := &fakeTx{rowErr: errors.New("connection reset"), rollbackErr: rbErr}
	tx := &fakeTx{next: sp}
	db := &fakeTx{next: tx}

	_, err := New(db).ImportCalendar(context.Background(), 1, "https://www.marca.com/x", []ImportRow{
		{Jornada: 1, HomeTeamID: 1, AwayTeamID: 2},
		{Jornada: 2, HomeTeamID: 2, AwayTeamID: 1},
	})

	require.ErrorIs(t, err, rbErr)
	assert.Equal(t, 1, sp.rollbacks)
	assert.Empty(t, tx.execs)
}
