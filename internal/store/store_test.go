package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/albapepper/leaguesim/internal/model"
)

func TestPageNormalize(t *testing.T) {
	tests := []struct {
		in, want Page
	}{
		{Page{}, Page{Skip: 0, Limit: DefaultLimit}},
		{Page{Skip: -5, Limit: 10}, Page{Skip: 0, Limit: 10}},
		{Page{Skip: 20, Limit: 10_000}, Page{Skip: 20, Limit: MaxLimit}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Normalize())
	}
}

func TestMapErr(t *testing.T) {
	assert.Nil(t, mapErr(nil))
	assert.ErrorIs(t, mapErr(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, mapErr(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)), ErrNotFound)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: codeUniqueViolation, Detail: "Key (name)=(X) already exists."}), ErrConflict)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: codeForeignKeyViolation}), ErrNotFound)

	check := mapErr(&pgconn.PgError{Code: codeCheckViolation, ConstraintName: "matches_check"})
	assert.ErrorIs(t, check, ErrInvalidValue)
	assert.Contains(t, check.Error(), "matches_check")

	other := errors.New("boom")
	assert.Equal(t, other, mapErr(other))
}

func TestSetter(t *testing.T) {
	name := "Alpha"
	var clan *string
	var st setter
	set(&st, "name", &name)
	set(&st, "clan", clan)
	st.raw("updated_at = NOW()")

	sql, args := st.sql("teams", 7, "id")
	assert.Equal(t, "UPDATE teams SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING id", sql)
	assert.Equal(t, []any{"Alpha", 7}, args)
	assert.False(t, st.empty())
}

func TestWhere(t *testing.T) {
	var w where
	assert.Empty(t, w.String())

	w.add("m.jornada = $%d", 3)
	w.add("m.league_id = $%d", 9)
	assert.Equal(t, " WHERE m.jornada = $1 AND m.league_id = $2", w.String())
	assert.Equal(t, " LIMIT $3 OFFSET $4", w.page(Page{Skip: 10}))
	assert.Equal(t, []any{3, 9, DefaultLimit, 10}, w.args)
}

func TestDateConversion(t *testing.T) {
	assert.Nil(t, dateArg(nil))
	assert.Nil(t, toDate(nil))

	ts := time.Date(2025, 3, 8, 15, 30, 0, 0, time.UTC)
	d := toDate(&ts)
	assert.Equal(t, "2025-03-08", d.String())

	back := dateArg(d)
	assert.Equal(t, model.NewDate(ts).Time, *back)
}
