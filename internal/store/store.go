// Package store is the PostgreSQL repository for teams, leagues, matches,
// calendar entries and league statistics.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/albapepper/leaguesim/internal/model"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrLeagueFull      = errors.New("league is full")
	ErrTeamNotInLeague = errors.New("team is not registered in the league")
	ErrAlreadyListed   = errors.New("match already has a calendar entry")
	ErrInvalidValue    = errors.New("value violates a constraint")
)

// Postgres error codes the store translates.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Pagination bounds.
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is the database handle the store runs on. *pgxpool.Pool satisfies it.
type DB interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store runs every query of the application.
type Store struct {
	db DB
}

// New creates a store over db.
func New(db DB) *Store {
	return &Store{db: db}
}

// Page is an offset/limit window.
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps the window to the accepted bounds.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (s *Store) tx(ctx context.Context, fn func(pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, s.db, fn)
}

// mapErr translates driver errors into the store's sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.Detail)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrNotFound, pgErr.Detail)
		case codeCheckViolation:
			return fmt.Errorf("%w: %s", ErrInvalidValue, pgErr.ConstraintName)
		}
	}
	return err
}

// setter accumulates "col = $n" assignments for partial updates.
type setter struct {
	cols []string
	args []any
}

func (s *setter) add(col string, v any) {
	s.args = append(s.args, v)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(s.args)))
}

func (s *setter) raw(expr string) {
	s.cols = append(s.cols, expr)
}

func (s *setter) empty() bool { return len(s.args) == 0 }

// sql renders "UPDATE table SET ... WHERE id = $n RETURNING returning".
func (s *setter) sql(table string, id int, returning string) (string, []any) {
	args := append(append([]any{}, s.args...), id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(s.cols, ", "), len(args))
	if returning != "" {
		q += " RETURNING " + returning
	}
	return q, args
}

func set[T any](s *setter, col string, v *T) {
	if v != nil {
		s.add(col, *v)
	}
}

// where accumulates filter predicates.
type where struct {
	preds []string
	args  []any
}

func (w *where) add(pred string, v any) {
	w.args = append(w.args, v)
	w.preds = append(w.preds, fmt.Sprintf(pred, len(w.args)))
}

func (w *where) String() string {
	if len(w.preds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.preds, " AND ")
}

// page appends LIMIT/OFFSET placeholders.
func (w *where) page(p Page) string {
	p = p.Normalize()
	w.args = append(w.args, p.Limit, p.Skip)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(w.args)-1, len(w.args))
}

func dateArg(d *model.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func toDate(t *time.Time) *model.Date {
	if t == nil {
		return nil
	}
	d := model.NewDate(*t)
	return &d
}
