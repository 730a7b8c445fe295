package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:embed migrations/*.up.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// Conn is the subset of pgxpool.Pool the migrator needs.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Migrator applies *.up.sql files in lexical order. Applied versions are
// recorded in schema_migrations so each file runs once.
type Migrator struct {
	DB     Conn
	FS     fs.FS
	Dir    string
	Logger *slog.Logger
}

// NewMigrator builds a migrator over the embedded migrations.
func NewMigrator(conn Conn, logger *slog.Logger) *Migrator {
	return &Migrator{DB: conn, FS: migrationsFS, Dir: migrationsDir, Logger: logger}
}

// Migrate applies the embedded migrations over a dedicated connection.
// Pooled connections prepare statements against the schema on connect, so
// the schema must exist before the pool is opened.
func Migrate(ctx context.Context, databaseURL string, logger *slog.Logger) (int, error) {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return 0, fmt.Errorf("connect for migrations: %w", err)
	}
	defer conn.Close(context.Background())
	return NewMigrator(conn, logger).Up(ctx)
}

// Up runs every pending migration, each in its own transaction, and returns
// how many were applied.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if m == nil || m.DB == nil || m.FS == nil {
		return 0, errors.New("migrator requires a database handle and a filesystem")
	}
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := m.DB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	done, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}
	files, err := Files(m.FS, m.Dir)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, name := range files {
		version := Version(name)
		if done[version] {
			continue
		}
		contents, err := fs.ReadFile(m.FS, path.Join(m.Dir, name))
		if err != nil {
			return applied, fmt.Errorf("read migration %s: %w", name, err)
		}
		if strings.TrimSpace(string(contents)) == "" {
			logger.Info("Skipping empty migration", "file", name)
			continue
		}
		if err := m.apply(ctx, version, string(contents)); err != nil {
			return applied, fmt.Errorf("migration %s: %w", name, err)
		}
		applied++
		logger.Info("Migration applied", "file", name)
	}

	if applied == 0 {
		logger.Info("No migrations to run")
	}
	return applied, nil
}

func (m *Migrator) apply(ctx context.Context, version, sql string) error {
	tx, err := m.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	// No arguments, so pgx sends the file over the simple protocol and
	// multi-statement bodies (including $$ functions) run as written.
	if _, err := tx.Exec(ctx, sql); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
		return fmt.Errorf("record version: %w", err)
	}
	return tx.Commit(ctx)
}

func (m *Migrator) applied(ctx context.Context) (map[string]bool, error) {
	rows, err := m.DB.Query(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("list applied migrations: %w", err)
	}
	versions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan applied migrations: %w", err)
	}
	done := make(map[string]bool, len(versions))
	for _, v := range versions {
		done[v] = true
	}
	return done, nil
}

// Files lists the *.up.sql files of dir in lexical order.
func Files(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Version strips the .up.sql suffix: "001_schema.up.sql" is "001_schema".
func Version(file string) string {
	return strings.TrimSuffix(file, ".up.sql")
}
