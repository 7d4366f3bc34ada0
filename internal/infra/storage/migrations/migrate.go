// Package migrations применяет встроенные SQL миграции схемы
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/kesamokki/booking-service/pkg/psqlbuilder"
)

//go:embed sql/*.sql
var files embed.FS

var (
	ErrReadMigrations = errors.New("migrations: failed to read migrations")
	ErrApply          = errors.New("migrations: failed to apply migration")
)

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
}

// DB подмножество *sql.DB, нужное для миграций
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Versions список встроенных миграций по порядку
func Versions() ([]string, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMigrations, err)
	}

	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			versions = append(versions, e.Name())
		}
	}
	sort.Strings(versions)

	return versions, nil
}

// Up применяет ещё не применённые миграции, каждую в своей транзакции
// вместе с записью версии в schema_migrations
func Up(ctx context.Context, db DB, log Logger) error {
	if _, err := db.ExecContext(ctx, createVersionsTable); err != nil {
		return fmt.Errorf("%w: create schema_migrations: %w", ErrApply, err)
	}

	versions, err := Versions()
	if err != nil {
		return err
	}

	for _, version := range versions {
		applied, err := isApplied(ctx, db, version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		log.Info("Applying migration: version=%s", version)
		if err := apply(ctx, db, version); err != nil {
			return err
		}
	}

	return nil
}

func isApplied(ctx context.Context, db DB, version string) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("schema_migrations").
		Where(squirrel.Eq{"version": version}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: build query: %w", ErrApply, err)
	}

	var one int
	err = db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: check %s: %w", ErrApply, version, err)
	}

	return true, nil
}

func apply(ctx context.Context, db DB, version string) error {
	content, err := files.ReadFile("sql/" + version)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrReadMigrations, version, err)
	}

	record, args, err := psqlbuilder.Insert("schema_migrations").
		Columns("version").
		Values(version).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build insert: %w", ErrApply, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: begin: %w", ErrApply, version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrApply, version, err)
	}
	if _, err := tx.ExecContext(ctx, record, args...); err != nil {
		return fmt.Errorf("%w: %s: record version: %w", ErrApply, version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s: commit: %w", ErrApply, version, err)
	}

	return nil
}
