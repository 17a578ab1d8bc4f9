package db

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"
	"strings"
	"time"

	"room-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	migrationTable = "schema_migrations"
	migrationRoot  = "migrations"
	// arbitrary key shared by every instance running migrations
	migrationLockKey = 7243150912
)

// Migrate applies each embedded migration at most once. Concurrent callers serialize on a
// transaction-scoped advisory lock.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	files, err := migrationFiles()
	if err != nil {
		return err
	}

	createSQL := `CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
    name TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL
)`
	if _, err := pool.Exec(ctx, createSQL); err != nil {
		return errs.Wrap(err, "ensure migration table")
	}

	for _, file := range files {
		applied, err := applyMigration(ctx, pool, file)
		if err != nil {
			return err
		}
		if applied {
			logger.Info("migration applied", "name", file)
		}
	}
	return nil
}

func migrationFiles() ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, migrationRoot)
	if err != nil {
		return nil, errs.Wrap(err, "read migrations dir")
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, file string) (bool, error) {
	content, err := fs.ReadFile(migrationFS, migrationRoot+"/"+file)
	if err != nil {
		return false, errs.Wrapf(err, "read migration %s", file)
	}
	upSQL := ExtractUpMigration(string(content))
	if strings.TrimSpace(upSQL) == "" {
		return false, nil
	}

	applied := false
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", migrationLockKey); err != nil {
			return errs.Wrap(err, "acquire migration lock")
		}

		var found int
		err := tx.QueryRow(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = $1", file).Scan(&found)
		if err == nil {
			return nil
		}
		if !errs.Is(err, pgx.ErrNoRows) {
			return errs.Wrapf(err, "check migration %s", file)
		}

		if _, err := tx.Exec(ctx, upSQL); err != nil {
			return errs.Wrapf(err, "exec migration %s", file)
		}
		if _, err := tx.Exec(ctx,
			"INSERT INTO "+migrationTable+" (name, applied_at) VALUES ($1, $2)",
			file, time.Now().UTC(),
		); err != nil {
			return errs.Wrapf(err, "record migration %s", file)
		}
		applied = true
		return nil
	})
	return applied, err
}

// ExtractUpMigration returns the SQL in the -- +migrate Up section.
func ExtractUpMigration(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"
	upIdx := strings.Index(content, up)
	if upIdx == -1 {
		return content
	}
	downIdx := strings.Index(content, down)
	if downIdx == -1 {
		return content[upIdx+len(up):]
	}
	return content[upIdx+len(up) : downIdx]
}
