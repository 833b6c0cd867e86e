package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
)

// Migrate applies SQL migration files from migrationFS that have not been
// applied yet. Files are applied in lexicographic order, each in its own
// transaction, and recorded in the schema_migrations table.
func Migrate(ctx context.Context, db *sqlx.DB, migrationFS fs.FS, dir string) error {
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("db.ExecContext(create schema_migrations) > %w", err)
	}

	applied := map[string]struct{}{}
	var names []string
	if err := db.SelectContext(ctx, &names, "SELECT filename FROM schema_migrations"); err != nil {
		return fmt.Errorf("db.SelectContext(schema_migrations) > %w", err)
	}
	for _, name := range names {
		applied[name] = struct{}{}
	}

	entries, err := fs.ReadDir(migrationFS, dir)
	if err != nil {
		return fmt.Errorf("fs.ReadDir(%s) > %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		name := entry.Name()
		if _, ok := applied[name]; ok {
			continue
		}

		content, err := fs.ReadFile(migrationFS, dir+"/"+name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
		}

		if err := RunInTx(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return fmt.Errorf("tx.ExecContext(migration %s) > %w", name, err)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO schema_migrations (filename) VALUES ($1)", name); err != nil {
				return fmt.Errorf("tx.ExecContext(record migration %s) > %w", name, err)
			}
			return nil
		}); err != nil {
			return err
		}
	}

	return nil
}
