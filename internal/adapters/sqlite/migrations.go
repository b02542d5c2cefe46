package sqlite

import (
	"context"
	"embed"
	"sort"
	"strings"

	"go.trai.ch/logshare/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

type migration struct {
	version string
	sql     string
}

func loadMigrations() ([]migration, error) {
	entries, err := migrationFS.ReadDir("migrations")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error())
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]migration, 0, len(names))
	for _, name := range names {
		data, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error()), "migration", name)
		}
		migrations = append(migrations, migration{
			version: strings.TrimSuffix(name, ".sql"),
			sql:     string(data),
		})
	}
	return migrations, nil
}

func (s *Store) applyMigrations(ctx context.Context) error {
	migrations, err := loadMigrations()
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error())
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const ensure = "CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)"
	if _, err := tx.ExecContext(ctx, ensure); err != nil {
		return zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error())
	}

	for _, m := range migrations {
		var count int
		row := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM schema_migrations WHERE version = ?", m.version)
		if err := row.Scan(&count); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error()), "migration", m.version)
		}
		if count > 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx, m.sql); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error()), "migration", m.version)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error()), "migration", m.version)
		}
	}

	if err := tx.Commit(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error())
	}
	return nil
}
