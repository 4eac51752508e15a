package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

//go:embed *.sql
var files embed.FS

// Up применяет еще не примененные SQL файлы по порядку имен
// Возвращает имена файлов, примененных в этом запуске
func Up(ctx context.Context, db dbmetrics.DBExecutor) ([]string, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("migrations: list files: %w", err)
	}
	sort.Strings(names)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)`); err != nil {
		return nil, fmt.Errorf("migrations: create schema_migrations: %w", err)
	}

	applied := make([]string, 0, len(names))
	for _, name := range names {
		var exists bool
		if err := db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, name).Scan(&exists); err != nil {
			return nil, fmt.Errorf("migrations: check %s: %w", name, err)
		}
		if exists {
			continue
		}

		script, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("migrations: read %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return nil, fmt.Errorf("migrations: apply %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
			return nil, fmt.Errorf("migrations: record %s: %w", name, err)
		}
		applied = append(applied, name)
	}

	return applied, nil
}
