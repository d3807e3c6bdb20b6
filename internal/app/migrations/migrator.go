// Package migrations applies the embedded schema files in order at
// startup. Files are idempotent, so re-running on boot is safe.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/engbowl/engbowl/internal/pkg/logger"
)

//go:embed *.sql
var migrationFiles embed.FS

// Run applies every embedded migration in filename order.
func Run(ctx context.Context, pool *pgxpool.Pool) error {
	entries, err := migrationFiles.ReadDir(".")
	if err != nil {
		return fmt.Errorf("error reading embedded migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		sql, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("error reading migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("error applying migration %s: %w", name, err)
		}
		logger.Info().Str("migration", name).Msg("Migration applied")
	}
	return nil
}
