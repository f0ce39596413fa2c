package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func newMigrationProvider(pool *pgxpool.Pool) (*goose.Provider, error) {
	migrationsFS, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("cannot open embedded migrations: %w", err)
	}

	return goose.NewProvider(goose.DialectPostgres, stdlib.OpenDBFromPool(pool), migrationsFS)
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, logger *zap.Logger, pool *pgxpool.Pool) error {
	provider, err := newMigrationProvider(pool)
	if err != nil {
		return fmt.Errorf("cannot create goose provider: %w", err)
	}
	defer provider.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("cannot run database migrations: %w", err)
	}
	for _, r := range results {
		logger.Info("migration applied",
			zap.String("source", r.Source.Path),
			zap.Duration("duration", r.Duration),
		)
	}

	return nil
}
