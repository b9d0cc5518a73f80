package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_portfolios_table",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createPortfoliosTable(ctx, pool)
			},
		},
		{
			Name: "add_deployment_columns_to_portfolios",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return addDeploymentColumnsToPortfolios(ctx, pool)
			},
		},
		{
			Name: "add_user_index_to_portfolios",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return addUserIndexToPortfolios(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

func createPortfoliosTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS portfolios (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			template TEXT NOT NULL,
			content JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		return err
	}

	slog.Info("Successfully ensured portfolios table")
	return nil
}

// addDeploymentColumnsToPortfolios adds the hosting metadata columns if
// they don't exist
func addDeploymentColumnsToPortfolios(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		ALTER TABLE portfolios
		ADD COLUMN IF NOT EXISTS vercel_project_id TEXT,
		ADD COLUMN IF NOT EXISTS vercel_domain TEXT;
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the columns may already exist
		slog.Warn("Error adding deployment columns (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully added deployment columns to portfolios table")
	return nil
}

func addUserIndexToPortfolios(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE INDEX IF NOT EXISTS portfolios_user_id_idx
		ON portfolios (user_id, updated_at DESC);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		slog.Warn("Error creating user index (may already exist)", "error", err)
		return nil
	}

	slog.Info("Successfully ensured portfolios user index")
	return nil
}
