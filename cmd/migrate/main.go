package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"lets-heal/internal/config"
	"lets-heal/internal/database"
	"lets-heal/internal/logger"
	"lets-heal/internal/repository"
	"lets-heal/internal/seed"
	"lets-heal/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var timeout time.Duration

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the Let's Heal database schema and seed data",
		SilenceUsage: true,
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall deadline for the command")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), timeout, runUp)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and when they were applied",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDB(cmd.Context(), timeout, func(ctx context.Context, db *sqlx.DB) error {
					return runStatus(ctx, db, cmd)
				})
			},
		},
		&cobra.Command{
			Use:   "seed <file.yaml>",
			Short: "Load quiz content, hospitals and accounts from a YAML file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := seed.Load(args[0])
				if err != nil {
					return err
				}
				return withDB(cmd.Context(), timeout, func(ctx context.Context, db *sqlx.DB) error {
					return runSeed(ctx, db, f)
				})
			},
		},
	)
	return root
}

// withDB loads configuration, initializes the logger and opens the database
// for the duration of fn.
func withDB(parent context.Context, timeout time.Duration, fn func(ctx context.Context, db *sqlx.DB) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()
	return fn(ctx, db)
}

func newMigrator(db *sqlx.DB) (*database.Migrator, error) {
	migrations, err := database.LoadMigrations()
	if err != nil {
		return nil, err
	}
	return database.NewMigrator(db, migrations), nil
}

func runUp(ctx context.Context, db *sqlx.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	applied, err := m.Up(ctx)
	if err != nil {
		return err
	}
	logger.Get().Info("Migrations complete", zap.Strings("applied", applied))
	return nil
}

func runStatus(ctx context.Context, db *sqlx.DB, cmd *cobra.Command) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	statuses, err := m.Status(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, s := range statuses {
		if s.AppliedAt == nil {
			fmt.Fprintf(out, "%-32s pending\n", s.Version)
			continue
		}
		fmt.Fprintf(out, "%-32s applied %s\n", s.Version, s.AppliedAt.Format(time.RFC3339))
	}
	return nil
}

func runSeed(ctx context.Context, db *sqlx.DB, f *seed.File) error {
	seeder := seed.NewSeeder(
		repository.NewQuizDatabaseAdapter(db),
		repository.NewHospitalDatabaseAdapter(db),
		repository.NewAccountDatabaseAdapter(db),
		repository.NewIdentityDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
		service.HashPassword,
	)
	summary, err := seeder.Run(ctx, f)
	if err != nil {
		return err
	}
	logger.Get().Info("Seed complete",
		zap.Int("quizzes", summary.Quizzes),
		zap.Int("questions", summary.Questions),
		zap.Int("result_ranges", summary.ResultRanges),
		zap.Int("hospitals", summary.Hospitals),
		zap.Int("accounts", summary.Accounts),
	)
	return nil
}
