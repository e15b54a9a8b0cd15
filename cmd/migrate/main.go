package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"blog/config"
	"blog/internal/errors"
	logs "blog/internal/infra/log"
	"blog/internal/infra/persistence/postgres/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Supported subcommands:
// - up:      apply every pending migration
// - down:    roll back the given number of migrations
// - version: print the current schema version
// - force:   mark a version as applied after a failed run

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(subcommand string, args []string) error {
	fs := flag.NewFlagSet(subcommand, flag.ExitOnError)
	databaseURL := fs.String("database-url", "", "PostgreSQL URL (defaults to migrations.databaseUrl)")
	steps := fs.Int("steps", 1, "Number of migrations to roll back (down)")
	version := fs.Int("version", -1, "Version to force (force)")
	if err := fs.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	url, err := resolveDatabaseURL(*databaseURL, cfg)
	if err != nil {
		return err
	}

	m, err := newMigrator(url)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator", slog.Any("source_error", srcErr), slog.Any("database_error", dbErr))
		}
	}()

	switch subcommand {
	case "up":
		return logResult(logger, "up", m.Up())
	case "down":
		if *steps <= 0 {
			return errors.Errorf("steps must be positive, got %d", *steps)
		}

		return logResult(logger, "down", m.Steps(-*steps))
	case "version":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("No migration applied yet")

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to read schema version")
		}
		logger.Info("Schema version", slog.Uint64("version", uint64(v)), slog.Bool("dirty", dirty))

		return nil
	case "force":
		if *version < 0 {
			return errors.New("force requires -version")
		}

		return logResult(logger, "force", m.Force(*version))
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", subcommand)
	}
}

func resolveDatabaseURL(flagURL string, cfg *config.Config) (string, error) {
	if flagURL != "" {
		return flagURL, nil
	}
	if cfg.Migrations.DatabaseURL != "" {
		return cfg.Migrations.DatabaseURL, nil
	}

	return "", errors.New("database URL is required: set migrations.databaseUrl or pass -database-url")
}

// newMigrator reads the SQL files embedded in the binary.
func newMigrator(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}

	return m, nil
}

func logResult(logger *slog.Logger, action string, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("Migration state is up to date", slog.String("action", action))

		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "migrate %s failed", action)
	}

	logger.Info("Migration finished", slog.String("action", action))

	return nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up       Apply all pending migrations")
	fmt.Println("  down     Roll back migrations (-steps N, default 1)")
	fmt.Println("  version  Print the current schema version")
	fmt.Println("  force    Set the schema version without running migrations (-version N)")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -database-url  Overrides migrations.databaseUrl from config")
}
