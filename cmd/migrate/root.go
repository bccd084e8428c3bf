package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Apurer/go-persistence-examples/internal/platform/config"
	"github.com/Apurer/go-persistence-examples/internal/platform/migrations"
	platformpostgres "github.com/Apurer/go-persistence-examples/internal/platform/postgres"
)

// migrator is the part of migrations.Migrator the commands drive.
type migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Version() (uint, bool, error)
	Force(version int) error
	Close() error
}

type openFunc func(ctx context.Context, dsn string, logger *slog.Logger) (migrator, error)

func openMigrator(ctx context.Context, dsn string, logger *slog.Logger) (migrator, error) {
	if dsn == "" {
		return nil, errors.New("database DSN not set (DAOEX_DATABASE_DSN or POSTGRES_DSN)")
	}
	opts := platformpostgres.DefaultOptions()
	opts.Tracing = false
	db, err := platformpostgres.Connect(ctx, dsn, opts)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return migrations.New(sqlDB, logger)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(openMigrator)
}

func newRootCmdWith(open openFunc) *cobra.Command {
	var (
		dsn     string
		timeout time.Duration
	)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	withMigrator := func(cmd *cobra.Command, run func(m migrator) error) error {
		if dsn == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dsn = cfg.Database.DSN
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		m, err := open(ctx, dsn, logger)
		if err != nil {
			return err
		}
		defer func() { _ = m.Close() }()
		return run(m)
	}

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply the versioned database schema",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", "", "PostgreSQL DSN (defaults to the configured database.dsn)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "connection timeout")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(m migrator) error { return m.Up() })
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(m migrator) error { return m.Down() })
			},
		},
		&cobra.Command{
			Use:   "steps N",
			Short: "Apply N migrations, or roll back when N is negative",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid step count %q", args[0])
				}
				return withMigrator(cmd, func(m migrator) error { return m.Steps(n) })
			},
		},
		&cobra.Command{
			Use:   "force VERSION",
			Short: "Mark VERSION as applied without running it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q", args[0])
				}
				return withMigrator(cmd, func(m migrator) error { return m.Force(version) })
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, func(m migrator) error {
					version, dirty, err := m.Version()
					if err != nil {
						return err
					}
					cmd.Printf("version=%d dirty=%t\n", version, dirty)
					return nil
				})
			},
		},
	)
	return root
}
