package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/riskibarqy/football-lab/internal/config"
	"github.com/riskibarqy/football-lab/internal/infrastructure/migration"
	"github.com/riskibarqy/football-lab/internal/platform/logging"
	"github.com/spf13/cobra"
)

type cli struct {
	dbURL  string
	logger *logging.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: logging.New(logging.Options{Level: logging.LevelInfo, Format: logging.FormatConsole})}

	root := &cobra.Command{
		Use:          "migration",
		Short:        "Apply or inspect the football-lab schema migrations",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if strings.TrimSpace(c.dbURL) != "" {
				return nil
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			c.dbURL = cfg.DBURL
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.dbURL, "db-url", "", "database URL (defaults to DB_URL or the DB_* settings)")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  c.runUp,
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back the given number of migrations (default 1)",
			Args:  cobra.MaximumNArgs(1),
			RunE:  c.runDown,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied version and dirty flag",
			Args:  cobra.NoArgs,
			RunE:  c.runVersion,
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Set the version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runForce,
		},
		&cobra.Command{
			Use:     "goto <version>",
			Aliases: []string{"migrate"},
			Short:   "Migrate up or down to the given version",
			Args:    cobra.ExactArgs(1),
			RunE:    c.runGoto,
		},
	)

	return root
}

func (c *cli) runUp(_ *cobra.Command, _ []string) error {
	return c.withMigrator(func(m *migrate.Migrate) error {
		if err := ignoreNoChange(c.logger, m.Up()); err != nil {
			return err
		}
		c.logger.Info("migrations applied")
		return nil
	})
}

func (c *cli) runDown(_ *cobra.Command, args []string) error {
	steps, err := parseSteps(args)
	if err != nil {
		return err
	}
	return c.withMigrator(func(m *migrate.Migrate) error {
		if err := ignoreNoChange(c.logger, m.Steps(-steps)); err != nil {
			return err
		}
		c.logger.Info("migrations rolled back", "steps", steps)
		return nil
	})
}

func (c *cli) runVersion(cmd *cobra.Command, _ []string) error {
	return c.withMigrator(func(m *migrate.Migrate) error {
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Fprintln(cmd.OutOrStdout(), "version: none")
			fmt.Fprintln(cmd.OutOrStdout(), "dirty: false")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version: %d\n", version)
		fmt.Fprintf(cmd.OutOrStdout(), "dirty: %t\n", dirty)
		return nil
	})
}

func (c *cli) runForce(_ *cobra.Command, args []string) error {
	version, err := parseVersion(args[0])
	if err != nil {
		return err
	}
	return c.withMigrator(func(m *migrate.Migrate) error {
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		c.logger.Info("forced migration version", "version", version)
		return nil
	})
}

func (c *cli) runGoto(_ *cobra.Command, args []string) error {
	target, err := parseTarget(args[0])
	if err != nil {
		return err
	}
	return c.withMigrator(func(m *migrate.Migrate) error {
		if err := ignoreNoChange(c.logger, m.Migrate(target)); err != nil {
			return err
		}
		c.logger.Info("migrated to version", "version", target)
		return nil
	})
}

func (c *cli) withMigrator(fn func(m *migrate.Migrate) error) error {
	m, err := migration.New(c.dbURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := migration.Close(m); err != nil {
			c.logger.Warn("close migrator failed", "error", err)
		}
	}()

	return fn(m)
}

func ignoreNoChange(logger *logging.Logger, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < -1 {
		return 0, fmt.Errorf("version must be >= -1")
	}
	if value > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("version is too large for this platform")
	}

	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}
