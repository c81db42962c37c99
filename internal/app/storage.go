package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-lab/internal/config"
	"github.com/riskibarqy/football-lab/internal/domain/color"
	"github.com/riskibarqy/football-lab/internal/domain/game"
	"github.com/riskibarqy/football-lab/internal/domain/player"
	"github.com/riskibarqy/football-lab/internal/infrastructure/gateway"
	"github.com/riskibarqy/football-lab/internal/infrastructure/migration"
	"github.com/riskibarqy/football-lab/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-lab/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-lab/internal/interfaces/webui"
	"github.com/riskibarqy/football-lab/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type storage struct {
	colors  color.Repository
	games   game.Repository
	players player.Repository
	health  webui.Pinger
	close   func() error
}

func newStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		logger.Info("storage configured", "backend", config.StorageMemory)
		return newMemoryStorage(), nil
	case config.StoragePostgres, "":
		return newPostgresStorage(ctx, cfg, logger)
	default:
		return storage{}, fmt.Errorf("unsupported storage %q", cfg.Storage)
	}
}

func newMemoryStorage() storage {
	games := memory.NewGameRepository(memory.SeedGames())
	return storage{
		colors:  memory.NewFavoriteColorRepository(memory.SeedFavoriteColors()),
		games:   games,
		players: memory.NewPlayerRepository(memory.SeedPlayers(), games),
		close:   func() error { return nil },
	}
}

// newPostgresStorage opens the pool lazily: an unreachable database degrades
// pages instead of failing startup. Migrations, when enabled, must succeed.
func newPostgresStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage, error) {
	if cfg.DBAutoMigrate {
		if err := migration.Up(cfg.DBURL); err != nil {
			return storage{}, err
		}
		logger.Info("database migrations applied")
	}

	dbName := dbNameFromURL(cfg.DBURL)
	db, err := otelsqlx.Open("postgres", cfg.DBURL,
		otelsql.WithDBName(dbName),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return storage{}, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithDBName(dbName))

	exec := gateway.New(db, gateway.WithQueryTimeout(cfg.DBQueryTimeout))

	if cfg.DBBootstrapSeed {
		if err := postgres.BootstrapSeed(ctx, exec); err != nil {
			logger.Warn("bootstrap seed failed", "error", err)
		} else {
			logger.Info("bootstrap seed checked")
		}
	}

	logger.Info("storage configured",
		"backend", config.StoragePostgres,
		"db_name", dbName,
		"max_open_conns", cfg.DBMaxOpenConns,
		"query_timeout", cfg.DBQueryTimeout.String(),
	)

	return storage{
		colors:  postgres.NewFavoriteColorRepository(exec),
		games:   postgres.NewGameRepository(exec),
		players: postgres.NewPlayerRepository(exec),
		health:  exec,
		close:   db.Close,
	}, nil
}
