package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-lab/internal/config"
	"github.com/riskibarqy/football-lab/internal/interfaces/webui"
	"github.com/riskibarqy/football-lab/internal/platform/logging"
	"github.com/riskibarqy/football-lab/internal/usecase"
)

// NewHTTPServer wires storage, use cases and the web UI into an http.Server.
// The returned cleanup releases the storage backend.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	store, err := newStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	renderer, err := webui.NewRenderer()
	if err != nil {
		_ = store.close()
		return nil, nil, fmt.Errorf("load templates: %w", err)
	}

	handler := webui.NewHandler(
		usecase.NewColorService(store.colors),
		usecase.NewTeamService(store.games),
		usecase.NewPlayerService(store.players, cfg.PlayerDefaultImage),
		store.health,
		renderer,
		logger,
	)
	router, err := webui.NewRouter(handler, cfg.ServiceName, logger)
	if err != nil {
		_ = store.close()
		return nil, nil, fmt.Errorf("build router: %w", err)
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, store.close, nil
}
