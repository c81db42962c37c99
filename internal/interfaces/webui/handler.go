package webui

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-lab/internal/platform/logging"
	"github.com/riskibarqy/football-lab/internal/usecase"
)

// Pinger reports whether the backing store answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	colorService  *usecase.ColorService
	teamService   *usecase.TeamService
	playerService *usecase.PlayerService
	health        Pinger
	renderer      *Renderer
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	colorService *usecase.ColorService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	health Pinger,
	renderer *Renderer,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		colorService:  colorService,
		teamService:   teamService,
		playerService: playerService,
		health:        health,
		renderer:      renderer,
		logger:        logger,
		validator:     validator.New(),
	}
}
