package webui

import (
	"net/http"

	"github.com/riskibarqy/football-lab/internal/platform/logging"
)

func NewRouter(handler *Handler, serviceName string, logger *logging.Logger) (http.Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}

	static, err := StaticHandler()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, static)
	registerPageRoutes(mux, handler)
	registerFormRoutes(mux, handler)

	return RequestTracing(serviceName, RequestLogging(logger, handler.recoverPanic(mux))), nil
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, static http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.Handle("GET /resources/", static)
}

func registerPageRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Login)
	mux.HandleFunc("GET /register", handler.Register)
	mux.HandleFunc("GET /home", handler.Home)
	mux.HandleFunc("GET /home/pick_color", handler.PickColor)
	mux.HandleFunc("GET /team_stats", handler.TeamStats)
	mux.HandleFunc("GET /player_info", handler.PlayerInfo)
	mux.HandleFunc("GET /player_info/player", handler.PlayerProfile)
}

func registerFormRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /home/pick_color", handler.AddColor)
	mux.HandleFunc("POST /player_info/add_player", handler.AddPlayer)
	mux.HandleFunc("POST /player_info/add_game", handler.AddGame)
}
