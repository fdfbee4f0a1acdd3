package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mikepoirier/word-game/internal/api/handler"
	"github.com/mikepoirier/word-game/internal/api/middleware"
	"github.com/mikepoirier/word-game/internal/notify"
	"github.com/mikepoirier/word-game/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	Orchestrator *session.Orchestrator
	Hub          *notify.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.Orchestrator)
	gameHandler := handler.NewGameHandler(cfg.Orchestrator, cfg.Hub)
	debugHandler := handler.NewDebugHandler(cfg.Orchestrator)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Player lifecycle
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/{username}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{username}/introducing", playerHandler.StartIntroduction).Methods(http.MethodPost)
	api.HandleFunc("/players/{username}/introduce", playerHandler.Introduce).Methods(http.MethodPost)
	api.HandleFunc("/players/{username}/lobby", playerHandler.ReturnToLobby).Methods(http.MethodPost)

	// Games
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{code}/join", gameHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/players", gameHandler.Players).Methods(http.MethodGet)
	api.HandleFunc("/games/{code}/guesses", gameHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/events", gameHandler.Events).Methods(http.MethodGet)

	// Diagnostics
	api.HandleFunc("/debug/players", debugHandler.Players).Methods(http.MethodGet)
	api.HandleFunc("/debug/games", debugHandler.Games).Methods(http.MethodGet)

	// Health check
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
