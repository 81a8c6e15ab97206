package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/gomoku-backend/internal/service"
)

type Server struct {
	logger       *slog.Logger
	statsService service.StatsService
}

func New(logger *slog.Logger, statsService service.StatsService) *Server {
	return &Server{
		logger:       logger,
		statsService: statsService,
	}
}

func (that *Server) Start(port string) error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/ping", that.handlePing)
	router.Get("/stats/{playerID}", that.handleStats)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	stats, err := that.statsService.GetByPlayerID(r.Context(), playerID)
	if err != nil {
		that.logger.Error("failed to get player stats", "playerID", playerID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		that.logger.Error("failed to encode player stats", "playerID", playerID, "error", err)
	}
}
