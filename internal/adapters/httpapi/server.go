// Package httpapi expone healthcheck y un preview del scoreboard por HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/jose-valero/deadlock-match-bot/internal/adapters/deadlock"
)

type Scoreboard interface {
	Render(ctx context.Context, matchID int64) ([]byte, error)
}

type Server struct {
	router     chi.Router
	scoreboard Scoreboard
	log        *zap.Logger
}

func New(scoreboard Scoreboard, log *zap.Logger) *Server {
	s := &Server{router: chi.NewRouter(), scoreboard: scoreboard, log: log.With(zap.String("component", "http"))}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/matches/{matchID}/scoreboard.png", s.handleScoreboard)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.router.ServeHTTP(w, r) }

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleScoreboard(w http.ResponseWriter, r *http.Request) {
	matchID, err := strconv.ParseInt(chi.URLParam(r, "matchID"), 10, 64)
	if err != nil || matchID <= 0 {
		http.Error(w, "invalid match id", http.StatusBadRequest)
		return
	}

	png, err := s.scoreboard.Render(r.Context(), matchID)
	if err != nil {
		status := statusFor(err)
		s.log.Warn("scoreboard", zap.Int64("match_id", matchID), zap.Int("status", status), zap.Error(err))
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(png)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, deadlock.ErrNotFound), errors.Is(err, deadlock.ErrEmptyMetadata):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
