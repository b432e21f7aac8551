// Package rest serves stored tournaments and prometheus metrics over HTTP
package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/KirkDiggler/brawl-tournament/internal/entities"
	dnderr "github.com/KirkDiggler/brawl-tournament/internal/errors"
	"github.com/KirkDiggler/brawl-tournament/internal/services/tournament"
)

const defaultListLimit = 20

// Handler holds the dependencies the routes need
type Handler struct {
	tournaments tournament.Service
	gatherer    prometheus.Gatherer
	logger      *zap.Logger
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	TournamentService tournament.Service
	// Gatherer defaults to prometheus.DefaultGatherer
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.TournamentService == nil {
		panic("tournament service is required")
	}

	h := &Handler{
		tournaments: cfg.TournamentService,
		gatherer:    cfg.Gatherer,
		logger:      cfg.Logger,
	}
	if h.gatherer == nil {
		h.gatherer = prometheus.DefaultGatherer
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	return h
}

// Router wires every route onto a chi router
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	r.Route("/tournaments", func(r chi.Router) {
		r.Get("/", h.ListTournaments)
		r.Get("/{id}", h.GetTournament)
		r.Get("/{id}/standings", h.GetStandings)
	})

	return r
}

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// TournamentResponse is a stored tournament with its standings attached
type TournamentResponse struct {
	*entities.Tournament
	Standings []*entities.Standing `json:"standings"`
}

// GetTournament returns one tournament with every fight and duel
func (h *Handler) GetTournament(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.tournaments.GetTournament(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get tournament", zap.String("tournament_id", id))
		return
	}

	h.jsonResponse(w, http.StatusOK, &TournamentResponse{
		Tournament: t,
		Standings:  t.Standings(),
	})
}

// GetStandings returns only the win/loss table for a tournament
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.tournaments.GetTournament(r.Context(), id)
	if err != nil {
		h.serviceError(w, err, "Failed to get tournament", zap.String("tournament_id", id))
		return
	}

	h.jsonResponse(w, http.StatusOK, t.Standings())
}

// ListTournaments returns recent tournaments, newest first. ?limit caps the count.
func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	list, err := h.tournaments.ListTournaments(r.Context(), limit)
	if err != nil {
		h.serviceError(w, err, "Failed to list tournaments")
		return
	}

	h.jsonResponse(w, http.StatusOK, list)
}

func (h *Handler) serviceError(w http.ResponseWriter, err error, message string, fields ...zap.Field) {
	switch {
	case dnderr.IsNotFound(err):
		h.errorResponse(w, http.StatusNotFound, "Not Found")
	case dnderr.IsInvalidArgument(err):
		h.errorResponse(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(message, append(fields, zap.Error(err))...)
		h.errorResponse(w, http.StatusInternalServerError, message)
	}
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("Failed to encode response", zap.Error(err))
	}
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}
