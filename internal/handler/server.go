// Package handler implements the HTTP handlers for the Trip Curator API.
// All handlers are methods on Server. Methods are split into files by
// concern (health.go, trip.go) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/trip-curator/backend/internal/domain"
	"github.com/trip-curator/backend/internal/repo"
)

// TripPlanner defines the generation operation the trip handler depends on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the service layer or any provider.
type TripPlanner interface {
	Generate(ctx context.Context, req domain.TripRequest) (domain.TripPlan, error)
}

// PlanStore defines the storage operations the trip handler depends on.
// In production this is *repo.Gateway.
type PlanStore interface {
	Save(ctx context.Context, plan domain.TripPlan) (repo.Persisted, error)
	GetByID(ctx context.Context, id string) (domain.TripPlan, error)
	List(ctx context.Context, params domain.ListParams) ([]domain.TripPlan, error)
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	planner TripPlanner
	store   PlanStore
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// log may be nil, in which case the default logger is used.
func NewServer(planner TripPlanner, store PlanStore, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{planner: planner, store: store, log: log}
}

// Routes returns the chi router with every endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/generate-trip", s.GenerateTrip)
	r.Get("/trips", s.ListTrips)
	r.Get("/trips/{id}", s.GetTrip)
	r.Get("/health", s.GetHealth)
	return r
}
