package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trip-curator/backend/internal/domain"
)

// listTripsResponse is the body of GET /trips.
type listTripsResponse struct {
	Trips []domain.TripPlan `json:"trips"`
	Total int               `json:"total"`
}

// GenerateTrip handles POST /generate-trip.
// A valid request always produces a 200 itinerary; provider and parse
// failures are recovered inside the service. Only structurally invalid
// input is rejected, with 422.
func (s *Server) GenerateTrip(w http.ResponseWriter, r *http.Request) {
	var req domain.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	plan, err := s.planner.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusUnprocessableEntity, unwrapMessage(err))
			return
		}
		s.log.ErrorContext(r.Context(), "trip generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate itinerary")
		return
	}

	persisted, err := s.store.Save(r.Context(), plan)
	if err != nil {
		// Storage is best effort; the caller still gets the plan.
		s.log.ErrorContext(r.Context(), "plan save failed", "plan_id", plan.ID, "error", err)
	}
	s.log.InfoContext(r.Context(), "trip plan generated",
		"plan_id", plan.ID, "destination", plan.Destination, "durable", persisted.Durable)

	writeJSON(w, http.StatusOK, plan)
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid trip id")
		return
	}

	plan, err := s.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "trip plan not found")
			return
		}
		s.log.ErrorContext(r.Context(), "plan lookup failed", "plan_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load trip plan")
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// ListTrips handles GET /trips.
// Supports ?limit= and ?offset= query parameters (defaults: limit=10,
// offset=0, limit capped at 100). Plans come back most recently created
// first; total is the number of plans in this page.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	params := domain.NewListParams(limit, offset)

	plans, err := s.store.List(r.Context(), params)
	if err != nil {
		s.log.ErrorContext(r.Context(), "plan list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list trip plans")
		return
	}
	if plans == nil {
		plans = []domain.TripPlan{}
	}

	writeJSON(w, http.StatusOK, listTripsResponse{Trips: plans, Total: len(plans)})
}
