// Package service contains the business logic for the Trip Curator API.
// The trip service validates requests and runs the generation pipeline:
// build prompt → call generator → parse → enrich, falling back to the
// deterministic planner whenever generation or parsing fails.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/trip-curator/backend/internal/domain"
	"github.com/trip-curator/backend/internal/genai"
	"github.com/trip-curator/backend/internal/planner"
)

// Enricher is the coordinate-enrichment operation the trip service depends
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets tests
// inject a stub without a maps provider.
type Enricher interface {
	Enrich(ctx context.Context, plan *domain.TripPlan, destination string)
}

// TripService orchestrates itinerary generation. It is stateless across
// requests; every invocation is independent.
type TripService struct {
	gen            genai.Client
	enricher       Enricher // nil when no maps provider is configured
	enrichFallback bool
	log            *slog.Logger
}

// NewTripService constructs a TripService. enricher may be nil (enrichment
// skipped); log may be nil, in which case the default logger is used.
// enrichFallback controls whether fallback-built plans are enriched too.
func NewTripService(gen genai.Client, enricher Enricher, enrichFallback bool, log *slog.Logger) *TripService {
	if log == nil {
		log = slog.Default()
	}
	return &TripService{gen: gen, enricher: enricher, enrichFallback: enrichFallback, log: log}
}

// Generate runs the full pipeline for one request and always returns an
// itinerary for a valid request: provider and parse failures are logged and
// recovered with the fallback planner, never surfaced to the caller.
// Returns domain.ErrValidation for structurally invalid requests.
func (s *TripService) Generate(ctx context.Context, req domain.TripRequest) (domain.TripPlan, error) {
	if err := validateRequest(req); err != nil {
		return domain.TripPlan{}, err
	}

	prompt := planner.BuildPrompt(req)

	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.log.WarnContext(ctx, "generation call failed, using fallback plan",
			"destination", req.Destination, "error", err)
		return s.fallback(ctx, req), nil
	}

	plan, err := planner.ParseResponse(raw, req)
	if err != nil {
		s.log.WarnContext(ctx, "generation response unparseable, using fallback plan",
			"destination", req.Destination, "error", err)
		return s.fallback(ctx, req), nil
	}

	s.enrich(ctx, &plan, req.Destination)
	return plan, nil
}

// fallback builds the deterministic plan and enriches it only when
// configured to.
func (s *TripService) fallback(ctx context.Context, req domain.TripRequest) domain.TripPlan {
	plan := planner.Fallback(req)
	if s.enrichFallback {
		s.enrich(ctx, &plan, req.Destination)
	}
	return plan
}

// enrich runs coordinate enrichment when a maps provider is configured.
func (s *TripService) enrich(ctx context.Context, plan *domain.TripPlan, destination string) {
	if s.enricher == nil {
		return
	}
	s.enricher.Enrich(ctx, plan, destination)
}

// validateRequest enforces the structural rules for a trip request.
// Unparseable dates are not rejected here (the fallback planner substitutes
// the current date) but a date range that parses and runs backwards is.
func validateRequest(req domain.TripRequest) error {
	if req.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if req.Duration <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of days", domain.ErrValidation)
	}
	if req.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive", domain.ErrValidation)
	}
	if len(req.TravelStyle) == 0 {
		return fmt.Errorf("%w: at least one travel style is required", domain.ErrValidation)
	}
	if req.Companions == "" {
		return fmt.Errorf("%w: companions is required", domain.ErrValidation)
	}

	start, errStart := time.Parse(domain.DateLayout, req.StartDate)
	end, errEnd := time.Parse(domain.DateLayout, req.EndDate)
	if errStart == nil && errEnd == nil && end.Before(start) {
		return fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}

	return nil
}
