package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/trip-curator/backend/internal/domain"
)

// Persisted reports which path a save took. Callers treat both as success;
// Durable lets them (and tests) tell "written to Postgres" apart from
// "kept in process memory only".
type Persisted struct {
	Durable bool
}

// Gateway is the storage entry point for the rest of the application.
// It tries the durable backend first and falls back to the in-process store
// on any backend error, logging a warning instead of failing the request.
// When no durable backend is configured, it is memory-only.
type Gateway struct {
	durable PlanRepo // nil when DATABASE_URL is not configured
	memory  *MemoryStore
	log     *slog.Logger
}

// NewGateway constructs a Gateway. durable may be nil; log may be nil, in
// which case the default logger is used.
func NewGateway(durable PlanRepo, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{durable: durable, memory: NewMemoryStore(), log: log}
}

// Save persists the plan, durable-first. A durable failure is logged and the
// plan lands in the memory store instead; the returned Persisted records
// which happened. The error result is always nil today (the memory store
// cannot fail) but stays in the signature so callers handle storage
// uniformly.
func (g *Gateway) Save(ctx context.Context, plan domain.TripPlan) (Persisted, error) {
	if g.durable != nil {
		err := g.durable.Save(ctx, plan)
		if err == nil {
			return Persisted{Durable: true}, nil
		}
		g.log.WarnContext(ctx, "durable save failed, keeping plan in memory",
			"plan_id", plan.ID, "error", err)
	}

	g.memory.Save(plan)
	return Persisted{Durable: false}, nil
}

// GetByID looks the plan up in the durable backend, then in the memory
// store. A plan that only ever reached memory (saved during a durable
// outage) is still found here.
func (g *Gateway) GetByID(ctx context.Context, id string) (domain.TripPlan, error) {
	if g.durable != nil {
		plan, err := g.durable.GetByID(ctx, id)
		if err == nil {
			return plan, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			g.log.WarnContext(ctx, "durable read failed, falling back to memory",
				"plan_id", id, "error", err)
		}
	}

	return g.memory.GetByID(id)
}

// List returns plans ordered by creation time descending, from the durable
// backend when available and from the memory store otherwise.
func (g *Gateway) List(ctx context.Context, params domain.ListParams) ([]domain.TripPlan, error) {
	if g.durable != nil {
		plans, err := g.durable.List(ctx, params)
		if err == nil {
			return plans, nil
		}
		g.log.WarnContext(ctx, "durable list failed, falling back to memory", "error", err)
	}

	return g.memory.List(params), nil
}
