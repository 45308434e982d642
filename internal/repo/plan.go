// Package repo contains the persistence logic for the Trip Curator API:
// a Postgres implementation, a mutex-guarded in-process store, and the
// gateway that silently falls back from the first to the second.
// No business logic lives here, only SQL, JSON mapping, and fallback policy.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/trip-curator/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PlanRepo defines the persistence operations for trip plans.
// The gateway depends on this interface, not the concrete Postgres
// implementation, which allows it to be unit-tested with a mock.
type PlanRepo interface {
	// Save inserts a trip plan. The denormalized columns come from the plan;
	// the full plan is serialized into the plan_data blob.
	Save(ctx context.Context, plan domain.TripPlan) error

	// GetByID retrieves a single plan by its id.
	// Returns domain.ErrNotFound if no plan with that id exists.
	GetByID(ctx context.Context, id string) (domain.TripPlan, error)

	// List returns plans ordered by creation time descending.
	List(ctx context.Context, params domain.ListParams) ([]domain.TripPlan, error)
}

// pgPlanRepo is the Postgres implementation of PlanRepo.
type pgPlanRepo struct {
	db db
}

// NewPlanRepo constructs a PlanRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPlanRepo(db db) PlanRepo {
	return &pgPlanRepo{db: db}
}

// Save inserts the plan row with its denormalized columns and JSON blob.
func (r *pgPlanRepo) Save(ctx context.Context, plan domain.TripPlan) error {
	const q = `
		INSERT INTO trip_plans (id, destination, duration, total_budget, overview, plan_data, created_at)
		VALUES (@id, @destination, @duration, @total_budget, @overview, @plan_data, @created_at)`

	blob, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("repo.PlanRepo.Save: marshal: %w", err)
	}

	args := pgx.NamedArgs{
		"id":           plan.ID,
		"destination":  plan.Destination,
		"duration":     plan.Duration,
		"total_budget": plan.TotalBudget,
		"overview":     plan.Overview,
		"plan_data":    blob,
		"created_at":   plan.CreatedAt,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.PlanRepo.Save: %w", err)
	}
	return nil
}

// GetByID retrieves a plan by primary key, deserializing the plan_data blob.
func (r *pgPlanRepo) GetByID(ctx context.Context, id string) (domain.TripPlan, error) {
	const q = `SELECT plan_data FROM trip_plans WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	plan, err := scanPlan(row)
	if err != nil {
		return domain.TripPlan{}, fmt.Errorf("repo.PlanRepo.GetByID: %w", err)
	}
	return plan, nil
}

// List returns plans ordered by created_at descending (most recent first).
func (r *pgPlanRepo) List(ctx context.Context, params domain.ListParams) ([]domain.TripPlan, error) {
	const q = `
		SELECT plan_data
		FROM trip_plans
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": params.Limit, "offset": params.Offset})
	if err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.List: %w", err)
	}
	defer rows.Close()

	plans := []domain.TripPlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PlanRepo.List: scan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PlanRepo.List: rows: %w", err)
	}

	return plans, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanPlan to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanPlan reads the plan_data blob from a row and deserializes it.
func scanPlan(s scanner) (domain.TripPlan, error) {
	var blob []byte
	if err := s.Scan(&blob); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripPlan{}, domain.ErrNotFound
		}
		return domain.TripPlan{}, err
	}

	var plan domain.TripPlan
	if err := json.Unmarshal(blob, &plan); err != nil {
		return domain.TripPlan{}, fmt.Errorf("unmarshal plan_data: %w", err)
	}
	return plan, nil
}
