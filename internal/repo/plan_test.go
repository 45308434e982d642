package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-curator/backend/internal/domain"
	"github.com/trip-curator/backend/internal/repo"
	"github.com/trip-curator/backend/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// PlanRepo backed by that transaction. The transaction is automatically rolled
// back when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; skipped otherwise.
func newTestRepo(t *testing.T) repo.PlanRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test; no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewPlanRepo(tx)
}

// planFixture returns a complete two-day plan with sensible defaults.
// Callers can override individual fields after calling this function.
func planFixture() domain.TripPlan {
	return domain.TripPlan{
		ID:          uuid.NewString(),
		Destination: "Kyoto",
		Duration:    2,
		TotalBudget: 80,
		Overview:    "A 2-day trip to Kyoto",
		Days: []domain.DayPlan{
			{
				Day:   1,
				Date:  "2024-05-01",
				Theme: "Day 1 - Cultural Tour",
				Places: []domain.Place{
					{Name: "Fushimi Inari", Description: "Shrine with thousands of torii gates", Category: "landmark", EstimatedTime: 120, Tips: "Start before 8am"},
				},
				TotalBudget:    40,
				Transportation: "Public transit",
			},
			{
				Day:   2,
				Date:  "2024-05-02",
				Theme: "Day 2 - Cultural Tour",
				Places: []domain.Place{
					{Name: "Arashiyama Bamboo Grove", Description: "Iconic bamboo forest path", Category: "nature", EstimatedTime: 90},
				},
				TotalBudget:    40,
				Transportation: "Public transit",
			},
		},
		Tips:      []string{"Carry cash for temple entry"},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestPlanRepo_SaveThenGetByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := planFixture()
	require.NoError(t, r.Save(ctx, input))

	got, err := r.GetByID(ctx, input.ID)

	require.NoError(t, err)
	// The whole plan round-trips through the plan_data blob.
	assert.Equal(t, input, got)
}

func TestPlanRepo_GetByID_NotFound(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.GetByID(ctx, uuid.NewString())

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlanRepo_List_NewestFirstWithPaging(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	ids := make([]string, 0, 5)
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		p := planFixture()
		p.ID = uuid.NewString()
		p.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, r.Save(ctx, p))
		ids = append(ids, p.ID)
	}

	got, err := r.List(ctx, domain.ListParams{Limit: 2, Offset: 0})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ids[4], got[0].ID, "most recently created plan first")
	assert.Equal(t, ids[3], got[1].ID)

	next, err := r.List(ctx, domain.ListParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, next, 2)
	assert.Equal(t, ids[2], next[0].ID)
}
