package geo_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-curator/backend/internal/domain"
	"github.com/trip-curator/backend/internal/geo"
)

// mockSearcher is a test double for geo.Searcher keyed by query substring.
type mockSearcher struct {
	results map[string]*domain.Coordinates
	err     error
	queries []string
}

func (m *mockSearcher) Search(_ context.Context, query string) (*domain.Coordinates, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	for name, coords := range m.results {
		if strings.Contains(query, name) {
			return coords, nil
		}
	}
	return nil, nil
}

var _ geo.Searcher = (*mockSearcher)(nil)

func twoPlacePlan() domain.TripPlan {
	return domain.TripPlan{
		ID:          "plan-1",
		Destination: "Jeju",
		Days: []domain.DayPlan{
			{Day: 1, Places: []domain.Place{
				{Name: "Seongsan Ilchulbong"},
				{Name: "Udo Island"},
			}},
		},
	}
}

func TestEnricher_AttachesFirstResultCoordinates(t *testing.T) {
	searcher := &mockSearcher{results: map[string]*domain.Coordinates{
		"Seongsan Ilchulbong": {Lat: 33.458, Lng: 126.942},
		"Udo Island":          {Lat: 33.506, Lng: 126.954},
	}}
	e := geo.NewEnricher(searcher, nil)
	plan := twoPlacePlan()

	e.Enrich(context.Background(), &plan, "Jeju")

	require.NotNil(t, plan.Days[0].Places[0].Coordinates)
	assert.InDelta(t, 33.458, plan.Days[0].Places[0].Coordinates.Lat, 1e-9)
	require.NotNil(t, plan.Days[0].Places[1].Coordinates)
	assert.InDelta(t, 126.954, plan.Days[0].Places[1].Coordinates.Lng, 1e-9)
}

func TestEnricher_QueriesNamePlusDestination(t *testing.T) {
	searcher := &mockSearcher{}
	e := geo.NewEnricher(searcher, nil)
	plan := twoPlacePlan()

	e.Enrich(context.Background(), &plan, "Jeju")

	require.Len(t, searcher.queries, 2)
	assert.Equal(t, "Seongsan Ilchulbong Jeju", searcher.queries[0])
	assert.Equal(t, "Udo Island Jeju", searcher.queries[1])
}

func TestEnricher_EmptyResultLeavesCoordinatesUnset(t *testing.T) {
	searcher := &mockSearcher{results: map[string]*domain.Coordinates{
		"Udo Island": {Lat: 33.506, Lng: 126.954},
	}}
	e := geo.NewEnricher(searcher, nil)
	plan := twoPlacePlan()

	e.Enrich(context.Background(), &plan, "Jeju")

	assert.Nil(t, plan.Days[0].Places[0].Coordinates, "no result leaves the place unenriched")
	assert.NotNil(t, plan.Days[0].Places[1].Coordinates, "enrichment continues past misses")
}

func TestEnricher_ProviderErrorIsSwallowed(t *testing.T) {
	searcher := &mockSearcher{err: errors.New("quota exceeded")}
	e := geo.NewEnricher(searcher, nil)
	plan := twoPlacePlan()

	e.Enrich(context.Background(), &plan, "Jeju")

	assert.Nil(t, plan.Days[0].Places[0].Coordinates)
	assert.Nil(t, plan.Days[0].Places[1].Coordinates)
	assert.Len(t, searcher.queries, 2, "errors do not stop the pass")
}

func TestEnricher_Idempotent(t *testing.T) {
	searcher := &mockSearcher{results: map[string]*domain.Coordinates{
		"Seongsan Ilchulbong": {Lat: 33.458, Lng: 126.942},
		"Udo Island":          {Lat: 33.506, Lng: 126.954},
	}}
	e := geo.NewEnricher(searcher, nil)
	plan := twoPlacePlan()

	e.Enrich(context.Background(), &plan, "Jeju")
	first := plan.Days[0].Places[0].Coordinates

	e.Enrich(context.Background(), &plan, "Jeju")
	second := plan.Days[0].Places[0].Coordinates

	assert.Equal(t, first, second, "a second pass yields identical coordinates")
}
