package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-curator/backend/internal/domain"
	"github.com/trip-curator/backend/internal/service"
)

// mockGenClient is a hand-written test double for genai.Client.
type mockGenClient struct {
	generate func(ctx context.Context, prompt string) (string, error)
	prompts  []string
}

func (m *mockGenClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.generate(ctx, prompt)
}

// mockEnricher records which plans it was asked to enrich and marks every
// place so tests can tell enriched plans apart.
type mockEnricher struct {
	calls int
}

func (m *mockEnricher) Enrich(_ context.Context, plan *domain.TripPlan, _ string) {
	m.calls++
	for di := range plan.Days {
		for pi := range plan.Days[di].Places {
			plan.Days[di].Places[pi].Coordinates = &domain.Coordinates{Lat: 1, Lng: 2}
		}
	}
}

var _ service.Enricher = (*mockEnricher)(nil)

func validRequest() domain.TripRequest {
	return domain.TripRequest{
		Destination: "Jeju",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-03",
		Duration:    3,
		Budget:      90,
		TravelStyle: []string{"nature"},
		Companions:  "solo",
		Interests:   []string{"hiking"},
	}
}

const generatedResponse = `{
  "totalBudget": 90,
  "overview": "Generated Jeju itinerary",
  "days": [
    {"day": 1, "date": "2024-03-01", "theme": "Coast", "places": [{"name": "Seongsan Ilchulbong", "description": "Sunrise peak"}], "totalBudget": 30, "transportation": "Bus"},
    {"day": 2, "date": "2024-03-02", "theme": "Island", "places": [{"name": "Udo Island", "description": "Bike island"}], "totalBudget": 30, "transportation": "Ferry"},
    {"day": 3, "date": "2024-03-03", "theme": "Market", "places": [{"name": "Dongmun Market", "description": "Food stalls"}], "totalBudget": 30, "transportation": "Walk"}
  ],
  "tips": ["Rent a car"]
}`

func workingGen() *mockGenClient {
	return &mockGenClient{
		generate: func(_ context.Context, _ string) (string, error) {
			return generatedResponse, nil
		},
	}
}

func failingGen() *mockGenClient {
	return &mockGenClient{
		generate: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("rate limited")
		},
	}
}

// ---- happy path ------------------------------------------------------------

func TestTripService_Generate_UsesGeneratedPlan(t *testing.T) {
	gen := workingGen()
	enricher := &mockEnricher{}
	svc := service.NewTripService(gen, enricher, false, nil)

	plan, err := svc.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "Generated Jeju itinerary", plan.Overview)
	require.Len(t, plan.Days, 3)
	assert.Equal(t, 1, enricher.calls, "generated plans are enriched")
	assert.NotNil(t, plan.Days[0].Places[0].Coordinates)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Jeju", "prompt is built from the request")
}

func TestTripService_Generate_NoEnricherConfigured(t *testing.T) {
	svc := service.NewTripService(workingGen(), nil, false, nil)

	plan, err := svc.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Nil(t, plan.Days[0].Places[0].Coordinates, "enrichment skipped without a provider")
}

// ---- fallback paths --------------------------------------------------------

func TestTripService_Generate_ProviderFailureFallsBack(t *testing.T) {
	svc := service.NewTripService(failingGen(), nil, false, nil)

	plan, err := svc.Generate(context.Background(), validRequest())

	require.NoError(t, err, "a provider failure never surfaces to the caller")
	require.Len(t, plan.Days, 3)
	for i, day := range plan.Days {
		assert.Equal(t, i+1, day.Day)
		assert.Equal(t, 30, day.TotalBudget)
		assert.Contains(t, day.Theme, "Nature")
		for _, p := range day.Places {
			assert.Nil(t, p.Coordinates)
		}
	}
	assert.Equal(t, "2024-03-01", plan.Days[0].Date)
	assert.Equal(t, "2024-03-03", plan.Days[2].Date)
}

func TestTripService_Generate_UnparseableResponseFallsBack(t *testing.T) {
	gen := &mockGenClient{
		generate: func(_ context.Context, _ string) (string, error) {
			return "I'm sorry, I can't produce JSON today.", nil
		},
	}
	svc := service.NewTripService(gen, nil, false, nil)

	plan, err := svc.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	require.Len(t, plan.Days, 3)
	assert.Contains(t, plan.Days[0].Theme, "Nature", "fallback plan, not a parsed one")
}

func TestTripService_Generate_FallbackEnrichmentIsOptIn(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		enricher := &mockEnricher{}
		svc := service.NewTripService(failingGen(), enricher, false, nil)

		_, err := svc.Generate(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Zero(t, enricher.calls, "fallback plans are not enriched unless configured")
	})

	t.Run("enabled by flag", func(t *testing.T) {
		enricher := &mockEnricher{}
		svc := service.NewTripService(failingGen(), enricher, true, nil)

		plan, err := svc.Generate(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, 1, enricher.calls)
		assert.NotNil(t, plan.Days[0].Places[0].Coordinates)
	})
}

// ---- validation ------------------------------------------------------------

func TestTripService_Generate_Validation(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*domain.TripRequest)
		message string
	}{
		"missing destination":  {func(r *domain.TripRequest) { r.Destination = "" }, "destination"},
		"zero duration":        {func(r *domain.TripRequest) { r.Duration = 0 }, "duration"},
		"negative duration":    {func(r *domain.TripRequest) { r.Duration = -2 }, "duration"},
		"zero budget":          {func(r *domain.TripRequest) { r.Budget = 0 }, "budget"},
		"no travel styles":     {func(r *domain.TripRequest) { r.TravelStyle = nil }, "travel style"},
		"missing companions":   {func(r *domain.TripRequest) { r.Companions = "" }, "companions"},
		"end before start":     {func(r *domain.TripRequest) { r.StartDate, r.EndDate = "2024-03-03", "2024-03-01" }, "end date"},
	}

	svc := service.NewTripService(workingGen(), nil, false, nil)

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Generate(context.Background(), req)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestTripService_Generate_UnparseableDatesAreAccepted(t *testing.T) {
	// The fallback planner substitutes today for a bad start date, so a
	// malformed date is not a structural validation failure.
	req := validRequest()
	req.StartDate = "soon"
	req.EndDate = ""

	svc := service.NewTripService(failingGen(), nil, false, nil)

	plan, err := svc.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, plan.Days, 3)
}
