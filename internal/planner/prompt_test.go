package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trip-curator/backend/internal/domain"
	"github.com/trip-curator/backend/internal/planner"
)

func requestFixture() domain.TripRequest {
	return domain.TripRequest{
		Destination: "Jeju",
		StartDate:   "2024-03-01",
		EndDate:     "2024-03-03",
		Duration:    3,
		Budget:      90,
		TravelStyle: []string{"nature", "foodie"},
		Companions:  "solo",
		Interests:   []string{"hiking", "seafood"},
	}
}

func TestBuildPrompt_ContainsEveryRequestField(t *testing.T) {
	prompt := planner.BuildPrompt(requestFixture())

	assert.Contains(t, prompt, "Jeju")
	assert.Contains(t, prompt, "2024-03-01")
	assert.Contains(t, prompt, "2024-03-03")
	assert.Contains(t, prompt, "3 days")
	assert.Contains(t, prompt, "Budget: 90")
	assert.Contains(t, prompt, "hiking, seafood")
}

func TestBuildPrompt_MapsKnownStyleAndCompanionTags(t *testing.T) {
	prompt := planner.BuildPrompt(requestFixture())

	assert.Contains(t, prompt, "nature and scenery focused")
	assert.Contains(t, prompt, "food and restaurant focused")
	assert.Contains(t, prompt, "traveling alone")
}

func TestBuildPrompt_UnknownTagsPassThroughLiterally(t *testing.T) {
	req := requestFixture()
	req.TravelStyle = []string{"spelunking"}
	req.Companions = "coworkers"

	prompt := planner.BuildPrompt(req)

	assert.Contains(t, prompt, "spelunking")
	assert.Contains(t, prompt, "coworkers")
}

func TestBuildPrompt_EmbedsSchemaAndJSONOnlyInstruction(t *testing.T) {
	prompt := planner.BuildPrompt(requestFixture())

	// The schema example must advertise the exact field names the parser reads.
	for _, field := range []string{`"totalBudget"`, `"overview"`, `"days"`, `"theme"`, `"places"`, `"estimatedTime"`, `"transportation"`, `"tips"`} {
		assert.Contains(t, prompt, field)
	}
	assert.Contains(t, prompt, "valid JSON only")
}
