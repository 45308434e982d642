// Package planner contains the itinerary logic that does not talk to the
// network: prompt construction, generation-response parsing, and the
// deterministic fallback planner. Everything here is a pure function over
// a domain.TripRequest, which keeps the orchestrator's branching testable
// without provider stubs.
package planner

import (
	"fmt"
	"strings"

	"github.com/trip-curator/backend/internal/domain"
)

// styleDescriptions maps travel-style tags to the phrasing used in prompts.
// Unknown tags pass through literally rather than failing.
var styleDescriptions = map[string]string{
	"active":      "active and adventurous",
	"relaxed":     "relaxed and easygoing",
	"cultural":    "culture and history focused",
	"foodie":      "food and restaurant focused",
	"nature":      "nature and scenery focused",
	"shopping":    "shopping and brand-hunting focused",
	"nightlife":   "nightlife and entertainment focused",
	"wellness":    "healing and wellness focused",
	"photography": "photo-spot and snapshot focused",
	"luxury":      "premium and luxurious",
}

// companionDescriptions maps companion tags to prompt phrasing.
// Unknown tags pass through literally.
var companionDescriptions = map[string]string{
	"solo":    "traveling alone",
	"couple":  "traveling as a couple",
	"family":  "traveling with family",
	"friends": "traveling with friends",
}

// schemaExample is the exact output shape the generator is asked to follow.
// Field names here must stay in sync with the parser's payload structs.
const schemaExample = `{
  "totalBudget": %d,
  "overview": "short trip overview",
  "days": [
    {
      "day": 1,
      "date": "2024-01-01",
      "theme": "day one theme",
      "places": [
        {
          "name": "place name",
          "description": "place description",
          "category": "category",
          "estimatedTime": 120,
          "tips": "a practical tip"
        }
      ],
      "totalBudget": 50,
      "transportation": "how to get around"
    }
  ],
  "tips": ["travel tip 1", "travel tip 2"]
}`

// BuildPrompt renders a trip request into the instruction string sent to the
// generation provider. It embeds every request field in readable form plus an
// explicit example of the required JSON output schema. Pure string
// formatting; it never fails.
func BuildPrompt(req domain.TripRequest) string {
	styles := make([]string, 0, len(req.TravelStyle))
	for _, s := range req.TravelStyle {
		styles = append(styles, lookupOr(styleDescriptions, s, s))
	}

	var b strings.Builder
	b.WriteString("You are a professional travel planner. Create a personalized travel itinerary as JSON for the following trip.\n\n")
	b.WriteString("Trip conditions:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Start date: %s\n", req.StartDate)
	fmt.Fprintf(&b, "- End date: %s\n", req.EndDate)
	fmt.Fprintf(&b, "- Duration: %d days\n", req.Duration)
	fmt.Fprintf(&b, "- Budget: %d\n", req.Budget)
	fmt.Fprintf(&b, "- Travel style: %s\n", strings.Join(styles, ", "))
	fmt.Fprintf(&b, "- Companions: %s\n", lookupOr(companionDescriptions, req.Companions, req.Companions))
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(req.Interests, ", "))
	b.WriteString("\nRespond in exactly this JSON format:\n")
	fmt.Fprintf(&b, schemaExample, req.Budget)
	b.WriteString("\n\nImportant: respond with valid JSON only. Do not include any other text or ```json markdown fences.")
	return b.String()
}

// lookupOr returns m[key], or fallback when the key is absent.
func lookupOr(m map[string]string, key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
