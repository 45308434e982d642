// Package domain contains the core data types for the Trip Curator API.
// It depends only on the standard library and is imported by every other
// internal package (planner, repo, service, handler).
package domain

import (
	"encoding/json"
	"time"
)

// DateLayout is the calendar-date format used on the wire and in prompts.
const DateLayout = "2006-01-02"

// TripRequest is the travel-preference input for itinerary generation.
// It is immutable once decoded; downstream components only read from it.
type TripRequest struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"startDate"` // YYYY-MM-DD
	EndDate     string   `json:"endDate"`   // YYYY-MM-DD
	Duration    int      `json:"duration"`  // days
	Budget      int      `json:"budget"`    // currency-agnostic units
	TravelStyle []string `json:"travelStyle"`
	Companions  string   `json:"companions"`
	Interests   []string `json:"interests"`
}

// tripRequestAliases mirrors TripRequest but also accepts the snake_case
// field names some clients send. camelCase wins when both are present.
type tripRequestAliases struct {
	Destination      string   `json:"destination"`
	StartDate        string   `json:"startDate"`
	StartDateSnake   string   `json:"start_date"`
	EndDate          string   `json:"endDate"`
	EndDateSnake     string   `json:"end_date"`
	Duration         int      `json:"duration"`
	Budget           int      `json:"budget"`
	TravelStyle      []string `json:"travelStyle"`
	TravelStyleSnake []string `json:"travel_style"`
	Companions       string   `json:"companions"`
	Interests        []string `json:"interests"`
}

// UnmarshalJSON decodes a TripRequest, accepting both camelCase and
// snake_case spellings of the multi-word fields.
func (r *TripRequest) UnmarshalJSON(data []byte) error {
	var aux tripRequestAliases
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = TripRequest{
		Destination: aux.Destination,
		StartDate:   firstNonEmpty(aux.StartDate, aux.StartDateSnake),
		EndDate:     firstNonEmpty(aux.EndDate, aux.EndDateSnake),
		Duration:    aux.Duration,
		Budget:      aux.Budget,
		TravelStyle: aux.TravelStyle,
		Companions:  aux.Companions,
		Interests:   aux.Interests,
	}
	if len(r.TravelStyle) == 0 {
		r.TravelStyle = aux.TravelStyleSnake
	}
	return nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// PrimaryStyle returns the first travel-style tag, or "" when none is set.
func (r TripRequest) PrimaryStyle() string {
	if len(r.TravelStyle) == 0 {
		return ""
	}
	return r.TravelStyle[0]
}

// Coordinates is a geographic point attached to a Place by the enricher.
// A nil *Coordinates means the place has not been (or could not be) enriched.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a single itinerary entry within a day.
// Places are created by the response parser or the fallback planner and are
// only ever mutated by the coordinate enricher setting Coordinates.
type Place struct {
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	EstimatedTime int          `json:"estimatedTime"` // minutes
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
	Tips          string       `json:"tips,omitempty"`
	Cost          *int         `json:"cost,omitempty"`
	NearbyPlaces  []string     `json:"nearbyPlaces,omitempty"`
	ImageURL      string       `json:"imageUrl,omitempty"`
}

// DayPlan is one day of an itinerary. Day is 1-based; in a fallback-built
// TripPlan the day indices form the contiguous range 1..duration.
type DayPlan struct {
	Day            int     `json:"day"`
	Date           string  `json:"date"` // YYYY-MM-DD
	Theme          string  `json:"theme"`
	Places         []Place `json:"places"`
	TotalBudget    int     `json:"totalBudget"` // per-day share
	Transportation string  `json:"transportation"`
}

// TripPlan is the complete multi-day itinerary returned to the caller.
// Assembled once by the orchestrator, then immutable apart from enrichment.
type TripPlan struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Duration    int       `json:"duration"`
	TotalBudget int       `json:"totalBudget"`
	Overview    string    `json:"overview"`
	Days        []DayPlan `json:"days"`
	Tips        []string  `json:"tips"`
	CreatedAt   time.Time `json:"createdAt"`
}
