package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-curator/backend/internal/domain"
)

// ErrParse is returned by ParseResponse when the generation output cannot be
// decoded into an itinerary. Callers should fall back to the deterministic
// planner; the error is never surfaced to HTTP clients.
var ErrParse = errors.New("unparseable generation response")

// planPayload mirrors the JSON schema the prompt asks the generator to emit.
// Field names must stay in sync with schemaExample in prompt.go.
type planPayload struct {
	TotalBudget int          `json:"totalBudget"`
	Overview    string       `json:"overview"`
	Days        []dayPayload `json:"days"`
	Tips        []string     `json:"tips"`
}

type dayPayload struct {
	Day            int            `json:"day"`
	Date           string         `json:"date"`
	Theme          string         `json:"theme"`
	Places         []placePayload `json:"places"`
	TotalBudget    int            `json:"totalBudget"`
	Transportation string         `json:"transportation"`
}

type placePayload struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	EstimatedTime int      `json:"estimatedTime"`
	Tips          string   `json:"tips"`
	Cost          *int     `json:"cost"`
	NearbyPlaces  []string `json:"nearbyPlaces"`
	ImageURL      string   `json:"imageUrl"`
}

// ParseResponse turns the raw generation output into a TripPlan.
//
// The raw text is trimmed, stripped of markdown code fences the model may
// have added despite instructions, and sliced from the first '{' to the last
// '}' so that leading or trailing commentary is tolerated. The remaining
// candidate is decoded strictly; any syntax error yields a wrapped ErrParse
// and never a partial plan.
//
// Missing fields get defaults from the original request: day index from
// position, theme from position, per-day budget from budget/duration,
// place category "attraction", estimated time 60 minutes.
func ParseResponse(raw string, req domain.TripRequest) (domain.TripPlan, error) {
	candidate, err := extractJSON(raw)
	if err != nil {
		return domain.TripPlan{}, err
	}

	var payload planPayload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return domain.TripPlan{}, fmt.Errorf("planner.ParseResponse: %w: %v", ErrParse, err)
	}
	if len(payload.Days) == 0 {
		return domain.TripPlan{}, fmt.Errorf("planner.ParseResponse: %w: no days in payload", ErrParse)
	}

	days := make([]domain.DayPlan, 0, len(payload.Days))
	for i, d := range payload.Days {
		days = append(days, dayFromPayload(d, i, req))
	}

	plan := domain.TripPlan{
		ID:          uuid.NewString(),
		Destination: req.Destination,
		Duration:    req.Duration,
		TotalBudget: payload.TotalBudget,
		Overview:    payload.Overview,
		Days:        days,
		Tips:        payload.Tips,
		CreatedAt:   time.Now().UTC(),
	}
	if plan.TotalBudget == 0 {
		plan.TotalBudget = req.Budget
	}
	if plan.Overview == "" {
		plan.Overview = fmt.Sprintf("A trip to %s", req.Destination)
	}
	if plan.Tips == nil {
		plan.Tips = []string{}
	}
	return plan, nil
}

// extractJSON trims the raw text, removes surrounding ``` fences, and returns
// the substring between the first '{' and the last '}' inclusive.
func extractJSON(raw string) (string, error) {
	clean := strings.TrimSpace(raw)

	if strings.HasPrefix(clean, "```") {
		// Drop the opening fence line ("```" or "```json") and any closing fence.
		if idx := strings.Index(clean, "\n"); idx >= 0 {
			clean = clean[idx+1:]
		} else {
			clean = strings.TrimPrefix(clean, "```")
		}
		clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
		clean = strings.TrimSpace(clean)
	}

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("planner.extractJSON: %w: no JSON object found", ErrParse)
	}
	return clean[start : end+1], nil
}

// dayFromPayload maps one decoded day onto a DayPlan, substituting defaults
// for whatever the generator left out. pos is the zero-based position of the
// day in the payload.
func dayFromPayload(d dayPayload, pos int, req domain.TripRequest) domain.DayPlan {
	day := domain.DayPlan{
		Day:            d.Day,
		Date:           d.Date,
		Theme:          d.Theme,
		TotalBudget:    d.TotalBudget,
		Transportation: d.Transportation,
	}
	if day.Day == 0 {
		day.Day = pos + 1
	}
	if day.Date == "" {
		day.Date = dateForDay(req.StartDate, day.Day)
	}
	if day.Theme == "" {
		day.Theme = fmt.Sprintf("Day %d", day.Day)
	}
	if day.Transportation == "" {
		day.Transportation = "Public transit"
	}
	if day.TotalBudget == 0 && req.Duration > 0 {
		day.TotalBudget = req.Budget / req.Duration
	}

	day.Places = make([]domain.Place, 0, len(d.Places))
	for _, p := range d.Places {
		place := domain.Place{
			Name:          p.Name,
			Description:   p.Description,
			Category:      p.Category,
			EstimatedTime: p.EstimatedTime,
			Tips:          p.Tips,
			Cost:          p.Cost,
			NearbyPlaces:  p.NearbyPlaces,
			ImageURL:      p.ImageURL,
		}
		if place.Category == "" {
			place.Category = "attraction"
		}
		if place.EstimatedTime == 0 {
			place.EstimatedTime = 60
		}
		day.Places = append(day.Places, place)
	}
	return day
}

// dateForDay computes the calendar date for a 1-based day index from the
// request start date, substituting today when the start date is unparseable.
func dateForDay(startDate string, day int) string {
	base, err := time.Parse(domain.DateLayout, startDate)
	if err != nil {
		base = time.Now()
	}
	return base.AddDate(0, 0, day-1).Format(domain.DateLayout)
}
