package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/trip-curator/backend/internal/domain"
)

// styleThemes maps the primary travel-style tag to the day-theme label used
// by the fallback planner. Unknown or empty styles get the generic label.
var styleThemes = map[string]string{
	"cultural":    "Cultural Tour",
	"foodie":      "Food Tour",
	"nature":      "Nature & Scenery",
	"active":      "Activities",
	"relaxed":     "Rest & Leisure",
	"shopping":    "Shopping",
	"nightlife":   "Nightlife",
	"wellness":    "Wellness",
	"photography": "Photo Tour",
	"luxury":      "Luxury Tour",
}

const genericTheme = "Free Travel"

// fallbackTips is the fixed set of generic advice attached to every
// fallback-built plan, independent of the request.
var fallbackTips = []string{
	"Check local transportation options in advance",
	"Prepare a backup plan in case of bad weather",
	"Look up popular local restaurants before you go",
}

// placePool returns the fixed pool of placeholder places, interpolating the
// destination into names and descriptions so the plan still reads as
// destination-specific.
func placePool(destination string) []domain.Place {
	return []domain.Place{
		{
			Name:          destination + " Old Town",
			Description:   fmt.Sprintf("The historic heart of %s, best explored on foot", destination),
			Category:      "landmark",
			EstimatedTime: 90,
			Tips:          "Go early in the morning to avoid the crowds",
		},
		{
			Name:          destination + " Central Market",
			Description:   fmt.Sprintf("Local market with the signature food of %s", destination),
			Category:      "food",
			EstimatedTime: 120,
			Tips:          "Try the street food stalls the locals queue for",
		},
		{
			Name:          destination + " Scenic Viewpoint",
			Description:   fmt.Sprintf("A panoramic lookout over %s", destination),
			Category:      "nature",
			EstimatedTime: 60,
			Tips:          "Sunset is the best time for photos",
		},
	}
}

// Fallback deterministically synthesizes a minimal itinerary from the
// request alone, without any generated content. It is both the recovery path
// when generation or parsing fails and a directly callable preview.
//
// Pool places are distributed across days by integer division; when the pool
// is smaller than the duration, days beyond the pool reuse its first entry.
// The per-day budget is budget/duration with the remainder dropped, so the
// day budgets sum to (budget/duration)*duration, never more than the total.
func Fallback(req domain.TripRequest) domain.TripPlan {
	pool := placePool(req.Destination)

	perDay := len(pool) / req.Duration
	if perDay == 0 {
		perDay = 1
	}
	chunks := lo.Chunk(pool, perDay)

	theme := lookupOr(styleThemes, req.PrimaryStyle(), genericTheme)

	perDayBudget := req.Budget / req.Duration

	days := make([]domain.DayPlan, 0, req.Duration)
	for day := 1; day <= req.Duration; day++ {
		places := []domain.Place{pool[0]}
		if day-1 < len(chunks) {
			places = chunks[day-1]
		}

		days = append(days, domain.DayPlan{
			Day:            day,
			Date:           dateForDay(req.StartDate, day),
			Theme:          fmt.Sprintf("Day %d - %s", day, theme),
			Places:         places,
			TotalBudget:    perDayBudget,
			Transportation: "Rental car",
		})
	}

	return domain.TripPlan{
		ID:          uuid.NewString(),
		Destination: req.Destination,
		Duration:    req.Duration,
		TotalBudget: req.Budget,
		Overview:    fmt.Sprintf("A %d-day trip to %s", req.Duration, req.Destination),
		Days:        days,
		Tips:        append([]string(nil), fallbackTips...),
		CreatedAt:   time.Now().UTC(),
	}
}
