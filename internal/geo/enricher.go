// Package geo attaches geographic coordinates to itinerary places via a
// maps-provider text search. Enrichment is strictly best effort: every
// failure is swallowed per place and the plan stays usable without
// coordinates.
package geo

import (
	"context"
	"log/slog"

	"github.com/trip-curator/backend/internal/domain"
)

// Searcher resolves a free-text query to coordinates.
// A (nil, nil) return means the provider found nothing for the query.
type Searcher interface {
	Search(ctx context.Context, query string) (*domain.Coordinates, error)
}

// Enricher walks a TripPlan and fills in Place coordinates from a Searcher.
type Enricher struct {
	searcher Searcher
	log      *slog.Logger
}

// NewEnricher constructs an Enricher. log may be nil, in which case the
// default logger is used.
func NewEnricher(searcher Searcher, log *slog.Logger) *Enricher {
	if log == nil {
		log = slog.Default()
	}
	return &Enricher{searcher: searcher, log: log}
}

// Enrich looks up `"{place name} {destination}"` for every place in every
// day and attaches the first result's coordinates in place. Lookups are
// sequential and place names repeated across days are looked up again.
// Empty results and provider errors leave that place's coordinates unset and
// move on; partial enrichment is success. Enrich is idempotent for a fixed
// provider: a second pass overwrites coordinates with the same values.
func (e *Enricher) Enrich(ctx context.Context, plan *domain.TripPlan, destination string) {
	for di := range plan.Days {
		for pi := range plan.Days[di].Places {
			place := &plan.Days[di].Places[pi]

			coords, err := e.searcher.Search(ctx, place.Name+" "+destination)
			if err != nil {
				e.log.DebugContext(ctx, "place lookup failed",
					"place", place.Name, "error", err)
				continue
			}
			if coords == nil {
				continue
			}
			place.Coordinates = coords
		}
	}
}
