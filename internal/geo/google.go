package geo

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/trip-curator/backend/internal/domain"
)

// googleSearcher implements Searcher with the Google Places text search API.
type googleSearcher struct {
	client *maps.Client
}

// NewGoogleSearcher constructs a Searcher backed by the Google Maps client.
func NewGoogleSearcher(apiKey string) (Searcher, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("geo.NewGoogleSearcher: %w", err)
	}
	return &googleSearcher{client: client}, nil
}

// Search runs a Places text search and returns the first result's location,
// or (nil, nil) when the provider has no match for the query.
func (g *googleSearcher) Search(ctx context.Context, query string) (*domain.Coordinates, error) {
	resp, err := g.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("geo.googleSearcher.Search: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}

	loc := resp.Results[0].Geometry.Location
	return &domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}
