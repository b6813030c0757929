// Package route derives navigation references from an itinerary day.
package route

import (
	"net/url"
	"strings"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
)

const (
	directionsBaseURL = "https://www.google.com/maps/dir/"
	searchBaseURL     = "https://www.google.com/maps/search/?api=1&query="
)

// Route is an ordered multi-stop navigation reference. Waypoints keep the
// itinerary's time order; the contract is "walk the day in itinerary order",
// never shortest path.
type Route struct {
	Origin      string
	Destination string
	// Waypoints are the intermediate stops between origin and destination,
	// in order.
	Waypoints []string
	// URL is a provider deep link covering all stops.
	URL string
}

// BuildRoute filters the ordered location list to usable (non-blank) entries
// and builds the multi-stop reference. Fewer than two usable locations is a
// recoverable ErrInsufficientData, rendered by callers as a warning.
func BuildRoute(orderedLocations []string) (Route, error) {
	usable := make([]string, 0, len(orderedLocations))
	for _, loc := range orderedLocations {
		if strings.TrimSpace(loc) != "" {
			usable = append(usable, loc)
		}
	}
	if len(usable) < 2 {
		return Route{}, apperr.InsufficientDataf("route needs at least 2 located stops, got %d", len(usable))
	}

	encoded := make([]string, 0, len(usable))
	for _, loc := range usable {
		encoded = append(encoded, url.PathEscape(loc))
	}

	return Route{
		Origin:      usable[0],
		Destination: usable[len(usable)-1],
		Waypoints:   usable[1 : len(usable)-1],
		URL:         directionsBaseURL + strings.Join(encoded, "/"),
	}, nil
}

// SearchLink builds a single-place lookup link. Locations that already are
// URLs pass through untouched; an empty location yields an empty link.
func SearchLink(location string) string {
	if location == "" {
		return ""
	}
	if strings.HasPrefix(location, "http") {
		return location
	}
	return searchBaseURL + url.QueryEscape(location)
}
