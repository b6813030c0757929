package route

import (
	"context"
	"net/http"
	"strconv"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/internal/rest"
	"github.com/budingo48763/Japan-trip-app/pkg/itinerary"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
	"github.com/gorilla/mux"
)

// ItineraryReader supplies a day's items, already time-sorted.
type ItineraryReader interface {
	ListDay(ctx context.Context, tripId int, day int) ([]itinerary.Item, error)
}

type RouteDTO struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Waypoints   []string `json:"waypoints"`
	URL         string   `json:"url"`
}

type Handler struct {
	items ItineraryReader
}

func NewHandler(items ItineraryReader) *Handler {
	return &Handler{items}
}

func (h *Handler) GetDayRoute(w http.ResponseWriter, r *http.Request) {
	tripId, err := trip.PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		rest.WriteError(w, apperr.Validationf("day must be an integer"))
		return
	}

	items, err := h.items.ListDay(r.Context(), tripId, day)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	locations := make([]string, 0, len(items))
	for _, item := range items {
		locations = append(locations, item.Location)
	}

	dayRoute, err := BuildRoute(locations)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	waypoints := dayRoute.Waypoints
	if waypoints == nil {
		waypoints = []string{}
	}
	rest.WriteJSON(w, http.StatusOK, RouteDTO{
		Origin:      dayRoute.Origin,
		Destination: dayRoute.Destination,
		Waypoints:   waypoints,
		URL:         dayRoute.URL,
	})
}
