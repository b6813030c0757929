package importer

import (
	"net/http"

	"github.com/budingo48763/Japan-trip-app/internal/rest"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// Import accepts a CSV document as the request body and replaces the trip's
// itinerary with its rows.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	tripId, err := trip.PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	log.Debugf("Importing itinerary for trip %d", tripId)

	count, err := h.service.Import(r.Context(), tripId, r.Body)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, struct {
		Imported int `json:"imported"`
	}{count})
}
