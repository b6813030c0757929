package packing

import (
	"net/http"

	"github.com/budingo48763/Japan-trip-app/internal/rest"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
)

type AdvisoryDTO struct {
	Tags    []string   `json:"tags"`
	Summary SummaryDTO `json:"summary"`
}

type SummaryDTO struct {
	Min  int  `json:"min"`
	Max  int  `json:"max"`
	Rain bool `json:"rain"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAdvisory(w http.ResponseWriter, r *http.Request) {
	tripId, err := trip.PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	fallback := r.URL.Query().Get("fallback")

	advisory, err := h.service.Advise(r.Context(), tripId, fallback)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	tags := advisory.Tags
	if tags == nil {
		tags = []string{}
	}
	rest.WriteJSON(w, http.StatusOK, AdvisoryDTO{
		Tags: tags,
		Summary: SummaryDTO{
			Min:  advisory.Summary.Min,
			Max:  advisory.Summary.Max,
			Rain: advisory.Summary.Rain,
		},
	})
}
