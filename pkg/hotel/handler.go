package hotel

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/internal/rest"
	"github.com/budingo48763/Japan-trip-app/pkg/route"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
	"github.com/gorilla/mux"
)

type HotelDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	DateRange string `json:"dateRange"`
	Address   string `json:"address"`
	MapLink   string `json:"mapLink,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tripId, err := trip.PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	hotels, err := h.service.ListForTrip(r.Context(), tripId)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	dtos := make([]HotelDTO, 0, len(hotels))
	for _, hotel := range hotels {
		dtos = append(dtos, hotelToDTO(hotel))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	tripId, err := trip.PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	var dto HotelDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, apperr.Validationf("invalid request body: %v", err))
		return
	}

	created, err := h.service.Add(r.Context(), Hotel{
		TripId:    tripId,
		Name:      dto.Name,
		DateRange: dto.DateRange,
		Address:   dto.Address,
	})
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, hotelToDTO(created))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tripId, err := trip.PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	hotelId, err := strconv.Atoi(mux.Vars(r)["hotelId"])
	if err != nil {
		rest.WriteError(w, apperr.Validationf("hotel id must be an integer"))
		return
	}

	if err := h.service.Remove(r.Context(), tripId, hotelId); err != nil {
		rest.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func hotelToDTO(hotel Hotel) HotelDTO {
	return HotelDTO{
		ID:        hotel.ID,
		Name:      hotel.Name,
		DateRange: hotel.DateRange,
		Address:   hotel.Address,
		MapLink:   route.SearchLink(hotel.Address),
	}
}
