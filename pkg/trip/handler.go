package trip

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type TripDTO struct {
	ID           int     `json:"id"`
	Uid          string  `json:"uid"`
	Name         string  `json:"name"`
	StartDate    string  `json:"startDate"`
	DaysCount    int     `json:"daysCount"`
	ExchangeRate float64 `json:"exchangeRate"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new trip")

	var dto TripDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, apperr.Validationf("invalid request body: %v", err))
		return
	}
	trip, err := dtoToTrip(dto)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), trip)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, tripToDTO(created))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	trips, err := h.service.List(r.Context())
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	dtos := make([]TripDTO, 0, len(trips))
	for _, trip := range trips {
		dtos = append(dtos, tripToDTO(trip))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	tripId, err := PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	trip, err := h.service.Get(r.Context(), tripId)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, tripToDTO(trip))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	tripId, err := PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	var dto TripDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, apperr.Validationf("invalid request body: %v", err))
		return
	}
	trip, err := dtoToTrip(dto)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	trip.ID = tripId

	updated, err := h.service.Update(r.Context(), trip)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, tripToDTO(updated))
}

func (h *Handler) ResizeDays(w http.ResponseWriter, r *http.Request) {
	tripId, err := PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	var dto struct {
		DaysCount int `json:"daysCount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, apperr.Validationf("invalid request body: %v", err))
		return
	}

	resized, err := h.service.ResizeDays(r.Context(), tripId, dto.DaysCount)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, tripToDTO(resized))
}

func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	tripId, err := PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	amount, err := strconv.Atoi(r.URL.Query().Get("amount"))
	if err != nil {
		rest.WriteError(w, apperr.Validationf("amount must be an integer"))
		return
	}

	converted, err := h.service.Convert(r.Context(), tripId, amount)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, struct {
		Amount    int     `json:"amount"`
		Converted float64 `json:"converted"`
	}{amount, converted})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tripId, err := PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	if err := h.service.Delete(r.Context(), tripId); err != nil {
		rest.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PathTripId extracts the {tripId} route variable.
func PathTripId(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["tripId"])
	if err != nil {
		return 0, apperr.Validationf("trip id must be an integer")
	}
	return id, nil
}

func tripToDTO(trip Trip) TripDTO {
	return TripDTO{
		ID:           trip.ID,
		Uid:          trip.Uid,
		Name:         trip.Name,
		StartDate:    trip.StartDate.Format(DateFormat),
		DaysCount:    trip.DaysCount,
		ExchangeRate: trip.ExchangeRate,
	}
}

func dtoToTrip(dto TripDTO) (Trip, error) {
	var startDate time.Time
	if dto.StartDate != "" {
		parsed, err := time.Parse(DateFormat, dto.StartDate)
		if err != nil {
			return Trip{}, apperr.Validationf("start date must be in %s format", DateFormat)
		}
		startDate = parsed
	}
	return Trip{
		ID:           dto.ID,
		Name:         dto.Name,
		StartDate:    startDate,
		DaysCount:    dto.DaysCount,
		ExchangeRate: dto.ExchangeRate,
	}, nil
}
