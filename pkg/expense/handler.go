package expense

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/internal/rest"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
	"github.com/gorilla/mux"
)

type EntryDTO struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Log(w http.ResponseWriter, r *http.Request) {
	tripId, day, itemId, err := pathItemRef(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	var dto EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, apperr.Validationf("invalid request body: %v", err))
		return
	}

	entry, err := h.service.Log(r.Context(), tripId, day, itemId, dto.Name, dto.Price)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, EntryDTO{ID: entry.ID, Name: entry.Name, Price: entry.Price})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tripId, day, itemId, err := pathItemRef(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	entries, err := h.service.ListForItem(r.Context(), tripId, day, itemId)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	dtos := make([]EntryDTO, 0, len(entries))
	for _, entry := range entries {
		dtos = append(dtos, EntryDTO{ID: entry.ID, Name: entry.Name, Price: entry.Price})
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	tripId, day, itemId, err := pathItemRef(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		rest.WriteError(w, apperr.Validationf("expense index must be an integer"))
		return
	}

	if err := h.service.Remove(r.Context(), tripId, day, itemId, index); err != nil {
		rest.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DayTotal(w http.ResponseWriter, r *http.Request) {
	tripId, day, err := pathTripDay(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	budget, err := h.service.TotalForDay(r.Context(), tripId, day)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, struct {
		Planned int `json:"planned"`
		Actual  int `json:"actual"`
		Total   int `json:"total"`
	}{budget.Planned, budget.Actual, budget.Total})
}

func (h *Handler) TripTotal(w http.ResponseWriter, r *http.Request) {
	tripId, err := trip.PathTripId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	total, err := h.service.TotalForTrip(r.Context(), tripId)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, struct {
		Total int `json:"total"`
	}{total})
}

func pathTripDay(r *http.Request) (int, int, error) {
	tripId, err := trip.PathTripId(r)
	if err != nil {
		return 0, 0, err
	}
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		return 0, 0, apperr.Validationf("day must be an integer")
	}
	return tripId, day, nil
}

func pathItemRef(r *http.Request) (int, int, int, error) {
	tripId, day, err := pathTripDay(r)
	if err != nil {
		return 0, 0, 0, err
	}
	itemId, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		return 0, 0, 0, apperr.Validationf("item id must be an integer")
	}
	return tripId, day, itemId, nil
}
