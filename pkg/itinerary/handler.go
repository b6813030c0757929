package itinerary

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/internal/rest"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ItemDTO struct {
	ID               int    `json:"id"`
	Day              int    `json:"day"`
	Time             string `json:"time"`
	Title            string `json:"title"`
	Location         string `json:"location"`
	Category         string `json:"category"`
	BaseCost         int    `json:"baseCost"`
	Note             string `json:"note,omitempty"`
	TransportMode    string `json:"transportMode"`
	TransportMinutes int    `json:"transportMinutes"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) ListDay(w http.ResponseWriter, r *http.Request) {
	tripId, day, err := pathTripDay(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	items, err := h.service.ListDay(r.Context(), tripId, day)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemToDTO(item))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log.Debug("Adding itinerary item")
	tripId, day, err := pathTripDay(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	var dto ItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, apperr.Validationf("invalid request body: %v", err))
		return
	}

	created, err := h.service.Add(r.Context(), tripId, day, dtoToItem(dto))
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, itemToDTO(created))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	tripId, day, err := pathTripDay(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	itemId, err := pathItemId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	var dto ItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, apperr.Validationf("invalid request body: %v", err))
		return
	}

	updated, err := h.service.Update(r.Context(), tripId, day, itemId, dtoToItem(dto))
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, itemToDTO(updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tripId, day, err := pathTripDay(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	itemId, err := pathItemId(r)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	if err := h.service.Remove(r.Context(), tripId, day, itemId); err != nil {
		rest.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
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

func pathItemId(r *http.Request) (int, error) {
	itemId, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		return 0, apperr.Validationf("item id must be an integer")
	}
	return itemId, nil
}

func itemToDTO(item Item) ItemDTO {
	return ItemDTO{
		ID:               item.ID,
		Day:              item.Day,
		Time:             item.Time,
		Title:            item.Title,
		Location:         item.Location,
		Category:         string(item.Category),
		BaseCost:         item.BaseCost,
		Note:             item.Note,
		TransportMode:    string(item.Transport.Mode),
		TransportMinutes: item.Transport.Minutes,
	}
}

func dtoToItem(dto ItemDTO) Item {
	return Item{
		ID:       dto.ID,
		Day:      dto.Day,
		Time:     dto.Time,
		Title:    dto.Title,
		Location: dto.Location,
		Category: Category(dto.Category),
		BaseCost: dto.BaseCost,
		Note:     dto.Note,
		Transport: Transport{
			Mode:    TransportMode(dto.TransportMode),
			Minutes: dto.TransportMinutes,
		},
	}
}
