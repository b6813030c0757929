package itinerary

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/budingo48763/Japan-trip-app/pkg/trip"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*mux.Router, func()) {
	trips := &stubTripReader{trips: map[int]trip.Trip{
		1: {
			ID:           1,
			Name:         "關西之旅",
			StartDate:    time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			DaysCount:    3,
			ExchangeRate: 0.215,
		},
	}}
	handler := NewHandler(NewService(itemRepoStub, trips, nil))

	router := mux.NewRouter()
	router.HandleFunc("/api/trip/{tripId}/day/{day}/item", handler.ListDay).Methods("GET")
	router.HandleFunc("/api/trip/{tripId}/day/{day}/item", handler.Add).Methods("POST")
	router.HandleFunc("/api/trip/{tripId}/day/{day}/item/{itemId}", handler.Delete).Methods("DELETE")

	return router, func() {
		itemRepoStub.Reset()
	}
}

func TestHandler_Add(t *testing.T) {
	t.Run("should create an item and echo it back", func(t *testing.T) {
		router, teardown := setupHandlerTest(t)
		defer teardown()

		body, err := json.Marshal(ItemDTO{Time: "10:30", Title: "清水寺", Category: "sight", BaseCost: 400})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/api/trip/1/day/2/item", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		// when
		router.ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusCreated, w.Code)
		var dto ItemDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.NotZero(t, dto.ID)
		assert.Equal(t, 2, dto.Day)
		assert.Equal(t, "清水寺", dto.Title)
	})

	t.Run("should return 400 for a day outside the trip range", func(t *testing.T) {
		router, teardown := setupHandlerTest(t)
		defer teardown()

		body, _ := json.Marshal(ItemDTO{Title: "Test"})
		req := httptest.NewRequest(http.MethodPost, "/api/trip/1/day/9/item", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should return 404 for an unknown trip", func(t *testing.T) {
		router, teardown := setupHandlerTest(t)
		defer teardown()

		body, _ := json.Marshal(ItemDTO{Title: "Test"})
		req := httptest.NewRequest(http.MethodPost, "/api/trip/404/day/1/item", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_ListDay(t *testing.T) {
	t.Run("should return the day's items in time order", func(t *testing.T) {
		router, teardown := setupHandlerTest(t)
		defer teardown()

		for _, dto := range []ItemDTO{
			{Time: "14:00", Title: "下午"},
			{Time: "09:00", Title: "早上"},
		} {
			body, _ := json.Marshal(dto)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/trip/1/day/1/item", bytes.NewBuffer(body)))
			require.Equal(t, http.StatusCreated, w.Code)
		}

		// when
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trip/1/day/1/item", nil))

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		var dtos []ItemDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dtos))
		require.Len(t, dtos, 2)
		assert.Equal(t, "早上", dtos[0].Title)
		assert.Equal(t, "下午", dtos[1].Title)
	})

	t.Run("should return an empty array for an empty day", func(t *testing.T) {
		router, teardown := setupHandlerTest(t)
		defer teardown()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/trip/1/day/3/item", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("should return 404 for an unknown item", func(t *testing.T) {
		router, teardown := setupHandlerTest(t)
		defer teardown()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/trip/1/day/1/item/404", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
