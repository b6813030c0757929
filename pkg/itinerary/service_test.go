package itinerary

import (
	"context"
	"testing"
	"time"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/internal/utils"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

type stubTripReader struct {
	trips map[int]trip.Trip
}

func (s *stubTripReader) Get(ctx context.Context, id int) (trip.Trip, error) {
	t, ok := s.trips[id]
	if !ok {
		return trip.Trip{}, apperr.NotFoundf("trip %d", id)
	}
	return t, nil
}

var itemRepoStub = NewStubRepository()

var service Service

func setup(t *testing.T) func() {
	trips := &stubTripReader{trips: map[int]trip.Trip{
		1: {
			ID:           1,
			Name:         "關西之旅",
			StartDate:    time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			DaysCount:    3,
			ExchangeRate: 0.215,
		},
	}}
	service = NewService(itemRepoStub, trips, nil)
	return func() {
		t.Log("Teardown after test")
		itemRepoStub.Reset()
	}
}

func TestServiceImpl_Add(t *testing.T) {
	t.Run("should add an item with explicit fields", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		added, err := service.Add(ctx, 1, 2, Item{
			Time:      "10:30",
			Title:     "清水寺",
			Location:  "清水寺",
			Category:  CategorySight,
			BaseCost:  400,
			Transport: Transport{Mode: TransportBus, Minutes: 20},
		})

		// then
		require.NoError(t, err)
		assert.NotZero(t, added.ID)
		assert.Equal(t, 1, added.TripId)
		assert.Equal(t, 2, added.Day)
		assert.Equal(t, "10:30", added.Time)
	})

	t.Run("should fill defaults for an empty draft", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		added, err := service.Add(ctx, 1, 1, Item{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "09:00", added.Time)
		assert.Equal(t, "新行程", added.Title)
		assert.Equal(t, CategoryOther, added.Category)
		assert.Equal(t, Transport{Mode: TransportMove, Minutes: 30}, added.Transport)
	})

	t.Run("should preserve an empty location", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		added, err := service.Add(ctx, 1, 1, Item{Title: "午餐", Location: ""})

		require.NoError(t, err)
		assert.Equal(t, "", added.Location)
	})

	t.Run("should reject a day outside the trip range", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Add(ctx, 1, 4, Item{Title: "Test"})

		// then
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("should reject day zero", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Add(ctx, 1, 0, Item{Title: "Test"})

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("should reject a malformed time", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Add(ctx, 1, 1, Item{Time: "25:99", Title: "Test"})

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("should fail for an unknown trip", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Add(ctx, 404, 1, Item{Title: "Test"})

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestServiceImpl_ListDay(t *testing.T) {
	t.Run("should sort by time with insertion-order ties", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Add(ctx, 1, 1, Item{Time: "14:00", Title: "晚到的"})
		require.NoError(t, err)
		first, err := service.Add(ctx, 1, 1, Item{Time: "09:00", Title: "並列一"})
		require.NoError(t, err)
		second, err := service.Add(ctx, 1, 1, Item{Time: "09:00", Title: "並列二"})
		require.NoError(t, err)

		// when
		items, err := service.ListDay(ctx, 1, 1)

		// then
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, first.ID, items[0].ID)
		assert.Equal(t, second.ID, items[1].ID)
		assert.Equal(t, "晚到的", items[2].Title)
	})

	t.Run("should return an empty list for an empty day", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		items, err := service.ListDay(ctx, 1, 3)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("should reject a day outside the trip range", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.ListDay(ctx, 1, 4)

		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestServiceImpl_DayResizeRetainsItems(t *testing.T) {
	t.Run("should hide items on excluded days and restore them on regrow", func(t *testing.T) {
		// given a 5-day trip with an item on day 4
		tripRepo := trip.NewStubRepository()
		clock := &utils.MockClock{FixedNow: time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)}
		tripService := trip.NewService(tripRepo, clock, nil, 0.215)
		itemRepo := NewStubRepository()
		itemService := NewService(itemRepo, tripService, nil)

		created, err := tripService.Create(ctx, trip.Trip{Name: "Test", DaysCount: 5})
		require.NoError(t, err)
		added, err := itemService.Add(ctx, created.ID, 4, Item{Time: "10:00", Title: "天橋立"})
		require.NoError(t, err)

		// when the trip shrinks below the item's day
		_, err = tripService.ResizeDays(ctx, created.ID, 3)
		require.NoError(t, err)

		// then the day is out of range, but the item is not deleted
		_, err = itemService.ListDay(ctx, created.ID, 4)
		assert.ErrorIs(t, err, apperr.ErrValidation)
		stored, err := itemRepo.Get(ctx, created.ID, 4, added.ID)
		require.NoError(t, err)
		assert.Equal(t, "天橋立", stored.Title)

		// and growing back makes it visible again
		_, err = tripService.ResizeDays(ctx, created.ID, 5)
		require.NoError(t, err)
		items, err := itemService.ListDay(ctx, created.ID, 4)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, added.ID, items[0].ID)
	})
}

func TestServiceImpl_Update(t *testing.T) {
	t.Run("should update an existing item", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		added, err := service.Add(ctx, 1, 1, Item{Time: "09:00", Title: "早餐"})
		require.NoError(t, err)

		// when
		updated, err := service.Update(ctx, 1, 1, added.ID, Item{Time: "08:30", Title: "早餐"})

		// then
		require.NoError(t, err)
		assert.Equal(t, added.ID, updated.ID)
		assert.Equal(t, "08:30", updated.Time)
	})

	t.Run("should fail for an unknown item", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Update(ctx, 1, 1, 404, Item{Title: "Test"})

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestServiceImpl_Remove(t *testing.T) {
	t.Run("should remove an existing item", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		added, err := service.Add(ctx, 1, 1, Item{Title: "Test"})
		require.NoError(t, err)

		// when
		err = service.Remove(ctx, 1, 1, added.ID)

		// then
		require.NoError(t, err)
		items, err := service.ListDay(ctx, 1, 1)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("should fail for an unknown item", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		err := service.Remove(ctx, 1, 1, 404)

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
