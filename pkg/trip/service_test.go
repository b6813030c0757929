package trip

import (
	"context"
	"testing"
	"time"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var tripRepoStub = NewStubRepository()

var service Service

func setup(t *testing.T) func() {
	clock := &utils.MockClock{FixedNow: time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)}
	service = NewService(tripRepoStub, clock, nil, 0.215)
	return func() {
		t.Log("Teardown after test")
		tripRepoStub.Reset()
	}
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should create a trip with explicit fields", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Trip{
			Name:         "北海道滑雪",
			StartDate:    time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			DaysCount:    5,
			ExchangeRate: 0.22,
		})

		// then
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.NotEmpty(t, created.Uid)
		assert.Equal(t, "北海道滑雪", created.Name)
		assert.Equal(t, 5, created.DaysCount)
		assert.Equal(t, 0.22, created.ExchangeRate)
	})

	t.Run("should fill defaults for an empty draft", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Trip{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "未命名旅程", created.Name)
		assert.Equal(t, 1, created.DaysCount)
		assert.Equal(t, 0.215, created.ExchangeRate)
		assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), created.StartDate)
	})

	t.Run("should reject a negative exchange rate", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		_, err := service.Create(ctx, Trip{Name: "Test", DaysCount: 1, ExchangeRate: -0.5})

		// then
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestServiceImpl_ResizeDays(t *testing.T) {
	t.Run("should shrink and grow the day range", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Trip{Name: "Test", DaysCount: 5})
		require.NoError(t, err)

		// when
		shrunk, err := service.ResizeDays(ctx, created.ID, 3)
		require.NoError(t, err)
		grown, err := service.ResizeDays(ctx, created.ID, 5)
		require.NoError(t, err)

		// then
		assert.Equal(t, 3, shrunk.DaysCount)
		assert.Equal(t, 5, grown.DaysCount)
		assert.False(t, shrunk.ContainsDay(4))
		assert.True(t, grown.ContainsDay(4))
	})

	t.Run("should reject a day count below 1", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Trip{Name: "Test", DaysCount: 2})
		require.NoError(t, err)

		// when
		_, err = service.ResizeDays(ctx, created.ID, 0)

		// then
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("should fail for an unknown trip", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.ResizeDays(ctx, 404, 3)

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestServiceImpl_Convert(t *testing.T) {
	t.Run("should apply the trip's exchange rate", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Trip{Name: "Test", DaysCount: 1, ExchangeRate: 0.2})
		require.NoError(t, err)

		// when
		converted, err := service.Convert(ctx, created.ID, 1000)

		// then
		require.NoError(t, err)
		assert.InDelta(t, 200.0, converted, 0.0001)
	})

	t.Run("should reject a negative amount", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Trip{Name: "Test", DaysCount: 1})
		require.NoError(t, err)

		// when
		_, err = service.Convert(ctx, created.ID, -1)

		// then
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestServiceImpl_Update(t *testing.T) {
	t.Run("should keep the external uid on update", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Trip{Name: "Test", DaysCount: 2})
		require.NoError(t, err)

		// when
		updated, err := service.Update(ctx, Trip{
			ID:           created.ID,
			Name:         "改名",
			StartDate:    created.StartDate,
			DaysCount:    2,
			ExchangeRate: created.ExchangeRate,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, "改名", updated.Name)
		assert.Equal(t, created.Uid, updated.Uid)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	t.Run("should delete an existing trip", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Trip{Name: "Test", DaysCount: 1})
		require.NoError(t, err)

		// when
		err = service.Delete(ctx, created.ID)

		// then
		require.NoError(t, err)
		_, err = service.Get(ctx, created.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("should fail for an unknown trip", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		err := service.Delete(ctx, 404)

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
