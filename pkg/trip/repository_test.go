package trip

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/budingo48763/Japan-trip-app/internal/test_utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrip(name string) Trip {
	return Trip{
		Uid:          uuid.NewString(),
		Name:         name,
		StartDate:    time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		DaysCount:    3,
		ExchangeRate: 0.215,
	}
}

func TestRepositoryImpl_StoreAndGet(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	stored := testTrip("關西之旅")
	id, err := repo.Store(ctx, stored)
	require.NoError(t, err)

	t.Run("should round-trip every field", func(t *testing.T) {
		got, err := repo.Get(ctx, id)

		require.NoError(t, err)
		stored.ID = id
		assert.Equal(t, stored, got)
	})

	t.Run("should find the trip by uid", func(t *testing.T) {
		got, err := repo.GetByUid(ctx, stored.Uid)

		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("should return ErrNoRows for an unknown id", func(t *testing.T) {
		_, err := repo.Get(ctx, 404)

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestRepositoryImpl_List(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.Store(ctx, testTrip("第一個"))
	require.NoError(t, err)
	second, err := repo.Store(ctx, testTrip("第二個"))
	require.NoError(t, err)

	// when
	trips, err := repo.List(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, first, trips[0].ID)
	assert.Equal(t, second, trips[1].ID)
}

func TestRepositoryImpl_UpdateDaysCount(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	id, err := repo.Store(ctx, testTrip("Test"))
	require.NoError(t, err)

	// when
	updated, err := repo.UpdateDaysCount(ctx, id, 5)

	// then
	require.NoError(t, err)
	assert.True(t, updated)
	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, got.DaysCount)
}

func TestRepositoryImpl_Delete_CascadesToItems(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	id, err := repo.Store(ctx, testTrip("Test"))
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO itinerary_item (trip_id, day, time, title, location, category, base_cost, note, transport_mode, transport_minutes)
		 VALUES (?, 1, '09:00', '早餐', '', 'food', 0, '', 'walk', 5)`, id)
	require.NoError(t, err)

	// when
	deleted, err := repo.Delete(ctx, id)

	// then
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM itinerary_item WHERE trip_id = ?`, id).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
