package itinerary

import (
	"context"
	"testing"

	"github.com/budingo48763/Japan-trip-app/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryImpl_StoreAndListDay(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	tripId := test_utils.InsertTestTrip(t, db, "Test Trip", "2026-01-15", 3)
	repo := NewRepository(db)
	ctx := context.Background()

	item := func(day int, time string, title string) Item {
		return Item{
			TripId:    tripId,
			Day:       day,
			Time:      time,
			Title:     title,
			Category:  CategorySight,
			Transport: Transport{Mode: TransportMove, Minutes: 30},
		}
	}

	// given items inserted out of time order, with a duplicate time
	lateId, err := repo.Store(ctx, item(1, "15:00", "晚的"))
	require.NoError(t, err)
	firstTieId, err := repo.Store(ctx, item(1, "09:00", "並列一"))
	require.NoError(t, err)
	secondTieId, err := repo.Store(ctx, item(1, "09:00", "並列二"))
	require.NoError(t, err)
	_, err = repo.Store(ctx, item(2, "08:00", "別天"))
	require.NoError(t, err)

	// when
	items, err := repo.ListDay(ctx, tripId, 1)

	// then time order wins, ties keep insertion order, other days excluded
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, firstTieId, items[0].ID)
	assert.Equal(t, secondTieId, items[1].ID)
	assert.Equal(t, lateId, items[2].ID)
}

func TestRepositoryImpl_Get(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	tripId := test_utils.InsertTestTrip(t, db, "Test Trip", "2026-01-15", 3)
	repo := NewRepository(db)
	ctx := context.Background()

	stored := Item{
		TripId:    tripId,
		Day:       1,
		Time:      "10:30",
		Title:     "清水寺",
		Location:  "清水寺",
		Category:  CategorySight,
		BaseCost:  400,
		Note:      "記得先買票",
		Transport: Transport{Mode: TransportBus, Minutes: 20},
	}
	id, err := repo.Store(ctx, stored)
	require.NoError(t, err)

	t.Run("should round-trip every field", func(t *testing.T) {
		got, err := repo.Get(ctx, tripId, 1, id)

		require.NoError(t, err)
		stored.ID = id
		assert.Equal(t, stored, got)
	})

	t.Run("should not find the item under another day", func(t *testing.T) {
		_, err := repo.Get(ctx, tripId, 2, id)

		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestRepositoryImpl_Update(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	tripId := test_utils.InsertTestTrip(t, db, "Test Trip", "2026-01-15", 3)
	repo := NewRepository(db)
	ctx := context.Background()

	id, err := repo.Store(ctx, Item{
		TripId: tripId, Day: 1, Time: "09:00", Title: "早餐",
		Category: CategoryFood, Transport: Transport{Mode: TransportWalk, Minutes: 5},
	})
	require.NoError(t, err)

	// when
	updated, err := repo.Update(ctx, Item{
		ID: id, TripId: tripId, Day: 1, Time: "08:30", Title: "早餐",
		Category: CategoryFood, BaseCost: 500, Transport: Transport{Mode: TransportWalk, Minutes: 5},
	})

	// then
	require.NoError(t, err)
	assert.True(t, updated)
	got, err := repo.Get(ctx, tripId, 1, id)
	require.NoError(t, err)
	assert.Equal(t, "08:30", got.Time)
	assert.Equal(t, 500, got.BaseCost)
}

func TestRepositoryImpl_Delete_CascadesToExpenses(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	tripId := test_utils.InsertTestTrip(t, db, "Test Trip", "2026-01-15", 3)
	repo := NewRepository(db)
	ctx := context.Background()

	id, err := repo.Store(ctx, Item{
		TripId: tripId, Day: 1, Time: "12:00", Title: "午餐",
		Category: CategoryFood, Transport: Transport{Mode: TransportWalk, Minutes: 5},
	})
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO expense (item_id, name, price) VALUES (?, ?, ?)`, id, "拉麵", 100)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO expense (item_id, name, price) VALUES (?, ?, ?)`, id, "飲料", 50)
	require.NoError(t, err)

	// when
	deleted, err := repo.Delete(ctx, tripId, 1, id)

	// then the item and its expenses vanish together
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM expense WHERE item_id = ?`, id).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
