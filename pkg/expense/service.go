package expense

import (
	"context"
	"errors"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/pkg/itinerary"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
)

// ItemReader is the slice of the itinerary repository this package reads.
type ItemReader interface {
	Get(ctx context.Context, tripId int, day int, id int) (itinerary.Item, error)
	ListDay(ctx context.Context, tripId int, day int) ([]itinerary.Item, error)
}

// TripReader resolves the day range for trip-wide totals.
type TripReader interface {
	Get(ctx context.Context, id int) (trip.Trip, error)
}

// DayBudget compares the day's planned estimates against logged spending.
type DayBudget struct {
	Planned int
	Actual  int
	Total   int
}

type Service interface {
	Log(ctx context.Context, tripId int, day int, itemId int, name string, price int) (Entry, error)
	// Remove deletes the entry at the given zero-based position of the
	// item's append-ordered expense list.
	Remove(ctx context.Context, tripId int, day int, itemId int, index int) error
	ListForItem(ctx context.Context, tripId int, day int, itemId int) ([]Entry, error)
	// TotalForDay sums effective costs over the day's items; expenses fully
	// supersede an item's base cost, never add to it.
	TotalForDay(ctx context.Context, tripId int, day int) (DayBudget, error)
	TotalForTrip(ctx context.Context, tripId int) (int, error)
}

type ServiceImpl struct {
	repo  Repository
	items ItemReader
	trips TripReader
}

func NewService(repo Repository, items ItemReader, trips TripReader) *ServiceImpl {
	return &ServiceImpl{repo: repo, items: items, trips: trips}
}

func (s *ServiceImpl) Log(ctx context.Context, tripId int, day int, itemId int, name string, price int) (Entry, error) {
	item, err := s.getItem(ctx, tripId, day, itemId)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{ItemId: item.ID, Name: name, Price: price}
	if err := entry.Validate(); err != nil {
		return Entry{}, apperr.Validationf("invalid expense: %v", err)
	}

	id, err := s.repo.Store(ctx, entry)
	if err != nil {
		return Entry{}, err
	}
	entry.ID = id
	return entry, nil
}

func (s *ServiceImpl) Remove(ctx context.Context, tripId int, day int, itemId int, index int) error {
	entries, err := s.ListForItem(ctx, tripId, day, itemId)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(entries) {
		return apperr.NotFoundf("expense index %d out of range [0, %d)", index, len(entries))
	}

	deleted, err := s.repo.Delete(ctx, entries[index].ID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFoundf("expense %d", entries[index].ID)
	}
	return nil
}

func (s *ServiceImpl) ListForItem(ctx context.Context, tripId int, day int, itemId int) ([]Entry, error) {
	item, err := s.getItem(ctx, tripId, day, itemId)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.ListForItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

func (s *ServiceImpl) TotalForDay(ctx context.Context, tripId int, day int) (DayBudget, error) {
	items, err := s.items.ListDay(ctx, tripId, day)
	if err != nil {
		return DayBudget{}, err
	}

	var budget DayBudget
	for _, item := range items {
		entries, err := s.repo.ListForItem(ctx, item.ID)
		if err != nil {
			return DayBudget{}, err
		}
		budget.Planned += item.BaseCost
		for _, e := range entries {
			budget.Actual += e.Price
		}
		budget.Total += EffectiveCost(item, entries)
	}
	return budget, nil
}

func (s *ServiceImpl) TotalForTrip(ctx context.Context, tripId int) (int, error) {
	t, err := s.trips.Get(ctx, tripId)
	if err != nil {
		return 0, err
	}

	total := 0
	for day := 1; day <= t.DaysCount; day++ {
		dayBudget, err := s.TotalForDay(ctx, tripId, day)
		if err != nil {
			return 0, err
		}
		total += dayBudget.Total
	}
	return total, nil
}

func (s *ServiceImpl) getItem(ctx context.Context, tripId int, day int, itemId int) (itinerary.Item, error) {
	item, err := s.items.Get(ctx, tripId, day, itemId)
	if err != nil {
		if errors.Is(err, itinerary.ErrItemNotFound) {
			return itinerary.Item{}, apperr.NotFoundf("itinerary item %d on day %d", itemId, day)
		}
		return itinerary.Item{}, err
	}
	return item, nil
}
