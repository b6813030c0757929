package itinerary

import (
	"context"
	"sort"
)

type StubRepository struct {
	nextId int
	data   map[int]Item
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[int]Item{}}
}

func (s *StubRepository) Store(ctx context.Context, item Item) (int, error) {
	s.nextId++
	item.ID = s.nextId
	s.data[item.ID] = item
	return item.ID, nil
}

func (s *StubRepository) Get(ctx context.Context, tripId int, day int, id int) (Item, error) {
	item, ok := s.data[id]
	if !ok || item.TripId != tripId || item.Day != day {
		return Item{}, ErrItemNotFound
	}
	return item, nil
}

func (s *StubRepository) ListDay(ctx context.Context, tripId int, day int) ([]Item, error) {
	var items []Item
	for _, item := range s.data {
		if item.TripId == tripId && item.Day == day {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Time != items[j].Time {
			return items[i].Time < items[j].Time
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (s *StubRepository) Update(ctx context.Context, item Item) (bool, error) {
	existing, ok := s.data[item.ID]
	if !ok || existing.TripId != item.TripId || existing.Day != item.Day {
		return false, nil
	}
	s.data[item.ID] = item
	return true, nil
}

func (s *StubRepository) Delete(ctx context.Context, tripId int, day int, id int) (bool, error) {
	item, ok := s.data[id]
	if !ok || item.TripId != tripId || item.Day != day {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubRepository) Reset() {
	s.data = map[int]Item{}
	s.nextId = 0
}
