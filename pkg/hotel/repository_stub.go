package hotel

import (
	"context"
	"sort"
)

// StubRepository is an in-memory Repository used by service tests.
type StubRepository struct {
	data   map[int]Hotel
	nextId int
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[int]Hotel{}}
}

func (s *StubRepository) Store(ctx context.Context, hotel Hotel) (int, error) {
	s.nextId++
	hotel.ID = s.nextId
	s.data[hotel.ID] = hotel
	return hotel.ID, nil
}

func (s *StubRepository) ListForTrip(ctx context.Context, tripId int) ([]Hotel, error) {
	var hotels []Hotel
	for _, hotel := range s.data {
		if hotel.TripId == tripId {
			hotels = append(hotels, hotel)
		}
	}
	sort.Slice(hotels, func(i, j int) bool { return hotels[i].ID < hotels[j].ID })
	return hotels, nil
}

func (s *StubRepository) Delete(ctx context.Context, tripId int, id int) (bool, error) {
	hotel, ok := s.data[id]
	if !ok || hotel.TripId != tripId {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}
