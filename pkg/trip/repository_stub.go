package trip

import (
	"context"
	"database/sql"
	"sort"
)

type StubRepository struct {
	nextId int
	data   map[int]Trip
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[int]Trip{}}
}

func (s *StubRepository) Store(ctx context.Context, trip Trip) (int, error) {
	s.nextId++
	trip.ID = s.nextId
	s.data[trip.ID] = trip
	return trip.ID, nil
}

func (s *StubRepository) Get(ctx context.Context, id int) (Trip, error) {
	trip, ok := s.data[id]
	if !ok {
		return Trip{}, sql.ErrNoRows
	}
	return trip, nil
}

func (s *StubRepository) GetByUid(ctx context.Context, uid string) (Trip, error) {
	for _, trip := range s.data {
		if trip.Uid == uid {
			return trip, nil
		}
	}
	return Trip{}, sql.ErrNoRows
}

func (s *StubRepository) List(ctx context.Context) ([]Trip, error) {
	var trips []Trip
	for _, trip := range s.data {
		trips = append(trips, trip)
	}
	sort.Slice(trips, func(i, j int) bool { return trips[i].ID < trips[j].ID })
	return trips, nil
}

func (s *StubRepository) Update(ctx context.Context, trip Trip) (bool, error) {
	if _, ok := s.data[trip.ID]; !ok {
		return false, nil
	}
	s.data[trip.ID] = trip
	return true, nil
}

func (s *StubRepository) UpdateDaysCount(ctx context.Context, id int, daysCount int) (bool, error) {
	trip, ok := s.data[id]
	if !ok {
		return false, nil
	}
	trip.DaysCount = daysCount
	s.data[id] = trip
	return true, nil
}

func (s *StubRepository) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubRepository) Reset() {
	s.data = map[int]Trip{}
	s.nextId = 0
}
