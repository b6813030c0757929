package hotel

import (
	"context"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
)

type TripReader interface {
	Get(ctx context.Context, id int) (trip.Trip, error)
}

type Service interface {
	Add(ctx context.Context, hotel Hotel) (Hotel, error)
	ListForTrip(ctx context.Context, tripId int) ([]Hotel, error)
	Remove(ctx context.Context, tripId int, id int) error
}

type ServiceImpl struct {
	repo  Repository
	trips TripReader
}

func NewService(repo Repository, trips TripReader) *ServiceImpl {
	return &ServiceImpl{repo: repo, trips: trips}
}

func (s *ServiceImpl) Add(ctx context.Context, hotel Hotel) (Hotel, error) {
	if _, err := s.trips.Get(ctx, hotel.TripId); err != nil {
		return Hotel{}, err
	}
	if err := hotel.Validate(); err != nil {
		return Hotel{}, apperr.Validationf("%v", err)
	}

	id, err := s.repo.Store(ctx, hotel)
	if err != nil {
		return Hotel{}, err
	}
	hotel.ID = id
	return hotel, nil
}

func (s *ServiceImpl) ListForTrip(ctx context.Context, tripId int) ([]Hotel, error) {
	if _, err := s.trips.Get(ctx, tripId); err != nil {
		return nil, err
	}
	return s.repo.ListForTrip(ctx, tripId)
}

func (s *ServiceImpl) Remove(ctx context.Context, tripId int, id int) error {
	deleted, err := s.repo.Delete(ctx, tripId, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFoundf("hotel %d not found in trip %d", id, tripId)
	}
	return nil
}
