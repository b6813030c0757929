package itinerary

import (
	"context"
	"errors"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/internal/event_bus"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
	log "github.com/sirupsen/logrus"
)

const (
	defaultTime  = "09:00"
	defaultTitle = "新行程"
)

var defaultTransport = Transport{Mode: TransportMove, Minutes: 30}

// TripReader is the slice of the trip service this package depends on.
type TripReader interface {
	Get(ctx context.Context, id int) (trip.Trip, error)
}

type Service interface {
	// Add inserts a draft into the given day. Missing time, title, category,
	// and transport get defaults before validation.
	Add(ctx context.Context, tripId int, day int, draft Item) (Item, error)
	Update(ctx context.Context, tripId int, day int, id int, draft Item) (Item, error)
	Remove(ctx context.Context, tripId int, day int, id int) error
	// ListDay returns the day's items sorted by time ascending with stable
	// insertion-order ties.
	ListDay(ctx context.Context, tripId int, day int) ([]Item, error)
}

type ServiceImpl struct {
	repo     Repository
	trips    TripReader
	eventBus *event_bus.EventBus
}

func NewService(repo Repository, trips TripReader, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, trips: trips, eventBus: eventBus}
}

func (s *ServiceImpl) Add(ctx context.Context, tripId int, day int, draft Item) (Item, error) {
	if err := s.checkDay(ctx, tripId, day); err != nil {
		return Item{}, err
	}

	draft.TripId = tripId
	draft.Day = day
	applyDefaults(&draft)
	if err := draft.Validate(); err != nil {
		return Item{}, apperr.Validationf("invalid itinerary item: %v", err)
	}

	id, err := s.repo.Store(ctx, draft)
	if err != nil {
		return Item{}, err
	}
	draft.ID = id
	s.publishChanged(ctx, tripId, day, id)
	return draft, nil
}

func (s *ServiceImpl) Update(ctx context.Context, tripId int, day int, id int, draft Item) (Item, error) {
	if err := s.checkDay(ctx, tripId, day); err != nil {
		return Item{}, err
	}
	if _, err := s.repo.Get(ctx, tripId, day, id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return Item{}, apperr.NotFoundf("itinerary item %d on day %d", id, day)
		}
		return Item{}, err
	}

	draft.ID = id
	draft.TripId = tripId
	draft.Day = day
	applyDefaults(&draft)
	if err := draft.Validate(); err != nil {
		return Item{}, apperr.Validationf("invalid itinerary item: %v", err)
	}

	updated, err := s.repo.Update(ctx, draft)
	if err != nil {
		return Item{}, err
	}
	if !updated {
		return Item{}, apperr.NotFoundf("itinerary item %d on day %d", id, day)
	}
	s.publishChanged(ctx, tripId, day, id)
	return draft, nil
}

func (s *ServiceImpl) Remove(ctx context.Context, tripId int, day int, id int) error {
	if err := s.checkDay(ctx, tripId, day); err != nil {
		return err
	}
	deleted, err := s.repo.Delete(ctx, tripId, day, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFoundf("itinerary item %d on day %d", id, day)
	}
	s.publishChanged(ctx, tripId, day, id)
	return nil
}

func (s *ServiceImpl) ListDay(ctx context.Context, tripId int, day int) ([]Item, error) {
	if err := s.checkDay(ctx, tripId, day); err != nil {
		return nil, err
	}
	items, err := s.repo.ListDay(ctx, tripId, day)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *ServiceImpl) checkDay(ctx context.Context, tripId int, day int) error {
	t, err := s.trips.Get(ctx, tripId)
	if err != nil {
		return err
	}
	if !t.ContainsDay(day) {
		return apperr.Validationf("day %d is outside the trip range [1, %d]", day, t.DaysCount)
	}
	return nil
}

func applyDefaults(item *Item) {
	if item.Time == "" {
		item.Time = defaultTime
	}
	if item.Title == "" {
		item.Title = defaultTitle
	}
	if item.Category == "" {
		item.Category = CategoryOther
	}
	if item.Transport.Mode == "" {
		item.Transport = defaultTransport
	}
}

func (s *ServiceImpl) publishChanged(ctx context.Context, tripId int, day int, itemId int) {
	if s.eventBus == nil {
		return
	}
	event := event_bus.NewEvent(ctx, event_bus.ItineraryItemChangedEvent,
		event_bus.ItineraryItemChanged{TripId: tripId, Day: day, ItemId: itemId})
	if err := s.eventBus.Publish(event); err != nil {
		log.Errorf("failed to publish itinerary item changed event: %v", err)
	}
}
