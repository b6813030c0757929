package packing

import (
	"context"
	"sync"

	"github.com/budingo48763/Japan-trip-app/internal/event_bus"
	"github.com/budingo48763/Japan-trip-app/pkg/forecast"
	"github.com/budingo48763/Japan-trip-app/pkg/itinerary"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
	log "github.com/sirupsen/logrus"
)

type TripReader interface {
	Get(ctx context.Context, id int) (trip.Trip, error)
}

type ItineraryReader interface {
	ListDay(ctx context.Context, tripId int, day int) ([]itinerary.Item, error)
}

type Service interface {
	// Advise folds one forecast per trip day into min/max/precipitation
	// aggregates and derives the recommendation tag set. fallbackLocation
	// keys the weather lookup for days without a located first item; empty
	// means the configured default.
	Advise(ctx context.Context, tripId int, fallbackLocation string) (Advisory, error)
}

type cacheKey struct {
	tripId   int
	fallback string
}

type ServiceImpl struct {
	trips           TripReader
	items           ItineraryReader
	oracle          *forecast.Oracle
	defaultFallback string

	// The advisory is deterministic for a fixed trip, so caching is
	// transparent; bus events drop entries whenever their inputs change.
	mu    sync.Mutex
	cache map[cacheKey]Advisory
}

func NewService(trips TripReader, items ItineraryReader, oracle *forecast.Oracle, eventBus *event_bus.EventBus, defaultFallback string) *ServiceImpl {
	service := &ServiceImpl{
		trips:           trips,
		items:           items,
		oracle:          oracle,
		defaultFallback: defaultFallback,
		cache:           make(map[cacheKey]Advisory),
	}
	if eventBus != nil {
		event_bus.SubscribeTyped[event_bus.TripUpdated](
			eventBus,
			event_bus.TripUpdatedEvent,
			func(e event_bus.EventT[event_bus.TripUpdated]) error {
				log.Debugf("invalidating packing advisory for trip %d after trip update", e.Data.TripId)
				service.invalidate(e.Data.TripId)
				return nil
			},
		)
		event_bus.SubscribeTyped[event_bus.ItineraryItemChanged](
			eventBus,
			event_bus.ItineraryItemChangedEvent,
			func(e event_bus.EventT[event_bus.ItineraryItemChanged]) error {
				log.Debugf("invalidating packing advisory for trip %d after item change", e.Data.TripId)
				service.invalidate(e.Data.TripId)
				return nil
			},
		)
	}
	return service
}

func (s *ServiceImpl) Advise(ctx context.Context, tripId int, fallbackLocation string) (Advisory, error) {
	if fallbackLocation == "" {
		fallbackLocation = s.defaultFallback
	}
	key := cacheKey{tripId: tripId, fallback: fallbackLocation}

	s.mu.Lock()
	if cached, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	t, err := s.trips.Get(ctx, tripId)
	if err != nil {
		return Advisory{}, err
	}

	summary := Summary{Min: 100, Max: -100}
	for day := 1; day <= t.DaysCount; day++ {
		location, err := s.representativeLocation(ctx, tripId, day, fallbackLocation)
		if err != nil {
			return Advisory{}, err
		}
		f := s.oracle.Forecast(location, t.DateOfDay(day))
		if f.Condition.Precipitation() {
			summary.Rain = true
		}
		if f.Low < summary.Min {
			summary.Min = f.Low
		}
		if f.High > summary.Max {
			summary.Max = f.High
		}
	}

	advisory := Advisory{Tags: recommend(summary), Summary: summary}
	s.mu.Lock()
	s.cache[key] = advisory
	s.mu.Unlock()
	return advisory, nil
}

// representativeLocation is the location of the day's first item in time
// order, or the fallback when the day is empty or its first item has none.
func (s *ServiceImpl) representativeLocation(ctx context.Context, tripId int, day int, fallback string) (string, error) {
	items, err := s.items.ListDay(ctx, tripId, day)
	if err != nil {
		return "", err
	}
	if len(items) == 0 || items[0].Location == "" {
		return fallback, nil
	}
	return items[0].Location, nil
}

func (s *ServiceImpl) invalidate(tripId int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.cache {
		if key.tripId == tripId {
			delete(s.cache, key)
		}
	}
}
