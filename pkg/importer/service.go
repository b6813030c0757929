package importer

import (
	"context"
	"io"

	"github.com/budingo48763/Japan-trip-app/internal/event_bus"
	"github.com/budingo48763/Japan-trip-app/pkg/itinerary"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
	log "github.com/sirupsen/logrus"
)

type TripReader interface {
	Get(ctx context.Context, id int) (trip.Trip, error)
}

type Service interface {
	// Import parses the spreadsheet, validates every row, and atomically
	// replaces the trip's itinerary. The trip's day count becomes the
	// highest imported day. Any failure leaves the prior state unmodified.
	Import(ctx context.Context, tripId int, data io.Reader) (int, error)
}

type ServiceImpl struct {
	repo     Repository
	trips    TripReader
	eventBus *event_bus.EventBus
}

func NewService(repo Repository, trips TripReader, eventBus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, trips: trips, eventBus: eventBus}
}

func (s *ServiceImpl) Import(ctx context.Context, tripId int, data io.Reader) (int, error) {
	t, err := s.trips.Get(ctx, tripId)
	if err != nil {
		return 0, err
	}

	rows, err := Parse(data)
	if err != nil {
		return 0, err
	}

	daysCount := 1
	items := make([]itinerary.Item, 0, len(rows))
	for _, row := range rows {
		if row.Day > daysCount {
			daysCount = row.Day
		}
		items = append(items, row.toItem())
	}

	count, err := s.repo.Replace(ctx, t.ID, daysCount, items)
	if err != nil {
		return 0, err
	}
	log.Infof("imported %d itinerary items into trip %d (%d days)", count, t.ID, daysCount)

	s.publish(ctx, t.ID)
	return count, nil
}

func (s *ServiceImpl) publish(ctx context.Context, tripId int) {
	if s.eventBus == nil {
		return
	}
	event := event_bus.NewEvent(ctx, event_bus.TripUpdatedEvent, event_bus.TripUpdated{TripId: tripId})
	if err := s.eventBus.Publish(event); err != nil {
		log.Errorf("failed to publish trip updated event after import: %v", err)
	}
}
