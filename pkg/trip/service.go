package trip

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/internal/event_bus"
	"github.com/budingo48763/Japan-trip-app/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const defaultName = "未命名旅程"

type Service interface {
	Create(ctx context.Context, trip Trip) (Trip, error)
	Get(ctx context.Context, id int) (Trip, error)
	GetByUid(ctx context.Context, uid string) (Trip, error)
	List(ctx context.Context) ([]Trip, error)
	Update(ctx context.Context, trip Trip) (Trip, error)
	// ResizeDays changes the trip's day count. Shrinking retains items on
	// now-out-of-range days; they stay stored, hidden from every view, and
	// reappear when the range grows back.
	ResizeDays(ctx context.Context, id int, daysCount int) (Trip, error)
	// Convert applies the trip's exchange rate to a display amount. It never
	// touches stored costs.
	Convert(ctx context.Context, id int, amount int) (float64, error)
	Delete(ctx context.Context, id int) error
}

type ServiceImpl struct {
	repo     Repository
	clock    utils.Clock
	eventBus *event_bus.EventBus
	// defaultRate seeds trips created without an explicit exchange rate.
	defaultRate float64
}

func NewService(repo Repository, clock utils.Clock, eventBus *event_bus.EventBus, defaultRate float64) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock, eventBus: eventBus, defaultRate: defaultRate}
}

func (s *ServiceImpl) Create(ctx context.Context, trip Trip) (Trip, error) {
	if trip.Name == "" {
		trip.Name = defaultName
	}
	if trip.DaysCount == 0 {
		trip.DaysCount = 1
	}
	if trip.ExchangeRate == 0 {
		trip.ExchangeRate = s.defaultRate
	}
	if trip.StartDate.IsZero() {
		now := s.clock.Now()
		trip.StartDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if err := trip.Validate(); err != nil {
		return Trip{}, apperr.Validationf("invalid trip: %v", err)
	}

	trip.Uid = uuid.NewString()
	id, err := s.repo.Store(ctx, trip)
	if err != nil {
		return Trip{}, err
	}
	trip.ID = id
	return trip, nil
}

func (s *ServiceImpl) Get(ctx context.Context, id int) (Trip, error) {
	trip, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trip{}, apperr.NotFoundf("trip %d", id)
		}
		return Trip{}, err
	}
	return trip, nil
}

func (s *ServiceImpl) GetByUid(ctx context.Context, uid string) (Trip, error) {
	trip, err := s.repo.GetByUid(ctx, uid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Trip{}, apperr.NotFoundf("trip %s", uid)
		}
		return Trip{}, err
	}
	return trip, nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]Trip, error) {
	return s.repo.List(ctx)
}

func (s *ServiceImpl) Update(ctx context.Context, trip Trip) (Trip, error) {
	if err := trip.Validate(); err != nil {
		return Trip{}, apperr.Validationf("invalid trip: %v", err)
	}
	current, err := s.Get(ctx, trip.ID)
	if err != nil {
		return Trip{}, err
	}
	trip.Uid = current.Uid

	updated, err := s.repo.Update(ctx, trip)
	if err != nil {
		return Trip{}, err
	}
	if !updated {
		return Trip{}, apperr.NotFoundf("trip %d", trip.ID)
	}
	s.publishUpdated(ctx, trip.ID)
	return trip, nil
}

func (s *ServiceImpl) ResizeDays(ctx context.Context, id int, daysCount int) (Trip, error) {
	if daysCount < 1 {
		return Trip{}, apperr.Validationf("days count must be at least 1, got %d", daysCount)
	}
	trip, err := s.Get(ctx, id)
	if err != nil {
		return Trip{}, err
	}
	if trip.DaysCount == daysCount {
		return trip, nil
	}

	updated, err := s.repo.UpdateDaysCount(ctx, id, daysCount)
	if err != nil {
		return Trip{}, err
	}
	if !updated {
		return Trip{}, apperr.NotFoundf("trip %d", id)
	}
	if daysCount < trip.DaysCount {
		log.Infof("trip %d shrunk from %d to %d days, items on excluded days are retained", id, trip.DaysCount, daysCount)
	}
	trip.DaysCount = daysCount
	s.publishUpdated(ctx, id)
	return trip, nil
}

func (s *ServiceImpl) Convert(ctx context.Context, id int, amount int) (float64, error) {
	if amount < 0 {
		return 0, apperr.Validationf("amount must not be negative, got %d", amount)
	}
	trip, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return float64(amount) * trip.ExchangeRate, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFoundf("trip %d", id)
	}
	return nil
}

func (s *ServiceImpl) publishUpdated(ctx context.Context, id int) {
	if s.eventBus == nil {
		return
	}
	event := event_bus.NewEvent(ctx, event_bus.TripUpdatedEvent, event_bus.TripUpdated{TripId: id})
	if err := s.eventBus.Publish(event); err != nil {
		log.Errorf("failed to publish trip updated event: %v", err)
	}
}
