package app

import (
	"database/sql"

	"github.com/budingo48763/Japan-trip-app/internal/config"
	"github.com/budingo48763/Japan-trip-app/internal/event_bus"
	"github.com/budingo48763/Japan-trip-app/internal/utils"
	"github.com/budingo48763/Japan-trip-app/pkg/expense"
	"github.com/budingo48763/Japan-trip-app/pkg/forecast"
	"github.com/budingo48763/Japan-trip-app/pkg/hotel"
	"github.com/budingo48763/Japan-trip-app/pkg/importer"
	"github.com/budingo48763/Japan-trip-app/pkg/itinerary"
	"github.com/budingo48763/Japan-trip-app/pkg/packing"
	"github.com/budingo48763/Japan-trip-app/pkg/route"
	"github.com/budingo48763/Japan-trip-app/pkg/trip"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	TripRepo    trip.Repository
	TripService trip.Service
	TripHandler *trip.Handler

	ItineraryRepo    itinerary.Repository
	ItineraryService itinerary.Service
	ItineraryHandler *itinerary.Handler

	ExpenseRepo    expense.Repository
	ExpenseService expense.Service
	ExpenseHandler *expense.Handler

	ForecastOracle  *forecast.Oracle
	ForecastHandler *forecast.Handler

	PackingService packing.Service
	PackingHandler *packing.Handler

	RouteHandler *route.Handler

	ImporterRepo    importer.Repository
	ImporterService importer.Service
	ImporterHandler *importer.Handler

	HotelRepo    hotel.Repository
	HotelService hotel.Service
	HotelHandler *hotel.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.TripRepo = trip.NewRepository(db)
	deps.TripService = trip.NewService(deps.TripRepo, deps.Clock, deps.EventBus, cfg.Trip.DefaultExchangeRate)
	deps.TripHandler = trip.NewHandler(deps.TripService)

	deps.ItineraryRepo = itinerary.NewRepository(db)
	deps.ItineraryService = itinerary.NewService(deps.ItineraryRepo, deps.TripService, deps.EventBus)
	deps.ItineraryHandler = itinerary.NewHandler(deps.ItineraryService)

	deps.ExpenseRepo = expense.NewRepository(db)
	deps.ExpenseService = expense.NewService(deps.ExpenseRepo, deps.ItineraryRepo, deps.TripService)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.ForecastOracle = forecast.NewOracle()
	deps.ForecastHandler = forecast.NewHandler(deps.ForecastOracle)

	deps.PackingService = packing.NewService(deps.TripService, deps.ItineraryRepo, deps.ForecastOracle, deps.EventBus, cfg.Trip.FallbackLocation)
	deps.PackingHandler = packing.NewHandler(deps.PackingService)

	deps.RouteHandler = route.NewHandler(deps.ItineraryService)

	deps.ImporterRepo = importer.NewRepository(db)
	deps.ImporterService = importer.NewService(deps.ImporterRepo, deps.TripService, deps.EventBus)
	deps.ImporterHandler = importer.NewHandler(deps.ImporterService)

	deps.HotelRepo = hotel.NewRepository(db)
	deps.HotelService = hotel.NewService(deps.HotelRepo, deps.TripService)
	deps.HotelHandler = hotel.NewHandler(deps.HotelService)

	return deps
}
