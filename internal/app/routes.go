package app

import (
	"github.com/gorilla/mux"
	"github.com/budingo48763/Japan-trip-app/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Trips
	r.HandleFunc("/api/trip", deps.TripHandler.Create).Methods("POST")
	r.HandleFunc("/api/trip", deps.TripHandler.List).Methods("GET")
	r.HandleFunc("/api/trip/{tripId}", deps.TripHandler.Get).Methods("GET")
	r.HandleFunc("/api/trip/{tripId}", deps.TripHandler.Update).Methods("PUT")
	r.HandleFunc("/api/trip/{tripId}", deps.TripHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/trip/{tripId}/days", deps.TripHandler.ResizeDays).Methods("PUT")
	r.HandleFunc("/api/trip/{tripId}/convert", deps.TripHandler.Convert).Queries("amount", "{amount}").Methods("GET")

	// Itinerary items
	r.HandleFunc("/api/trip/{tripId}/day/{day}/item", deps.ItineraryHandler.ListDay).Methods("GET")
	r.HandleFunc("/api/trip/{tripId}/day/{day}/item", deps.ItineraryHandler.Add).Methods("POST")
	r.HandleFunc("/api/trip/{tripId}/day/{day}/item/{itemId}", deps.ItineraryHandler.Update).Methods("PUT")
	r.HandleFunc("/api/trip/{tripId}/day/{day}/item/{itemId}", deps.ItineraryHandler.Delete).Methods("DELETE")

	// Expenses
	r.HandleFunc("/api/trip/{tripId}/day/{day}/item/{itemId}/expense", deps.ExpenseHandler.Log).Methods("POST")
	r.HandleFunc("/api/trip/{tripId}/day/{day}/item/{itemId}/expense", deps.ExpenseHandler.List).Methods("GET")
	r.HandleFunc("/api/trip/{tripId}/day/{day}/item/{itemId}/expense/{index}", deps.ExpenseHandler.Remove).Methods("DELETE")
	r.HandleFunc("/api/trip/{tripId}/day/{day}/total", deps.ExpenseHandler.DayTotal).Methods("GET")
	r.HandleFunc("/api/trip/{tripId}/total", deps.ExpenseHandler.TripTotal).Methods("GET")

	// Forecast
	r.HandleFunc("/api/forecast", deps.ForecastHandler.GetForecast).Methods("GET")

	// Packing advisory
	r.HandleFunc("/api/trip/{tripId}/packing", deps.PackingHandler.GetAdvisory).Methods("GET")

	// Day route link
	r.HandleFunc("/api/trip/{tripId}/day/{day}/route", deps.RouteHandler.GetDayRoute).Methods("GET")

	// Spreadsheet import
	r.HandleFunc("/api/trip/{tripId}/import", deps.ImporterHandler.Import).Methods("POST")

	// Hotels
	r.HandleFunc("/api/trip/{tripId}/hotel", deps.HotelHandler.List).Methods("GET")
	r.HandleFunc("/api/trip/{tripId}/hotel", deps.HotelHandler.Add).Methods("POST")
	r.HandleFunc("/api/trip/{tripId}/hotel/{hotelId}", deps.HotelHandler.Delete).Methods("DELETE")
}
