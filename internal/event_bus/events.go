package event_bus

const (
	// TripUpdatedEvent fires when trip-level fields that feed derived reads
	// change (start date, day count, exchange rate).
	TripUpdatedEvent EventType = "trip.updated"
	// ItineraryItemChangedEvent fires on any item add, update, or delete.
	ItineraryItemChangedEvent EventType = "itinerary.item.changed"
)

type TripUpdated struct {
	TripId int
}

type ItineraryItemChanged struct {
	TripId int
	Day    int
	ItemId int
}
