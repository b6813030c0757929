package itinerary

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Category string

const (
	CategoryTransport Category = "transport"
	CategoryFood      Category = "food"
	CategoryStay      Category = "stay"
	CategorySight     Category = "sight"
	CategoryShopping  Category = "shopping"
	CategoryOther     Category = "other"
)

type TransportMode string

const (
	TransportTrain  TransportMode = "train"
	TransportBus    TransportMode = "bus"
	TransportWalk   TransportMode = "walk"
	TransportFlight TransportMode = "flight"
	TransportMove   TransportMode = "move"
)

// Transport describes how to get from an item to the next chronological item
// of the same day. It carries no meaning on the last item of a day.
type Transport struct {
	Mode    TransportMode
	Minutes int
}

// Item is a single scheduled activity within one day of a trip.
type Item struct {
	ID     int
	TripId int
	Day    int
	// Time is the 24-hour clock time of day, "HH:MM". Validated at write
	// time; lexicographic order on it equals chronological order.
	Time  string
	Title string
	// Location is free text keying both navigation and the weather
	// simulation. The empty string is a valid "no location" state and is
	// preserved verbatim.
	Location string
	Category Category
	// BaseCost is the manual estimate in the trip's currency. Logged
	// expenses fully supersede it when computing the effective cost.
	BaseCost  int
	Note      string
	Transport Transport
}

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func (i Item) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Time, validation.Required, validation.Match(timePattern).Error("must be HH:MM in 24-hour time")),
		validation.Field(&i.Title, validation.Required),
		validation.Field(&i.Category, validation.Required, validation.In(
			CategoryTransport, CategoryFood, CategoryStay, CategorySight, CategoryShopping, CategoryOther,
		)),
		validation.Field(&i.BaseCost, validation.Min(0)),
		validation.Field(&i.Transport, validation.By(func(any) error { return i.Transport.Validate() })),
	)
}

func (t Transport) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Mode, validation.Required, validation.In(
			TransportTrain, TransportBus, TransportWalk, TransportFlight, TransportMove,
		)),
		validation.Field(&t.Minutes, validation.Min(0)),
	)
}
