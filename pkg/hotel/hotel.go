// Package hotel keeps the trip's lodging reference list.
package hotel

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Hotel is a display-only reference entry; it carries no derived logic
// beyond the map link built from its address.
type Hotel struct {
	ID        int
	TripId    int
	Name      string
	DateRange string
	Address   string
}

func (h Hotel) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Name, validation.Required),
		validation.Field(&h.TripId, validation.Min(1)),
	)
}
