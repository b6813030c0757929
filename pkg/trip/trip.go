package trip

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateFormat is the calendar-date layout used everywhere a trip date is
// stored or exchanged.
const DateFormat = "2006-01-02"

// Trip is the root aggregate: a named, day-partitioned plan. Day numbers form
// the contiguous range [1, DaysCount]; a day without stored items is an empty,
// valid day.
type Trip struct {
	ID        int
	Uid       string
	Name      string
	StartDate time.Time
	DaysCount int
	// ExchangeRate converts trip-currency amounts for display only; stored
	// costs are always in the trip's own currency.
	ExchangeRate float64
}

func (t Trip) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&t.DaysCount, validation.Required, validation.Min(1)),
		validation.Field(&t.ExchangeRate, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

// DateOfDay returns the calendar date of the given 1-based day number.
func (t Trip) DateOfDay(day int) time.Time {
	return t.StartDate.AddDate(0, 0, day-1)
}

// ContainsDay reports whether day lies in [1, DaysCount].
func (t Trip) ContainsDay(day int) bool {
	return day >= 1 && day <= t.DaysCount
}
