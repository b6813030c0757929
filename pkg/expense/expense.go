package expense

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/budingo48763/Japan-trip-app/pkg/itinerary"
)

// Entry is a single logged expense owned by exactly one itinerary item. It is
// destroyed with the item or by explicit removal, never shared.
type Entry struct {
	ID     int
	ItemId int
	Name   string
	Price  int
}

func (e Entry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required),
		validation.Field(&e.Price, validation.Required, validation.Min(1)),
	)
}

// EffectiveCost is the cost value used for budgeting: the sum of logged
// expenses when any exist, otherwise the item's manual estimate. It is pure
// and recomputed on every read; nothing caches it.
func EffectiveCost(item itinerary.Item, expenses []Entry) int {
	if len(expenses) == 0 {
		return item.BaseCost
	}
	total := 0
	for _, e := range expenses {
		total += e.Price
	}
	return total
}
