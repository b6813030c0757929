package forecast

import (
	"hash/fnv"
	"math/rand"
	"sync"
	"time"
)

const dateKeyFormat = "20060102"

// Oracle produces reproducible simulated forecasts without any network
// dependency. All randomness comes from a stream seeded by the composite
// (location, date) key, so a given pair always yields bit-identical output.
type Oracle struct {
	mu   sync.Mutex
	memo map[string]Forecast
}

func NewOracle() *Oracle {
	return &Oracle{memo: make(map[string]Forecast)}
}

// Forecast returns the simulated observation for the location and calendar
// date. Results are memoized, which is transparent because the computation is
// deterministic per key.
func (o *Oracle) Forecast(location string, date time.Time) Forecast {
	key := location + "|" + date.Format(dateKeyFormat)

	o.mu.Lock()
	defer o.mu.Unlock()
	if cached, ok := o.memo[key]; ok {
		return cached
	}

	result := simulate(location, date)
	o.memo[key] = result
	return result
}

func simulate(location string, date time.Time) Forecast {
	rng := rand.New(rand.NewSource(seed(location, date)))
	p := profileFor(date.Month())

	// Draw order is part of the contract: high, then low, then condition.
	// Reordering the draws changes every output for a fixed seed.
	high := p.base + rng.Intn(6)
	low := p.base - (3 + rng.Intn(6))
	condition := weightedChoice(rng, p.conditions, p.weights)

	return Forecast{
		High:        high,
		Low:         low,
		Condition:   condition,
		Icon:        icons[condition],
		Description: describe(condition, high),
	}
}

// seed hashes the normalized composite key into a deterministic PRNG seed.
func seed(location string, date time.Time) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(location))
	_, _ = h.Write([]byte(date.Format(dateKeyFormat)))
	return int64(h.Sum64())
}

func weightedChoice(rng *rand.Rand, conditions []Condition, weights []int) Condition {
	total := 0
	for _, w := range weights {
		total += w
	}
	r := rng.Intn(total)
	for i, w := range weights {
		if r < w {
			return conditions[i]
		}
		r -= w
	}
	return conditions[len(conditions)-1]
}
