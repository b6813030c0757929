package forecast

import "time"

type Condition string

const (
	Sunny  Condition = "sunny"
	Cloudy Condition = "cloudy"
	Rainy  Condition = "rainy"
	Snowy  Condition = "snowy"
)

// Precipitation reports whether the condition calls for rain gear.
func (c Condition) Precipitation() bool {
	return c == Rainy || c == Snowy
}

// Forecast is a simulated daily observation for one (location, date) pair.
type Forecast struct {
	High        int
	Low         int
	Condition   Condition
	Icon        string
	Description string
}

var icons = map[Condition]string{
	Sunny:  "☀️",
	Cloudy: "☁️",
	Rainy:  "🌧️",
	Snowy:  "❄️",
}

// profile is the seasonal climate shape picked by the calendar month: a base
// temperature and a weighted condition distribution. Snow only appears in the
// winter profile.
type profile struct {
	base       int
	conditions []Condition
	weights    []int
}

func profileFor(month time.Month) profile {
	switch month {
	case time.December, time.January, time.February:
		return profile{
			base:       6,
			conditions: []Condition{Sunny, Cloudy, Snowy, Rainy},
			weights:    []int{40, 40, 10, 10},
		}
	case time.June, time.July, time.August:
		return profile{
			base:       30,
			conditions: []Condition{Sunny, Cloudy, Rainy},
			weights:    []int{50, 20, 30},
		}
	default:
		return profile{
			base:       20,
			conditions: []Condition{Sunny, Cloudy, Rainy},
			weights:    []int{60, 30, 10},
		}
	}
}

func describe(condition Condition, high int) string {
	switch {
	case condition == Rainy:
		return "有雨，記得帶傘"
	case condition == Snowy:
		return "降雪，注意保暖"
	case high > 30:
		return "天氣炎熱，多喝水"
	case high < 10:
		return "寒冷，建議洋蔥穿搭"
	default:
		return "氣候宜人"
	}
}
