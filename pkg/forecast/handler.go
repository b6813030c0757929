package forecast

import (
	"net/http"
	"time"

	"github.com/budingo48763/Japan-trip-app/internal/apperr"
	"github.com/budingo48763/Japan-trip-app/internal/rest"
)

type ForecastDTO struct {
	Location    string `json:"location"`
	Date        string `json:"date"`
	High        int    `json:"high"`
	Low         int    `json:"low"`
	Condition   string `json:"condition"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Handler struct {
	oracle *Oracle
}

func NewHandler(oracle *Oracle) *Handler {
	return &Handler{oracle}
}

func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		rest.WriteError(w, apperr.Validationf("location must not be empty"))
		return
	}
	dateString := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		rest.WriteError(w, apperr.Validationf("date must be in 2006-01-02 format"))
		return
	}

	f := h.oracle.Forecast(location, date)
	rest.WriteJSON(w, http.StatusOK, ForecastDTO{
		Location:    location,
		Date:        dateString,
		High:        f.High,
		Low:         f.Low,
		Condition:   string(f.Condition),
		Icon:        f.Icon,
		Description: f.Description,
	})
}
