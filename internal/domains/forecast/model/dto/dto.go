package dto

import (
	"time"

	"campusbook/infras/forecastapi"
	"campusbook/internal/domains/forecast/model"
	"campusbook/shared/constant"
)

type ForecastPointResponse struct {
	Date             string  `json:"date"`
	ExpectedBookings float64 `json:"expected_bookings"`
	BusyProbability  float64 `json:"busy_probability"`
	Label            string  `json:"label"`
}

type ForecastResponse struct {
	Points        []ForecastPointResponse `json:"points"`
	Model         string                  `json:"model"`
	GeneratedAt   time.Time               `json:"generated_at"`
	UsingFallback bool                    `json:"using_fallback"`
	Notes         string                  `json:"notes,omitempty"`
}

func (r *ForecastResponse) FromModel(forecast model.Forecast) {
	r.Model = forecast.Model
	r.GeneratedAt = forecast.GeneratedAt
	r.UsingFallback = forecast.UsingFallback
	r.Notes = forecast.Notes

	r.Points = make([]ForecastPointResponse, len(forecast.Points))
	for i, p := range forecast.Points {
		r.Points[i] = ForecastPointResponse{
			Date:             p.Date.Format(constant.DayFormat),
			ExpectedBookings: p.ExpectedBookings,
			BusyProbability:  p.BusyProbability,
			Label:            p.Label,
		}
	}
}

func (r *ForecastResponse) FromPayload(payload forecastapi.ForecastPayload) {
	r.Model = payload.Model
	r.GeneratedAt = payload.GeneratedAt
	r.UsingFallback = false
	r.Notes = ""

	r.Points = make([]ForecastPointResponse, len(payload.Points))
	for i, p := range payload.Points {
		r.Points[i] = ForecastPointResponse{
			Date:             p.Date,
			ExpectedBookings: p.ExpectedBookings,
			BusyProbability:  p.BusyProbability,
			Label:            p.Label,
		}
	}
}
