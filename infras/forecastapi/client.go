package forecastapi

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/shared/constant"
)

var errEmptyForecast = errors.New("remote forecast contained no points")

// PointPayload is one forecast day as returned by the remote service.
type PointPayload struct {
	Date             string  `json:"date"`
	ExpectedBookings float64 `json:"expected_bookings"`
	BusyProbability  float64 `json:"busy_probability"`
	Label            string  `json:"label"`
}

// ForecastPayload is the remote service's response envelope.
type ForecastPayload struct {
	Model       string         `json:"model"`
	GeneratedAt time.Time      `json:"generated_at"`
	Points      []PointPayload `json:"points"`
}

type Client interface {
	FetchForecast(ctx context.Context, horizonDays int) (ForecastPayload, error)
}

type clientImpl struct {
	httpClient *http.Client
	baseURL    string
	otel       otel.Otel
}

func New(config *config.Config, otel otel.Otel) Client {
	return &clientImpl{
		httpClient: &http.Client{
			Timeout: time.Duration(config.External.Forecast.TimeoutSeconds) * time.Second,
		},
		baseURL: config.External.Forecast.BaseURL,
		otel:    otel,
	}
}

func (c *clientImpl) FetchForecast(ctx context.Context, horizonDays int) (payload ForecastPayload, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".FetchForecast")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("horizon_days", horizonDays)

	url := fmt.Sprintf("%s/forecast?days=%s", c.baseURL, strconv.Itoa(horizonDays))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return payload, fmt.Errorf("failed to build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return payload, fmt.Errorf("failed to call forecast service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return payload, fmt.Errorf("forecast service returned status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("failed to decode forecast payload: %w", err)
	}

	if len(payload.Points) == 0 {
		return payload, errEmptyForecast
	}

	return payload, nil
}
