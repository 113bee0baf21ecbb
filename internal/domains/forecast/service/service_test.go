package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campusbook/config"
	"campusbook/infras/forecastapi"
	forecastapiMocks "campusbook/infras/forecastapi/mocks"
	"campusbook/infras/otel/mocks"
	bookingMocks "campusbook/internal/domains/booking/mocks"
	bookingModel "campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/forecast/model"
	"campusbook/internal/domains/forecast/service"
	"campusbook/shared/failure"
)

func newForecaster(t *testing.T) (service.Forecaster, *bookingMocks.MockBooking, *forecastapiMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRemote := forecastapiMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.DefaultHorizonDays = 14
	cfg.Booking.MaxHorizonDays = 60
	cfg.Booking.SmoothingFactor = 0.3

	svc := service.New(mockRepo, mockRemote, cfg, mockOtel)

	return svc, mockRepo, mockRemote
}

func TestForecast_RemoteFirst(t *testing.T) {
	svc, _, mockRemote := newForecaster(t)

	payload := forecastapi.ForecastPayload{
		Model:       "remote-v2",
		GeneratedAt: time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC),
		Points: []forecastapi.PointPayload{
			{Date: "2026-09-03", ExpectedBookings: 4.5, BusyProbability: 0.71, Label: model.LabelBusy},
		},
	}

	mockRemote.EXPECT().
		FetchForecast(gomock.Any(), 7).
		Return(payload, nil)

	res, err := svc.Forecast(context.Background(), 7)

	assert.NoError(t, err)
	assert.False(t, res.UsingFallback)
	assert.Empty(t, res.Notes)
	assert.Equal(t, "remote-v2", res.Model)
	assert.Len(t, res.Points, 1)
	assert.Equal(t, model.LabelBusy, res.Points[0].Label)
}

func TestForecast_FallsBackOnRemoteFailure(t *testing.T) {
	svc, mockRepo, mockRemote := newForecaster(t)

	mockRemote.EXPECT().
		FetchForecast(gomock.Any(), 14).
		Return(forecastapi.ForecastPayload{}, errors.New("connection refused"))
	mockRepo.EXPECT().
		GetDemandHistory(gomock.Any()).
		Return([]bookingModel.DemandRecord{}, nil)

	res, err := svc.Forecast(context.Background(), 0)

	assert.NoError(t, err)
	assert.True(t, res.UsingFallback)
	assert.NotEmpty(t, res.Notes)
	assert.Equal(t, model.LocalModelName, res.Model)
	assert.Len(t, res.Points, 14)
}

func TestForecast_MemoizesLocalResult(t *testing.T) {
	svc, mockRepo, mockRemote := newForecaster(t)

	records := []bookingModel.DemandRecord{
		{StartTime: time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC), Quantity: 2, Status: bookingModel.StatusSuccess},
	}

	mockRemote.EXPECT().
		FetchForecast(gomock.Any(), 14).
		Return(forecastapi.ForecastPayload{}, errors.New("timeout")).
		Times(2)
	mockRepo.EXPECT().
		GetDemandHistory(gomock.Any()).
		Return(records, nil).
		Times(2)

	first, err := svc.Forecast(context.Background(), 14)
	assert.NoError(t, err)

	second, err := svc.Forecast(context.Background(), 14)
	assert.NoError(t, err)

	// Identical booking set: the memoized forecast is served, including
	// its original generation time.
	assert.Equal(t, first.GeneratedAt, second.GeneratedAt)
	assert.Equal(t, first.Points, second.Points)
}

func TestForecast_RecomputesWhenHistoryChanges(t *testing.T) {
	svc, mockRepo, mockRemote := newForecaster(t)

	mockRemote.EXPECT().
		FetchForecast(gomock.Any(), 14).
		Return(forecastapi.ForecastPayload{}, errors.New("timeout")).
		Times(2)

	gomock.InOrder(
		mockRepo.EXPECT().
			GetDemandHistory(gomock.Any()).
			Return([]bookingModel.DemandRecord{
				{StartTime: time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC), Quantity: 2, Status: bookingModel.StatusSuccess},
			}, nil),
		mockRepo.EXPECT().
			GetDemandHistory(gomock.Any()).
			Return([]bookingModel.DemandRecord{
				{StartTime: time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC), Quantity: 6, Status: bookingModel.StatusSuccess},
			}, nil),
	)

	first, err := svc.Forecast(context.Background(), 14)
	assert.NoError(t, err)

	second, err := svc.Forecast(context.Background(), 14)
	assert.NoError(t, err)

	assert.NotEqual(t, first.Points, second.Points)
}

func TestForecast_HorizonCap(t *testing.T) {
	svc, _, _ := newForecaster(t)

	_, err := svc.Forecast(context.Background(), 61)

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestForecast_HistoryLoadFailure(t *testing.T) {
	svc, mockRepo, mockRemote := newForecaster(t)

	mockRemote.EXPECT().
		FetchForecast(gomock.Any(), 14).
		Return(forecastapi.ForecastPayload{}, errors.New("timeout"))
	mockRepo.EXPECT().
		GetDemandHistory(gomock.Any()).
		Return(nil, errors.New("connection reset"))

	_, err := svc.Forecast(context.Background(), 14)

	assert.Error(t, err)
}
