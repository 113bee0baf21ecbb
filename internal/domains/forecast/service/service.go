package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"campusbook/config"
	"campusbook/infras/forecastapi"
	"campusbook/infras/otel"
	bookingRepo "campusbook/internal/domains/booking/repository"
	"campusbook/internal/domains/forecast/local"
	"campusbook/internal/domains/forecast/model"
	"campusbook/internal/domains/forecast/model/dto"
	"campusbook/shared/constant"
	"campusbook/shared/failure"
	"campusbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Forecaster interface {
	Forecast(ctx context.Context, horizonDays int) (dto.ForecastResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	remote      forecastapi.Client
	cfg         *config.Config
	otel        otel.Otel

	// Last local result, memoized per content signature of the booking
	// set. Lives only as long as the service instance.
	mu       sync.Mutex
	memoKey  string
	memoized model.Forecast
}

func New(bookingRepo bookingRepo.Booking, remote forecastapi.Client, cfg *config.Config, otel otel.Otel) Forecaster {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		remote:      remote,
		cfg:         cfg,
		otel:        otel,
	}
}

// Forecast tries the remote forecast source first and falls back to the
// local algorithm on any remote failure. Remote failure is an expected
// condition here, never propagated.
func (s *serviceImpl) Forecast(ctx context.Context, horizonDays int) (res dto.ForecastResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Forecast")
	defer scope.End()
	defer scope.TraceIfError(err)

	if horizonDays <= 0 {
		horizonDays = s.cfg.Booking.DefaultHorizonDays
	}

	if horizonDays > s.cfg.Booking.MaxHorizonDays {
		return res, failure.BadRequestFromString(fmt.Sprintf("horizon cannot exceed %d days", s.cfg.Booking.MaxHorizonDays)) //nolint:wrapcheck
	}

	payload, remoteErr := s.remote.FetchForecast(ctx, horizonDays)
	if remoteErr == nil {
		res.FromPayload(payload)

		return res, nil
	}

	log.Warn().Err(remoteErr).Msg("remote forecast unavailable, serving local fallback")

	records, err := s.bookingRepo.GetDemandHistory(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking history for forecast")

		return res, fmt.Errorf("failed to load booking history: %w", err)
	}

	now := timezone.Now()
	key := local.Signature(records) + ":" + now.UTC().Format(constant.DayFormat) + ":" + strconv.Itoa(horizonDays)

	forecast, ok := s.lookup(key)
	if !ok {
		forecast = local.Compute(records, now, horizonDays, s.cfg.Booking.SmoothingFactor)
		forecast.UsingFallback = true
		forecast.Notes = fmt.Sprintf("remote forecast unavailable (%v); computed locally from booking history", remoteErr)

		s.store(key, forecast)
	}

	res.FromModel(forecast)

	return res, nil
}

func (s *serviceImpl) lookup(key string) (model.Forecast, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.memoKey != key {
		return model.Forecast{}, false
	}

	return s.memoized, true
}

func (s *serviceImpl) store(key string, forecast model.Forecast) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.memoKey = key
	s.memoized = forecast
}
