package forecast

import (
	"net/http"
	"strconv"

	"campusbook/infras/otel"
	"campusbook/internal/domains/forecast/service"
	"campusbook/shared/constant"
	"campusbook/shared/failure"
	"campusbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const requestParamDays = "days"

type Handler struct {
	service service.Forecaster
	otel    otel.Otel
}

func New(service service.Forecaster, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/forecast", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetForecast)
	})
}

// GetForecast returns the demand forecast for the coming days.
// @Summary Get the booking demand forecast
// @Description Retrieve expected booking volume and busy probability per future day. Served by the remote forecast model when reachable, otherwise computed locally from booking history.
// @Tags Forecast
// @Accept json
// @Produce json
// @Param days query int false "Forecast horizon in days (default 14)"
// @Success 200 {object} dto.ForecastResponse "Forecast points"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/forecast [get]
// @Security BearerAuth
func (handler *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForecast")
	defer scope.End()

	horizonDays := 0

	if raw := r.URL.Query().Get(requestParamDays); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str(requestParamDays, raw).Msg("invalid forecast horizon")

			response.WithError(w, failure.BadRequestFromString("days must be an integer"))

			return
		}

		horizonDays = parsed
	}

	forecast, err := handler.service.Forecast(ctx, horizonDays)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build forecast")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Forecast retrieved successfully")

	response.WithJSON(w, http.StatusOK, forecast)
}
