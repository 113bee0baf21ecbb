package service

import (
	"context"
	"fmt"

	"campusbook/config"
	"campusbook/infras/kafka"
	"campusbook/infras/otel"
	"campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/booking/model/dto"
	"campusbook/internal/domains/booking/repository"
	resourceModel "campusbook/internal/domains/resource/model"
	resourceRepo "campusbook/internal/domains/resource/repository"
	"campusbook/internal/identity"
	"campusbook/shared"
	"campusbook/shared/cache"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
	"campusbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (dto.BookingResponse, error)
	Start(ctx context.Context, id string) (dto.BookingResponse, error)
	Finish(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo         repository.Booking
	resourceRepo resourceRepo.Resource
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
}

func New(repo repository.Booking, resourceRepo resourceRepo.Resource, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:         repo,
		resourceRepo: resourceRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafka,
	}
}

// Submit runs admission control: time window and quantity validation,
// resource resolution, then the capacity check and insert inside one
// serialized transaction in the repository.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor := identity.FromContext(ctx)
	if !identity.Allowed(actor, identity.ActionSubmit, constant.Empty) {
		return res, failure.Forbidden("not allowed to submit bookings") //nolint:wrapcheck
	}

	start, end, err := req.ParseWindow()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking window")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid time format: %v", err)) //nolint:wrapcheck
	}

	if !end.After(start) {
		return res, failure.BadRequestFromString("end time must be after start time") //nolint:wrapcheck
	}

	if req.Quantity < 0 {
		return res, failure.BadRequestFromString("quantity must be at least 1") //nolint:wrapcheck
	}

	resource, err := s.resourceRepo.Get(ctx, shared.FilterByID(req.ResourceID, resourceModel.FieldID, resourceModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve resource")

		return res, fmt.Errorf("failed to resolve resource: %w", err)
	}

	if resource.ID == constant.Empty || resource.Kind != req.Kind || !resource.Bookable() {
		return res, failure.UnprocessableEntity("resource is not available for booking") //nolint:wrapcheck
	}

	booking := req.ToModel(resource, actor, start, end)

	if err = s.repo.SubmitIfAvailable(ctx, booking, resource.Quantity); err != nil {
		if failure.GetCode(err) != 500 {
			return res, err //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to submit booking")

		return res, fmt.Errorf("failed to submit booking: %w", err)
	}

	res.FromModel(booking)

	s.afterChange(ctx, booking, actor)

	return res, nil
}

func (s *serviceImpl) Start(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, identity.ActionStart, model.TransitionStart)
}

func (s *serviceImpl) Finish(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, identity.ActionFinish, model.TransitionFinish)
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, identity.ActionCancel, model.TransitionCancel)
}

// transition loads the booking, gates on the authorizer and the transition
// table, then applies a compare-and-swap update keyed on the loaded status.
func (s *serviceImpl) transition(ctx context.Context, id string, action identity.Action, t model.Transition) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, fmt.Sprintf("%s.%s", constant.OtelServiceScopeName, t))
	defer scope.End()
	defer scope.TraceIfError(err)

	actor := identity.FromContext(ctx)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if !identity.Allowed(actor, action, booking.RequesterID) {
		return res, failure.Forbidden(fmt.Sprintf("not allowed to %s this booking", t)) //nolint:wrapcheck
	}

	next, ok := model.NextStatus(booking.Status, t)
	if !ok {
		return res, failure.UnprocessableEntity(fmt.Sprintf("cannot %s a booking in status %s", t, booking.Status)) //nolint:wrapcheck
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:        next,
		model.TimestampField(t):  now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actor.ID,
	}

	updated, err := s.repo.UpdateStatusIf(ctx, id, booking.Status, fields)
	if err != nil {
		log.Error().Err(err).Msg("failed to apply booking transition")

		return res, fmt.Errorf("failed to apply booking transition: %w", err)
	}

	if !updated {
		// The status moved under us between the read and the update.
		return res, failure.UnprocessableEntity(fmt.Sprintf("cannot %s a booking in status %s", t, booking.Status)) //nolint:wrapcheck
	}

	booking.Status = next
	booking.ModifiedAt = now
	booking.ModifiedBy = actor.ID

	switch t {
	case model.TransitionStart:
		booking.StartedAt = &now
	case model.TransitionFinish:
		booking.EndedAt = &now
	case model.TransitionCancel:
		booking.CanceledAt = &now
	}

	res.FromModel(booking)

	s.afterChange(ctx, booking, actor)

	return res, nil
}

// afterChange publishes the lifecycle event and invalidates read caches
// asynchronously.
func (s *serviceImpl) afterChange(ctx context.Context, booking model.Booking, actor identity.Actor) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		if !s.cfg.Booking.PublishEvents {
			return
		}

		topic := constant.KafkaTopicBookingEvents
		if s.cfg.Booking.EventsTopicOverride != constant.Empty {
			topic = s.cfg.Booking.EventsTopicOverride
		}

		event := dto.BookingEvent{
			BookingID:    booking.ID,
			ResourceID:   booking.ResourceID,
			ResourceName: booking.ResourceName,
			Status:       booking.Status,
			ActorID:      actor.ID,
			OccurredAt:   timezone.Now(),
		}

		if err := s.kafka.SendMessages(c, topic, kafka.Message{Key: booking.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}
