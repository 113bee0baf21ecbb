package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"campusbook/config"
	"campusbook/infras/otel/mocks"
	bookingMocks "campusbook/internal/domains/booking/mocks"
	"campusbook/internal/domains/booking/model"
	"campusbook/internal/domains/booking/model/dto"
	"campusbook/internal/domains/booking/repository"
	"campusbook/internal/domains/booking/service"
	resourceMocks "campusbook/internal/domains/resource/mocks"
	resourceModel "campusbook/internal/domains/resource/model"
	cacheMocks "campusbook/shared/cache/mocks"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	"campusbook/shared/failure"
)

func requesterContext(id string) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, id)
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, "Requester "+id)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleRequester)

	return ctx
}

func staffContext(id string) context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, id)
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, "Staff "+id)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleStaff)

	return ctx
}

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *resourceMocks.MockResource) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockResourceRepo := resourceMocks.NewMockResource(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockResourceRepo, cfg, mockCache, mockOtel, nil)

	return svc, mockRepo, mockResourceRepo
}

func availableResource(quantity int) resourceModel.Resource {
	return resourceModel.Resource{
		ID:       "res-1",
		Name:     "Projector",
		Kind:     resourceModel.KindEquipment,
		Quantity: quantity,
		Status:   resourceModel.StatusAvailable,
	}
}

func TestBookingService_Submit(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.SubmitBookingRequest
		setupMock func(repo *bookingMocks.MockBooking, resRepo *resourceMocks.MockResource)
		wantCode  int
	}{
		{
			name: "successful admission",
			req: dto.SubmitBookingRequest{
				Kind:       resourceModel.KindEquipment,
				ResourceID: "res-1",
				StartTime:  "2026-09-01T10:00:00Z",
				EndTime:    "2026-09-01T12:00:00Z",
				Quantity:   2,
			},
			setupMock: func(repo *bookingMocks.MockBooking, resRepo *resourceMocks.MockResource) {
				resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableResource(10), nil)
				repo.EXPECT().
					SubmitIfAvailable(gomock.Any(), gomock.Any(), 10).
					Return(nil)
			},
		},
		{
			name: "end not after start",
			req: dto.SubmitBookingRequest{
				Kind:       resourceModel.KindEquipment,
				ResourceID: "res-1",
				StartTime:  "2026-09-01T12:00:00Z",
				EndTime:    "2026-09-01T12:00:00Z",
			},
			setupMock: func(repo *bookingMocks.MockBooking, resRepo *resourceMocks.MockResource) {},
			wantCode:  400,
		},
		{
			name: "unparseable time",
			req: dto.SubmitBookingRequest{
				Kind:       resourceModel.KindEquipment,
				ResourceID: "res-1",
				StartTime:  "next tuesday",
				EndTime:    "2026-09-01T12:00:00Z",
			},
			setupMock: func(repo *bookingMocks.MockBooking, resRepo *resourceMocks.MockResource) {},
			wantCode:  400,
		},
		{
			name: "resource absent",
			req: dto.SubmitBookingRequest{
				Kind:       resourceModel.KindEquipment,
				ResourceID: "missing",
				StartTime:  "2026-09-01T10:00:00Z",
				EndTime:    "2026-09-01T12:00:00Z",
			},
			setupMock: func(repo *bookingMocks.MockBooking, resRepo *resourceMocks.MockResource) {
				resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(resourceModel.Resource{}, nil)
			},
			wantCode: 422,
		},
		{
			name: "kind mismatch",
			req: dto.SubmitBookingRequest{
				Kind:       resourceModel.KindVehicle,
				ResourceID: "res-1",
				StartTime:  "2026-09-01T10:00:00Z",
				EndTime:    "2026-09-01T12:00:00Z",
			},
			setupMock: func(repo *bookingMocks.MockBooking, resRepo *resourceMocks.MockResource) {
				resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableResource(10), nil)
			},
			wantCode: 422,
		},
		{
			name: "resource in maintenance",
			req: dto.SubmitBookingRequest{
				Kind:       resourceModel.KindEquipment,
				ResourceID: "res-1",
				StartTime:  "2026-09-01T10:00:00Z",
				EndTime:    "2026-09-01T12:00:00Z",
			},
			setupMock: func(repo *bookingMocks.MockBooking, resRepo *resourceMocks.MockResource) {
				res := availableResource(10)
				res.Status = resourceModel.StatusMaintenance
				resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(res, nil)
			},
			wantCode: 422,
		},
		{
			name: "capacity conflict",
			req: dto.SubmitBookingRequest{
				Kind:       resourceModel.KindEquipment,
				ResourceID: "res-1",
				StartTime:  "2026-09-01T10:00:00Z",
				EndTime:    "2026-09-01T12:00:00Z",
				Quantity:   5,
			},
			setupMock: func(repo *bookingMocks.MockBooking, resRepo *resourceMocks.MockResource) {
				resRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableResource(10), nil)
				repo.EXPECT().
					SubmitIfAvailable(gomock.Any(), gomock.Any(), 10).
					Return(failure.Conflict("resource capacity exceeded"))
			},
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockResourceRepo := newService(t)
			tt.setupMock(mockRepo, mockResourceRepo)

			res, err := svc.Submit(requesterContext("req-1"), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusRequest, res.Status)
			assert.Equal(t, "req-1", res.RequesterID)
		})
	}
}

func TestBookingService_SubmitDefaultsQuantity(t *testing.T) {
	svc, mockRepo, mockResourceRepo := newService(t)

	mockResourceRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(availableResource(10), nil)
	mockRepo.EXPECT().
		SubmitIfAvailable(gomock.Any(), gomock.Any(), 10).
		DoAndReturn(func(_ context.Context, booking model.Booking, _ int) error {
			assert.Equal(t, 1, booking.Quantity)

			return nil
		})

	res, err := svc.Submit(requesterContext("req-1"), dto.SubmitBookingRequest{
		Kind:       resourceModel.KindEquipment,
		ResourceID: "res-1",
		StartTime:  "2026-09-01T10:00:00Z",
		EndTime:    "2026-09-01T12:00:00Z",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Quantity)
}

func TestBookingService_SubmitAnonymousForbidden(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Submit(context.Background(), dto.SubmitBookingRequest{
		Kind:       resourceModel.KindEquipment,
		ResourceID: "res-1",
		StartTime:  "2026-09-01T10:00:00Z",
		EndTime:    "2026-09-01T12:00:00Z",
	})

	assert.Error(t, err)
	assert.Equal(t, 403, failure.GetCode(err))
}

func TestBookingService_Transitions(t *testing.T) {
	storedBooking := func(status string) model.Booking {
		return model.Booking{
			ID:          "bk-1",
			Kind:        resourceModel.KindEquipment,
			ResourceID:  "res-1",
			Status:      status,
			RequesterID: "req-1",
			StartTime:   time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			Quantity:    1,
		}
	}

	tests := []struct {
		name       string
		ctx        context.Context
		current    string
		call       func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error)
		wantStatus string
		wantCode   int
		noUpdate   bool
	}{
		{
			name:    "staff starts a request",
			ctx:     staffContext("staff-1"),
			current: model.StatusRequest,
			call: func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) {
				return svc.Start(ctx, "bk-1")
			},
			wantStatus: model.StatusOngoing,
		},
		{
			name:    "staff finishes an ongoing booking",
			ctx:     staffContext("staff-1"),
			current: model.StatusOngoing,
			call: func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) {
				return svc.Finish(ctx, "bk-1")
			},
			wantStatus: model.StatusSuccess,
		},
		{
			name:    "staff cancels an ongoing booking",
			ctx:     staffContext("staff-1"),
			current: model.StatusOngoing,
			call: func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) {
				return svc.Cancel(ctx, "bk-1")
			},
			wantStatus: model.StatusCancel,
		},
		{
			name:    "requester cancels own request",
			ctx:     requesterContext("req-1"),
			current: model.StatusRequest,
			call: func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) {
				return svc.Cancel(ctx, "bk-1")
			},
			wantStatus: model.StatusCancel,
		},
		{
			name:    "requester cannot start",
			ctx:     requesterContext("req-1"),
			current: model.StatusRequest,
			call: func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) {
				return svc.Start(ctx, "bk-1")
			},
			wantCode: 403,
			noUpdate: true,
		},
		{
			name:    "requester cannot cancel another requester booking",
			ctx:     requesterContext("req-2"),
			current: model.StatusRequest,
			call: func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) {
				return svc.Cancel(ctx, "bk-1")
			},
			wantCode: 403,
			noUpdate: true,
		},
		{
			name:    "finish from request is invalid",
			ctx:     staffContext("staff-1"),
			current: model.StatusRequest,
			call: func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) {
				return svc.Finish(ctx, "bk-1")
			},
			wantCode: 422,
			noUpdate: true,
		},
		{
			name:    "start from ongoing is invalid",
			ctx:     staffContext("staff-1"),
			current: model.StatusOngoing,
			call: func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) {
				return svc.Start(ctx, "bk-1")
			},
			wantCode: 422,
			noUpdate: true,
		},
		{
			name:    "cancel from success is invalid",
			ctx:     staffContext("staff-1"),
			current: model.StatusSuccess,
			call: func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) {
				return svc.Cancel(ctx, "bk-1")
			},
			wantCode: 422,
			noUpdate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(storedBooking(tt.current), nil)

			if !tt.noUpdate {
				mockRepo.EXPECT().
					UpdateStatusIf(gomock.Any(), "bk-1", tt.current, gomock.Any()).
					Return(true, nil)
			}

			res, err := tt.call(svc, tt.ctx)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)

			switch tt.wantStatus {
			case model.StatusOngoing:
				assert.NotEmpty(t, res.StartedAt)
			case model.StatusSuccess:
				assert.NotEmpty(t, res.EndedAt)
			case model.StatusCancel:
				assert.NotEmpty(t, res.CanceledAt)
			}
		})
	}
}

func TestBookingService_TransitionNotFound(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	_, err := svc.Start(staffContext("staff-1"), "missing")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestBookingService_TransitionLostRace(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{ID: "bk-1", Status: model.StatusRequest, RequesterID: "req-1"}, nil)
	mockRepo.EXPECT().
		UpdateStatusIf(gomock.Any(), "bk-1", model.StatusRequest, gomock.Any()).
		Return(false, nil)

	_, err := svc.Start(staffContext("staff-1"), "bk-1")

	assert.Error(t, err)
	assert.Equal(t, 422, failure.GetCode(err))
}

// fakeBookingRepo mirrors the storage admission contract in memory so the
// capacity invariant can be exercised under concurrent submits.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []model.Booking
}

func (f *fakeBookingRepo) SubmitIfAvailable(_ context.Context, booking model.Booking, capacity int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	allocated := 0

	for _, b := range f.bookings {
		if b.ResourceID != booking.ResourceID {
			continue
		}

		if b.Status != model.StatusRequest && b.Status != model.StatusOngoing {
			continue
		}

		if booking.EndTime.Compare(b.StartTime) <= 0 || booking.StartTime.Compare(b.EndTime) >= 0 {
			continue
		}

		allocated += b.EffectiveQuantity()
	}

	if allocated+booking.EffectiveQuantity() > capacity {
		return failure.Conflict(fmt.Sprintf("resource capacity exceeded: %d of %d units already allocated in the requested window", allocated, capacity))
	}

	f.bookings = append(f.bookings, booking)

	return nil
}

func (f *fakeBookingRepo) Get(_ context.Context, _ gDto.FilterGroup, _ ...string) (model.Booking, error) {
	return model.Booking{}, nil
}

func (f *fakeBookingRepo) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]model.Booking{}, f.bookings...), nil
}

func (f *fakeBookingRepo) Exist(_ context.Context, _ gDto.FilterGroup) (bool, error) {
	return false, nil
}

func (f *fakeBookingRepo) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.bookings), nil
}

func (f *fakeBookingRepo) UpdateStatusIf(_ context.Context, id, expectedStatus string, fields map[string]any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.bookings {
		if f.bookings[i].ID == id && f.bookings[i].Status == expectedStatus {
			if status, ok := fields[model.FieldStatus].(string); ok {
				f.bookings[i].Status = status
			}

			return true, nil
		}
	}

	return false, nil
}

func (f *fakeBookingRepo) GetDemandHistory(_ context.Context) ([]model.DemandRecord, error) {
	return nil, nil
}

var _ repository.Booking = (*fakeBookingRepo)(nil)

func TestBookingAdmission_CapacityInvariantUnderConcurrency(t *testing.T) {
	const capacity = 3

	fake := &fakeBookingRepo{}

	window := func(startHour, endHour int) (time.Time, time.Time) {
		return time.Date(2026, 9, 1, startHour, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, endHour, 0, 0, 0, time.UTC)
	}

	var wg sync.WaitGroup

	conflicts := make([]error, 20)

	for i := range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			start, end := window(10, 12)
			conflicts[i] = fake.SubmitIfAvailable(context.Background(), model.Booking{
				ID:         fmt.Sprintf("bk-%d", i),
				ResourceID: "res-1",
				StartTime:  start,
				EndTime:    end,
				Quantity:   1,
				Status:     model.StatusRequest,
			}, capacity)
		}()
	}

	wg.Wait()

	admitted := 0

	for _, err := range conflicts {
		if err == nil {
			admitted++

			continue
		}

		assert.Equal(t, 409, failure.GetCode(err))
	}

	assert.Equal(t, capacity, admitted)
}

func TestBookingAdmission_HalfOpenIntervals(t *testing.T) {
	fake := &fakeBookingRepo{}
	day := func(hour, minute int) time.Time {
		return time.Date(2026, 9, 1, hour, minute, 0, 0, time.UTC)
	}

	submit := func(id string, start, end time.Time, quantity, capacity int) error {
		return fake.SubmitIfAvailable(context.Background(), model.Booking{
			ID:         id,
			ResourceID: "res-1",
			StartTime:  start,
			EndTime:    end,
			Quantity:   quantity,
			Status:     model.StatusRequest,
		}, capacity)
	}

	// Scenario: single-unit resource.
	assert.NoError(t, submit("b1", day(10, 0), day(11, 0), 1, 1))
	assert.Equal(t, 409, failure.GetCode(submit("b2", day(10, 30), day(11, 30), 1, 1)))
	// Adjacent window sharing one endpoint does not overlap.
	assert.NoError(t, submit("b3", day(11, 0), day(12, 0), 1, 1))
}

func TestBookingAdmission_QuantityAware(t *testing.T) {
	fake := &fakeBookingRepo{}
	day := func(hour, minute int) time.Time {
		return time.Date(2026, 9, 7, hour, minute, 0, 0, time.UTC)
	}

	submit := func(id string, start, end time.Time, quantity int) error {
		return fake.SubmitIfAvailable(context.Background(), model.Booking{
			ID:         id,
			ResourceID: "equip-1",
			StartTime:  start,
			EndTime:    end,
			Quantity:   quantity,
			Status:     model.StatusRequest,
		}, 10)
	}

	// Equipment with 10 units: 6 allocated, then 5 overlapping is rejected
	// but 4 fits.
	assert.NoError(t, submit("b1", day(9, 0), day(10, 0), 6))
	assert.Equal(t, 409, failure.GetCode(submit("b2", day(9, 30), day(10, 30), 5)))
	assert.NoError(t, submit("b2-prime", day(9, 30), day(10, 30), 4))
}
