package dto

import (
	"time"

	"campusbook/internal/domains/booking/model"
	resourceModel "campusbook/internal/domains/resource/model"
	"campusbook/internal/identity"
	"campusbook/shared"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"

	"github.com/google/uuid"
)

type SubmitBookingRequest struct {
	Kind       string `json:"kind"        validate:"required,oneof=VEHICLE FACILITY EQUIPMENT"`
	ResourceID string `json:"resource_id" validate:"required"`
	StartTime  string `json:"start_time"  validate:"required"`
	EndTime    string `json:"end_time"    validate:"required"`
	Quantity   int    `json:"quantity"    validate:"omitempty,min=1"`
	Purpose    string `json:"purpose"     validate:"omitempty,max=500"`
}

// ParseWindow parses the requested interval. Timestamps are RFC 3339.
func (r *SubmitBookingRequest) ParseWindow() (start, end time.Time, err error) {
	start, err = time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return start, end, err
	}

	end, err = time.Parse(time.RFC3339, r.EndTime)

	return start, end, err
}

// ToModel builds the booking in its initial state, snapshotting the resource
// name and the requester identity. A missing quantity defaults to one unit.
func (r *SubmitBookingRequest) ToModel(resource resourceModel.Resource, actor identity.Actor, start, end time.Time) model.Booking {
	quantity := r.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return model.Booking{
		ID:            uuid.NewString(),
		Kind:          resource.Kind,
		ResourceID:    resource.ID,
		ResourceName:  resource.Name,
		StartTime:     start,
		EndTime:       end,
		Quantity:      quantity,
		Status:        model.StatusRequest,
		RequesterID:   actor.ID,
		RequesterName: actor.Name,
		RequesterRole: actor.Role,
		Purpose:       r.Purpose,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor.ID,
			ModifiedBy: actor.ID,
		},
	}
}

type BookingResponse struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	ResourceID    string `json:"resource_id"`
	ResourceName  string `json:"resource_name"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Quantity      int    `json:"quantity"`
	Status        string `json:"status"`
	RequesterID   string `json:"requester_id"`
	RequesterName string `json:"requester_name"`
	RequesterRole string `json:"requester_role"`
	Purpose       string `json:"purpose,omitempty"`
	StartedAt     string `json:"started_at,omitempty"`
	EndedAt       string `json:"ended_at,omitempty"`
	CanceledAt    string `json:"canceled_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Kind = model.Kind
	r.ResourceID = model.ResourceID
	r.ResourceName = model.ResourceName
	r.StartTime = model.StartTime.Format(time.RFC3339)
	r.EndTime = model.EndTime.Format(time.RFC3339)
	r.Quantity = model.Quantity
	r.Status = model.Status
	r.RequesterID = model.RequesterID
	r.RequesterName = model.RequesterName
	r.RequesterRole = model.RequesterRole
	r.Purpose = model.Purpose

	if model.StartedAt != nil {
		r.StartedAt = model.StartedAt.Format(time.RFC3339)
	}

	if model.EndedAt != nil {
		r.EndedAt = model.EndedAt.Format(time.RFC3339)
	}

	if model.CanceledAt != nil {
		r.CanceledAt = model.CanceledAt.Format(time.RFC3339)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		r.Bookings[i].FromModel(m)
	}
}

// BookingEvent is the payload published to the booking events topic on every
// successful admission and transition.
type BookingEvent struct {
	BookingID    string    `json:"booking_id"`
	ResourceID   string    `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	Status       string    `json:"status"`
	ActorID      string    `json:"actor_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
