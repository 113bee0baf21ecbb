package model

import (
	"time"

	"campusbook/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldKind          = "kind"
	FieldResourceID    = "resource_id"
	FieldResourceName  = "resource_name"
	FieldStartTime     = "start_time"
	FieldEndTime       = "end_time"
	FieldQuantity      = "quantity"
	FieldStatus        = "status"
	FieldRequesterID   = "requester_id"
	FieldRequesterName = "requester_name"
	FieldRequesterRole = "requester_role"
	FieldPurpose       = "purpose"
	FieldStartedAt     = "started_at"
	FieldEndedAt       = "ended_at"
	FieldCanceledAt    = "canceled_at"

	StatusRequest = "REQUEST"
	StatusOngoing = "ONGOING"
	StatusSuccess = "SUCCESS"
	StatusCancel  = "CANCEL"
)

type Booking struct {
	ID            string     `db:"id"`
	Kind          string     `db:"kind"`
	ResourceID    string     `db:"resource_id"`
	ResourceName  string     `db:"resource_name"`
	StartTime     time.Time  `db:"start_time"`
	EndTime       time.Time  `db:"end_time"`
	Quantity      int        `db:"quantity"`
	Status        string     `db:"status"`
	RequesterID   string     `db:"requester_id"`
	RequesterName string     `db:"requester_name"`
	RequesterRole string     `db:"requester_role"`
	Purpose       string     `db:"purpose"`
	StartedAt     *time.Time `db:"started_at"`
	EndedAt       *time.Time `db:"ended_at"`
	CanceledAt    *time.Time `db:"canceled_at"`
	model.Metadata
}

// EffectiveQuantity is the number of units the booking consumes. Rows stored
// with a missing or zero quantity count as one unit.
func (b Booking) EffectiveQuantity() int {
	if b.Quantity < 1 {
		return 1
	}

	return b.Quantity
}

// Transition is one of the lifecycle operations on a booking.
type Transition string

const (
	TransitionStart  Transition = "start"
	TransitionFinish Transition = "finish"
	TransitionCancel Transition = "cancel"
)

// transitions holds the allowed (transition, current status) pairs and the
// status each leads to. Everything outside the table is an invalid
// transition.
var transitions = map[Transition]map[string]string{
	TransitionStart: {
		StatusRequest: StatusOngoing,
	},
	TransitionFinish: {
		StatusOngoing: StatusSuccess,
	},
	TransitionCancel: {
		StatusRequest: StatusCancel,
		StatusOngoing: StatusCancel,
	},
}

// timestampFields maps each transition to the audit column it stamps.
var timestampFields = map[Transition]string{
	TransitionStart:  FieldStartedAt,
	TransitionFinish: FieldEndedAt,
	TransitionCancel: FieldCanceledAt,
}

// NextStatus resolves the status a transition leads to from the current one.
// The second return value is false when the pair is not allowed.
func NextStatus(current string, t Transition) (string, bool) {
	next, ok := transitions[t][current]

	return next, ok
}

// TimestampField names the column stamped when the transition is applied.
func TimestampField(t Transition) string {
	return timestampFields[t]
}

// IsTerminal reports whether no further transition can leave the status.
func IsTerminal(status string) bool {
	return status == StatusSuccess || status == StatusCancel
}

// DemandRecord is the slice of a booking the forecaster reads: when it
// starts, how many units it consumes, and whether it was canceled.
type DemandRecord struct {
	StartTime time.Time `db:"start_time"`
	Quantity  int       `db:"quantity"`
	Status    string    `db:"status"`
}
