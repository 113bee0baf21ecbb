package identity

import (
	"context"

	"campusbook/shared/constant"
)

// Actor is the authenticated caller of a booking operation, extracted from
// JWT claims by the auth middleware.
type Actor struct {
	ID   string
	Name string
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == constant.RoleAdmin
}

func (a Actor) IsStaff() bool {
	return a.Role == constant.RoleStaff || a.Role == constant.RoleAdmin
}

// FromContext builds the actor from the context values set by the auth
// middleware. Missing values yield zero fields.
func FromContext(ctx context.Context) Actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	name, _ := ctx.Value(constant.ContextKeyUserName).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Actor{
		ID:   id,
		Name: name,
		Role: role,
	}
}

type Action string

const (
	ActionSubmit Action = "submit"
	ActionStart  Action = "start"
	ActionFinish Action = "finish"
	ActionCancel Action = "cancel"
)

// Allowed answers whether the actor may perform the action on a booking
// owned by ownerID. Start and finish are staff actions. Cancel is a staff
// action, except a requester may cancel their own booking.
func Allowed(actor Actor, action Action, ownerID string) bool {
	switch action {
	case ActionSubmit:
		return actor.ID != ""
	case ActionStart, ActionFinish:
		return actor.IsStaff()
	case ActionCancel:
		if actor.IsStaff() {
			return true
		}

		return actor.ID != "" && actor.ID == ownerID
	default:
		return false
	}
}
