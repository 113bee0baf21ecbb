package identity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"campusbook/internal/identity"
	"campusbook/shared/constant"
)

func TestAllowed(t *testing.T) {
	admin := identity.Actor{ID: "admin-1", Role: constant.RoleAdmin}
	staff := identity.Actor{ID: "staff-1", Role: constant.RoleStaff}
	requester := identity.Actor{ID: "req-1", Role: constant.RoleRequester}
	anonymous := identity.Actor{}

	tests := []struct {
		name    string
		actor   identity.Actor
		action  identity.Action
		ownerID string
		want    bool
	}{
		{"admin can start", admin, identity.ActionStart, "req-1", true},
		{"admin can finish", admin, identity.ActionFinish, "req-1", true},
		{"admin can cancel any", admin, identity.ActionCancel, "req-1", true},
		{"staff can start", staff, identity.ActionStart, "req-1", true},
		{"staff can finish", staff, identity.ActionFinish, "req-1", true},
		{"staff can cancel any", staff, identity.ActionCancel, "req-1", true},
		{"requester can submit", requester, identity.ActionSubmit, "", true},
		{"requester cannot start", requester, identity.ActionStart, "req-1", false},
		{"requester cannot finish", requester, identity.ActionFinish, "req-1", false},
		{"requester can cancel own", requester, identity.ActionCancel, "req-1", true},
		{"requester cannot cancel others", requester, identity.ActionCancel, "req-2", false},
		{"anonymous cannot submit", anonymous, identity.ActionSubmit, "", false},
		{"anonymous cannot cancel", anonymous, identity.ActionCancel, "", false},
		{"unknown action denied", admin, identity.Action("approve"), "req-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.Allowed(tt.actor, tt.action, tt.ownerID))
		})
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "user-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserName, "Jane Doe")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleStaff)

	actor := identity.FromContext(ctx)

	assert.Equal(t, "user-1", actor.ID)
	assert.Equal(t, "Jane Doe", actor.Name)
	assert.Equal(t, constant.RoleStaff, actor.Role)
	assert.True(t, actor.IsStaff())
	assert.False(t, actor.IsAdmin())
}

func TestFromContextEmpty(t *testing.T) {
	actor := identity.FromContext(context.Background())

	assert.Empty(t, actor.ID)
	assert.False(t, actor.IsStaff())
}
