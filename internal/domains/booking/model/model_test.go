package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusbook/internal/domains/booking/model"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name       string
		current    string
		transition model.Transition
		wantNext   string
		wantOK     bool
	}{
		{"start from request", model.StatusRequest, model.TransitionStart, model.StatusOngoing, true},
		{"finish from ongoing", model.StatusOngoing, model.TransitionFinish, model.StatusSuccess, true},
		{"cancel from request", model.StatusRequest, model.TransitionCancel, model.StatusCancel, true},
		{"cancel from ongoing", model.StatusOngoing, model.TransitionCancel, model.StatusCancel, true},
		{"start from ongoing", model.StatusOngoing, model.TransitionStart, "", false},
		{"start from success", model.StatusSuccess, model.TransitionStart, "", false},
		{"start from cancel", model.StatusCancel, model.TransitionStart, "", false},
		{"finish from request", model.StatusRequest, model.TransitionFinish, "", false},
		{"finish from success", model.StatusSuccess, model.TransitionFinish, "", false},
		{"finish from cancel", model.StatusCancel, model.TransitionFinish, "", false},
		{"cancel from success", model.StatusSuccess, model.TransitionCancel, "", false},
		{"cancel from cancel", model.StatusCancel, model.TransitionCancel, "", false},
		{"unknown transition", model.StatusRequest, model.Transition("approve"), "", false},
		{"unknown status", "PENDING", model.TransitionStart, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := model.NextStatus(tt.current, tt.transition)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestTimestampField(t *testing.T) {
	assert.Equal(t, model.FieldStartedAt, model.TimestampField(model.TransitionStart))
	assert.Equal(t, model.FieldEndedAt, model.TimestampField(model.TransitionFinish))
	assert.Equal(t, model.FieldCanceledAt, model.TimestampField(model.TransitionCancel))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, model.IsTerminal(model.StatusRequest))
	assert.False(t, model.IsTerminal(model.StatusOngoing))
	assert.True(t, model.IsTerminal(model.StatusSuccess))
	assert.True(t, model.IsTerminal(model.StatusCancel))
}

func TestEffectiveQuantity(t *testing.T) {
	assert.Equal(t, 1, model.Booking{Quantity: 0}.EffectiveQuantity())
	assert.Equal(t, 1, model.Booking{Quantity: -3}.EffectiveQuantity())
	assert.Equal(t, 1, model.Booking{Quantity: 1}.EffectiveQuantity())
	assert.Equal(t, 5, model.Booking{Quantity: 5}.EffectiveQuantity())
}
