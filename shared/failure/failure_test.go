package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"campusbook/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusConflict,
		Message: "resource capacity exceeded for the requested window",
	}

	if f.Error() != "resource capacity exceeded for the requested window" {
		t.Errorf("unexpected error message: %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequestFromString", err: failure.BadRequestFromString("end time must be after start time"), code: http.StatusBadRequest},
		{name: "Conflict", err: failure.Conflict("capacity exceeded"), code: http.StatusConflict},
		{name: "UnprocessableEntity", err: failure.UnprocessableEntity("invalid transition"), code: http.StatusUnprocessableEntity},
		{name: "NotFound", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "Forbidden", err: failure.Forbidden("staff role required"), code: http.StatusForbidden},
		{name: "Unauthorized", err: failure.Unauthorized("missing token"), code: http.StatusUnauthorized},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	inner := failure.Conflict("capacity exceeded")
	wrapped := fmt.Errorf("submitting booking: %w", inner)

	if got := failure.GetCode(wrapped); got != http.StatusConflict {
		t.Errorf("expected code %d through wrapping, got %d", http.StatusConflict, got)
	}

	if !failure.Is(wrapped, http.StatusConflict) {
		t.Error("expected Is to match the wrapped failure code")
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", got)
	}
}
