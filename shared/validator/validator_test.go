package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"campusbook/shared/failure"
	"campusbook/shared/validator"

	"github.com/stretchr/testify/assert"
)

type submitPayload struct {
	ResourceID string `json:"resource_id" validate:"required"`
	Quantity   int    `json:"quantity"    validate:"required,min=1"`
	Purpose    string `json:"purpose"     validate:"omitempty,max=200"`
}

func TestValidate_OK(t *testing.T) {
	body := strings.NewReader(`{"resource_id":"r-1","quantity":2}`)

	payload := submitPayload{}
	err := validator.Validate(body, &payload)

	assert.NoError(t, err)
	assert.Equal(t, "r-1", payload.ResourceID)
	assert.Equal(t, 2, payload.Quantity)
}

func TestValidate_MissingRequired(t *testing.T) {
	body := strings.NewReader(`{"quantity":1}`)

	payload := submitPayload{}
	err := validator.Validate(body, &payload)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "required")
}

func TestValidate_MalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"resource_id":`)

	payload := submitPayload{}
	err := validator.Validate(body, &payload)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar(3, "min=1"))
	assert.Error(t, validator.ValidateVar(0, "min=1"))
}
