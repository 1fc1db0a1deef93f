package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type credentialInput struct {
	DeviceID string `json:"device_id" validate:"required"`
	Secret   string `json:"secret" validate:"required,min=8"`
}

func TestCustomValidator_ReportsJSONNames(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&credentialInput{DeviceID: "jetson-lab-01", Secret: "secret-token-1"}))

	err := v.Validate(&credentialInput{Secret: "short"})
	assert.EqualError(t, err, "device_id failed required; secret failed min")
}
