package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Role   string `json:"role" validate:"required,is-user-role"`
	Type   string `json:"type" validate:"omitempty,is-job-type"`
	Status string `json:"status" validate:"omitempty,is-application-status"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateOK(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:  "user@example.com",
		Role:   "candidate",
		Type:   "full_time",
		Status: "pending",
		Date:   "2026-12-31",
	})
	assert.NoError(t, err)
}

func TestValidateCollectsFieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:  "not-an-email",
		Role:   "superuser",
		Type:   "freelance",
		Status: "archived",
		Date:   "31.12.2026",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// Ключи - JSON-имена полей, как их видит клиент
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "role")
	assert.Contains(t, vErr.Errors, "type")
	assert.Contains(t, vErr.Errors, "status")
	assert.Contains(t, vErr.Errors, "date")
	assert.Equal(t, "Must be a valid user role", vErr.Errors["role"])
}

func TestValidateRequired(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "This field is required", vErr.Errors["email"])
	assert.Contains(t, vErr.Errors, "role")
	assert.NotContains(t, vErr.Errors, "type")
}
