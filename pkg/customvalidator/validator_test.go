package customvalidator

import (
	"errors"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email string `json:"email" validate:"required,custom_email"`
}

type requestForm struct {
	Type   string `json:"type" validate:"omitempty,request_type"`
	Status string `json:"status" validate:"required,request_status"`
}

type equipmentPatch struct {
	Name     null.String `json:"name" validate:"omitempty,min=1"`
	TeamID   null.Int    `json:"maintenanceTeamId" validate:"omitempty,gt=0"`
	Location null.String `json:"location"`
}

func TestCustomEmail(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(signupForm{Email: "tech@gearguard.io"}))

	err := v.Struct(signupForm{Email: "not-an-email"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "email", verrs[0].Field())
	assert.Equal(t, "custom_email", verrs[0].Tag())
}

func TestRequestTypeAndStatus(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(requestForm{Status: "In Progress"}))
	assert.NoError(t, v.Struct(requestForm{Type: "Preventive", Status: "Scrap"}))
	assert.Error(t, v.Struct(requestForm{Type: "Emergency", Status: "New"}))
	assert.Error(t, v.Struct(requestForm{Status: "Closed"}))
	assert.Error(t, v.Struct(requestForm{}))
}

func TestNullTypes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(equipmentPatch{}))
	assert.NoError(t, v.Struct(equipmentPatch{TeamID: null.IntFrom(2), Location: null.StringFrom("Hall B")}))
	assert.NoError(t, v.Struct(equipmentPatch{TeamID: null.NewInt(0, false), Name: null.NewString("", false)}))
	assert.Error(t, v.Struct(equipmentPatch{TeamID: null.IntFrom(0)}))
	assert.Error(t, v.Struct(equipmentPatch{TeamID: null.IntFrom(-1)}))
	assert.Error(t, v.Struct(equipmentPatch{Name: null.StringFrom("")}))
}
