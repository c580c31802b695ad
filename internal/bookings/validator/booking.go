package validator

import (
	"maideasy/pkg/model"
	"maideasy/pkg/validate"
)

type BookingValidator struct {
	validate *validate.Validator
}

func NewBookingValidator() *BookingValidator {
	return &BookingValidator{
		validate: validate.New(),
	}
}

func (v *BookingValidator) ValidateInput(input *model.BookingInput) error {
	return v.validate.Struct(input)
}

// ValidateStatus enforces the four-value status vocabulary; anything else is
// a validation error regardless of the booking's current status.
func (v *BookingValidator) ValidateStatus(input *model.BookingStatusInput) error {
	return v.validate.Struct(input)
}
