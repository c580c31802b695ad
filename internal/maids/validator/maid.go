package validator

import (
	"maideasy/pkg/model"
	"maideasy/pkg/validate"
)

type MaidValidator struct {
	validate *validate.Validator
}

func NewMaidValidator() *MaidValidator {
	return &MaidValidator{
		validate: validate.New(),
	}
}

func (v *MaidValidator) ValidateInput(input *model.MaidInput) error {
	return v.validate.Struct(input)
}

func (v *MaidValidator) ValidateAvailability(input *model.MaidAvailabilityInput) error {
	return v.validate.Struct(input)
}
