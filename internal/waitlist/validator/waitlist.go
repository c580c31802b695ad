package validator

import (
	"maideasy/pkg/model"
	"maideasy/pkg/validate"
)

type WaitlistValidator struct {
	validate *validate.Validator
}

func NewWaitlistValidator() *WaitlistValidator {
	return &WaitlistValidator{
		validate: validate.New(),
	}
}

func (v *WaitlistValidator) ValidateInput(input *model.WaitlistInput) error {
	return v.validate.Struct(input)
}
