package validator

import (
	"maideasy/pkg/model"
	"maideasy/pkg/validate"
)

type AuthValidator struct {
	validate *validate.Validator
}

func NewAuthValidator() *AuthValidator {
	return &AuthValidator{
		validate: validate.New(),
	}
}

func (v *AuthValidator) ValidateRegister(input *model.RegisterInput) error {
	return v.validate.Struct(input)
}

func (v *AuthValidator) ValidateLogin(input *model.LoginInput) error {
	return v.validate.Struct(input)
}
