package validator

import (
	"maideasy/pkg/model"
	"maideasy/pkg/validate"
)

type CompanySettingsValidator struct {
	validate *validate.Validator
}

func NewCompanySettingsValidator() *CompanySettingsValidator {
	return &CompanySettingsValidator{
		validate: validate.New(),
	}
}

func (v *CompanySettingsValidator) ValidateInput(input *model.CompanySettingsInput) error {
	return v.validate.Struct(input)
}
