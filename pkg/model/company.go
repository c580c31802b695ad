package model

// CompanySettings is a singleton: id is always 1 and "create" and "update"
// are the same upsert operation.
type CompanySettings struct {
	ID              int      `json:"id"`
	CompanyName     string   `json:"companyName"`
	ContactEmail    string   `json:"contactEmail"`
	ContactPhone    string   `json:"contactPhone"`
	Address         string   `json:"address"`
	Logo            string   `json:"logo,omitempty"`
	ServicesOffered []string `json:"servicesOffered,omitempty"`
	OperatingHours  string   `json:"operatingHours,omitempty"`
	UpdatedAt       string   `json:"updatedAt"`
}

type CompanySettingsInput struct {
	CompanyName     string   `json:"companyName" validate:"required,min=2,max=100"`
	ContactEmail    string   `json:"contactEmail" validate:"required,email"`
	ContactPhone    string   `json:"contactPhone" validate:"required,min=7,max=20"`
	Address         string   `json:"address" validate:"required,min=5,max=200"`
	Logo            string   `json:"logo" validate:"omitempty,max=200"`
	ServicesOffered []string `json:"servicesOffered" validate:"omitempty,max=30,dive,required,max=60"`
	OperatingHours  string   `json:"operatingHours" validate:"omitempty,max=120"`
}
