package model

type Maid struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	City        string   `json:"city"`
	Locality    string   `json:"locality"`
	Address     string   `json:"address,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	Services    []string `json:"services"`
	JoinedAt    string   `json:"joinedAt"`
	IsAvailable bool     `json:"isAvailable"`
}

type MaidInput struct {
	Name       string   `json:"name" validate:"required,min=2,max=100"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      string   `json:"phone" validate:"required,min=7,max=20"`
	City       string   `json:"city" validate:"required,min=2,max=60"`
	Locality   string   `json:"locality" validate:"required,min=2,max=60"`
	Address    string   `json:"address" validate:"omitempty,max=200"`
	Experience string   `json:"experience" validate:"omitempty,max=200"`
	Services   []string `json:"services" validate:"omitempty,max=20,dive,required,max=60"`
}

type MaidAvailabilityInput struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}
