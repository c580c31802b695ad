package model

type WaitlistEntry struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company,omitempty"`
	JoinedAt string `json:"joinedAt"`
}

type WaitlistInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"omitempty,max=100"`
}
