package model

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	MaidID      int    `json:"maidId"`
	ServiceType string `json:"serviceType"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
	Address     string `json:"address"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// BookingInput omits userId on purpose: the owner is always the
// authenticated session user, never a caller-supplied id.
type BookingInput struct {
	MaidID      int    `json:"maidId" validate:"required,min=1"`
	ServiceType string `json:"serviceType" validate:"required,min=2,max=100"`
	BookingDate string `json:"bookingDate" validate:"required,min=4,max=40"`
	BookingTime string `json:"bookingTime" validate:"required,min=2,max=40"`
	Address     string `json:"address" validate:"required,min=5,max=200"`
	Notes       string `json:"notes" validate:"omitempty,max=500"`
}

type BookingStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
