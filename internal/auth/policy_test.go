package auth

import (
	"testing"

	"maideasy/pkg/model"
)

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{"admin role", Session{UserID: 1, Role: model.RoleAdmin}, true},
		{"customer role", Session{UserID: 2, Role: model.RoleCustomer}, false},
		{"anonymous", Session{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAdmin(tt.session); got != tt.want {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanManageBooking(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		ownerID int
		want    bool
	}{
		{"owner", Session{UserID: 5, Role: model.RoleCustomer}, 5, true},
		{"admin on another user's booking", Session{UserID: 1, Role: model.RoleAdmin}, 5, true},
		{"other customer", Session{UserID: 9, Role: model.RoleCustomer}, 5, false},
		{"anonymous", Session{}, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanManageBooking(tt.session, tt.ownerID); got != tt.want {
				t.Errorf("CanManageBooking() = %v, want %v", got, tt.want)
			}
		})
	}
}
