package auth

import "maideasy/pkg/model"

// Authorization decisions live here so handlers never compare role strings
// inline.

func IsAdmin(session Session) bool {
	return session.Role == model.RoleAdmin
}

// CanManageBooking allows the owning user or an admin to read or mutate a
// booking; every other authenticated user is forbidden.
func CanManageBooking(session Session, ownerID int) bool {
	return IsAdmin(session) || session.UserID == ownerID
}
