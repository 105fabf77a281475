package services

import "hotel-inventory/models"

// AuthorizationGate restricts hotel-mutating operations to the resource owner
// or an admin. The caller is always passed explicitly; nothing here reads
// ambient request state.
type AuthorizationGate struct{}

func NewAuthorizationGate() *AuthorizationGate {
	return &AuthorizationGate{}
}

// AuthorizeMutation passes when the caller owns the hotel or carries the
// admin role.
func (g *AuthorizationGate) AuthorizeMutation(caller models.User, hotel models.Hotel) error {
	if caller.ID == hotel.UserID || caller.IsAdmin() {
		return nil
	}
	return ErrForbidden
}

// AuthorizeRoleChange rejects self-service role changes and admin grants by
// non-admins.
func (g *AuthorizationGate) AuthorizeRoleChange(caller, target models.User, newRole models.Role) error {
	if caller.ID == target.ID {
		return ErrForbidden
	}
	if newRole.Name == models.RoleAdmin && !caller.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
