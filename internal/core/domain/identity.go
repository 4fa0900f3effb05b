package domain

import "errors"

// Roles a signed-in principal can hold.
const (
	RoleUser  = "user"
	RoleOwner = "restaurant_owner"
)

var ErrInvalidCredential = errors.New("invalid credential")
var ErrUnauthorized = errors.New("authentication required")
var ErrForbidden = errors.New("access forbidden")

// Identity is the decoded representation of the signed-in principal. It is
// derived once from the stored bearer credential and stays immutable until
// sign-out or a new sign-in. A nil *Identity means anonymous.
type Identity struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// IsOwner reports whether the identity holds the restaurant owner role.
// Safe to call on a nil (anonymous) identity.
func (i *Identity) IsOwner() bool {
	return i != nil && i.Role == RoleOwner
}
