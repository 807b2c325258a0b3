package domain

import "time"

// Role is the closed set of access levels a user can hold. Values outside
// the enumerated set are rejected at the write boundary by ParseRole, so a
// Role held by the core is always one of the three constants.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole validates a raw role string against the enumerated set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// IsAdmin reports whether the role clears the administrative gate.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Identity is the minimal claim set carried by a session token and attached
// to a request after verification.
type Identity struct {
	UserID string `json:"_id"`
	Role   Role   `json:"role"`
}

// User models a persisted account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Favorites    []string  `json:"favs_ar"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
