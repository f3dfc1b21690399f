package models

// Role defines the account role type
type Role string

// The three roles the system knows. Role values are a closed set;
// anything else is rejected before it can be persisted.
const (
	RoleAdmin     Role = "ADMIN"
	RoleRegistrar Role = "REGISTRAR"
	RoleStudent   Role = "STUDENT"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleRegistrar, RoleStudent:
		return true
	}
	return false
}
