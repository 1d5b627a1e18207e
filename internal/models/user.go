package models

import "fmt"

type UserRole string

const (
	RoleBroker     UserRole = "BROKER"
	RoleOwner      UserRole = "OWNER"
	RoleRenter     UserRole = "RENTER"
	RoleContractor UserRole = "CONTRACTOR"
)

func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleBroker, RoleOwner, RoleRenter, RoleContractor:
		return UserRole(s), nil
	default:
		return "", fmt.Errorf("invalid user role: %q", s)
	}
}

// User is the profile row backing an auth identity. The id matches the
// remote auth user id; the role is fixed at signup.
type User struct {
	ID     string   `json:"id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
	Avatar string   `json:"avatar,omitempty"`
}
