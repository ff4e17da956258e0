package domain

import "errors"

// Role is an enumerated permission tier. Values are fixed at compile time;
// each value is persisted as a reference row keyed by SeedID at startup.
type Role int

const (
	RoleAdmin Role = iota
	RoleTeacher
	RoleStudent
)

var ErrUnknownRole = errors.New("unknown role")

// AllRoles returns every role in ordinal order. Used by the startup seeder.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleTeacher, RoleStudent}
}

// SeedID is the persisted primary key for the role row: ordinal + 1.
func (r Role) SeedID() uint {
	return uint(r) + 1
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleTeacher:
		return "teacher"
	case RoleStudent:
		return "student"
	default:
		return "unknown"
	}
}

func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleStudent
}

// ParseRole converts the wire representation back to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "teacher":
		return RoleTeacher, nil
	case "student":
		return RoleStudent, nil
	default:
		return 0, ErrUnknownRole
	}
}

// RoleFromSeedID is the inverse of SeedID.
func RoleFromSeedID(id uint) (Role, error) {
	r := Role(id - 1)
	if id == 0 || !r.Valid() {
		return 0, ErrUnknownRole
	}
	return r, nil
}
