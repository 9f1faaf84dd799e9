package domain

import "time"

// Role restricts what a directory member may do in the console.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// UserStatus represents lifecycle states for a directory member.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// Valid reports whether s is one of the known statuses.
func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// User is a member of the managed directory.
type User struct {
	ID         string
	Name       string
	Email      string
	Role       Role
	Status     UserStatus
	Department *string
	Avatar     *string
	CreatedAt  time.Time
	LastLogin  *time.Time
}

// DepartmentName returns the department or an empty string when unset.
func (u User) DepartmentName() string {
	if u.Department == nil {
		return ""
	}
	return *u.Department
}

// Clone returns a deep copy so callers never share pointer fields.
func (u User) Clone() User {
	out := u
	if u.Department != nil {
		d := *u.Department
		out.Department = &d
	}
	if u.Avatar != nil {
		a := *u.Avatar
		out.Avatar = &a
	}
	if u.LastLogin != nil {
		l := *u.LastLogin
		out.LastLogin = &l
	}
	return out
}
