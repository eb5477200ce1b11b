package user

import "time"

type Role string

const (
	RoleWorker Role = "worker" // Checks in and out against an assigned shift
	RoleAdmin  Role = "admin"  // Manages users, shifts and leave requests
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleWorker || r == RoleAdmin
}

type User struct {
	WorkerID     string
	PasswordHash string
	Role         Role
	Job          *string
	Email        *string
	ShiftID      *int64
	CreatedAt    time.Time
	DeletedAt    *time.Time

	// DTO / Join
	ShiftName *string
}

// IsDeleted reports whether the user was removed. Removed users keep their attendance history.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) IsWorker() bool {
	return u.Role == RoleWorker
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasEmail reports whether the user can receive notifications.
func (u *User) HasEmail() bool {
	return u.Email != nil && *u.Email != ""
}
