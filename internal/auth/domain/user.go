package domain

import "time"

type Role string

const (
	RoleWorker  Role = "worker"
	RoleManager Role = "manager"
	RoleOwner   Role = "owner"
)

func (r Role) Valid() bool {
	switch r {
	case RoleWorker, RoleManager, RoleOwner:
		return true
	}
	return false
}

// IsAdmin reports whether the role belongs to the managing staff.
func (r Role) IsAdmin() bool {
	return r == RoleManager || r == RoleOwner
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type User struct {
	ID        int64
	UserID    string
	Password  string
	Name      string
	Phone     string
	Gender    Gender
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
