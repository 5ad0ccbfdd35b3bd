package dto

import "github.com/kjc6735/schedule-app/internal/auth/domain"

type RegisterInput struct {
	UserID          string        `json:"userId"`
	Password        string        `json:"password"`
	PasswordConfirm string        `json:"passwordConfirm"`
	Name            string        `json:"name"`
	Gender          domain.Gender `json:"gender"`
	Phone           string        `json:"phone"`
	Role            domain.Role   `json:"role"`
}
