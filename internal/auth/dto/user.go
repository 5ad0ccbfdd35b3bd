package dto

import (
	"time"

	"github.com/kjc6735/schedule-app/internal/auth/domain"
)

// UserOutput is the outward shape of a user. The password hash is
// deliberately absent.
type UserOutput struct {
	ID        int64         `json:"id"`
	UserID    string        `json:"userId"`
	Name      string        `json:"name"`
	Phone     string        `json:"phone"`
	Gender    domain.Gender `json:"gender"`
	Role      domain.Role   `json:"role"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func UserOutputFrom(user *domain.User) *UserOutput {
	return &UserOutput{
		ID:        user.ID,
		UserID:    user.UserID,
		Name:      user.Name,
		Phone:     user.Phone,
		Gender:    user.Gender,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type UserListOutput struct {
	Data    []UserOutput `json:"data"`
	HasNext bool         `json:"hasNext"`
}
