package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/kjc6735/schedule-app/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, user *User) error
	List(ctx context.Context, offset, limit int) ([]User, error)
}
