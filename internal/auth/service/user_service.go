package service

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/kjc6735/schedule-app/internal/auth/domain"
	"github.com/kjc6735/schedule-app/internal/auth/dto"
	autherror "github.com/kjc6735/schedule-app/internal/errors"
)

type UserService struct {
	repo       domain.UserRepository
	tokens     TokenGenerator
	bcryptCost int
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, bcryptCost int) *UserService {
	return &UserService{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Login checks the credentials and mints a token pair. An unknown user id
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Register validates and persists a new user. The password check runs
// before any store lookup, and the user id check before the phone check.
// The supplied role is stored as-is.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) error {
	if !input.Gender.Valid() || !input.Role.Valid() {
		return autherror.ErrInvalidInput
	}

	if input.Password != input.PasswordConfirm {
		return autherror.ErrPasswordMismatch
	}

	existing, err := s.repo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return autherror.ErrUserIDTaken
	}

	existing, err = s.repo.GetByPhone(ctx, input.Phone)
	if err != nil {
		return err
	}
	if existing != nil {
		return autherror.ErrPhoneTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		UserID:   input.UserID,
		Password: string(hashedPassword),
		Name:     input.Name,
		Phone:    input.Phone,
		Gender:   input.Gender,
		Role:     input.Role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// The store's uniqueness constraints are the safety net against a
		// concurrent duplicate registration; the cause stays opaque.
		log.Printf("failed to create user %s: %v", input.UserID, err)
		return autherror.ErrRegistrationFailed
	}

	return nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return dto.UserOutputFrom(user), nil
}

// ListUsers returns one page of users. It fetches one extra row to decide
// whether a next page exists.
func (s *UserService) ListUsers(ctx context.Context, page, take int) (*dto.UserListOutput, error) {
	if page < 1 {
		page = 1
	}
	if take < 1 {
		take = 20
	}

	users, err := s.repo.List(ctx, (page-1)*take, take+1)
	if err != nil {
		return nil, err
	}

	hasNext := len(users) > take
	if hasNext {
		users = users[:take]
	}

	outputs := make([]dto.UserOutput, 0, len(users))
	for i := range users {
		outputs = append(outputs, *dto.UserOutputFrom(&users[i]))
	}

	return &dto.UserListOutput{Data: outputs, HasNext: hasNext}, nil
}
