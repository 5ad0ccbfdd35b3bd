package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kjc6735/schedule-app/internal/auth/domain"
	"github.com/kjc6735/schedule-app/internal/auth/dto"
	"github.com/kjc6735/schedule-app/internal/auth/handler"
	"github.com/kjc6735/schedule-app/internal/auth/service"
	"github.com/kjc6735/schedule-app/internal/mocks"
)

func TestGetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	userService := service.NewUserService(mockRepo, nil, bcrypt.MinCost)
	userHandler := handler.NewUserHandler(userService)

	app := fiber.New()
	app.Get("/users/:id", userHandler.GetUser)

	t.Run("found, password never serialized", func(t *testing.T) {
		user := &domain.User{
			ID:        7,
			UserID:    "john123",
			Password:  "super-secret-hash",
			Name:      "홍길동",
			Phone:     "01012345678",
			Gender:    domain.GenderMale,
			Role:      domain.RoleWorker,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(user, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/7", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out map[string]any
		decodeBody(t, resp, &out)
		assert.Equal(t, "john123", out["userId"])
		assert.NotContains(t, out, "password")
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/99", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		var body errorBody
		decodeBody(t, resp, &body)
		assert.Equal(t, "유저를 찾을 수 없습니다.", body.Message)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	userService := service.NewUserService(mockRepo, nil, bcrypt.MinCost)
	userHandler := handler.NewUserHandler(userService)

	app := fiber.New()
	app.Get("/users", userHandler.GetUsers)

	t.Run("paged list with hasNext", func(t *testing.T) {
		users := []domain.User{
			{ID: 1, UserID: "a", Role: domain.RoleWorker},
			{ID: 2, UserID: "b", Role: domain.RoleWorker},
			{ID: 3, UserID: "c", Role: domain.RoleWorker},
		}
		mockRepo.EXPECT().List(gomock.Any(), 0, 3).Return(users, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users?page=1&take=2", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.UserListOutput
		decodeBody(t, resp, &out)
		assert.Len(t, out.Data, 2)
		assert.True(t, out.HasNext)
	})

	t.Run("defaults", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), 0, 21).Return(nil, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
