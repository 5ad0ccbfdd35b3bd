package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

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

type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	userService := service.NewUserService(mockRepo, mockTokens, bcrypt.MinCost)
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	app.Post("/auth/login", authHandler.Login)

	t.Run("success returns token pair", func(t *testing.T) {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.MinCost)
		require.NoError(t, err)

		user := &domain.User{ID: 1, UserID: "k6admin", Password: string(hashed), Role: domain.RoleOwner}
		mockRepo.EXPECT().GetByUserID(gomock.Any(), "k6admin").Return(user, nil)
		mockTokens.EXPECT().Generate(user).Return("access-token", "refresh-token", nil)

		resp := postJSON(t, app, "/auth/login", dto.LoginInput{UserID: "k6admin", Password: "admin1234"})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var tokens dto.TokenResponse
		decodeBody(t, resp, &tokens)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	t.Run("unknown user id", func(t *testing.T) {
		mockRepo.EXPECT().GetByUserID(gomock.Any(), "nobody").Return(nil, nil)

		resp := postJSON(t, app, "/auth/login", dto.LoginInput{UserID: "nobody", Password: "whatever"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body errorBody
		decodeBody(t, resp, &body)
		assert.Equal(t, "아이디와 비밀번호를 다시 확인해주세요.", body.Message)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("{")))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	userService := service.NewUserService(mockRepo, nil, bcrypt.MinCost)
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	app.Post("/auth/register", authHandler.Register)

	input := dto.RegisterInput{
		UserID:          "newuser",
		Password:        "password123",
		PasswordConfirm: "password123",
		Name:            "새유저",
		Gender:          domain.GenderMale,
		Phone:           "01011112222",
		Role:            domain.RoleWorker,
	}

	t.Run("first registration succeeds, second conflicts", func(t *testing.T) {
		created := &domain.User{ID: 1, UserID: input.UserID, Phone: input.Phone}

		gomock.InOrder(
			mockRepo.EXPECT().GetByUserID(gomock.Any(), input.UserID).Return(nil, nil),
			mockRepo.EXPECT().GetByPhone(gomock.Any(), input.Phone).Return(nil, nil),
			mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			mockRepo.EXPECT().GetByUserID(gomock.Any(), input.UserID).Return(created, nil),
		)

		resp := postJSON(t, app, "/auth/register", input)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		resp = postJSON(t, app, "/auth/register", input)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var body errorBody
		decodeBody(t, resp, &body)
		assert.Equal(t, "이미 사용중인 아이디입니다.", body.Message)
	})

	t.Run("password mismatch", func(t *testing.T) {
		bad := input
		bad.PasswordConfirm = "different"

		resp := postJSON(t, app, "/auth/register", bad)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body errorBody
		decodeBody(t, resp, &body)
		assert.Equal(t, "비밀번호를 다시 확인해주세요.", body.Message)
	})

	t.Run("store failure is opaque", func(t *testing.T) {
		mockRepo.EXPECT().GetByUserID(gomock.Any(), input.UserID).Return(nil, nil)
		mockRepo.EXPECT().GetByPhone(gomock.Any(), input.Phone).Return(nil, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError)

		resp := postJSON(t, app, "/auth/register", input)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var body errorBody
		decodeBody(t, resp, &body)
		assert.Equal(t, "서버오류. 잠시 후 다시 시도해주세요", body.Message)
	})
}
