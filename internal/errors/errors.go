package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// User-facing messages are Korean, the system's working language.
var (
	ErrInvalidInput       = errors.New("잘못된 요청입니다.")
	ErrInvalidCredentials = errors.New("아이디와 비밀번호를 다시 확인해주세요.")
	ErrPasswordMismatch   = errors.New("비밀번호를 다시 확인해주세요.")
	ErrUserIDTaken        = errors.New("이미 사용중인 아이디입니다.")
	ErrPhoneTaken         = errors.New("이미 사용중인 휴대폰 번호입니다.")
	ErrRegistrationFailed = errors.New("서버오류. 잠시 후 다시 시도해주세요")
	ErrUserNotFound       = errors.New("유저를 찾을 수 없습니다.")

	ErrNoToken          = errors.New("접속할 수 없습니다.")
	ErrTokenExpired     = errors.New("토큰이 만료되었습니다.")
	ErrTokenNotYetValid = errors.New("아직 유효하지 않은 토큰입니다.")
	ErrTokenCorrupted   = errors.New("손상된 토큰입니다.")
	ErrAuthFailed       = errors.New("인증 실패")
	ErrNoPermission     = errors.New("권한이 없습니다.")
)

// StatusCode maps a domain error to the HTTP status it surfaces with.
// Role-guard rejections share the 401 class with authentication failures
// and are told apart by message only.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrPasswordMismatch):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUserIDTaken),
		errors.Is(err, ErrPhoneTaken),
		errors.Is(err, ErrNoToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenNotYetValid),
		errors.Is(err, ErrTokenCorrupted),
		errors.Is(err, ErrAuthFailed),
		errors.Is(err, ErrNoPermission):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes the structured error body shared by handlers and guards.
func Respond(c *fiber.Ctx, err error) error {
	status := StatusCode(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		// Never leak internals; keep the opaque server-error message.
		message = ErrRegistrationFailed.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"statusCode": status,
		"message":    message,
	})
}
