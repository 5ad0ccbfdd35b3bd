package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kjc6735/schedule-app/internal/auth/dto"
	"github.com/kjc6735/schedule-app/internal/auth/service"
	autherror "github.com/kjc6735/schedule-app/internal/errors"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Respond(c, autherror.ErrInvalidInput)
	}

	tokenPair, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return autherror.Respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tokenPair)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Respond(c, autherror.ErrInvalidInput)
	}

	if err := h.userService.Register(c.Context(), input); err != nil {
		return autherror.Respond(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}
