package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kjc6735/schedule-app/internal/auth/service"
	autherror "github.com/kjc6735/schedule-app/internal/errors"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return autherror.Respond(c, autherror.ErrInvalidInput)
	}

	user, err := h.userService.GetUser(c.Context(), id)
	if err != nil {
		return autherror.Respond(c, err)
	}

	return c.JSON(user)
}

func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	take := c.QueryInt("take", 20)

	users, err := h.userService.ListUsers(c.Context(), page, take)
	if err != nil {
		return autherror.Respond(c, err)
	}

	return c.JSON(users)
}
