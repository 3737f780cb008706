package controller

import (
	"encoding/json"
	"fmt"

	"notehub-be/internal/pkg/serverutils"
	"notehub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetSettings(ctx *fiber.Ctx) error
	UpdateSettings(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Get("settings", c.GetSettings)
	h.Put("settings", c.UpdateSettings)
}

func (c *userController) GetSettings(ctx *fiber.Ctx) error {
	user := serverutils.SessionUser(ctx)

	settings, err := c.userService.GetSettings(ctx.Context(), user)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(
		fmt.Sprintf("Fetched settings for %s", user.Name), settings))
}

func (c *userController) UpdateSettings(ctx *fiber.Ctx) error {
	user := serverutils.SessionUser(ctx)

	// Session check first: an unauthenticated caller gets 401 from the
	// service regardless of what the body holds.
	body := ctx.Body()
	if user != nil && !isJSONObject(body) {
		return fiber.NewError(fiber.StatusBadRequest, "Settings must be a JSON object")
	}

	settings, err := c.userService.UpdateSettings(ctx.Context(), user, datatypes.JSON(body))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(
		fmt.Sprintf("Updated settings for %s", user.Name), settings))
}

// The settings document is opaque, but it must at least be a JSON object.
// Unmarshal alone is not enough: a literal null also decodes into a map.
func isJSONObject(body []byte) bool {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return false
	}
	return doc != nil
}
