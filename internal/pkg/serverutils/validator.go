package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks struct validate tags and maps violations to a 400
// with the first failing field named. Validation failures are client errors,
// outside the service error taxonomy.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Invalid value for field '%s' (%s)", e.Field(), e.Tag()))
		}
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}
