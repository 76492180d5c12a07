package pkg

import (
	"errors"
	"reflect"

	appError "github.com/classkas/kasku-core/internal/app/errors"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func SuccessResponse[T any](c *fiber.Ctx, data T) error {
	return c.JSON(data)
}

// ErrorResponse renders any error as a JSON body. Unknown error types are
// logged and collapsed to a generic 500 so no internal detail leaks.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var appErr *appError.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(models.ErrorBody{
			Error:   appErr.Message,
			Details: appErr.Details,
		})
	}

	logrus.Errorf("[%s] %s", reflect.TypeOf(err).String(), err)

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorBody{
		Error: "Internal Server Error",
	})
}
