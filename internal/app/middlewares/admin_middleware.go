package middlewares

import (
	"crypto/subtle"

	"github.com/classkas/kasku-core/internal/app/errors"
	"github.com/classkas/kasku-core/internal/app/pkg"
	"github.com/classkas/kasku-core/internal/infrastructures"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AdminMiddleware gates the administrative endpoints behind a shared key.
type AdminMiddleware struct {
	adminKey string
}

func NewAdminMiddleware(config *infrastructures.AppConfig) *AdminMiddleware {
	if config.AdminAPIKey == "" {
		logrus.Warn("ADMIN_API_KEY is not set; admin endpoints will reject every request")
	}
	return &AdminMiddleware{adminKey: config.AdminAPIKey}
}

func (m *AdminMiddleware) RequireAdminKey(c *fiber.Ctx) error {
	key := c.Get("X-Admin-Key")
	if m.adminKey == "" || key == "" {
		return pkg.ErrorResponse(c, errors.NewUnauthorizedError())
	}

	if subtle.ConstantTimeCompare([]byte(key), []byte(m.adminKey)) != 1 {
		return pkg.ErrorResponse(c, errors.NewUnauthorizedError())
	}

	return c.Next()
}
