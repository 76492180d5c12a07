package injector

import (
	"github.com/classkas/kasku-core/internal/app/deliveries"
	"github.com/classkas/kasku-core/internal/app/services"
	"github.com/classkas/kasku-core/internal/infrastructures"
	"github.com/gofiber/fiber/v2"
)

// Application is the assembled handler set for kasku-core.
type Application struct {
	HealthHandler   *deliveries.HealthHandler
	PaymentHandler  *deliveries.PaymentHandler
	StudentHandler  *deliveries.StudentHandler
	DuesHandler     *deliveries.DuesHandler
	ScheduleHandler *deliveries.ScheduleHandler
	TaskHandler     *deliveries.TaskHandler
}

// RegisterRoutes registers all application routes using a Fiber router
func (app *Application) RegisterRoutes(router fiber.Router) {
	app.HealthHandler.RegisterRoutes(router)
	app.PaymentHandler.RegisterRoutes(router)
	app.StudentHandler.RegisterRoutes(router)
	app.DuesHandler.RegisterRoutes(router)
	app.ScheduleHandler.RegisterRoutes(router)
	app.TaskHandler.RegisterRoutes(router)
}

// provideChargeBuilder adapts the config-bound callback base URL to the
// builder's plain string dependency.
func provideChargeBuilder(config *infrastructures.AppConfig) *services.ChargeBuilder {
	return services.NewChargeBuilder(config.BaseURL)
}
