//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/classkas/kasku-core/internal/app/deliveries"
	"github.com/classkas/kasku-core/internal/app/middlewares"
	"github.com/classkas/kasku-core/internal/app/services"
	"github.com/classkas/kasku-core/internal/app/stores"
	"github.com/classkas/kasku-core/internal/infrastructures"
	"github.com/classkas/kasku-core/pkg/ratelimit"
	"github.com/google/wire"
)

// Infrastructure providers
var infrastructureSet = wire.NewSet(
	infrastructures.NewDatabase,
	infrastructures.NewRedisClient,
	infrastructures.NewValidator,
	infrastructures.NewMidtransClient,
	wire.Value("kasku"),
	wire.Bind(new(ratelimit.RateLimiter), new(*ratelimit.RedisRateLimiter)),
	ratelimit.NewRedisRateLimiter,
)

// Store providers
var storeSet = wire.NewSet(
	stores.NewGormLedger,
	wire.Bind(new(stores.LedgerStore), new(*stores.GormLedger)),
)

// Service providers
var serviceSet = wire.NewSet(
	services.NewMidtransService,
	wire.Bind(new(services.Gateway), new(*services.MidtransService)),
	provideChargeBuilder,
	services.NewPaymentService,
	services.NewStudentService,
	services.NewDuesService,
	services.NewScheduleService,
	services.NewTaskService,
)

// Middleware providers
var middlewareSet = wire.NewSet(
	middlewares.NewAdminMiddleware,
	middlewares.NewRateLimitMiddleware,
)

// Handler providers
var handlerSet = wire.NewSet(
	deliveries.NewHealthHandler,
	deliveries.NewPaymentHandler,
	deliveries.NewStudentHandler,
	deliveries.NewDuesHandler,
	deliveries.NewScheduleHandler,
	deliveries.NewTaskHandler,
	wire.Struct(new(Application), "*"),
)

// InitializeApplication initializes the application with all its dependencies
func InitializeApplication(config *infrastructures.AppConfig) (*Application, error) {
	wire.Build(
		infrastructureSet,
		storeSet,
		serviceSet,
		middlewareSet,
		handlerSet,
	)
	return &Application{}, nil
}
