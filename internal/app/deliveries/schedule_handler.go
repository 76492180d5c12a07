package deliveries

import (
	"github.com/classkas/kasku-core/internal/app/middlewares"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/app/pkg"
	"github.com/classkas/kasku-core/internal/app/services"
	"github.com/classkas/kasku-core/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
)

type ScheduleHandler struct {
	scheduleService     *services.ScheduleService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewScheduleHandler(scheduleService *services.ScheduleService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService:     scheduleService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *ScheduleHandler) RegisterRoutes(router fiber.Router) {
	scheduleGroup := router.Group("/schedules", h.rateLimitMiddleware.LimitByIP(ratelimit.PublicAPILimit))

	scheduleGroup.Get("/", h.GetEntries)
	scheduleGroup.Post("/", h.adminMiddleware.RequireAdminKey, h.CreateEntry)
	scheduleGroup.Patch("/:id", h.adminMiddleware.RequireAdminKey, h.UpdateEntry)
	scheduleGroup.Delete("/:id", h.adminMiddleware.RequireAdminKey, h.DeleteEntry)
}

func (h *ScheduleHandler) GetEntries(c *fiber.Ctx) error {
	entries, err := h.scheduleService.ListEntries(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, entries)
}

func (h *ScheduleHandler) CreateEntry(c *fiber.Ctx) error {
	var req models.ScheduleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	entry, err := h.scheduleService.CreateEntry(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, entry)
}

func (h *ScheduleHandler) UpdateEntry(c *fiber.Ctx) error {
	var req models.ScheduleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	entry, err := h.scheduleService.UpdateEntry(c.Context(), c.Params("id"), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, entry)
}

func (h *ScheduleHandler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.scheduleService.DeleteEntry(c.Context(), c.Params("id")); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}
