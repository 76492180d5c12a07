package deliveries

import (
	"github.com/classkas/kasku-core/internal/app/middlewares"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/app/pkg"
	"github.com/classkas/kasku-core/internal/app/services"
	"github.com/classkas/kasku-core/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
)

type DuesHandler struct {
	duesService         *services.DuesService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewDuesHandler(duesService *services.DuesService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *DuesHandler {
	return &DuesHandler{
		duesService:         duesService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *DuesHandler) RegisterRoutes(router fiber.Router) {
	duesGroup := router.Group("/dues", h.rateLimitMiddleware.LimitByIP(ratelimit.PublicAPILimit))

	duesGroup.Get("/weeks", h.GetWeeks)
	duesGroup.Post("/weeks", h.adminMiddleware.RequireAdminKey, h.CreateWeek)
	duesGroup.Get("/statuses", h.GetStatuses)
	duesGroup.Patch("/statuses", h.adminMiddleware.RequireAdminKey, h.SetStatus)
	duesGroup.Get("/expenses", h.GetExpenses)
	duesGroup.Post("/expenses", h.adminMiddleware.RequireAdminKey, h.AddExpense)
	duesGroup.Get("/summary", h.GetSummary)
}

func (h *DuesHandler) GetWeeks(c *fiber.Ctx) error {
	weeks, err := h.duesService.ListWeeks(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, weeks)
}

func (h *DuesHandler) CreateWeek(c *fiber.Ctx) error {
	var req models.DuesWeekCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	week, err := h.duesService.CreateWeek(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, week)
}

func (h *DuesHandler) GetStatuses(c *fiber.Ctx) error {
	statuses, err := h.duesService.ListStatuses(c.Context(), c.Query("student_id"))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, statuses)
}

// SetStatus is the manual override for cash paid by hand. Gateway settlements
// flip the flag on their own.
func (h *DuesHandler) SetStatus(c *fiber.Ctx) error {
	var req models.DuesStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	if err := h.duesService.SetStatus(c.Context(), &req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}

func (h *DuesHandler) GetExpenses(c *fiber.Ctx) error {
	expenses, err := h.duesService.ListExpenses(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, expenses)
}

func (h *DuesHandler) AddExpense(c *fiber.Ctx) error {
	var req models.CashEntryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	expense, err := h.duesService.AddExpense(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, expense)
}

func (h *DuesHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.duesService.Summary(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, summary)
}
