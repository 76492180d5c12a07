package deliveries

import (
	"github.com/classkas/kasku-core/internal/app/middlewares"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/app/pkg"
	"github.com/classkas/kasku-core/internal/app/services"
	"github.com/classkas/kasku-core/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService      *services.PaymentService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewPaymentHandler(paymentService *services.PaymentService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *PaymentHandler {
	return &PaymentHandler{
		paymentService:      paymentService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentGroup := router.Group("/payments")

	paymentGroup.Post("/", h.rateLimitMiddleware.LimitByIP(ratelimit.PaymentLimit), h.CreatePayment)
	paymentGroup.Post("/status", h.rateLimitMiddleware.LimitByIP(ratelimit.PublicAPILimit), h.CheckStatus)
	paymentGroup.Post("/webhook", h.rateLimitMiddleware.LimitByIP(ratelimit.WebhookLimit), h.HandleWebhook)

	router.Get("/gateway-events", h.adminMiddleware.RequireAdminKey, h.ListGatewayEvents)
}

func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var req models.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	payment, err := h.paymentService.CreatePayment(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, payment)
}

func (h *PaymentHandler) CheckStatus(c *fiber.Ctx) error {
	var req models.PaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	status, err := h.paymentService.CheckStatus(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, status)
}

// HandleWebhook receives provider notifications. The provider only needs an
// acknowledgement body, not the updated transaction.
func (h *PaymentHandler) HandleWebhook(c *fiber.Ctx) error {
	var notification models.GatewayNotification
	if err := c.BodyParser(&notification); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	if err := h.paymentService.HandleNotification(c.Context(), &notification); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
	})
}

func (h *PaymentHandler) ListGatewayEvents(c *fiber.Ctx) error {
	orderID := c.Query("order_id")
	limit := c.QueryInt("limit", 100)

	events, err := h.paymentService.ListGatewayEvents(c.Context(), orderID, limit)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, events)
}
