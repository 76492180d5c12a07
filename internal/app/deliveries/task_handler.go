package deliveries

import (
	"github.com/classkas/kasku-core/internal/app/middlewares"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/app/pkg"
	"github.com/classkas/kasku-core/internal/app/services"
	"github.com/classkas/kasku-core/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	taskService         *services.TaskService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewTaskHandler(taskService *services.TaskService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *TaskHandler {
	return &TaskHandler{
		taskService:         taskService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *TaskHandler) RegisterRoutes(router fiber.Router) {
	taskGroup := router.Group("/tasks", h.rateLimitMiddleware.LimitByIP(ratelimit.PublicAPILimit))

	taskGroup.Get("/", h.GetTasks)
	taskGroup.Post("/", h.adminMiddleware.RequireAdminKey, h.CreateTask)
	// Registered before /:id so "expired" is not parsed as a task id.
	taskGroup.Delete("/expired", h.adminMiddleware.RequireAdminKey, h.DeleteExpired)
	taskGroup.Patch("/:id", h.adminMiddleware.RequireAdminKey, h.UpdateTask)
	taskGroup.Delete("/:id", h.adminMiddleware.RequireAdminKey, h.DeleteTask)
}

func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	tasks, err := h.taskService.ListTasks(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, tasks)
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req models.TaskCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	task, err := h.taskService.CreateTask(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, task)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	var req models.TaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	task, err := h.taskService.UpdateTask(c.Context(), c.Params("id"), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, task)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	if err := h.taskService.DeleteTask(c.Context(), c.Params("id")); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse[any](c, nil)
}

func (h *TaskHandler) DeleteExpired(c *fiber.Ctx) error {
	deleted, err := h.taskService.DeleteExpired(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, fiber.Map{
		"deleted": deleted,
	})
}
