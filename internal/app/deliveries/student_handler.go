package deliveries

import (
	"github.com/classkas/kasku-core/internal/app/middlewares"
	"github.com/classkas/kasku-core/internal/app/models"
	"github.com/classkas/kasku-core/internal/app/pkg"
	"github.com/classkas/kasku-core/internal/app/services"
	"github.com/classkas/kasku-core/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
)

type StudentHandler struct {
	studentService      *services.StudentService
	adminMiddleware     *middlewares.AdminMiddleware
	rateLimitMiddleware *middlewares.RateLimitMiddleware
}

func NewStudentHandler(studentService *services.StudentService, adminMiddleware *middlewares.AdminMiddleware, rateLimitMiddleware *middlewares.RateLimitMiddleware) *StudentHandler {
	return &StudentHandler{
		studentService:      studentService,
		adminMiddleware:     adminMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (h *StudentHandler) RegisterRoutes(router fiber.Router) {
	studentGroup := router.Group("/students", h.rateLimitMiddleware.LimitByIP(ratelimit.PublicAPILimit))

	studentGroup.Get("/", h.GetStudents)
	studentGroup.Get("/:nim", h.GetStudentByNIM)
	studentGroup.Post("/", h.adminMiddleware.RequireAdminKey, h.CreateStudent)
}

func (h *StudentHandler) GetStudents(c *fiber.Ctx) error {
	students, err := h.studentService.ListStudents(c.Context())
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, students)
}

// GetStudentByNIM backs the sign-in screen: the client looks the student up by
// NIM and keeps the row locally.
func (h *StudentHandler) GetStudentByNIM(c *fiber.Ctx) error {
	student, err := h.studentService.GetStudentByNIM(c.Context(), c.Params("nim"))
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, student)
}

func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	var req models.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return pkg.ErrorResponse(c, err)
	}

	student, err := h.studentService.CreateStudent(c.Context(), &req)
	if err != nil {
		return pkg.ErrorResponse(c, err)
	}

	return pkg.SuccessResponse(c, student)
}
