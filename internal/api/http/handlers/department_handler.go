package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/afit-dev/staff-management/internal/api/dto"
	"github.com/afit-dev/staff-management/internal/domain"
	"github.com/afit-dev/staff-management/internal/service"
	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

// DepartmentHandler exposes department endpoints.
type DepartmentHandler struct {
	org *service.DepartmentService
}

// NewDepartmentHandler constructs handler.
func NewDepartmentHandler(org *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{org: org}
}

// Create handles POST /admin/departments.
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	dept, err := h.org.CreateDepartment(c.UserContext(), req.Name, req.ShortName, req.Description, req.HeadAdminID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": departmentResponse(dept)})
}

// Get handles GET /departments/:id.
func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	dept, err := h.org.GetDepartment(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": departmentResponse(dept)})
}

func departmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		ShortName:   dept.ShortName,
		Description: dept.Description,
		HeadAdminID: dept.HeadAdminID,
	}
}
