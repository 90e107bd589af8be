package handlers

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/afit-dev/staff-management/internal/api/dto"
	"github.com/afit-dev/staff-management/internal/domain"
	"github.com/afit-dev/staff-management/internal/service"
	apperrors "github.com/afit-dev/staff-management/pkg/util"
)

// StaffHandler exposes onboarding and staff lookup endpoints.
type StaffHandler struct {
	onboarding *service.OnboardingService
	org        *service.DepartmentService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(onboarding *service.OnboardingService, org *service.DepartmentService) *StaffHandler {
	return &StaffHandler{onboarding: onboarding, org: org}
}

// Onboard handles POST /admin/staff.
func (h *StaffHandler) Onboard(c *fiber.Ctx) error {
	var req dto.StaffOnboardRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.onboarding.OnboardStaff(c.UserContext(), service.OnboardingInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		State:        req.State,
		LGA:          req.LGA,
		Ward:         req.Ward,
		Password:     req.Password,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		return err
	}

	resp := staffResponse(result.Staff, result.User)
	resp.CacheWarning = result.CacheWarning
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": resp})
}

// GetStaff handles GET /staff/:id. Fiber decodes %2F in the path, so staff
// ids like AFIT/ENG/0001 arrive URL-encoded.
func (h *StaffHandler) GetStaff(c *fiber.Ctx) error {
	staffID, err := staffIDParam(c)
	if err != nil {
		return err
	}
	detail, err := h.onboarding.GetStaff(c.UserContext(), staffID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(detail.Staff, detail.User)})
}

// PromoteAdmin handles POST /admin/admins.
func (h *StaffHandler) PromoteAdmin(c *fiber.Ctx) error {
	var req dto.AdminPromoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	admin, err := h.org.PromoteAdmin(c.UserContext(), req.StaffID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.AdminResponse{ID: admin.ID, StaffID: admin.StaffID},
	})
}

func staffIDParam(c *fiber.Ctx) (string, error) {
	staffID, err := url.PathUnescape(c.Params("id"))
	if err != nil || staffID == "" {
		return "", apperrors.NewValidationError("staff id required", nil)
	}
	return staffID, nil
}

func staffResponse(staff *domain.Staff, user *domain.User) dto.StaffResponse {
	return dto.StaffResponse{
		StaffID:      staff.ID,
		DepartmentID: staff.DepartmentID,
		SupervisorID: staff.SupervisorID,
		User:         userResponse(user),
	}
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		PhoneNumber:   user.PhoneNumber,
		MobileNetwork: user.MobileNetwork,
		State:         user.State,
		LGA:           user.LGA,
		Ward:          user.Ward,
	}
}
