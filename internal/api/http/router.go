package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/afit-dev/staff-management/internal/api/http/handlers"
	"github.com/afit-dev/staff-management/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Staff          *handlers.StaffHandler
	Departments    *handlers.DepartmentHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	authed := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	authed.Get("/staff/:id", cfg.Staff.GetStaff)
	authed.Get("/departments/:id", cfg.Departments.Get)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Post("/staff", cfg.Staff.Onboard)
	admin.Post("/admins", cfg.Staff.PromoteAdmin)
	admin.Post("/departments", cfg.Departments.Create)
}
