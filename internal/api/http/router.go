package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/badobtech/backoffice-service/internal/api/http/handlers"
	"github.com/badobtech/backoffice-service/internal/auth"
	"github.com/badobtech/backoffice-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Accounts       *handlers.AccountsHandler
	Calls          *handlers.CallsHandler
	Hours          *handlers.HoursHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Role sets are declared per route and
// checked by exact membership.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	verified := cfg.AuthMiddleware.Handle

	app.Get("/users", verified,
		auth.RequireRole(domain.RoleAdmin, domain.RoleSupervisor), cfg.Employees.List)
	app.Post("/users", verified,
		auth.RequireRole(domain.RoleAdmin), cfg.Employees.Create)
	app.Get("/users/:userId", RequireNumericParam("userId"), cfg.Employees.Get)
	app.Put("/users/:userId", verified,
		auth.RequireRole(domain.RoleAdmin, domain.RoleSupervisor),
		RequireNumericParam("userId"), cfg.Employees.Update)
	app.Delete("/users/:userId", verified,
		auth.RequireRole(domain.RoleAdmin),
		RequireNumericParam("userId"), cfg.Employees.Delete)

	app.Post("/logHours", verified, auth.RequireAuthenticated(), cfg.Hours.Log)
	app.Get("/logHours", verified,
		auth.RequireRole(domain.RoleAdmin, domain.RoleSupervisor), cfg.Hours.List)

	app.Post("/calls", verified, auth.RequireAuthenticated(), cfg.Calls.Record)
	app.Put("/calls/:callId", verified,
		auth.RequireRole(domain.RoleAdmin, domain.RoleSupervisor),
		RequireNumericParam("callId"), cfg.Calls.Amend)

	app.Get("/accounts", verified, auth.RequireAuthenticated(), cfg.Accounts.List)
	app.Post("/accounts", verified, auth.RequireAuthenticated(), cfg.Accounts.Create)
	app.Get("/accounts/:email", verified, auth.RequireAuthenticated(), cfg.Accounts.Get)
	app.Get("/accounts/:email/calls", verified, auth.RequireAuthenticated(), cfg.Calls.ListByAccount)
	app.Delete("/accounts/:email", verified,
		auth.RequireRole(domain.RoleAdmin), cfg.Accounts.Delete)
}
