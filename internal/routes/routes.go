package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/modelboard/internal/api"
	"github.com/example/modelboard/internal/handlers"
	"github.com/example/modelboard/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, client *api.Client) {
	userService := services.NewUserService(client)
	modelService := services.NewModelService(client)
	dashboardService := services.NewDashboardService(client)

	userHandler := handlers.NewUserHandler(userService)
	modelHandler := handlers.NewModelHandler(modelService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	apiGroup := app.Group("/api")

	apiGroup.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// User administration
	users := apiGroup.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/search", userHandler.Search)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id/status", userHandler.UpdateStatus)

	// Model moderation. Static segments register before :id so the router
	// never swallows them as identifiers.
	admin := apiGroup.Group("/admin/models")
	admin.Get("/", modelHandler.List)
	admin.Get("/pending", modelHandler.Pending)
	admin.Get("/search", modelHandler.Search)
	admin.Get("/stats", modelHandler.Stats)
	admin.Post("/bulk/approve", modelHandler.BulkApprove)
	admin.Post("/bulk/reject", modelHandler.BulkReject)
	admin.Post("/bulk/availability", modelHandler.BulkAvailability)
	admin.Post("/bulk/toggle-availability", modelHandler.BulkToggle)
	admin.Get("/:id", modelHandler.Get)
	admin.Get("/:id/analytics", modelHandler.Analytics)
	admin.Get("/:id/transactions", modelHandler.Transactions)
	admin.Put("/:id/approve", modelHandler.Approve)
	admin.Put("/:id/reject", modelHandler.Reject)
	admin.Put("/:id/availability", modelHandler.Availability)
	admin.Put("/:id/price", modelHandler.Price)
	admin.Delete("/:id", modelHandler.Deactivate)

	// Dashboard
	apiGroup.Get("/dashboard/metrics", dashboardHandler.Metrics)
}
