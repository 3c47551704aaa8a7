package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/catalog"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CategoryUC  *catalog.CategoryUseCase
	MenuItemUC  *catalog.MenuItemUseCase
	DashboardUC *catalog.DashboardUseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	requireAuth := AuthMiddleware(deps.JWTSecret, deps.AuthUC)
	authGroup.Post("/logout", requireAuth, authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	api.Get("/dashboard", requireAuth, dashboardHandler.Get)

	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	itemHandler := NewMenuItemHandler(deps.MenuItemUC, deps.Log)
	categories := api.Group("/categories", requireAuth)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Rename)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Post("/:id/items", itemHandler.Create)

	items := api.Group("/items", requireAuth)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
}
