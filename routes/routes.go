package routes

import (
	"catalog/controllers"
	"catalog/middleware"
	"catalog/store"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires every endpoint. Only the two mutating routes sit
// behind the admin token gate; reads and the health probe stay open.
func RegisterRoutes(app *fiber.App, st store.Store, adminToken string) {

	app.Get("/health", controllers.Health)

	// public (replica)
	app.Get("/products", controllers.GetProducts(st))

	// backoffice (primary)
	admin := app.Group("/admin", middleware.AdminRequired(adminToken))
	admin.Post("/products", controllers.CreateProduct(st))
	admin.Patch("/products/:product_id", controllers.UpdateProduct(st))
}
