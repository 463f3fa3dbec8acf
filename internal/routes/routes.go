package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/orderdesk/internal/config"
	"github.com/example/orderdesk/internal/handlers"
	"github.com/example/orderdesk/internal/repository"
)

// Register wires up all HTTP routes against a database handle.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	RegisterHandlers(app, repository.NewUserRepository(db), repository.NewOrderRepository(db), cfg)
}

// RegisterHandlers wires up all HTTP routes against explicit repositories.
func RegisterHandlers(app *fiber.App, users repository.UserRepository, orders repository.OrderRepository, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(users, cfg)
	orderHandler := handlers.NewOrderHandler(orders)
	reportHandler := handlers.NewReportHandler(orders)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Post("/login", authHandler.Login)

	app.Put("/addOrder", orderHandler.AddOrder)
	app.Get("/getOrders", orderHandler.GetOrders)
	app.Get("/getLastOrder", orderHandler.GetLastOrder)
	app.Get("/getOrderDetails", orderHandler.GetOrderDetails)
	app.Get("/getRecentOrders", orderHandler.GetRecentOrders)

	app.Get("/getOrdersSummary", reportHandler.GetOrdersSummary)
	app.Get("/getCustomerDetails", reportHandler.GetCustomerDetails)
	app.Get("/bestSelling", reportHandler.BestSelling)
}
