package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/orderdesk/internal/bootstrap"
	"github.com/example/orderdesk/internal/config"
	"github.com/example/orderdesk/internal/database"
	"github.com/example/orderdesk/internal/handlers"
	"github.com/example/orderdesk/internal/repository"
	"github.com/example/orderdesk/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	app := fiber.New(fiber.Config{
		AppName:      "Orderdesk Backend",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	routes.Register(app, db, cfg)

	if err := bootstrap.EnsureUser(context.Background(), repository.NewUserRepository(db), cfg); err != nil {
		log.Printf("user bootstrap failed: %v", err)
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("fiber.Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}

	database.Close(db)
}
