package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/modelboard/internal/api"
	"github.com/example/modelboard/internal/config"
	"github.com/example/modelboard/internal/routes"
)

func main() {
	cfg := config.Load()

	client := api.New(api.Config{
		BaseURL:    cfg.BackendAPIURL,
		Token:      cfg.BackendAPIToken,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
	})

	app := fiber.New(fiber.Config{
		AppName: "Modelboard Admin Gateway",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, client)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Get(ctx, "/users"); err != nil {
		log.Printf("Backend reachability probe failed: %v", err)
	}

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
