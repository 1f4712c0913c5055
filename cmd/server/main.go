package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/quochoi227/ai-english-app/internal/config"
	"github.com/quochoi227/ai-english-app/internal/handlers"
	"github.com/quochoi227/ai-english-app/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	config.InitLogger()
	cfg := config.Load()

	if !cfg.GateEnabled() {
		config.Logger.Warn("SECRET_SIGNATURE is not set: access gate is DISABLED, every route is public")
	}
	if cfg.GeminiAPIKey == "" {
		config.Logger.Warn("GEMINI_API_KEY is not set: AI endpoints will fail until it is configured")
	}

	ai := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))

	// Routes (the access gate is mounted inside Register, ahead of them)
	handlers.Register(app, handlers.New(cfg, ai))

	config.Logger.Infof("Server starting on port %s", cfg.Port)
	config.Logger.Fatal(app.Listen(":" + cfg.Port))
}
