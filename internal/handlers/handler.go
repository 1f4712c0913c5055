package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quochoi227/ai-english-app/internal/config"
	"github.com/quochoi227/ai-english-app/internal/services"
)

// Handler carries the configuration and the generation client shared by all
// routes. Nothing else is shared; every request is stateless.
type Handler struct {
	cfg *config.Config
	ai  services.Generator
}

func New(cfg *config.Config, ai services.Generator) *Handler {
	return &Handler{cfg: cfg, ai: ai}
}

// Register mounts the access gate and all routes. Main and the tests share
// this topology.
func Register(app *fiber.App, h *Handler) {
	app.Use(h.AccessGate)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", h.Login)

	api.Post("/chat", h.Chat)
	api.Post("/translate", h.Translate)

	practice := api.Group("/practice")
	practice.Post("/generate", h.GeneratePractice)
	practice.Post("/evaluate", h.EvaluateTranslation)
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
