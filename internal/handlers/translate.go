package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/quochoi227/ai-english-app/internal/config"
	"github.com/quochoi227/ai-english-app/internal/models"
	"github.com/quochoi227/ai-english-app/internal/services"
	"github.com/quochoi227/ai-english-app/utils"
)

// Translate turns (text, context) into a structured translation. Input is
// rejected before any upstream call; a malformed model reply degrades to the
// raw text wrapped as the translation.
func (h *Handler) Translate(c *fiber.Ctx) error {
	var req models.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Vui lòng cung cấp text và ngữ cảnh")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Vui lòng cung cấp text và ngữ cảnh")
	}

	prompt := services.BuildTranslatePrompt(req.Text, req.Context)
	raw, err := h.ai.Generate(context.Background(), prompt)
	if err != nil {
		config.Logger.WithError(err).Error("translate generation failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Có lỗi xảy ra khi dịch. Vui lòng thử lại.")
	}

	result := services.Decode(raw, models.TranslateFallback(raw))
	if result.Alternatives == nil {
		result.Alternatives = []string{}
	}

	return c.JSON(result)
}
