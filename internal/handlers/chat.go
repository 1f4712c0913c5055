package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/quochoi227/ai-english-app/internal/config"
	"github.com/quochoi227/ai-english-app/internal/models"
	"github.com/quochoi227/ai-english-app/internal/services"
	"github.com/quochoi227/ai-english-app/utils"
)

// Chat answers the last user turn of a client-held conversation. The full
// history arrives in the request; the reply is plain text, no decoding step.
func (h *Handler) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Vui lòng cung cấp tin nhắn")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Vui lòng cung cấp tin nhắn")
	}

	prompt := services.BuildChatPrompt(req.Messages, req.SystemPrompt)
	content, err := h.ai.Generate(context.Background(), prompt)
	if err != nil {
		config.Logger.WithError(err).Error("chat generation failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Có lỗi xảy ra. Vui lòng thử lại.")
	}

	return c.JSON(models.ChatResponse{
		Content: content,
		Role:    "assistant",
	})
}
