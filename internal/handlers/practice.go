package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/quochoi227/ai-english-app/internal/config"
	"github.com/quochoi227/ai-english-app/internal/models"
	"github.com/quochoi227/ai-english-app/internal/services"
	"github.com/quochoi227/ai-english-app/utils"
)

// GeneratePractice produces a fresh Vietnamese paragraph for the learner.
// This endpoint never fails on the model's account: both an upstream error
// and an undecodable reply degrade to the canned paragraph.
func (h *Handler) GeneratePractice(c *fiber.Ctx) error {
	raw, err := h.ai.Generate(context.Background(), services.BuildPracticePrompt())
	if err != nil {
		config.Logger.WithError(err).Error("practice generation failed, serving canned paragraph")
		return c.JSON(models.PracticeFallback())
	}

	return c.JSON(services.Decode(raw, models.PracticeFallback()))
}

// EvaluateTranslation grades one (original, userTranslation) pair. IsCorrect
// is recomputed from the score so the boundary at 7 holds regardless of what
// the model claims.
func (h *Handler) EvaluateTranslation(c *fiber.Ctx) error {
	var req models.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Vui lòng cung cấp câu gốc và bản dịch")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Vui lòng cung cấp câu gốc và bản dịch")
	}

	prompt := services.BuildEvaluatePrompt(req.OriginalSentence, req.UserTranslation)
	raw, err := h.ai.Generate(context.Background(), prompt)
	if err != nil {
		config.Logger.WithError(err).Error("evaluate generation failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Có lỗi xảy ra khi chấm điểm. Vui lòng thử lại.")
	}

	result := services.Decode(raw, models.EvaluationFallback())
	result.IsCorrect = result.Score >= 7
	if result.Errors == nil {
		result.Errors = []models.TranslationIssue{}
	}

	return c.JSON(result)
}
