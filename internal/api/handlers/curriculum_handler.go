package handlers

import (
	"errors"
	"strings"

	"mentorai/internal/apperr"
	"mentorai/internal/dto"
	"mentorai/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CurriculumHandler struct {
	curriculumService *service.CurriculumService
	logger            *zap.Logger
}

func NewCurriculumHandler(curriculumService *service.CurriculumService, logger *zap.Logger) *CurriculumHandler {
	return &CurriculumHandler{
		curriculumService: curriculumService,
		logger:            logger,
	}
}

// Generate godoc
// @Summary Generate a learning curriculum
// @Description Turn a free-text learning goal into a structured curriculum of modules with topics and objectives
// @Tags curriculum
// @Accept json
// @Produce json
// @Param request body dto.GenerateCurriculumRequest true "Learning goal"
// @Success 200 {object} dto.CurriculumResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/curriculum/generate [post]
func (h *CurriculumHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateCurriculumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Goal) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Learning goal is required",
		})
	}

	curriculum, err := h.curriculumService.Generate(c.Context(), req.Goal)
	if err != nil {
		h.logger.Error("Curriculum generation failed",
			zap.String("goal", req.Goal),
			zap.Error(err),
		)
		if errors.Is(err, apperr.ErrGeneration) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Curriculum generation backend unavailable",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Curriculum generation failed",
		})
	}

	return c.JSON(dto.NewCurriculumResponse(curriculum))
}
