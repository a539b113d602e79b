package handlers

import (
	"time"

	"mentorai/internal/dto"
	"mentorai/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	authService         *service.AuthService
	gamificationService *service.GamificationService
	logger              *zap.Logger
}

func NewUserHandler(authService *service.AuthService, gamificationService *service.GamificationService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		authService:         authService,
		gamificationService: gamificationService,
		logger:              logger,
	}
}

// Me godoc
// @Summary Get current user profile
// @Description Return the authenticated user's profile including XP
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	profile, err := h.authService.GetProfile(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(profile)
}

// Leaderboard godoc
// @Summary XP leaderboard
// @Description Top users ordered by XP descending
// @Tags users
// @Produce json
// @Param limit query int false "Number of entries (default 10)"
// @Success 200 {array} dto.LeaderboardEntry
// @Security BearerAuth
// @Router /api/v1/users/leaderboard [get]
func (h *UserHandler) Leaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit")
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	users, err := h.gamificationService.Leaderboard(c.Context(), limit)
	if err != nil {
		h.logger.Error("Leaderboard lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Leaderboard lookup failed"})
	}

	entries := make([]dto.LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, dto.LeaderboardEntry{
			Username: user.Username,
			XPPoints: user.XPPoints,
		})
	}
	return c.JSON(entries)
}

// Badges godoc
// @Summary List earned badges
// @Description Badges the authenticated user has earned, with award timestamps
// @Tags users
// @Produce json
// @Success 200 {array} dto.BadgeResponse
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/users/me/badges [get]
func (h *UserHandler) Badges(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	badges, awardedAt, err := h.gamificationService.UserBadges(c.Context(), userID)
	if err != nil {
		h.logger.Error("Badge lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Badge lookup failed"})
	}

	resp := make([]dto.BadgeResponse, 0, len(badges))
	for i, badge := range badges {
		resp = append(resp, dto.BadgeResponse{
			Name:        badge.Name,
			Description: badge.Description,
			AwardedAt:   awardedAt[i].Format(time.RFC3339),
		})
	}
	return c.JSON(resp)
}
