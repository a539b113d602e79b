package service

import (
	"context"
	"time"

	"mentorai/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// XP awarded per forum action.
const (
	XPForPost           = 25
	XPForReply          = 10
	XPForUpvoteReceived = 5
)

// xpWarriorThreshold is the XP total that earns the XP Warrior badge.
const xpWarriorThreshold = 100

// Gamifier is the surface other services use to grant XP and badges.
type Gamifier interface {
	AddXP(ctx context.Context, userID uuid.UUID, points int) (int, error)
	AwardBadge(ctx context.Context, userID uuid.UUID, badgeName string)
}

type GamificationUserStore interface {
	AddXP(ctx context.Context, id uuid.UUID, points int) (int, error)
	Leaderboard(ctx context.Context, limit int) ([]*models.User, error)
}

type BadgeStore interface {
	GetByName(ctx context.Context, name string) (*models.Badge, error)
	HasBadge(ctx context.Context, userID, badgeID uuid.UUID) (bool, error)
	Award(ctx context.Context, userID, badgeID uuid.UUID) (*models.UserBadge, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Badge, []time.Time, error)
}

type GamificationService struct {
	users  GamificationUserStore
	badges BadgeStore
	logger *zap.Logger
}

func NewGamificationService(users GamificationUserStore, badges BadgeStore, logger *zap.Logger) *GamificationService {
	return &GamificationService{
		users:  users,
		badges: badges,
		logger: logger,
	}
}

// AddXP credits points to a user and runs the XP-threshold badge checks
// against the new total. Badge failures are logged, never propagated: XP
// accrual must not fail because a badge could not be awarded.
func (s *GamificationService) AddXP(ctx context.Context, userID uuid.UUID, points int) (int, error) {
	total, err := s.users.AddXP(ctx, userID, points)
	if err != nil {
		return 0, err
	}

	s.logger.Info("XP added",
		zap.String("user_id", userID.String()),
		zap.Int("points", points),
		zap.Int("total", total),
	)

	if total > 0 {
		s.AwardBadge(ctx, userID, models.BadgeEarlyContributor)
	}
	if total >= xpWarriorThreshold {
		s.AwardBadge(ctx, userID, models.BadgeXPWarrior)
	}

	return total, nil
}

// AwardBadge grants the named badge unless the user already holds it.
func (s *GamificationService) AwardBadge(ctx context.Context, userID uuid.UUID, badgeName string) {
	badge, err := s.badges.GetByName(ctx, badgeName)
	if err != nil {
		s.logger.Warn("Badge not found, skipping award",
			zap.String("badge", badgeName),
			zap.Error(err),
		)
		return
	}

	has, err := s.badges.HasBadge(ctx, userID, badge.ID)
	if err != nil {
		s.logger.Warn("Badge lookup failed", zap.String("badge", badgeName), zap.Error(err))
		return
	}
	if has {
		return
	}

	if _, err := s.badges.Award(ctx, userID, badge.ID); err != nil {
		s.logger.Warn("Badge award failed", zap.String("badge", badgeName), zap.Error(err))
		return
	}

	s.logger.Info("Badge awarded",
		zap.String("user_id", userID.String()),
		zap.String("badge", badgeName),
	)
}

func (s *GamificationService) Leaderboard(ctx context.Context, limit int) ([]*models.User, error) {
	return s.users.Leaderboard(ctx, limit)
}

func (s *GamificationService) UserBadges(ctx context.Context, userID uuid.UUID) ([]*models.Badge, []time.Time, error) {
	return s.badges.ListForUser(ctx, userID)
}
