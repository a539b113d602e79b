package repository

import (
	"context"
	"errors"
	"time"

	"mentorai/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BadgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBadgeRepository(db *pgxpool.Pool, logger *zap.Logger) *BadgeRepository {
	return &BadgeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BadgeRepository) Create(ctx context.Context, badge *models.Badge) error {
	query := squirrel.Insert("badges").
		Columns("id", "name", "description", "criteria", "icon_url").
		Values(badge.ID, badge.Name, badge.Description, badge.Criteria, badge.IconURL).
		Suffix("ON CONFLICT (name) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BadgeRepository) GetByName(ctx context.Context, name string) (*models.Badge, error) {
	query := squirrel.Select("id", "name", "description", "criteria", "icon_url").
		From("badges").
		Where(squirrel.Eq{"name": name}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var badge models.Badge
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&badge.ID, &badge.Name, &badge.Description, &badge.Criteria, &badge.IconURL,
	)
	if err != nil {
		return nil, err
	}

	return &badge, nil
}

// HasBadge reports whether a user already holds the badge.
func (r *BadgeRepository) HasBadge(ctx context.Context, userID, badgeID uuid.UUID) (bool, error) {
	query := squirrel.Select("id").
		From("user_badges").
		Where(squirrel.Eq{"user_id": userID, "badge_id": badgeID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *BadgeRepository) Award(ctx context.Context, userID, badgeID uuid.UUID) (*models.UserBadge, error) {
	userBadge := &models.UserBadge{
		ID:        uuid.New(),
		UserID:    userID,
		BadgeID:   badgeID,
		AwardedAt: time.Now(),
	}

	query := squirrel.Insert("user_badges").
		Columns("id", "user_id", "badge_id", "awarded_at").
		Values(userBadge.ID, userBadge.UserID, userBadge.BadgeID, userBadge.AwardedAt).
		Suffix("ON CONFLICT (user_id, badge_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, err
	}

	return userBadge, nil
}

// ListForUser returns the badges a user holds with the award timestamps.
func (r *BadgeRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Badge, []time.Time, error) {
	query := squirrel.Select("b.id", "b.name", "b.description", "b.criteria", "b.icon_url", "ub.awarded_at").
		From("user_badges ub").
		Join("badges b ON b.id = ub.badge_id").
		Where(squirrel.Eq{"ub.user_id": userID}).
		OrderBy("ub.awarded_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var badges []*models.Badge
	var awardedAt []time.Time
	for rows.Next() {
		var badge models.Badge
		var at time.Time
		if err := rows.Scan(&badge.ID, &badge.Name, &badge.Description, &badge.Criteria, &badge.IconURL, &at); err != nil {
			return nil, nil, err
		}
		badges = append(badges, &badge)
		awardedAt = append(awardedAt, at)
	}

	return badges, awardedAt, rows.Err()
}
