package models

import (
	"time"

	"github.com/google/uuid"
)

// Badge names double as stable keys for the award rules.
const (
	BadgeEarlyContributor = "Early Contributor"
	BadgeXPWarrior        = "XP Warrior"
	BadgePublicSpeaker    = "Public Speaker"
)

type Badge struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Criteria    string    `db:"criteria"`
	IconURL     string    `db:"icon_url"`
}

type UserBadge struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	BadgeID   uuid.UUID `db:"badge_id"`
	AwardedAt time.Time `db:"awarded_at"`
}
