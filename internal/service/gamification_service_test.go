package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentorai/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserStore struct {
	totals map[uuid.UUID]int
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{totals: make(map[uuid.UUID]int)}
}

func (f *fakeUserStore) AddXP(_ context.Context, id uuid.UUID, points int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.totals[id] += points
	return f.totals[id], nil
}

func (f *fakeUserStore) Leaderboard(_ context.Context, _ int) ([]*models.User, error) {
	return nil, nil
}

type fakeBadgeStore struct {
	byName  map[string]*models.Badge
	awarded map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeBadgeStore(names ...string) *fakeBadgeStore {
	store := &fakeBadgeStore{
		byName:  make(map[string]*models.Badge),
		awarded: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
	for _, name := range names {
		store.byName[name] = &models.Badge{ID: uuid.New(), Name: name}
	}
	return store
}

func (f *fakeBadgeStore) GetByName(_ context.Context, name string) (*models.Badge, error) {
	badge, ok := f.byName[name]
	if !ok {
		return nil, errors.New("no rows")
	}
	return badge, nil
}

func (f *fakeBadgeStore) HasBadge(_ context.Context, userID, badgeID uuid.UUID) (bool, error) {
	return f.awarded[userID][badgeID], nil
}

func (f *fakeBadgeStore) Award(_ context.Context, userID, badgeID uuid.UUID) (*models.UserBadge, error) {
	if f.awarded[userID] == nil {
		f.awarded[userID] = make(map[uuid.UUID]bool)
	}
	f.awarded[userID][badgeID] = true
	return &models.UserBadge{UserID: userID, BadgeID: badgeID, AwardedAt: time.Now()}, nil
}

func (f *fakeBadgeStore) ListForUser(_ context.Context, userID uuid.UUID) ([]*models.Badge, []time.Time, error) {
	var badges []*models.Badge
	var awardedAt []time.Time
	for _, badge := range f.byName {
		if f.awarded[userID][badge.ID] {
			badges = append(badges, badge)
			awardedAt = append(awardedAt, time.Now())
		}
	}
	return badges, awardedAt, nil
}

func (f *fakeBadgeStore) hasByName(userID uuid.UUID, name string) bool {
	badge, ok := f.byName[name]
	if !ok {
		return false
	}
	return f.awarded[userID][badge.ID]
}

func TestAddXPAwardsEarlyContributorOnFirstPoints(t *testing.T) {
	badges := newFakeBadgeStore(models.BadgeEarlyContributor, models.BadgeXPWarrior)
	svc := NewGamificationService(newFakeUserStore(), badges, zap.NewNop())
	userID := uuid.New()

	total, err := svc.AddXP(context.Background(), userID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
	assert.True(t, badges.hasByName(userID, models.BadgeEarlyContributor))
	assert.False(t, badges.hasByName(userID, models.BadgeXPWarrior))
}

func TestAddXPAwardsXPWarriorAtThreshold(t *testing.T) {
	badges := newFakeBadgeStore(models.BadgeEarlyContributor, models.BadgeXPWarrior)
	users := newFakeUserStore()
	svc := NewGamificationService(users, badges, zap.NewNop())
	userID := uuid.New()

	_, err := svc.AddXP(context.Background(), userID, 95)
	require.NoError(t, err)
	assert.False(t, badges.hasByName(userID, models.BadgeXPWarrior))

	total, err := svc.AddXP(context.Background(), userID, 5)
	require.NoError(t, err)
	assert.Equal(t, 100, total)
	assert.True(t, badges.hasByName(userID, models.BadgeXPWarrior))
}

func TestAddXPPropagatesStoreFailure(t *testing.T) {
	users := newFakeUserStore()
	users.err = errors.New("db down")
	svc := NewGamificationService(users, newFakeBadgeStore(), zap.NewNop())

	_, err := svc.AddXP(context.Background(), uuid.New(), 10)
	assert.Error(t, err)
}

func TestAwardBadgeUnknownBadgeIsNoop(t *testing.T) {
	badges := newFakeBadgeStore()
	svc := NewGamificationService(newFakeUserStore(), badges, zap.NewNop())
	userID := uuid.New()

	svc.AwardBadge(context.Background(), userID, "Nonexistent Badge")
	assert.Empty(t, badges.awarded[userID])
}
