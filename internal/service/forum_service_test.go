package service

import (
	"context"
	"errors"
	"testing"

	"mentorai/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGamifier struct {
	xp     map[uuid.UUID]int
	badges map[uuid.UUID][]string
}

func newFakeGamifier() *fakeGamifier {
	return &fakeGamifier{
		xp:     make(map[uuid.UUID]int),
		badges: make(map[uuid.UUID][]string),
	}
}

func (f *fakeGamifier) AddXP(_ context.Context, userID uuid.UUID, points int) (int, error) {
	f.xp[userID] += points
	return f.xp[userID], nil
}

func (f *fakeGamifier) AwardBadge(_ context.Context, userID uuid.UUID, badgeName string) {
	f.badges[userID] = append(f.badges[userID], badgeName)
}

type fakeForumStore struct {
	posts   map[uuid.UUID]*models.ForumPost
	replies map[uuid.UUID]*models.ForumReply
}

func newFakeForumStore() *fakeForumStore {
	return &fakeForumStore{
		posts:   make(map[uuid.UUID]*models.ForumPost),
		replies: make(map[uuid.UUID]*models.ForumReply),
	}
}

func (f *fakeForumStore) CreatePost(_ context.Context, post *models.ForumPost) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakeForumStore) GetPost(_ context.Context, id uuid.UUID) (*models.ForumPost, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return post, nil
}

func (f *fakeForumStore) ListPosts(_ context.Context, _, _ int) ([]*models.ForumPost, error) {
	var posts []*models.ForumPost
	for _, post := range f.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (f *fakeForumStore) UpdatePost(_ context.Context, post *models.ForumPost) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakeForumStore) DeletePost(_ context.Context, id uuid.UUID) error {
	delete(f.posts, id)
	return nil
}

func (f *fakeForumStore) UpvotePost(_ context.Context, id uuid.UUID) (int, error) {
	post, ok := f.posts[id]
	if !ok {
		return 0, errors.New("no rows")
	}
	post.Upvotes++
	return post.Upvotes, nil
}

func (f *fakeForumStore) CreateReply(_ context.Context, reply *models.ForumReply) error {
	f.replies[reply.ID] = reply
	return nil
}

func (f *fakeForumStore) GetReply(_ context.Context, id uuid.UUID) (*models.ForumReply, error) {
	reply, ok := f.replies[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return reply, nil
}

func (f *fakeForumStore) ListReplies(_ context.Context, postID uuid.UUID) ([]*models.ForumReply, error) {
	var replies []*models.ForumReply
	for _, reply := range f.replies {
		if reply.PostID == postID {
			replies = append(replies, reply)
		}
	}
	return replies, nil
}

func (f *fakeForumStore) DeleteReply(_ context.Context, id uuid.UUID) error {
	delete(f.replies, id)
	return nil
}

func TestCreatePostGrantsXPAndBadge(t *testing.T) {
	store := newFakeForumStore()
	gamifier := newFakeGamifier()
	svc := NewForumService(store, gamifier, zap.NewNop())
	author := uuid.New()

	post, err := svc.CreatePost(context.Background(), author, "First post", "Hello everyone")
	require.NoError(t, err)

	assert.Equal(t, author, post.AuthorID)
	assert.Equal(t, XPForPost, gamifier.xp[author])
	assert.Contains(t, gamifier.badges[author], models.BadgePublicSpeaker)
	assert.Contains(t, store.posts, post.ID)
}

func TestUpdatePostRejectsNonAuthor(t *testing.T) {
	store := newFakeForumStore()
	svc := NewForumService(store, newFakeGamifier(), zap.NewNop())
	author := uuid.New()

	post, err := svc.CreatePost(context.Background(), author, "Original", "content")
	require.NoError(t, err)

	_, err = svc.UpdatePost(context.Background(), post.ID, uuid.New(), "Edited", "changed")
	assert.ErrorIs(t, err, ErrNotAuthor)

	updated, err := svc.UpdatePost(context.Background(), post.ID, author, "Edited", "changed")
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)
}

func TestUpvotePostCreditsPostAuthor(t *testing.T) {
	store := newFakeForumStore()
	gamifier := newFakeGamifier()
	svc := NewForumService(store, gamifier, zap.NewNop())
	author := uuid.New()

	post, err := svc.CreatePost(context.Background(), author, "Vote on me", "content")
	require.NoError(t, err)
	xpAfterPost := gamifier.xp[author]

	upvotes, err := svc.UpvotePost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, upvotes)
	assert.Equal(t, xpAfterPost+XPForUpvoteReceived, gamifier.xp[author])
}

func TestCreateReplyValidatesParent(t *testing.T) {
	store := newFakeForumStore()
	gamifier := newFakeGamifier()
	svc := NewForumService(store, gamifier, zap.NewNop())
	author := uuid.New()

	postA, err := svc.CreatePost(context.Background(), author, "Post A", "content")
	require.NoError(t, err)
	postB, err := svc.CreatePost(context.Background(), author, "Post B", "content")
	require.NoError(t, err)

	parent, err := svc.CreateReply(context.Background(), postA.ID, author, nil, "top-level reply")
	require.NoError(t, err)
	assert.Equal(t, gamifier.xp[author], 2*XPForPost+XPForReply)

	_, err = svc.CreateReply(context.Background(), postB.ID, author, &parent.ID, "cross-post reply")
	assert.ErrorIs(t, err, ErrInvalidParentReply)

	nested, err := svc.CreateReply(context.Background(), postA.ID, author, &parent.ID, "nested reply")
	require.NoError(t, err)
	require.NotNil(t, nested.ParentReplyID)
	assert.Equal(t, parent.ID, *nested.ParentReplyID)
}

func TestCreateReplyUnknownPost(t *testing.T) {
	svc := NewForumService(newFakeForumStore(), newFakeGamifier(), zap.NewNop())

	_, err := svc.CreateReply(context.Background(), uuid.New(), uuid.New(), nil, "orphan")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeleteReplyRejectsNonAuthor(t *testing.T) {
	store := newFakeForumStore()
	svc := NewForumService(store, newFakeGamifier(), zap.NewNop())
	author := uuid.New()

	post, err := svc.CreatePost(context.Background(), author, "Post", "content")
	require.NoError(t, err)
	reply, err := svc.CreateReply(context.Background(), post.ID, author, nil, "to be deleted")
	require.NoError(t, err)

	err = svc.DeleteReply(context.Background(), reply.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotAuthor)

	err = svc.DeleteReply(context.Background(), reply.ID, author)
	require.NoError(t, err)
	assert.NotContains(t, store.replies, reply.ID)
}

func TestGetPostIncludesReplies(t *testing.T) {
	store := newFakeForumStore()
	svc := NewForumService(store, newFakeGamifier(), zap.NewNop())
	author := uuid.New()

	post, err := svc.CreatePost(context.Background(), author, "Post", "content")
	require.NoError(t, err)
	_, err = svc.CreateReply(context.Background(), post.ID, author, nil, "first")
	require.NoError(t, err)
	_, err = svc.CreateReply(context.Background(), post.ID, author, nil, "second")
	require.NoError(t, err)

	got, replies, err := svc.GetPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	assert.Len(t, replies, 2)
}
