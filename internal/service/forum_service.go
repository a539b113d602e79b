package service

import (
	"context"
	"errors"
	"time"

	"mentorai/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPostNotFound       = errors.New("forum post not found")
	ErrReplyNotFound      = errors.New("forum reply not found")
	ErrNotAuthor          = errors.New("only the author can modify this entry")
	ErrInvalidParentReply = errors.New("parent reply does not belong to this post")
)

// ForumStore persists posts and replies.
type ForumStore interface {
	CreatePost(ctx context.Context, post *models.ForumPost) error
	GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*models.ForumPost, error)
	UpdatePost(ctx context.Context, post *models.ForumPost) error
	DeletePost(ctx context.Context, id uuid.UUID) error
	UpvotePost(ctx context.Context, id uuid.UUID) (int, error)

	CreateReply(ctx context.Context, reply *models.ForumReply) error
	GetReply(ctx context.Context, id uuid.UUID) (*models.ForumReply, error)
	ListReplies(ctx context.Context, postID uuid.UUID) ([]*models.ForumReply, error)
	DeleteReply(ctx context.Context, id uuid.UUID) error
}

type ForumService struct {
	store        ForumStore
	gamification Gamifier
	logger       *zap.Logger
}

func NewForumService(store ForumStore, gamification Gamifier, logger *zap.Logger) *ForumService {
	return &ForumService{
		store:        store,
		gamification: gamification,
		logger:       logger,
	}
}

// CreatePost stores a new discussion post and credits the author. The
// first post additionally earns the Public Speaker badge.
func (s *ForumService) CreatePost(ctx context.Context, authorID uuid.UUID, title, content string) (*models.ForumPost, error) {
	now := time.Now()
	post := &models.ForumPost{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	if _, err := s.gamification.AddXP(ctx, authorID, XPForPost); err != nil {
		s.logger.Warn("Post XP grant failed", zap.String("user_id", authorID.String()), zap.Error(err))
	}
	s.gamification.AwardBadge(ctx, authorID, models.BadgePublicSpeaker)

	s.logger.Info("Forum post created",
		zap.String("post_id", post.ID.String()),
		zap.String("author_id", authorID.String()),
	)

	return post, nil
}

// GetPost returns a post together with all of its replies in creation
// order.
func (s *ForumService) GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, []*models.ForumReply, error) {
	post, err := s.store.GetPost(ctx, id)
	if err != nil {
		return nil, nil, ErrPostNotFound
	}

	replies, err := s.store.ListReplies(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return post, replies, nil
}

func (s *ForumService) ListPosts(ctx context.Context, limit, offset int) ([]*models.ForumPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.ListPosts(ctx, limit, offset)
}

// UpdatePost rewrites title and content. Only the author may edit.
func (s *ForumService) UpdatePost(ctx context.Context, postID, userID uuid.UUID, title, content string) (*models.ForumPost, error) {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != userID {
		return nil, ErrNotAuthor
	}

	post.Title = title
	post.Content = content
	post.UpdatedAt = time.Now()
	if err := s.store.UpdatePost(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes a post and, through the schema cascade, its replies.
// Only the author may delete.
func (s *ForumService) DeletePost(ctx context.Context, postID, userID uuid.UUID) error {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID {
		return ErrNotAuthor
	}

	return s.store.DeletePost(ctx, postID)
}

// UpvotePost increments the post counter and credits the post author.
// Self-votes count like any other vote.
func (s *ForumService) UpvotePost(ctx context.Context, postID uuid.UUID) (int, error) {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return 0, ErrPostNotFound
	}

	upvotes, err := s.store.UpvotePost(ctx, postID)
	if err != nil {
		return 0, err
	}

	if _, err := s.gamification.AddXP(ctx, post.AuthorID, XPForUpvoteReceived); err != nil {
		s.logger.Warn("Upvote XP grant failed", zap.String("user_id", post.AuthorID.String()), zap.Error(err))
	}

	return upvotes, nil
}

// CreateReply stores a reply under a post and credits the author. When a
// parent reply is given it must belong to the same post.
func (s *ForumService) CreateReply(ctx context.Context, postID, authorID uuid.UUID, parentReplyID *uuid.UUID, content string) (*models.ForumReply, error) {
	if _, err := s.store.GetPost(ctx, postID); err != nil {
		return nil, ErrPostNotFound
	}

	if parentReplyID != nil {
		parent, err := s.store.GetReply(ctx, *parentReplyID)
		if err != nil {
			return nil, ErrInvalidParentReply
		}
		if parent.PostID != postID {
			return nil, ErrInvalidParentReply
		}
	}

	reply := &models.ForumReply{
		ID:            uuid.New(),
		PostID:        postID,
		AuthorID:      authorID,
		ParentReplyID: parentReplyID,
		Content:       content,
		CreatedAt:     time.Now(),
	}

	if err := s.store.CreateReply(ctx, reply); err != nil {
		return nil, err
	}

	if _, err := s.gamification.AddXP(ctx, authorID, XPForReply); err != nil {
		s.logger.Warn("Reply XP grant failed", zap.String("user_id", authorID.String()), zap.Error(err))
	}

	return reply, nil
}

// DeleteReply removes a single reply. Only the author may delete.
func (s *ForumService) DeleteReply(ctx context.Context, replyID, userID uuid.UUID) error {
	reply, err := s.store.GetReply(ctx, replyID)
	if err != nil {
		return ErrReplyNotFound
	}
	if reply.AuthorID != userID {
		return ErrNotAuthor
	}

	return s.store.DeleteReply(ctx, replyID)
}
