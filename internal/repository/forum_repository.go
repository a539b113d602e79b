package repository

import (
	"context"

	"mentorai/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ForumRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewForumRepository(db *pgxpool.Pool, logger *zap.Logger) *ForumRepository {
	return &ForumRepository{
		db:     db,
		logger: logger,
	}
}

// --- Posts ---

func (r *ForumRepository) CreatePost(ctx context.Context, post *models.ForumPost) error {
	query := squirrel.Insert("forum_posts").
		Columns("id", "author_id", "title", "content", "upvotes", "created_at", "updated_at").
		Values(post.ID, post.AuthorID, post.Title, post.Content, post.Upvotes, post.CreatedAt, post.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ForumRepository) GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error) {
	query := squirrel.Select("id", "author_id", "title", "content", "upvotes", "created_at", "updated_at").
		From("forum_posts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var post models.ForumPost
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Content,
		&post.Upvotes, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *ForumRepository) ListPosts(ctx context.Context, limit, offset int) ([]*models.ForumPost, error) {
	query := squirrel.Select("id", "author_id", "title", "content", "upvotes", "created_at", "updated_at").
		From("forum_posts").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.ForumPost
	for rows.Next() {
		var post models.ForumPost
		if err := rows.Scan(
			&post.ID, &post.AuthorID, &post.Title, &post.Content,
			&post.Upvotes, &post.CreatedAt, &post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	return posts, rows.Err()
}

func (r *ForumRepository) UpdatePost(ctx context.Context, post *models.ForumPost) error {
	query := squirrel.Update("forum_posts").
		Set("title", post.Title).
		Set("content", post.Content).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": post.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ForumRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("forum_posts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// UpvotePost increments the counter and returns the new value.
func (r *ForumRepository) UpvotePost(ctx context.Context, id uuid.UUID) (int, error) {
	query := squirrel.Update("forum_posts").
		Set("upvotes", squirrel.Expr("upvotes + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING upvotes").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var upvotes int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&upvotes); err != nil {
		return 0, err
	}
	return upvotes, nil
}

// --- Replies ---

func (r *ForumRepository) CreateReply(ctx context.Context, reply *models.ForumReply) error {
	query := squirrel.Insert("forum_replies").
		Columns("id", "post_id", "author_id", "parent_reply_id", "content", "upvotes", "created_at").
		Values(reply.ID, reply.PostID, reply.AuthorID, reply.ParentReplyID, reply.Content, reply.Upvotes, reply.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ForumRepository) GetReply(ctx context.Context, id uuid.UUID) (*models.ForumReply, error) {
	query := squirrel.Select("id", "post_id", "author_id", "parent_reply_id", "content", "upvotes", "created_at").
		From("forum_replies").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var reply models.ForumReply
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&reply.ID, &reply.PostID, &reply.AuthorID, &reply.ParentReplyID,
		&reply.Content, &reply.Upvotes, &reply.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &reply, nil
}

// ListReplies returns all replies of a post in creation order. Parent
// references stay plain IDs; any threading is resolved by the caller.
func (r *ForumRepository) ListReplies(ctx context.Context, postID uuid.UUID) ([]*models.ForumReply, error) {
	query := squirrel.Select("id", "post_id", "author_id", "parent_reply_id", "content", "upvotes", "created_at").
		From("forum_replies").
		Where(squirrel.Eq{"post_id": postID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []*models.ForumReply
	for rows.Next() {
		var reply models.ForumReply
		if err := rows.Scan(
			&reply.ID, &reply.PostID, &reply.AuthorID, &reply.ParentReplyID,
			&reply.Content, &reply.Upvotes, &reply.CreatedAt,
		); err != nil {
			return nil, err
		}
		replies = append(replies, &reply)
	}

	return replies, rows.Err()
}

func (r *ForumRepository) DeleteReply(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("forum_replies").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
