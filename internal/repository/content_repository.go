package repository

import (
	"context"
	"fmt"

	"mentorai/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ContentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewContentRepository(db *pgxpool.Pool, logger *zap.Logger) *ContentRepository {
	return &ContentRepository{
		db:     db,
		logger: logger,
	}
}

// InsertBatch writes all chunks of one source document in a single
// transaction. Either every row is committed or none are; a failure rolls
// the whole batch back so no partial document is ever visible.
func (r *ContentRepository) InsertBatch(ctx context.Context, chunks []*models.ContentChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, chunk := range chunks {
		embedding := pgtype.FlatArray[float32](chunk.Embedding)

		query := squirrel.Insert("learning_content").
			Columns("id", "source_url", "title", "content_type", "text_chunk", "embedding", "created_at").
			Values(chunk.ID, chunk.SourceURL, chunk.Title, chunk.ContentType, chunk.TextChunk,
				squirrel.Expr("?::vector", embedding), chunk.CreatedAt).
			Suffix("RETURNING seq").
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := query.ToSql()
		if err != nil {
			return err
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&chunk.Seq); err != nil {
			return fmt.Errorf("failed to insert content chunk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit content batch: %w", err)
	}

	return nil
}

// SearchByEmbedding returns the topK stored chunks nearest to the query
// embedding by cosine distance. Equal distances fall back to insertion
// order via the seq column.
func (r *ContentRepository) SearchByEmbedding(ctx context.Context, embedding []float32, topK int) ([]*models.ContentChunk, error) {
	queryEmbedding := pgtype.FlatArray[float32](embedding)

	query := squirrel.Select("id", "seq", "source_url", "title", "content_type", "text_chunk", "embedding::real[]", "created_at").
		Column(squirrel.Expr("embedding <=> ?::vector AS distance", queryEmbedding)).
		From("learning_content").
		OrderBy("distance ASC", "seq ASC").
		Limit(uint64(topK)).
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

	var results []*models.ContentChunk
	for rows.Next() {
		var chunk models.ContentChunk
		var embeddingData pgtype.FlatArray[float32]
		var distance float64

		if err := rows.Scan(
			&chunk.ID, &chunk.Seq, &chunk.SourceURL, &chunk.Title, &chunk.ContentType,
			&chunk.TextChunk, &embeddingData, &chunk.CreatedAt, &distance,
		); err != nil {
			return nil, err
		}

		chunk.Embedding = []float32(embeddingData)
		results = append(results, &chunk)
	}

	return results, rows.Err()
}

// CountBySource reports how many chunks exist for a source URL.
func (r *ContentRepository) CountBySource(ctx context.Context, sourceURL string) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From("learning_content").
		Where(squirrel.Eq{"source_url": sourceURL}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
