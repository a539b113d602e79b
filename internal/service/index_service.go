package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mentorai/internal/models"
	"mentorai/internal/textsplit"
	"mentorai/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentStore persists embedded chunks and answers nearest-neighbor
// queries over them.
type ContentStore interface {
	InsertBatch(ctx context.Context, chunks []*models.ContentChunk) error
	SearchByEmbedding(ctx context.Context, embedding []float32, topK int) ([]*models.ContentChunk, error)
}

type IndexService struct {
	store    ContentStore
	embedder Embedder
	splitter *textsplit.Splitter
	logger   *zap.Logger
}

func NewIndexService(store ContentStore, embedder Embedder, cfg *config.RAGConfig, logger *zap.Logger) *IndexService {
	return &IndexService{
		store:    store,
		embedder: embedder,
		splitter: textsplit.New(cfg.ChunkSize, cfg.ChunkOverlap),
		logger:   logger,
	}
}

// IndexDocument chunks the text, embeds each chunk and persists the
// surviving (chunk, embedding, metadata) records in one transaction.
// Chunks whose embedding fails are skipped, not fatal; a persistence
// failure rolls back the whole document and returns no records.
func (s *IndexService) IndexDocument(ctx context.Context, sourceURL, title, text string, contentType models.ContentType) ([]*models.ContentChunk, error) {
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("Empty content text, nothing to index",
			zap.String("title", title),
			zap.String("source_url", sourceURL),
		)
		return nil, nil
	}

	chunks := s.splitter.Split(text)
	if len(chunks) == 0 {
		s.logger.Warn("No chunks produced from content",
			zap.String("title", title),
			zap.String("source_url", sourceURL),
		)
		return nil, nil
	}

	now := time.Now()
	records := make([]*models.ContentChunk, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := s.embedder.Embed(ctx, chunk)
		if err != nil || embedding == nil {
			s.logger.Warn("Skipping chunk after embedding failure",
				zap.String("title", title),
				zap.Int("chunk", i),
				zap.Error(err),
			)
			continue
		}

		records = append(records, &models.ContentChunk{
			ID:          uuid.New(),
			SourceURL:   sourceURL,
			Title:       title,
			ContentType: contentType,
			TextChunk:   chunk,
			Embedding:   embedding,
			CreatedAt:   now,
		})
	}

	if len(records) == 0 {
		s.logger.Warn("All chunk embeddings failed, nothing persisted",
			zap.String("title", title),
			zap.String("source_url", sourceURL),
		)
		return nil, nil
	}

	if err := s.store.InsertBatch(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to persist content batch for %q: %w", title, err)
	}

	s.logger.Info("Content indexed",
		zap.String("title", title),
		zap.String("source_url", sourceURL),
		zap.Int("chunks", len(records)),
	)

	return records, nil
}
