package service

import (
	"context"
	"fmt"

	"mentorai/internal/apperr"
	"mentorai/internal/models"
	"mentorai/pkg/config"

	"go.uber.org/zap"
)

type SearchService struct {
	store    ContentStore
	embedder Embedder
	config   *config.RAGConfig
	logger   *zap.Logger
}

func NewSearchService(store ContentStore, embedder Embedder, cfg *config.RAGConfig, logger *zap.Logger) *SearchService {
	return &SearchService{
		store:    store,
		embedder: embedder,
		config:   cfg,
		logger:   logger,
	}
}

// Search embeds the query and returns the nearest stored chunks by cosine
// distance, nearest first. A query whose embedding cannot be computed is
// a retrieval error; that search call fails, nothing else.
func (s *SearchService) Search(ctx context.Context, query string, topK int) ([]*models.ContentChunk, error) {
	if topK <= 0 {
		topK = s.config.TopK
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query embedding: %v", apperr.ErrRetrieval, err)
	}
	if embedding == nil {
		return nil, fmt.Errorf("%w: query is empty", apperr.ErrRetrieval)
	}

	results, err := s.store.SearchByEmbedding(ctx, embedding, topK)
	if err != nil {
		return nil, fmt.Errorf("%w: nearest-neighbor lookup: %v", apperr.ErrRetrieval, err)
	}

	s.logger.Info("Content search completed",
		zap.String("query", query),
		zap.Int("results", len(results)),
	)

	return results, nil
}
