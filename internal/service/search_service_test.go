package service

import (
	"context"
	"errors"
	"testing"

	"mentorai/internal/apperr"
	"mentorai/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSearchReturnsStoreResults(t *testing.T) {
	store := &fakeContentStore{
		results: []*models.ContentChunk{
			{Title: "Nearest", TextChunk: "closest chunk"},
			{Title: "Second", TextChunk: "next chunk"},
		},
	}
	svc := NewSearchService(store, constantEmbedder(), testRAGConfig(), zap.NewNop())

	results, err := svc.Search(context.Background(), "what is chunking", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Nearest", results[0].Title)
	assert.Equal(t, "Second", results[1].Title)
}

func TestSearchEmbeddingFailureIsRetrievalError(t *testing.T) {
	embedder := &fakeEmbedder{
		embed: func(_ context.Context, _ string) ([]float32, error) {
			return nil, errors.New("backend unavailable")
		},
	}
	svc := NewSearchService(&fakeContentStore{}, embedder, testRAGConfig(), zap.NewNop())

	results, err := svc.Search(context.Background(), "query", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrRetrieval))
	assert.Nil(t, results)
}

func TestSearchBlankQueryIsRetrievalError(t *testing.T) {
	svc := NewSearchService(&fakeContentStore{}, constantEmbedder(), testRAGConfig(), zap.NewNop())

	results, err := svc.Search(context.Background(), "   ", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrRetrieval))
	assert.Nil(t, results)
}

func TestSearchStoreFailureIsRetrievalError(t *testing.T) {
	store := &fakeContentStore{searchErr: errors.New("index unavailable")}
	svc := NewSearchService(store, constantEmbedder(), testRAGConfig(), zap.NewNop())

	_, err := svc.Search(context.Background(), "query", 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrRetrieval))
}
