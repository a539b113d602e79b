package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mentorai/internal/models"
	"mentorai/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmbedder struct {
	embed func(ctx context.Context, text string) ([]float32, error)
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.embed(ctx, text)
}

type fakeContentStore struct {
	inserted  []*models.ContentChunk
	insertErr error
	results   []*models.ContentChunk
	searchErr error
}

func (f *fakeContentStore) InsertBatch(_ context.Context, chunks []*models.ContentChunk) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, chunks...)
	return nil
}

func (f *fakeContentStore) SearchByEmbedding(_ context.Context, _ []float32, _ int) ([]*models.ContentChunk, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results, nil
}

func testRAGConfig() *config.RAGConfig {
	return &config.RAGConfig{
		ChunkSize:    40,
		ChunkOverlap: 8,
		TopK:         5,
		EmbeddingDim: 4,
	}
}

func constantEmbedder() *fakeEmbedder {
	return &fakeEmbedder{
		embed: func(_ context.Context, text string) ([]float32, error) {
			if strings.TrimSpace(text) == "" {
				return nil, nil
			}
			return []float32{0.1, 0.2, 0.3, 0.4}, nil
		},
	}
}

func TestIndexDocumentEmptyTextIndexesNothing(t *testing.T) {
	store := &fakeContentStore{}
	svc := NewIndexService(store, constantEmbedder(), testRAGConfig(), zap.NewNop())

	records, err := svc.IndexDocument(context.Background(), "http://example.com", "Empty", "   \n  ", models.ContentTypeArticle)
	require.NoError(t, err)
	assert.Nil(t, records)
	assert.Empty(t, store.inserted)
}

func TestIndexDocumentPersistsEmbeddedChunks(t *testing.T) {
	store := &fakeContentStore{}
	svc := NewIndexService(store, constantEmbedder(), testRAGConfig(), zap.NewNop())

	text := strings.Repeat("learning content for the index pipeline. ", 5)
	records, err := svc.IndexDocument(context.Background(), "http://example.com/a", "Article A", text, models.ContentTypeArticle)
	require.NoError(t, err)

	require.NotEmpty(t, records)
	assert.Equal(t, records, store.inserted)
	for _, record := range records {
		assert.Equal(t, "http://example.com/a", record.SourceURL)
		assert.Equal(t, "Article A", record.Title)
		assert.Equal(t, models.ContentTypeArticle, record.ContentType)
		assert.NotEmpty(t, record.TextChunk)
		assert.Len(t, record.Embedding, 4)
	}
}

func TestIndexDocumentSkipsChunksThatFailToEmbed(t *testing.T) {
	calls := 0
	embedder := &fakeEmbedder{
		embed: func(_ context.Context, _ string) ([]float32, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("embedding backend error")
			}
			return []float32{1, 2, 3, 4}, nil
		},
	}
	store := &fakeContentStore{}
	svc := NewIndexService(store, embedder, testRAGConfig(), zap.NewNop())

	text := strings.Repeat("some sentence that gets chunked apart. ", 5)
	records, err := svc.IndexDocument(context.Background(), "http://example.com/b", "Article B", text, models.ContentTypeText)
	require.NoError(t, err)

	require.Greater(t, calls, 1, "text must split into multiple chunks for this test")
	assert.Len(t, records, calls-1)
	assert.Equal(t, records, store.inserted)
}

func TestIndexDocumentAllEmbeddingsFailPersistsNothing(t *testing.T) {
	embedder := &fakeEmbedder{
		embed: func(_ context.Context, _ string) ([]float32, error) {
			return nil, errors.New("embedding backend down")
		},
	}
	store := &fakeContentStore{}
	svc := NewIndexService(store, embedder, testRAGConfig(), zap.NewNop())

	records, err := svc.IndexDocument(context.Background(), "http://example.com/c", "Article C", "plenty of text to split and embed here", models.ContentTypeText)
	require.NoError(t, err)
	assert.Nil(t, records)
	assert.Empty(t, store.inserted)
}

func TestIndexDocumentInsertFailureReturnsError(t *testing.T) {
	store := &fakeContentStore{insertErr: errors.New("connection reset")}
	svc := NewIndexService(store, constantEmbedder(), testRAGConfig(), zap.NewNop())

	records, err := svc.IndexDocument(context.Background(), "http://example.com/d", "Article D", "short but valid content", models.ContentTypeText)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "Article D")
}
