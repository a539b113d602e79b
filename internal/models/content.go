package models

import (
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	ContentTypeArticle         ContentType = "article"
	ContentTypeVideoTranscript ContentType = "video_transcript"
	ContentTypeText            ContentType = "text"
)

// ContentChunk is one embedded window of a source document. Rows are
// immutable once written; many chunks share a source_url and title, which
// is their only link back to the source document.
type ContentChunk struct {
	ID          uuid.UUID   `db:"id"`
	Seq         int64       `db:"seq"` // insertion order, tie-breaker for equal distances
	SourceURL   string      `db:"source_url"`
	Title       string      `db:"title"`
	ContentType ContentType `db:"content_type"`
	TextChunk   string      `db:"text_chunk"`
	Embedding   []float32   `db:"embedding"`
	CreatedAt   time.Time   `db:"created_at"`
}

// VideoResult is one hit from the video-search backend.
type VideoResult struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channel_title"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}
