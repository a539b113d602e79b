package dto

type IndexContentRequest struct {
	SourceURL   string `json:"source_url" validate:"required,url"`
	Title       string `json:"title" validate:"required"`
	ContentType string `json:"content_type" validate:"required,oneof=article video_transcript text"`
	// Text is optional for articles: when empty the server scrapes SourceURL.
	Text string `json:"text"`
}

type IndexContentResponse struct {
	SourceURL     string `json:"source_url"`
	Title         string `json:"title"`
	ChunksIndexed int    `json:"chunks_indexed"`
}

type SearchResultItem struct {
	SourceURL   string `json:"source_url"`
	Title       string `json:"title"`
	ContentType string `json:"content_type"`
	TextChunk   string `json:"text_chunk"`
}

type SearchResponse struct {
	Query   string             `json:"query"`
	Results []SearchResultItem `json:"results"`
}

type VideoSearchResponse struct {
	Query  string      `json:"query"`
	Videos []VideoItem `json:"videos"`
}

type VideoItem struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channel_title"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}
