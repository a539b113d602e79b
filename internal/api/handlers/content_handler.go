package handlers

import (
	"errors"
	"strings"

	"mentorai/internal/apperr"
	"mentorai/internal/dto"
	"mentorai/internal/models"
	"mentorai/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ContentHandler struct {
	indexService  *service.IndexService
	searchService *service.SearchService
	ingestService *service.IngestService
	logger        *zap.Logger
}

func NewContentHandler(
	indexService *service.IndexService,
	searchService *service.SearchService,
	ingestService *service.IngestService,
	logger *zap.Logger,
) *ContentHandler {
	return &ContentHandler{
		indexService:  indexService,
		searchService: searchService,
		ingestService: ingestService,
		logger:        logger,
	}
}

// Index godoc
// @Summary Index learning content
// @Description Chunk, embed and store a document for semantic search. For articles with no inline text the page is scraped from the source URL.
// @Tags content
// @Accept json
// @Produce json
// @Param request body dto.IndexContentRequest true "Content to index"
// @Success 201 {object} dto.IndexContentResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/content/index [post]
func (h *ContentHandler) Index(c *fiber.Ctx) error {
	var req dto.IndexContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.SourceURL == "" || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "source_url and title are required",
		})
	}

	contentType := models.ContentType(req.ContentType)
	switch contentType {
	case models.ContentTypeArticle, models.ContentTypeVideoTranscript, models.ContentTypeText:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "content_type must be one of: article, video_transcript, text",
		})
	}

	text := req.Text
	if strings.TrimSpace(text) == "" && contentType == models.ContentTypeArticle {
		text = h.ingestService.ScrapeArticle(c.Context(), req.SourceURL)
	}

	records, err := h.indexService.IndexDocument(c.Context(), req.SourceURL, req.Title, text, contentType)
	if err != nil {
		h.logger.Error("Content indexing failed",
			zap.String("source_url", req.SourceURL),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Content indexing failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.IndexContentResponse{
		SourceURL:     req.SourceURL,
		Title:         req.Title,
		ChunksIndexed: len(records),
	})
}

// Search godoc
// @Summary Search indexed content
// @Description Semantic nearest-neighbor search over indexed content chunks
// @Tags content
// @Produce json
// @Param q query string true "Search query"
// @Param top_k query int false "Number of results (default 5)"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/content/search [get]
func (h *ContentHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter q is required",
		})
	}
	topK := c.QueryInt("top_k")

	chunks, err := h.searchService.Search(c.Context(), query, topK)
	if err != nil {
		h.logger.Error("Content search failed", zap.String("query", query), zap.Error(err))
		if errors.Is(err, apperr.ErrRetrieval) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Content search backend unavailable",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Content search failed",
		})
	}

	results := make([]dto.SearchResultItem, 0, len(chunks))
	for _, chunk := range chunks {
		results = append(results, dto.SearchResultItem{
			SourceURL:   chunk.SourceURL,
			Title:       chunk.Title,
			ContentType: string(chunk.ContentType),
			TextChunk:   chunk.TextChunk,
		})
	}

	return c.JSON(dto.SearchResponse{
		Query:   query,
		Results: results,
	})
}

// Videos godoc
// @Summary Search learning videos
// @Description Search the video platform for learning videos matching the query
// @Tags content
// @Produce json
// @Param q query string true "Search keywords"
// @Param max_results query int false "Maximum videos to return"
// @Success 200 {object} dto.VideoSearchResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/content/videos [get]
func (h *ContentHandler) Videos(c *fiber.Ctx) error {
	query := c.Query("q")
	if strings.TrimSpace(query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query parameter q is required",
		})
	}
	maxResults := int64(c.QueryInt("max_results"))

	videos := h.ingestService.SearchVideos(c.Context(), strings.Fields(query), maxResults)

	items := make([]dto.VideoItem, 0, len(videos))
	for _, video := range videos {
		items = append(items, dto.VideoItem{
			VideoID:      video.VideoID,
			Title:        video.Title,
			Description:  video.Description,
			ChannelTitle: video.ChannelTitle,
			VideoURL:     video.VideoURL,
			ThumbnailURL: video.ThumbnailURL,
		})
	}

	return c.JSON(dto.VideoSearchResponse{
		Query:  query,
		Videos: items,
	})
}
