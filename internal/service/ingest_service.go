package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"mentorai/internal/models"
	"mentorai/pkg/config"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// minArticleTextLen is the combined direct-paragraph length a container
// must exceed to be considered the main article body.
const minArticleTextLen = 100

// IngestService fetches raw learning content from external sources:
// video-platform search results and scraped article pages. All failures
// here are soft; an unreachable source yields an absent result.
type IngestService struct {
	ytConfig   *config.YouTubeConfig
	httpClient *http.Client
	userAgent  string
	logger     *zap.Logger
}

func NewIngestService(ytCfg *config.YouTubeConfig, ingestCfg *config.IngestConfig, logger *zap.Logger) *IngestService {
	return &IngestService{
		ytConfig: ytCfg,
		httpClient: &http.Client{
			Timeout: ingestCfg.FetchTimeout,
		},
		userAgent: ingestCfg.UserAgent,
		logger:    logger,
	}
}

// SearchVideos queries the video platform for the given keywords joined
// into one query string. A missing API key or a backend error returns an
// empty list, never an error to the caller.
func (s *IngestService) SearchVideos(ctx context.Context, keywords []string, maxResults int64) []models.VideoResult {
	if s.ytConfig.APIKey == "" {
		s.logger.Warn("YOUTUBE_API_KEY is not set, video search disabled")
		return nil
	}
	if maxResults <= 0 || maxResults > s.ytConfig.MaxResults {
		maxResults = s.ytConfig.MaxResults
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(s.ytConfig.APIKey))
	if err != nil {
		s.logger.Error("Failed to create YouTube client", zap.Error(err))
		return nil
	}

	query := strings.Join(keywords, " ")
	resp, err := svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		s.logger.Error("YouTube search failed", zap.String("query", query), zap.Error(err))
		return nil
	}

	var videos []models.VideoResult
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.Kind != "youtube#video" || item.Snippet == nil {
			continue
		}
		video := models.VideoResult{
			VideoID:      item.Id.VideoId,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			VideoURL:     fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.Id.VideoId),
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
			video.ThumbnailURL = item.Snippet.Thumbnails.Default.Url
		}
		videos = append(videos, video)
	}

	s.logger.Info("Video search completed",
		zap.String("query", query),
		zap.Int("results", len(videos)),
	)

	return videos
}

// ScrapeArticle fetches a page and extracts its main text content.
// Returns an empty string when the page is unreachable or no article
// body can be located.
func (s *IngestService) ScrapeArticle(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		s.logger.Warn("Invalid article URL", zap.String("url", url), zap.Error(err))
		return ""
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Warn("Article fetch failed", zap.String("url", url), zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		s.logger.Warn("Article fetch returned error status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		s.logger.Warn("Failed to parse article HTML", zap.String("url", url), zap.Error(err))
		return ""
	}

	text := ExtractArticleText(doc)
	if text == "" {
		s.logger.Warn("No main article content found", zap.String("url", url))
	}
	return text
}

// ExtractArticleText applies the extraction heuristics to a parsed page:
// a semantic <article> container wins; otherwise the main/div/section
// with the most direct paragraph children whose combined text exceeds
// the minimum length; otherwise nothing.
func ExtractArticleText(doc *goquery.Document) string {
	if article := doc.Find("article").First(); article.Length() > 0 {
		return blockText(article)
	}

	var best *goquery.Selection
	maxParagraphs := 0
	doc.Find("main, div, section").Each(func(_ int, candidate *goquery.Selection) {
		if role, _ := candidate.Attr("role"); role == "navigation" || role == "banner" || role == "contentinfo" || role == "search" {
			return
		}
		if candidate.Find("nav, footer, header, aside").Length() > 0 {
			return
		}

		paragraphs := candidate.ChildrenFiltered("p")
		if paragraphs.Length() <= maxParagraphs {
			return
		}

		textLen := 0
		paragraphs.Each(func(_ int, p *goquery.Selection) {
			textLen += len(strings.TrimSpace(p.Text()))
		})
		if textLen > minArticleTextLen {
			maxParagraphs = paragraphs.Length()
			best = candidate
		}
	})

	if best == nil {
		return ""
	}
	return blockText(best)
}

// blockText joins the text of block-level elements, one line each.
func blockText(sel *goquery.Selection) string {
	var lines []string
	blocks := sel.Find("p, h1, h2, h3, h4, h5, h6, li")
	if blocks.Length() == 0 {
		for _, line := range strings.Split(sel.Text(), "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				lines = append(lines, trimmed)
			}
		}
		return strings.Join(lines, "\n")
	}

	blocks.Each(func(_ int, el *goquery.Selection) {
		if trimmed := strings.TrimSpace(el.Text()); trimmed != "" {
			lines = append(lines, trimmed)
		}
	})
	return strings.Join(lines, "\n")
}
