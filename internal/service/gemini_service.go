package service

import (
	"context"
	"fmt"
	"strings"

	"mentorai/internal/apperr"
	"mentorai/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// TextGenerator issues one generation request and returns the raw model
// text, which is expected to contain JSON, optionally fenced.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Embedder maps text to a fixed-dimension vector. Blank input yields
// (nil, nil): an absent result, not an error.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// GeminiService wraps the Gemini API for both generation and embeddings.
type GeminiService struct {
	client    *genai.Client
	config    *config.GeminiConfig
	genConfig *genai.GenerateContentConfig
	logger    *zap.Logger
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", apperr.ErrConfiguration)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", apperr.ErrConfiguration, err)
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(cfg.Temperature),
		TopP:            genai.Ptr(cfg.TopP),
		TopK:            genai.Ptr(cfg.TopK),
		MaxOutputTokens: cfg.MaxOutputTokens,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	}

	return &GeminiService{
		client:    client,
		config:    cfg,
		genConfig: genConfig,
		logger:    logger,
	}, nil
}

func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Models.GenerateContent(ctx, s.config.Model, genai.Text(prompt), s.genConfig)
	if err != nil {
		return "", fmt.Errorf("gemini generation request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}

func (s *GeminiService) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		s.logger.Debug("Skipping embedding for blank input")
		return nil, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}

	result, err := s.client.Models.EmbedContent(ctx, s.config.EmbeddingModel, contents, &genai.EmbedContentConfig{
		TaskType: "SEMANTIC_SIMILARITY",
	})
	if err != nil {
		return nil, fmt.Errorf("gemini embed request failed: %w", err)
	}

	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("gemini returned no embeddings")
	}

	return result.Embeddings[0].Values, nil
}
