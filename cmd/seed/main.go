package main

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mentorai/internal/models"
	"mentorai/internal/repository"
	"mentorai/internal/service"
	"mentorai/pkg/config"
	"mentorai/pkg/logger"
	"mentorai/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	badgeRepo := repository.NewBadgeRepository(db, appLogger)
	contentRepo := repository.NewContentRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	if err := seedBadges(ctx, badgeRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed badges", zap.Error(err))
	}

	// Seed learning content from local text files through the full index
	// pipeline. Requires a Gemini key; content seeding is skipped without
	// one so badge seeding still works in minimal environments.
	if cfg.Gemini.APIKey == "" {
		appLogger.Warn("GEMINI_API_KEY is not set, skipping content seeding")
		appLogger.Info("Database seeding completed successfully!")
		return
	}

	geminiService, err := service.NewGeminiService(ctx, &cfg.Gemini, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini service", zap.Error(err))
	}
	indexService := service.NewIndexService(contentRepo, geminiService, &cfg.RAG, appLogger)

	seedDir := filepath.Join("cmd", "seed")
	cacheFile := filepath.Join(seedDir, ".seed_cache.json")
	if err := seedContentFromFiles(ctx, seedDir, cacheFile, indexService, appLogger); err != nil {
		appLogger.Fatal("Failed to seed learning content", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func seedBadges(ctx context.Context, repo *repository.BadgeRepository, logger *zap.Logger) error {
	badges := []*models.Badge{
		{
			ID:          uuid.New(),
			Name:        models.BadgeEarlyContributor,
			Description: "Earned your first XP on the platform",
			Criteria:    "xp_total > 0",
			IconURL:     "/badges/early-contributor.png",
		},
		{
			ID:          uuid.New(),
			Name:        models.BadgeXPWarrior,
			Description: "Accumulated 100 XP or more",
			Criteria:    "xp_total >= 100",
			IconURL:     "/badges/xp-warrior.png",
		},
		{
			ID:          uuid.New(),
			Name:        models.BadgePublicSpeaker,
			Description: "Created your first discussion post",
			Criteria:    "posts_created >= 1",
			IconURL:     "/badges/public-speaker.png",
		},
	}

	for _, badge := range badges {
		if err := repo.Create(ctx, badge); err != nil {
			return fmt.Errorf("failed to create badge %q: %w", badge.Name, err)
		}
		logger.Info("Badge ensured", zap.String("name", badge.Name))
	}

	return nil
}

// ProcessedFile represents a processed content file in cache
type ProcessedFile struct {
	FilePath    string    `json:"file_path"`
	FileHash    string    `json:"file_hash"`
	ProcessedAt time.Time `json:"processed_at"`
}

// CacheData stores information about processed files
type CacheData struct {
	ProcessedFiles map[string]ProcessedFile `json:"processed_files"` // key: file path
}

func loadCache(cacheFile string) (*CacheData, error) {
	cache := &CacheData{
		ProcessedFiles: make(map[string]ProcessedFile),
	}

	if _, err := os.Stat(cacheFile); os.IsNotExist(err) {
		return cache, nil
	}

	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	if len(data) == 0 {
		return cache, nil
	}

	if err := json.Unmarshal(data, cache); err != nil {
		return nil, fmt.Errorf("failed to parse cache file: %w", err)
	}

	return cache, nil
}

func saveCache(cacheFile string, cache *CacheData) error {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to calculate hash: %w", err)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// seedContentFromFiles indexes every .txt and .md file in the seed
// directory. Unchanged files (by hash) are skipped on re-runs.
func seedContentFromFiles(
	ctx context.Context,
	seedDir string,
	cacheFile string,
	indexService *service.IndexService,
	logger *zap.Logger,
) error {
	cache, err := loadCache(cacheFile)
	if err != nil {
		logger.Warn("Failed to load cache, will process all files", zap.Error(err))
		cache = &CacheData{ProcessedFiles: make(map[string]ProcessedFile)}
	}

	entries, err := os.ReadDir(seedDir)
	if err != nil {
		return fmt.Errorf("failed to read seed directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".txt" && ext != ".md" {
			continue
		}

		path := filepath.Join(seedDir, entry.Name())

		fileHash, err := calculateFileHash(path)
		if err != nil {
			logger.Warn("Failed to calculate file hash, will process anyway", zap.String("path", path), zap.Error(err))
		}

		if cached, exists := cache.ProcessedFiles[path]; exists && cached.FileHash == fileHash {
			logger.Info("Content file already processed, skipping",
				zap.String("path", path),
				zap.Time("processed_at", cached.ProcessedAt),
			)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("Failed to read content file", zap.String("path", path), zap.Error(err))
			continue
		}

		title := generateTitleFromFilename(entry.Name())
		sourceURL := "seed://" + entry.Name()

		records, err := indexService.IndexDocument(ctx, sourceURL, title, string(data), models.ContentTypeText)
		if err != nil {
			logger.Error("Failed to index content file", zap.String("path", path), zap.Error(err))
			continue
		}

		logger.Info("Seeded content file",
			zap.String("title", title),
			zap.Int("chunks", len(records)),
		)

		cache.ProcessedFiles[path] = ProcessedFile{
			FilePath:    path,
			FileHash:    fileHash,
			ProcessedAt: time.Now(),
		}
	}

	if err := saveCache(cacheFile, cache); err != nil {
		logger.Warn("Failed to save cache", zap.Error(err))
	} else {
		logger.Info("Cache saved", zap.Int("processed_files", len(cache.ProcessedFiles)))
	}

	return nil
}

// generateTitleFromFilename generates a human-readable title from filename
func generateTitleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	words := strings.Fields(name)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(string(word[0])) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
