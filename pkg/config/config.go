package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Gemini   GeminiConfig
	YouTube  YouTubeConfig
	RAG      RAGConfig
	Ingest   IngestConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	EmbeddingModel  string
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

type YouTubeConfig struct {
	APIKey     string
	MaxResults int64
}

type RAGConfig struct {
	ChunkSize    int
	ChunkOverlap int
	TopK         int
	EmbeddingDim int
}

type IngestConfig struct {
	FetchTimeout time.Duration
	UserAgent    string
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine; environment variables are used directly
	// (useful for Docker/K8s).

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	temperature, _ := strconv.ParseFloat(getEnv("GEMINI_TEMPERATURE", "0.7"), 32)
	topP, _ := strconv.ParseFloat(getEnv("GEMINI_TOP_P", "1"), 32)
	topK, _ := strconv.ParseFloat(getEnv("GEMINI_TOP_K", "1"), 32)
	maxTokens, _ := strconv.Atoi(getEnv("GEMINI_MAX_OUTPUT_TOKENS", "8192"))
	ytMaxResults, _ := strconv.Atoi(getEnv("YOUTUBE_MAX_RESULTS", "5"))
	chunkSize, _ := strconv.Atoi(getEnv("RAG_CHUNK_SIZE", "1000"))
	chunkOverlap, _ := strconv.Atoi(getEnv("RAG_CHUNK_OVERLAP", "150"))
	ragTopK, _ := strconv.Atoi(getEnv("RAG_TOP_K", "5"))
	embeddingDim, _ := strconv.Atoi(getEnv("RAG_EMBEDDING_DIM", "768"))
	fetchTimeout, _ := strconv.Atoi(getEnv("INGEST_FETCH_TIMEOUT", "10"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "mentorai"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
			EmbeddingModel:  getEnv("GEMINI_EMBEDDING_MODEL", "gemini-embedding-001"),
			Temperature:     float32(temperature),
			TopP:            float32(topP),
			TopK:            float32(topK),
			MaxOutputTokens: int32(maxTokens),
		},
		YouTube: YouTubeConfig{
			APIKey:     getEnv("YOUTUBE_API_KEY", ""),
			MaxResults: int64(ytMaxResults),
		},
		RAG: RAGConfig{
			ChunkSize:    chunkSize,
			ChunkOverlap: chunkOverlap,
			TopK:         ragTopK,
			EmbeddingDim: embeddingDim,
		},
		Ingest: IngestConfig{
			FetchTimeout: time.Duration(fetchTimeout) * time.Second,
			UserAgent:    getEnv("INGEST_USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
