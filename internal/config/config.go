package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port           string
	Env            string
	AllowedOrigins []string

	// Database
	DatabaseURL string

	// Providers
	TranscriptProvider string // "youtube-api" | "ytdlp" | "url-only"
	SummaryProvider    string // "openai" | "gemini"

	// Provider credentials
	YouTubeAPIKey string
	OpenAIAPIKey  string
	GeminiAPIKey  string
	YtDlpPath     string
}

// Load reads the environment (plus .env if present) and validates that every
// variable the selected providers need is set.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:               getEnvOrDefault("PORT", "8080"),
		Env:                getEnvOrDefault("ENV", "development"),
		AllowedOrigins:     splitOrigins(getEnvOrDefault("ALLOWED_ORIGINS", "*")),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		TranscriptProvider: getEnvOrDefault("TRANSCRIPT_PROVIDER", "youtube-api"),
		SummaryProvider:    getEnvOrDefault("SUMMARY_PROVIDER", "openai"),
		YouTubeAPIKey:      os.Getenv("YOUTUBE_API_KEY"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		YtDlpPath:          getEnvOrDefault("YTDLP_PATH", "yt-dlp"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	switch c.TranscriptProvider {
	case "youtube-api":
		if c.YouTubeAPIKey == "" {
			missing = append(missing, "YOUTUBE_API_KEY")
		}
	case "ytdlp", "url-only":
	default:
		return fmt.Errorf("unknown TRANSCRIPT_PROVIDER %q", c.TranscriptProvider)
	}

	switch c.SummaryProvider {
	case "openai":
		if c.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			missing = append(missing, "GEMINI_API_KEY")
		}
	default:
		return fmt.Errorf("unknown SUMMARY_PROVIDER %q", c.SummaryProvider)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Version labels the active provider pair, e.g. "youtube-api+openai".
func (c *Config) Version() string {
	return c.TranscriptProvider + "+" + c.SummaryProvider
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
