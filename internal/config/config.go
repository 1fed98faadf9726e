package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Public base URL of the site (used to build media URLs)
	BaseURL string

	// Directories
	DataDir  string // registry + settings documents
	MediaDir string // stored media files (local backend)
	SiteDir  string // static site root (index.html, project.html)

	// Admin auth
	AdminToken string

	// Media storage backend: "local" or "s3"
	StorageBackend string
	S3Endpoint     string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
	S3PublicURL    string

	// Video thumbnails
	FFmpegPath    string
	FFprobePath   string
	FFmpegTimeout time.Duration

	// CORS
	AllowedOrigins []string

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		BaseURL: strings.TrimSuffix(getEnv("BASE_URL", ""), "/"),

		DataDir:  getEnv("DATA_DIR", "./data"),
		MediaDir: getEnv("MEDIA_DIR", "./public/media"),
		SiteDir:  getEnv("SITE_DIR", "./public"),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		S3Region:       getEnv("S3_REGION", "auto"),
		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3PublicURL:    getEnv("S3_PUBLIC_URL", ""),

		FFmpegPath:    getEnv("FFMPEG_PATH", "ffmpeg"),
		FFprobePath:   getEnv("FFPROBE_PATH", "ffprobe"),
		FFmpegTimeout: parseDuration(getEnv("FFMPEG_TIMEOUT", "30s"), 30*time.Second),

		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
