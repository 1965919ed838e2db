package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the application.
type Config struct {
	DatabaseURL string
	ServerPort  int

	// Admin authentication is a single shared token presented in the
	// X-Admin-Token header. Exactly one of the two must be set; the hashed
	// form takes precedence when both are.
	AdminToken     string
	AdminTokenHash string

	// Path of the YAML roster file used when no override is stored.
	RosterPath string

	// Cloudflare R2 (S3-compatible) storage for team crests.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from environment variables, optionally seeded from
// a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	adminTokenHash := os.Getenv("ADMIN_TOKEN_HASH")
	if adminToken == "" && adminTokenHash == "" {
		return nil, fmt.Errorf("either ADMIN_TOKEN or ADMIN_TOKEN_HASH must be set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	rosterPath := os.Getenv("ROSTER_PATH")
	if rosterPath == "" {
		rosterPath = "teams.yaml"
	}

	cfg := &Config{
		DatabaseURL:       dbURL,
		ServerPort:        port,
		AdminToken:        adminToken,
		AdminTokenHash:    adminTokenHash,
		RosterPath:        rosterPath,
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}
