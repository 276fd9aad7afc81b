package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken          string
	CaptchaOperations []string
	Database          DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// validCaptchaOperations lists the arithmetic operators the captcha generator supports
var validCaptchaOperations = map[string]bool{"+": true, "-": true, "*": true}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "storebot"),
			User:     getEnv("DB_USER", "storebot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	ops, err := parseCaptchaOperations(getEnv("CAPTCHA_OPERATIONS", "+,-"))
	if err != nil {
		return nil, err
	}
	cfg.CaptchaOperations = ops

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// parseCaptchaOperations parses a comma-separated operator list
func parseCaptchaOperations(raw string) ([]string, error) {
	var ops []string
	for _, op := range strings.Split(raw, ",") {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		if !validCaptchaOperations[op] {
			return nil, fmt.Errorf("unsupported captcha operation %q", op)
		}
		ops = append(ops, op)
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("CAPTCHA_OPERATIONS must contain at least one operator")
	}
	return ops, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
