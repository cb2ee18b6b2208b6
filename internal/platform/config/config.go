package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	RendererVector  = "vector"
	RendererBrowser = "browser"
)

type Config struct {
	Addr              string
	Renderer          string
	ChromeBin         string
	ChromeDebuggerURL string
	ExportTimeout     time.Duration
	MaxBodyBytes      int64
	JWTSecret         string
}

func Load() Config {
	return Config{
		Addr:              getEnv("APP_ADDR", ":8080"),
		Renderer:          getEnv("RENDERER", RendererVector),
		ChromeBin:         getEnv("CHROME_BIN", ""),
		ChromeDebuggerURL: getEnv("CHROME_DEBUGGER_URL", ""),
		ExportTimeout:     getEnvDuration("EXPORT_TIMEOUT", 60*time.Second),
		MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", 4194304)),
		JWTSecret:         getEnv("JWT_SECRET", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.Renderer != RendererVector && c.Renderer != RendererBrowser {
		return fmt.Errorf("RENDERER must be %q or %q", RendererVector, RendererBrowser)
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.ExportTimeout <= 0 {
		return fmt.Errorf("EXPORT_TIMEOUT must be positive")
	}
	return nil
}
