package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string

	// TestMode lets an unknown email auto-provision a barber on login.
	// It only ever influences the auth boundary, never the booking core.
	TestMode bool
}

func Load() *Config {
	// Optional; real deployments set env vars directly.
	_ = godotenv.Load()

	return &Config{
		DBUrl:      os.Getenv("DATABASE_URL"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8000"),
		TestMode:   strings.EqualFold(getEnv("TEST_MODE", "true"), "true"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
