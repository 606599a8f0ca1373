package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr          string
	DataDir           string
	PublicDir         string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	SessionSecret     string
	SessionTTL        time.Duration
	Production        bool
	GelfAddr          string
}

const defaultAdminPassword = "change-this-password"

func Load() *Config {
	// Same behavior as the OS env when no .env file exists.
	godotenv.Load()

	return &Config{
		HTTPAddr:          getEnv("ADDR", ":3000"),
		DataDir:           getEnv("DATA_DIR", "data"),
		PublicDir:         getEnv("PUBLIC_DIR", "public"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "owner"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", defaultAdminPassword),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		SessionSecret:     getEnv("ADMIN_SESSION_SECRET", "replace-this-session-secret"),
		SessionTTL:        getEnvDuration("SESSION_TTL", 8*time.Hour),
		Production:        getEnv("APP_ENV", "development") == "production",
		GelfAddr:          getEnv("GELF_ADDR", ""),
	}
}

// UsesDefaultPassword reports whether the admin password was left at its
// shipped default, which deserves a startup warning.
func (c *Config) UsesDefaultPassword() bool {
	return c.AdminPasswordHash == "" && c.AdminPassword == defaultAdminPassword
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
