package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort string
	Debug      bool
	LogPath    string

	// Remote data store (PostgREST-style REST API).
	SupabaseURL       string
	SupabaseKey       string
	SupabaseSecretKey string

	SessionSecret   string
	SessionTTLHours int

	RedisAddr     string
	RedisPassword string

	Media MediaConfig
}

// MediaConfig configures the stylist photo storage bucket.
type MediaConfig struct {
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	PublicBase  string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Debug:      getBool("DEBUG", false),
		LogPath:    getEnv("LOG_PATH", "logs/"),

		SupabaseURL:       getEnv("SUPABASE_URL", "http://localhost:54321"),
		SupabaseKey:       getEnv("SUPABASE_KEY", ""),
		SupabaseSecretKey: getEnv("SUPABASE_SECRET_KEY", ""),

		SessionSecret:   getEnv("SESSION_SECRET", "changeme"),
		SessionTTLHours: getInt("SESSION_TTL_HOURS", 24),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		Media: MediaConfig{
			S3Bucket:    getEnv("S3_BUCKET", "salon-media"),
			S3Region:    getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:  getEnv("S3_ENDPOINT", ""),
			S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey: getEnv("S3_SECRET_KEY", ""),
			PublicBase:  getEnv("S3_PUBLIC_BASE", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}
