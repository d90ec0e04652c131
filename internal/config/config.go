package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	Database DatabaseConfig
	Cache    CacheConfig
	Events   EventsConfig

	RedisURL string
	SeedData bool
}

type DatabaseConfig struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// CacheConfig drives the list caches. Duration is a bare number: minutes of
// sliding expiration and hours of absolute expiration.
type CacheConfig struct {
	Backend            string
	Duration           int
	SizeLimit          int64
	InvalidateOnUpdate bool
}

type EventsConfig struct {
	Backend string
	Brokers []string
	Topic   string
}

// LoadConfig reads an optional .env file and then the process environment
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		Environment: getenv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getenv("LOG_LEVEL", "info")),
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getenv("DB_DRIVER", "postgres")),
			URL:             getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=english_school port=5432 sslmode=disable"),
			MaxOpenConns:    getenvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getenvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getenvDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getenvBool("DB_AUTO_MIGRATE", true),
		},
		Cache: CacheConfig{
			Backend:            strings.ToLower(getenv("CACHE_BACKEND", "memory")),
			Duration:           getenvInt("CACHE_DURATION", 5),
			SizeLimit:          int64(getenvInt("CACHE_SIZE_LIMIT", 1024)),
			InvalidateOnUpdate: getenvBool("CACHE_INVALIDATE_ON_UPDATE", false),
		},
		Events: EventsConfig{
			Backend: strings.ToLower(getenv("EVENTS_BACKEND", "gochannel")),
			Brokers: splitList(getenv("KAFKA_BROKERS", "localhost:9092")),
			Topic:   getenv("EVENTS_TOPIC", "school.events"),
		},
		RedisURL: getenv("REDIS_URL", ""),
		SeedData: getenvBool("SEED_DATA", false),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Cache.Duration <= 0 {
		return fmt.Errorf("CACHE_DURATION must be positive, got %d", c.Cache.Duration)
	}
	if c.Cache.SizeLimit <= 0 {
		return fmt.Errorf("CACHE_SIZE_LIMIT must be positive, got %d", c.Cache.SizeLimit)
	}

	switch c.Cache.Backend {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when CACHE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("unsupported CACHE_BACKEND %q", c.Cache.Backend)
	}

	switch c.Events.Backend {
	case "none", "gochannel":
	case "kafka":
		if len(c.Events.Brokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is required when EVENTS_BACKEND=kafka")
		}
	default:
		return fmt.Errorf("unsupported EVENTS_BACKEND %q", c.Events.Backend)
	}

	return nil
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
