package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Get returns the environment variable key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt is Get for integers. Unparseable values fall back.
func GetInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Server settings. Values come from defaults, then the optional TOML file,
// then the environment.
type Config struct {
	Port         string `toml:"port"`
	LogLevel     string `toml:"log_level"`
	DBDriver     string `toml:"db_driver"`
	DBPath       string `toml:"db_path"`
	DatabaseURL  string `toml:"database_url"`
	SeedPath     string `toml:"seed_path"`
	RedisAddr    string `toml:"redis_addr"`
	RedisTTL     string `toml:"redis_ttl"`
	MaxPeople    int    `toml:"max_people"`
	BatchWorkers int    `toml:"batch_workers"`
}

func Defaults() Config {
	return Config{
		Port:         "8080",
		LogLevel:     "info",
		DBDriver:     "sqlite",
		DBPath:       "data/app.db",
		SeedPath:     "data/seeds/puzzles.json",
		RedisTTL:     "24h",
		MaxPeople:    16,
		BatchWorkers: 4,
	}
}

// Load builds the configuration. path may be empty to skip the file.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path = strings.TrimSpace(path); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: decode %q: %w", path, err)
		}
	}

	cfg.Port = Get("PORT", cfg.Port)
	cfg.LogLevel = Get("LOG_LEVEL", cfg.LogLevel)
	cfg.DBDriver = Get("DB_DRIVER", cfg.DBDriver)
	cfg.DBPath = Get("DB_PATH", cfg.DBPath)
	cfg.DatabaseURL = Get("DATABASE_URL", cfg.DatabaseURL)
	cfg.SeedPath = Get("SEED_PATH", cfg.SeedPath)
	cfg.RedisAddr = Get("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisTTL = Get("REDIS_TTL", cfg.RedisTTL)
	cfg.MaxPeople = GetInt("MAX_PEOPLE", cfg.MaxPeople)
	cfg.BatchWorkers = GetInt("BATCH_WORKERS", cfg.BatchWorkers)

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres", "memory":
	default:
		return fmt.Errorf("db_driver must be sqlite, postgres or memory, got %q", c.DBDriver)
	}

	if c.DBDriver == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required for postgres")
	}

	if c.MaxPeople < 1 {
		return fmt.Errorf("max_people must be positive, got %d", c.MaxPeople)
	}

	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	return nil
}

// CacheTTL parses RedisTTL. An empty value means no expiry.
func (c Config) CacheTTL() (time.Duration, error) {
	if c.RedisTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.RedisTTL)
	if err != nil {
		return 0, fmt.Errorf("redis_ttl: %w", err)
	}
	return d, nil
}
