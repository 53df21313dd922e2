package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageRedis    = "redis"
	StoragePostgres = "postgres"

	// PollIncremental опрашивает ленту новых выездов, PollFull перечитывает первую страницу
	PollIncremental = "incremental"
	PollFull        = "full"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Remote source Config
	SourceBaseURL  string         `env:"SOURCE_BASE_URL"`
	SourceTimeout  time.Duration  `env:"SOURCE_TIMEOUT" envDefault:"10s"`
	SourceTimezone string         `env:"SOURCE_TIMEZONE" envDefault:"Europe/Prague"`
	SourceRegion   string         `env:"SOURCE_REGION" envDefault:"Kraj Vysočina"`
	SourceLocation *time.Location `env:"-"`

	// Poller Config
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"30s"`
	PollMode     string        `env:"POLL_MODE" envDefault:"incremental"`
	PageSize     int           `env:"PAGE_SIZE" envDefault:"20"`

	// Storage Config
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"redis"`
	StorageKey     string `env:"STORAGE_KEY" envDefault:"emergency-storage"`
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	DBMaxConns     int32  `env:"DB_MAX_CONNS" envDefault:"4"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         strings.ToLower(getEnv("LOG_FORMAT", "json")),
		SourceBaseURL:     os.Getenv("SOURCE_BASE_URL"),
		SourceTimeout:     getEnvAsDuration("SOURCE_TIMEOUT", 10*time.Second),
		SourceTimezone:    getEnv("SOURCE_TIMEZONE", "Europe/Prague"),
		SourceRegion:      getEnv("SOURCE_REGION", "Kraj Vysočina"),
		PollInterval:      getEnvAsDuration("POLL_INTERVAL", 30*time.Second),
		PollMode:          strings.ToLower(getEnv("POLL_MODE", PollIncremental)),
		PageSize:          getEnvAsInt("PAGE_SIZE", 20),
		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", StorageRedis)),
		StorageKey:        getEnv("STORAGE_KEY", "emergency-storage"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "file://migrations"),
		DBMaxConns:        int32(getEnvAsInt("DB_MAX_CONNS", 4)),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		APIKeys:           getEnvAsList("API_KEYS"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SourceBaseURL == "" {
		return fmt.Errorf("SOURCE_BASE_URL environment variable is required")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive, got %s", c.PollInterval)
	}
	if c.PollMode != PollIncremental && c.PollMode != PollFull {
		return fmt.Errorf("unknown POLL_MODE %q", c.PollMode)
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("PAGE_SIZE must be between 1 and 100, got %d", c.PageSize)
	}
	if c.RedisPoolSize < 1 {
		return fmt.Errorf("REDIS_POOL_SIZE must be positive, got %d", c.RedisPoolSize)
	}
	switch c.StorageBackend {
	case StorageRedis:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for postgres storage")
		}
		if c.DBMaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	loc, err := time.LoadLocation(c.SourceTimezone)
	if err != nil {
		return fmt.Errorf("invalid SOURCE_TIMEZONE %q: %w", c.SourceTimezone, err)
	}
	c.SourceLocation = loc
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
