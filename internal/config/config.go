package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Длина короткого кода фиксирована и не настраивается
const CodeLength = 7

// Виды брокера для событий посещений
const (
	BrokerLog   = "log"
	BrokerNATS  = "nats"
	BrokerKafka = "kafka"
)

// Config содержит всю конфигурацию приложения.
// Значения читаются из окружения, флаги командной строки имеют приоритет.
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	GRPCAddress     string         `env:"GRPC_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	LogLevel        string         `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string       `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	Redis     RedisConfig
	Cache     CacheConfig
	Code      CodeConfig
	Broker    BrokerConfig
	Visits    VisitsConfig
	RateLimit RateLimitConfig
}

// RedisConfig настройки Redis; пустой адрес означает in-memory кэш и ранжирование
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// CacheConfig настройки горячего кэша
type CacheConfig struct {
	TopN int `env:"CACHE_TOP_N" envDefault:"100"`
}

// CodeConfig настройки генерации коротких кодов
type CodeConfig struct {
	MaxAttempts    int `env:"CODE_MAX_ATTEMPTS" envDefault:"5"`
	InsertAttempts int `env:"CODE_INSERT_ATTEMPTS" envDefault:"3"`
}

// BrokerConfig настройки транспорта событий посещений
type BrokerConfig struct {
	Kind         string   `env:"BROKER_KIND" envDefault:"log"`
	NATSURL      string   `env:"NATS_URL" envDefault:"nats://localhost:4222"`
	NATSStream   string   `env:"NATS_STREAM" envDefault:"VISITS"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic        string   `env:"VISIT_TOPIC" envDefault:"visits"`
	ConsumerName string   `env:"VISIT_CONSUMER" envDefault:"visitcounter"`
}

// VisitsConfig настройки асинхронной отправки событий посещений
type VisitsConfig struct {
	Buffer  int `env:"VISIT_BUFFER" envDefault:"1024"`
	Workers int `env:"VISIT_WORKERS" envDefault:"4"`
}

// RateLimitConfig настройки ограничителя запросов на создание ссылок
type RateLimitConfig struct {
	Window      time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	MaxRequests int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"5"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:         URLPrefix("http://localhost:8080"),
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		CORSOrigins:     []string{"*"},
		Cache:           CacheConfig{TopN: 100},
		Code:            CodeConfig{MaxAttempts: 5, InsertAttempts: 3},
		Broker: BrokerConfig{
			Kind:         BrokerLog,
			NATSURL:      "nats://localhost:4222",
			NATSStream:   "VISITS",
			KafkaBrokers: []string{"localhost:9092"},
			Topic:        "visits",
			ConsumerName: "visitcounter",
		},
		Visits:    VisitsConfig{Buffer: 1024, Workers: 4},
		RateLimit: RateLimitConfig{Window: time.Minute, MaxRequests: 5},
	}
}

// Load читает конфигурацию из окружения и аргументов командной строки
func Load() (*Config, error) {
	return load(os.Args[0], os.Args[1:])
}

func load(program string, args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "base URL for shortened URL")
	fs.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "address of gRPC health endpoint, disabled when empty")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to file storage journal")
	fs.StringVar(&cfg.Redis.Addr, "r", cfg.Redis.Addr, "Redis address for cache and ranking")
	fs.StringVar(&cfg.Broker.Kind, "broker", cfg.Broker.Kind, "visit events broker: log, nats or kafka")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Cache.TopN <= 0 {
		return fmt.Errorf("cache top N must be positive, got %d", c.Cache.TopN)
	}
	if c.Code.MaxAttempts <= 0 {
		return fmt.Errorf("code max attempts must be positive, got %d", c.Code.MaxAttempts)
	}
	if c.Code.InsertAttempts <= 0 {
		return fmt.Errorf("code insert attempts must be positive, got %d", c.Code.InsertAttempts)
	}
	if c.Visits.Buffer <= 0 || c.Visits.Workers <= 0 {
		return fmt.Errorf("visit buffer and workers must be positive")
	}
	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit window and max requests must be positive")
	}

	switch strings.ToLower(c.Broker.Kind) {
	case BrokerLog, BrokerNATS, BrokerKafka:
		c.Broker.Kind = strings.ToLower(c.Broker.Kind)
	default:
		return fmt.Errorf("unknown broker kind %q", c.Broker.Kind)
	}

	return nil
}
