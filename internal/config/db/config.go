package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config содержит настройки пула подключений к PostgreSQL
type Config struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// ConnectAttempts сколько раз пинговать базу при старте, пока она поднимается
	ConnectAttempts int
	RetryDelay      time.Duration
}

// NewConfig создает конфигурацию подключения к БД
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:               dsn,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,
		ConnectAttempts:   5,
		RetryDelay:        time.Second,
	}
}

// Connect создает пул и дожидается ответа базы
func (c *Config) Connect(ctx context.Context) (*DBAdapter, error) {
	if c.DSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	poolConfig, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = c.MaxConns
	poolConfig.MinConns = c.MinConns
	poolConfig.MaxConnLifetime = c.MaxConnLifetime
	poolConfig.MaxConnIdleTime = c.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = c.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := c.waitReady(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &DBAdapter{Pool: pool}, nil
}

func (c *Config) waitReady(ctx context.Context, pool *pgxpool.Pool) error {
	attempts := max(c.ConnectAttempts, 1)

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = pool.Ping(ctx); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to ping database: %w", ctx.Err())
		case <-time.After(c.RetryDelay):
		}
	}

	return fmt.Errorf("failed to ping database after %d attempts: %w", attempts, err)
}

//go:generate mockery

// Database интерфейс для проверки доступности и закрытия подключения
type Database interface {
	Ping(ctx context.Context) error
	Close()
}

// DBAdapter адаптер для pgxpool.Pool к Database интерфейсу
type DBAdapter struct {
	Pool *pgxpool.Pool
}

func (d *DBAdapter) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

func (d *DBAdapter) Close() {
	d.Pool.Close()
}
