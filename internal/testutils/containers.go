//go:build integration

// Package testutils поднимает PostgreSQL и Redis в контейнерах для интеграционных тестов.
package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/config/rdb"
	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// PostgresEnvironment контейнер PostgreSQL с применёнными миграциями
type PostgresEnvironment struct {
	Database  *db.DBAdapter
	DSN       string
	container tc.Container
}

// SetupPostgres запускает контейнер и применяет миграции; очистка регистрируется в t.Cleanup
func SetupPostgres(t testing.TB) *PostgresEnvironment {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("shortlink"),
		tcpostgres.WithUsername("shortlink"),
		tcpostgres.WithPassword("shortlink"),
		tcpostgres.WithSQLDriver("pgx"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	env := &PostgresEnvironment{container: container}
	t.Cleanup(func() {
		if env.Database != nil {
			env.Database.Close()
		}
		_ = container.Terminate(context.Background())
	})

	env.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	env.Database, err = db.NewConfig(env.DSN).Connect(ctx)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}

	if err := migrations.NewMigrator(env.Database.Pool, zap.NewNop()).RunUp(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return env
}

// SetupRedis запускает контейнер Redis и возвращает подключённого клиента
func SetupRedis(t testing.TB) *redis.Client {
	t.Helper()

	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get redis endpoint: %v", err)
	}

	client, err := rdb.NewConfig(endpoint, "", 0).Connect(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to connect to redis: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
		_ = container.Terminate(context.Background())
	})

	return client
}
