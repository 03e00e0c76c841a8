//go:build integration

package migrations_test

import (
	"testing"

	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMigrator_RunUpIsIdempotent(t *testing.T) {
	// Arrange
	env := testutils.SetupPostgres(t)
	migrator := migrations.NewMigrator(env.Database.Pool, zap.NewNop())

	// Act
	err := migrator.RunUp()

	// Assert
	require.NoError(t, err)

	version, dirty, err := migrator.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	// Пул остаётся рабочим после закрытия экземпляров migrate
	assert.NoError(t, env.Database.Ping(t.Context()))
}
