package db

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Ordered(t *testing.T) {
	files, err := Migrations()
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001_init.sql", files[0])
	assert.IsIncreasing(t, files)
}

func TestMigrate_Idempotent(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	pool, err := NewPool(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = Migrate(ctx, pool)
	require.NoError(t, err)

	applied, err := Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Empty(t, applied)

	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM public.service_catalog_version`).Scan(&n))
	assert.Equal(t, 1, n)
}
