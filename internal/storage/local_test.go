package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLifecycle(t *testing.T) {
	backend, err := NewLocal(t.TempDir() + "/nested/dir/recipes.db")
	require.NoError(t, err)

	// Idempotent: a second run must not fail or alter anything.
	require.NoError(t, backend.Initialize())
	require.NoError(t, backend.Initialize())

	assert.True(t, backend.HealthCheck(context.Background()))

	for _, table := range []string{"categories", "recipes", "ingredients"} {
		assert.True(t, backend.DB().Migrator().HasTable(table), "missing table %s", table)
	}

	require.NoError(t, backend.Close())
}
