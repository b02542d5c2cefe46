package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_PragmasHoldOnEveryQuery(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "records.db"), nil, "")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	assert.Equal(t, 1, store.db.Stats().MaxOpenConnections)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			var timeout, foreignKeys int
			assert.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
			assert.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&foreignKeys))
			assert.Equal(t, 5000, timeout)
			assert.Equal(t, 1, foreignKeys)
		})
	}
	wg.Wait()
}
