package worldReader

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Needs a WebChunk database, set TOPMAP_TEST_POSTGRES to its connection string.
func TestPostgresReaderMissingChunk(t *testing.T) {
	dsn := os.Getenv("TOPMAP_TEST_POSTGRES")
	if dsn == "" {
		t.Skip("TOPMAP_TEST_POSTGRES not set")
	}
	r, err := NewPostgresReader(context.Background(), dsn, "topmap-test-world-that-does-not-exist")
	require.NoError(t, err)
	defer r.Close()
	_, err = r.GetBlock(0, 64, 0, "minecraft:overworld")
	assert.ErrorIs(t, err, ErrChunkNotFound)
	count, err := r.ChunkCount(context.Background(), "minecraft:overworld")
	require.NoError(t, err)
	assert.Zero(t, count)
}
