package idgenerator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSonyflake_NextID(t *testing.T) {
	t.Parallel()

	g, err := NewSonyflake(time.Now().Add(-time.Hour), 1)
	require.NoError(t, err)

	seen := make(map[uint64]struct{}, 1000)
	var last uint64
	for i := 0; i < 1000; i++ {
		id, err := g.NextID()
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}

func TestSonyflake_StartTimeInFuture(t *testing.T) {
	t.Parallel()

	_, err := NewSonyflake(time.Now().Add(time.Hour), 1)
	assert.ErrorIs(t, err, ErrInitFailed)
}
