package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGuard(t *testing.T) {
	var g cacheGuard
	calls := 0
	write := func() error { calls++; return nil }

	gen := g.generation(7)
	written, err := g.fill(7, gen, write)
	require.NoError(t, err)
	assert.True(t, written)

	gen = g.generation(7)
	g.bump(7)
	written, err = g.fill(7, gen, write)
	require.NoError(t, err)
	assert.False(t, written)
	assert.Equal(t, 1, calls)

	// другой ключ в другой полосе не затронут
	gen = g.generation(8)
	g.bump(7)
	written, _ = g.fill(8, gen, write)
	assert.True(t, written)

	boom := errors.New("redis down")
	_, err = g.fill(8, g.generation(8), func() error { return boom })
	assert.ErrorIs(t, err, boom)
}
