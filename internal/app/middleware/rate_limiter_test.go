package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketBurst(t *testing.T) {
	tb := NewTokenBucket(1, 3)

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestTokenBucketRefills(t *testing.T) {
	tb := NewTokenBucket(100, 1)

	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())

	// 100 tokens per second, so one token is back within a few ms.
	time.Sleep(20 * time.Millisecond)
	assert.True(t, tb.Allow())
}

func TestTokenBucketCapacityCap(t *testing.T) {
	tb := NewTokenBucket(1000, 2)

	// Even after a long idle period only capacity tokens are held.
	time.Sleep(10 * time.Millisecond)
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}
