package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_BurstThenThrottle(t *testing.T) {
	l := NewInMemoryLimiter(time.Hour, 2)

	assert.True(t, l.Allow(1))
	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1), "the burst is spent")
}

func TestAllow_ChatsAreIndependent(t *testing.T) {
	l := NewInMemoryLimiter(time.Hour, 1)

	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1))
	assert.True(t, l.Allow(2), "another chat has its own bucket")
}
