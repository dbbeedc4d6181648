package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiterPerClient(t *testing.T) {
	l := NewLimiter(3, 0, true)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"))
	}
	assert.False(t, l.Allow("10.0.0.1"))

	// other clients are unaffected
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(1, 1, false)
	for i := 0; i < 10; i++ {
		assert.True(t, l.Allow("10.0.0.1"))
	}
	assert.False(t, l.StatsFor("10.0.0.1").Enabled)
}

func TestLimiterHourlyCap(t *testing.T) {
	l := NewLimiter(100, 2, true)

	assert.True(t, l.Allow("c"))
	assert.True(t, l.Allow("c"))
	assert.False(t, l.Allow("c"))

	stats := l.StatsFor("c")
	assert.Equal(t, 2, stats.RequestsLastHour)
	assert.Equal(t, 2, stats.LimitPerHour)
}

func TestLimiterReset(t *testing.T) {
	l := NewLimiter(1, 0, true)
	assert.True(t, l.Allow("c"))
	assert.False(t, l.Allow("c"))

	l.Reset()
	assert.True(t, l.Allow("c"))
}
