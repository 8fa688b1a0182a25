package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowLimitsPerIP(t *testing.T) {
	rl := NewFixedWindowLimiter(2, time.Hour)

	ok, _ := rl.Allow("1.1.1.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("1.1.1.1")
	assert.True(t, ok)

	ok, retry := rl.Allow("1.1.1.1")
	assert.False(t, ok)
	assert.Equal(t, time.Hour, retry)

	ok, _ = rl.Allow("2.2.2.2")
	assert.True(t, ok)
}

func TestFixedWindowResets(t *testing.T) {
	rl := NewFixedWindowLimiter(1, 20*time.Millisecond)

	ok, _ := rl.Allow("ip")
	assert.True(t, ok)
	ok, _ = rl.Allow("ip")
	assert.False(t, ok)

	assert.Eventually(t, func() bool {
		ok, _ := rl.Allow("ip")
		return ok
	}, time.Second, 10*time.Millisecond)
}

func TestFixedWindowZeroLimitOpensOneWindow(t *testing.T) {
	rl := NewFixedWindowLimiter(0, time.Hour)

	scheduled := 0
	rl.afterFunc = func(d time.Duration, f func()) *time.Timer {
		scheduled++
		return time.AfterFunc(d, f)
	}

	for i := 0; i < 5; i++ {
		ok, retry := rl.Allow("3.3.3.3")
		assert.False(t, ok)
		assert.Equal(t, time.Hour, retry)
	}
	assert.Equal(t, 1, scheduled)
}
