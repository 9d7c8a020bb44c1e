package locker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryAcquireAndRelease(t *testing.T) {
	l := New()

	assert.True(t, l.TryAcquire("2025-02"))
	assert.False(t, l.TryAcquire("2025-02"))
	assert.True(t, l.TryAcquire("2025-03"), "other keys are independent")

	l.Release("2025-02")
	assert.True(t, l.TryAcquire("2025-02"))
}
