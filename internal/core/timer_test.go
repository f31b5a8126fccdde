package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(100, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	// The first call releases the primed tick.
	assert.Equal(t, 1, fs.Due(0))
	assert.Equal(t, 0, fs.Due(0))

	clock = clock.Add(350 * time.Millisecond)
	assert.Equal(t, 3, fs.Due(0))

	clock = clock.Add(10 * time.Second)
	assert.Equal(t, 2, fs.Due(2), "burst must be capped")
	assert.Equal(t, 0, fs.Due(2), "backlog is dropped after a capped burst")
}
