package humanizer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelayWithinBounds(t *testing.T) {
	min := 1500 * time.Millisecond
	max := 3000 * time.Millisecond

	for i := 0; i < 100; i++ {
		d := Delay(min, max)
		assert.GreaterOrEqual(t, d, min)
		assert.Less(t, d, max)
	}
}

func TestDelayDegenerateRange(t *testing.T) {
	d := Delay(2*time.Second, 2*time.Second)
	assert.Equal(t, 2*time.Second, d)
}

func TestWaitHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Wait(ctx, 5*time.Second)

	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestWaitCompletes(t *testing.T) {
	err := Wait(context.Background(), 5*time.Millisecond)
	assert.NoError(t, err)
}
