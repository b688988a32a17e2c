package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffStopsOnShutdown(t *testing.T) {
	p := NewNotificationProcessor(nil, nil, "", "", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	assert.False(t, p.pause(ctx, time.Minute))
	assert.Less(t, time.Since(start), time.Second)
}

func TestBackoffElapses(t *testing.T) {
	p := NewNotificationProcessor(nil, nil, "", "", nil)
	assert.True(t, p.pause(context.Background(), time.Millisecond))
}
