package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"dorm-rental/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingLimiter struct {
	calls   atomic.Int32
	maxIdle time.Duration
}

func (c *countingLimiter) Cleanup(maxIdle time.Duration) int {
	c.calls.Add(1)
	c.maxIdle = maxIdle
	return 3
}

func TestNewRegistersJobs(t *testing.T) {
	s, err := New(&repository.Repository{}, &countingLimiter{}, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 2)
}

func TestCleanLimiterUsesIdleWindow(t *testing.T) {
	limiter := &countingLimiter{}
	s, err := New(&repository.Repository{}, limiter, zap.NewNop())
	require.NoError(t, err)

	s.cleanLimiter()

	assert.Equal(t, int32(1), limiter.calls.Load())
	assert.Equal(t, limiterMaxIdle, limiter.maxIdle)
}
