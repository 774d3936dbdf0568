package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/storefront/internal/shared/logger"
)

type countingJob struct {
	calls atomic.Int32
}

func (j *countingJob) Execute(context.Context) (int, error) {
	j.calls.Add(1)
	return 1, nil
}

func TestSchedulerManager_RunsPaymentJobImmediately(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	job := &countingJob{}
	require.NoError(t, m.RegisterPaymentJobs(job, time.Hour))
	require.Len(t, m.Jobs(), 1)

	m.Start()
	assert.True(t, m.IsStarted())

	assert.Eventually(t, func() bool {
		return job.calls.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
	require.NoError(t, m.Stop())
}
