package goroutine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localshop/storefront/internal/shared/logger"
)

type ctxKey struct{}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not finish")
	}
}

func TestDetach_RecoversPanic(t *testing.T) {
	done := Detach(context.Background(), logger.NewNopLogger(), "panicky", time.Second, func(context.Context) {
		panic("boom")
	})
	waitDone(t, done)
}

func TestDetach_SurvivesParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "req-1"))
	release := make(chan struct{})
	var gotValue any
	var gotErr error

	done := Detach(parent, logger.NewNopLogger(), "mailer", time.Second, func(ctx context.Context) {
		<-release
		gotValue = ctx.Value(ctxKey{})
		gotErr = ctx.Err()
	})
	cancel()
	close(release)
	waitDone(t, done)

	assert.Equal(t, "req-1", gotValue)
	assert.NoError(t, gotErr)
}

func TestDetach_TimeoutExpires(t *testing.T) {
	var err error
	done := Detach(context.Background(), logger.NewNopLogger(), "mailer", 10*time.Millisecond, func(ctx context.Context) {
		<-ctx.Done()
		err = ctx.Err()
	})
	waitDone(t, done)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
