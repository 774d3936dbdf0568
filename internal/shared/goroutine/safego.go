// Package goroutine runs fire-and-forget work without letting a panic take
// down the server.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/localshop/storefront/internal/shared/logger"
)

// Detach runs fn in a new goroutine with a context that keeps parent's
// values but not its cancellation, bounded by timeout. It lets a callback
// handler reply to the gateway while follow-up work such as the customer
// email keeps running. The returned channel closes when fn has returned or
// panicked.
func Detach(parent context.Context, log logger.Interface, name string, timeout time.Duration, fn func(ctx context.Context)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background task panicked",
					"task", name,
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()))
			}
		}()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), timeout)
		defer cancel()
		fn(ctx)
	}()
	return done
}
