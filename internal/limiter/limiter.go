// Package limiter provides the FIFO concurrency limiter that gates action
// execution: at most max tasks run at once, and callers beyond that suspend
// in strict arrival order.
package limiter

import (
	"container/list"
	"context"
	"fmt"
	"sync"
)

// Limiter admits at most max concurrently running tasks and wakes waiting
// callers in FIFO order. Its mutex-guarded counters and waiter queue are the
// only shared mutable state in the execution core. The zero value is not
// usable; construct with New.
type Limiter struct {
	max int

	mu      sync.Mutex
	active  int
	waiters list.List // of chan struct{}, one per suspended caller
}

// New builds a limiter with the given concurrency ceiling.
func New(max int) (*Limiter, error) {
	if max < 1 {
		return nil, fmt.Errorf("limiter concurrency must be at least 1, got %d", max)
	}
	return &Limiter{max: max}, nil
}

// Run executes task once a slot is available and releases the slot when the
// task returns, whether it succeeded or not. The task's error is returned
// verbatim: a failing task is a terminal outcome, never a limiter error.
// Cancellation of ctx while waiting abandons the wait and returns ctx.Err().
func (l *Limiter) Run(ctx context.Context, task func() error) error {
	if err := l.acquire(ctx); err != nil {
		return err
	}
	defer l.release()
	return task()
}

// acquire claims a slot, suspending the caller at the tail of the waiter
// queue when all slots are busy.
func (l *Limiter) acquire(ctx context.Context) error {
	l.mu.Lock()
	if l.active < l.max && l.waiters.Len() == 0 {
		l.active++
		l.mu.Unlock()
		return nil
	}

	ready := make(chan struct{})
	elem := l.waiters.PushBack(ready)
	l.mu.Unlock()

	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		l.mu.Lock()
		select {
		case <-ready:
			// Woken and canceled at the same time: the slot is already ours,
			// so pass it on before giving up.
			l.mu.Unlock()
			l.release()
		default:
			l.waiters.Remove(elem)
			l.mu.Unlock()
		}
		return ctx.Err()
	}
}

// release returns a slot. When waiters exist the slot transfers directly to
// the head of the queue, keeping admission strictly FIFO; active is unchanged
// in that case because ownership moves without a gap.
func (l *Limiter) release() {
	l.mu.Lock()
	if front := l.waiters.Front(); front != nil {
		l.waiters.Remove(front)
		close(front.Value.(chan struct{}))
	} else {
		l.active--
	}
	l.mu.Unlock()
}

// waiting reports how many callers are currently suspended in the queue.
func (l *Limiter) waiting() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.waiters.Len()
}
