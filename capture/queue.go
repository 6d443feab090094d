// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// DefaultQueueCapacity is the number of windows a live stream buffers
// between the capture callback and the consumer.
const DefaultQueueCapacity = 2

// OnFull is what Put does when the queue is full.
type OnFull int

const (
	// Block waits for the consumer.
	Block OnFull = iota
	// DropOldest discards the oldest queued window to make room.
	DropOldest
)

func (o OnFull) String() string {
	switch o {
	case Block:
		return "block"
	case DropOldest:
		return "drop_oldest"
	default:
		return fmt.Sprintf("OnFull(%d)", int(o))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OnFull) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "block":
		*o = Block
	case "drop_oldest", "drop-oldest":
		*o = DropOldest
	default:
		return fmt.Errorf("%q: %w", text, ErrOnFull)
	}

	return nil
}

// Queue is a bounded FIFO of windows. Put and Get are safe for concurrent
// use.
type Queue struct {
	items  chan []float32
	policy OnFull

	mu        sync.Mutex // serializes DropOldest producers
	done      chan struct{}
	closeOnce sync.Once
}

// NewQueue returns a queue holding up to capacity windows.
func NewQueue(capacity int, policy OnFull) (*Queue, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrQueueCapacity)
	}

	return &Queue{
		items:  make(chan []float32, capacity),
		policy: policy,
		done:   make(chan struct{}),
	}, nil
}

// Put enqueues w. With DropOldest it never blocks and reports whether a
// window was discarded; with Block it waits until there is room, ctx is
// done or the queue is closed.
func (q *Queue) Put(ctx context.Context, w []float32) (dropped bool, err error) {
	select {
	case <-q.done:
		return false, ErrQueueClosed
	default:
	}

	if q.policy == DropOldest {
		q.mu.Lock()
		defer q.mu.Unlock()

		for {
			select {
			case q.items <- w:
				return dropped, nil
			default:
			}

			select {
			case <-q.items:
				dropped = true
			default:
			}
		}
	}

	select {
	case q.items <- w:
		return false, nil
	case <-q.done:
		return false, ErrQueueClosed
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Get dequeues the oldest window. After Close the remaining windows are
// still returned, then ErrQueueClosed.
func (q *Queue) Get(ctx context.Context) ([]float32, error) {
	select {
	case w := <-q.items:
		return w, nil
	case <-q.done:
		select {
		case w := <-q.items:
			return w, nil
		default:
			return nil, ErrQueueClosed
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Len is the number of queued windows.
func (q *Queue) Len() int { return len(q.items) }

// Cap is the queue capacity.
func (q *Queue) Cap() int { return cap(q.items) }

// Close rejects further Puts and wakes blocked callers once the queue is
// empty. It is safe to call more than once.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.done) })
}
