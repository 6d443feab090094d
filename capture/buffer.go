// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"
	"math"
	"time"
)

// State is the lifecycle of a Buffer.
type State int

const (
	Buffering State = iota // no window produced yet
	Active                 // steady state
	Stopped                // terminal
)

func (s State) String() string {
	switch s {
	case Buffering:
		return "buffering"
	case Active:
		return "active"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// BlockCount is the number of windows covering d of audio at sampleRate:
// whole windows, plus one when the remainder exceeds half a second, and
// never less than one.
func BlockCount(d time.Duration, sampleRate, minSamples int) int {
	total := int(math.Round(d.Seconds() * float64(sampleRate)))

	count, rem := total/minSamples, total%minSamples
	if rem > sampleRate/2 {
		count++
	}

	return max(count, 1)
}

// Buffer accumulates fixed-size blocks into overlapping windows. It is
// owned by a single producer and is not safe for concurrent use.
type Buffer struct {
	minSamples int
	overlap    int

	// collection[:minSamples] is the current window. The last overlap
	// positions take the part of a full block that follows the hop.
	collection []float32

	state        State
	currentBlock int
	blockCount   int // 0 means unbounded
}

// NewBuffer returns an empty buffer for p.
func NewBuffer(p Params) (*Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Buffer{
		minSamples: p.MinSamples,
		overlap:    p.Overlap,
		collection: make([]float32, p.MinSamples+p.Overlap),
	}, nil
}

// SetDuration bounds the capture to BlockCount(d, sampleRate, MinSamples)
// windows. A zero duration removes the bound.
func (b *Buffer) SetDuration(d time.Duration, sampleRate int) {
	if d <= 0 {
		b.blockCount = 0
		return
	}

	b.blockCount = BlockCount(d, sampleRate, b.minSamples)
}

func (b *Buffer) State() State { return b.state }

// BlockCount is the window budget, 0 when unbounded.
func (b *Buffer) BlockCount() int { return b.blockCount }

// Blocks is the number of windows produced so far.
func (b *Buffer) Blocks() int { return b.currentBlock }

// Stop moves the buffer to Stopped.
func (b *Buffer) Stop() { b.state = Stopped }

// NextBlockLen is the fewest samples the next Push accepts: the whole
// window first, then the hop. Push always accepts MinSamples.
func (b *Buffer) NextBlockLen() int {
	if b.state == Buffering || b.overlap == 0 {
		return b.minSamples
	}

	return b.minSamples - b.overlap
}

// Push adds block and returns a copy of the resulting window. The first
// block must fill a whole window. Later blocks carry between the hop
// (MinSamples-Overlap) and MinSamples samples; the last Overlap samples of
// the previous window move to the front and the block is written after
// them, so the window takes the first hop samples of the block.
func (b *Buffer) Push(block []float32) ([]float32, error) {
	if b.state == Stopped {
		return nil, ErrStopped
	}

	if b.state == Buffering || b.overlap == 0 {
		if len(block) != b.minSamples {
			return nil, fmt.Errorf("got %d samples, want %d: %w", len(block), b.minSamples, ErrBlockLength)
		}

		copy(b.collection[:b.minSamples], block)
	} else {
		hop := b.minSamples - b.overlap
		switch {
		case len(block) > len(b.collection)-b.overlap:
			return nil, fmt.Errorf("got %d samples, at most %d fit after %d overlap: %w",
				len(block), len(b.collection)-b.overlap, b.overlap, ErrOverlap)
		case len(block) < hop:
			return nil, fmt.Errorf("got %d samples, want at least %d after %d overlap: %w",
				len(block), hop, b.overlap, ErrBlockLength)
		}

		copy(b.collection[:b.overlap], b.collection[hop:b.minSamples])
		copy(b.collection[b.overlap:], block)
	}

	b.state = Active

	window := make([]float32, b.minSamples)
	copy(window, b.collection[:b.minSamples])

	b.currentBlock++
	if b.blockCount > 0 && b.currentBlock >= b.blockCount {
		b.state = Stopped
	}

	return window, nil
}
