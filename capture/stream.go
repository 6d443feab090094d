// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/ik5/audfeat/audio"
	"github.com/ik5/audfeat/quantize"
)

// StreamOption configures a Stream.
type StreamOption func(*streamConfig)

type streamConfig struct {
	capacity int
	policy   OnFull
	duration time.Duration
	logger   *slog.Logger
}

// WithQueue sets the queue capacity and overflow policy. The default is
// DefaultQueueCapacity with Block.
func WithQueue(capacity int, policy OnFull) StreamOption {
	return func(c *streamConfig) {
		c.capacity = capacity
		c.policy = policy
	}
}

// WithDuration stops the stream after BlockCount(d) windows.
func WithDuration(d time.Duration) StreamOption {
	return func(c *streamConfig) {
		c.duration = d
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) StreamOption {
	return func(c *streamConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Stream hands windows from a live capture callback to a consumer.
//
// Deliver and DeliverPCM belong to the single producer (the audio backend
// thread) and must not be called concurrently. Next and Windows belong to
// the consumer. Stop may be called from anywhere.
type Stream struct {
	params Params
	buf    *Buffer
	queue  *Queue
	logger *slog.Logger

	mono []float32
	pcm  []float32

	stopped atomic.Bool
	dropped atomic.Uint64
}

// NewStream returns a stream cutting live blocks into windows per p.
func NewStream(p Params, opts ...StreamOption) (*Stream, error) {
	cfg := streamConfig{
		capacity: DefaultQueueCapacity,
		policy:   Block,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	buf, err := NewBuffer(p)
	if err != nil {
		return nil, err
	}
	buf.SetDuration(cfg.duration, p.SamplingFreq)

	queue, err := NewQueue(cfg.capacity, cfg.policy)
	if err != nil {
		return nil, err
	}

	s := &Stream{
		params: p,
		buf:    buf,
		queue:  queue,
		logger: cfg.logger.With("component", "capture"),
	}

	s.logger.Debug("stream created",
		"min_samples", p.MinSamples,
		"overlap", p.Overlap,
		"channels", p.channels(),
		"queue", cfg.capacity,
		"on_full", cfg.policy.String(),
		"blocks", buf.BlockCount())

	return s, nil
}

func (s *Stream) Params() Params { return s.params }

// Dropped is the number of windows discarded by a DropOldest queue.
func (s *Stream) Dropped() uint64 { return s.dropped.Load() }

// NextBlockLen is the fewest samples per channel the next Deliver accepts.
// A block of MinSamples per channel is always accepted.
func (s *Stream) NextBlockLen() int { return s.buf.NextBlockLen() }

// Deliver accepts one interleaved block from the capture backend. The
// block that exhausts a configured duration closes the queue behind its
// window; Next still returns the windows queued before that point.
func (s *Stream) Deliver(block []float32) error {
	if s.stopped.Load() {
		return ErrStopped
	}

	mono := block
	if ch := s.params.channels(); ch > 1 {
		if len(block)%ch != 0 {
			return fmt.Errorf("%w: %d samples for %d channels: %w", ErrBlockLength, len(block), ch, audio.ErrPartialFrame)
		}

		frames := len(block) / ch
		if cap(s.mono) < frames {
			s.mono = make([]float32, frames)
		}
		mono = s.mono[:frames]

		if s.params.Mono {
			audio.MixDown(mono, block, ch)
		} else {
			audio.PickChannel(mono, block, ch, 0)
		}
	}

	first := s.buf.State() == Buffering

	window, err := s.buf.Push(mono)
	if err != nil {
		return err
	}

	if first {
		s.logger.Debug("stream active")
	}

	dropped, err := s.queue.Put(context.Background(), window)
	if errors.Is(err, ErrQueueClosed) {
		return ErrStopped
	}
	if err != nil {
		return err
	}

	if dropped {
		n := s.dropped.Add(1)
		s.logger.Warn("window dropped, consumer too slow", "dropped", n)
	}

	if s.buf.State() == Stopped {
		s.queue.Close()
		s.logger.Info("capture duration reached", "blocks", s.buf.Blocks())
	}

	return nil
}

// DeliverPCM decodes little-endian samples of the configured DType and
// delivers them.
func (s *Stream) DeliverPCM(raw []byte) error {
	size := s.params.DType.Size()
	if len(raw)%size != 0 {
		return fmt.Errorf("%d bytes of %s: %w", len(raw), s.params.DType, ErrPCMLength)
	}

	n := len(raw) / size
	if cap(s.pcm) < n {
		s.pcm = make([]float32, n)
	}
	samples := s.pcm[:n]

	DecodePCM(samples, raw, s.params.DType)

	return s.Deliver(samples)
}

// DecodePCM converts little-endian raw samples into dst and returns the
// number of samples written.
func DecodePCM(dst []float32, raw []byte, dt DType) int {
	size := dt.Size()
	n := min(len(dst), len(raw)/size)

	for i := range n {
		b := raw[i*size : (i+1)*size]
		switch dt {
		case Int16:
			dst[i] = quantize.Int16ToFloat32(int16(binary.LittleEndian.Uint16(b)))
		default:
			dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(b))
		}
	}

	return n
}

// Next blocks until a window is available. It returns io.EOF once the
// duration is exhausted and every window has been read, or right after
// Stop, discarding windows still queued.
func (s *Stream) Next(ctx context.Context) ([]float32, error) {
	if s.stopped.Load() {
		return nil, io.EOF
	}

	w, err := s.queue.Get(ctx)
	if errors.Is(err, ErrQueueClosed) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}

	if s.stopped.Load() {
		return nil, io.EOF
	}

	return w, nil
}

// Windows yields windows until the stream ends. A context error is yielded
// once before the sequence stops.
func (s *Stream) Windows(ctx context.Context) iter.Seq2[[]float32, error] {
	return func(yield func([]float32, error) bool) {
		for {
			w, err := s.Next(ctx)
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(w, err) || err != nil {
				return
			}
		}
	}
}

// Stop ends the stream. Blocked Deliver and Next calls return.
func (s *Stream) Stop() {
	if !s.stopped.Swap(true) {
		s.logger.Info("capture stopped", "dropped", s.dropped.Load())
	}

	s.queue.Close()
}
