// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"fmt"

	"github.com/ik5/audfeat/mfcc"
	"golang.org/x/sync/errgroup"
)

// Option configures an Assembler.
type Option func(*Assembler)

// WithAugmenter overrides the augmenter chosen from the extractor family.
func WithAugmenter(a Augmenter) Option {
	return func(as *Assembler) {
		if a != nil {
			as.augmenter = a
		}
	}
}

// WithWorkers extracts frames on n goroutines. Output is identical to the
// serial path.
func WithWorkers(n int) Option {
	return func(as *Assembler) {
		as.workers = n
	}
}

// Assembler slices an audio window into overlapping frames and stacks their
// features into a model input tensor. It keeps no state between calls.
type Assembler struct {
	extractor      *mfcc.Extractor
	augmenter      Augmenter
	modelInputSize int
	stride         int
	workers        int
}

// NewAssembler returns an Assembler producing modelInputSize frames spaced
// stride samples apart.
func NewAssembler(ex *mfcc.Extractor, modelInputSize, stride int, opts ...Option) (*Assembler, error) {
	switch {
	case ex == nil:
		return nil, ErrNilExtractor
	case modelInputSize <= 0:
		return nil, fmt.Errorf("model input size %d: %w", modelInputSize, ErrModelInputSize)
	case stride <= 0:
		return nil, fmt.Errorf("stride %d: %w", stride, ErrStride)
	}

	as := &Assembler{
		extractor:      ex,
		augmenter:      ForFamily(ex.Family()),
		modelInputSize: modelInputSize,
		stride:         stride,
		workers:        1,
	}
	for _, opt := range opts {
		opt(as)
	}

	if as.workers <= 0 {
		return nil, fmt.Errorf("workers %d: %w", as.workers, ErrWorkers)
	}

	return as, nil
}

// MinSamples is the shortest window Extract accepts:
// (modelInputSize-1)*stride + FrameLen.
func (as *Assembler) MinSamples() int {
	return (as.modelInputSize-1)*as.stride + as.extractor.Params().FrameLen
}

func (as *Assembler) ModelInputSize() int { return as.modelInputSize }
func (as *Assembler) Stride() int         { return as.stride }

// Cols is the width of each output row.
func (as *Assembler) Cols() int {
	return as.augmenter.Width(as.extractor.NumFeatures())
}

// Extract computes a ModelInputSize x Cols tensor from the start of audio.
// Samples past MinSamples are ignored.
func (as *Assembler) Extract(audio []float32) (*Tensor, error) {
	if len(audio) < as.MinSamples() {
		return nil, fmt.Errorf("got %d samples, want at least %d: %w", len(audio), as.MinSamples(), ErrInsufficientSamples)
	}

	block := make([][]float64, as.modelInputSize)

	workers := min(as.workers, as.modelInputSize)
	if workers == 1 {
		if err := as.extractRange(block, audio, 0, as.modelInputSize); err != nil {
			return nil, err
		}
	} else {
		var g errgroup.Group

		chunk := (as.modelInputSize + workers - 1) / workers
		for lo := 0; lo < as.modelInputSize; lo += chunk {
			hi := min(lo+chunk, as.modelInputSize)
			g.Go(func() error {
				return as.extractRange(block, audio, lo, hi)
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	augmented := as.augmenter.Augment(block)

	t := NewTensor(as.modelInputSize, as.Cols())
	t.fill(augmented)

	return t, nil
}

// extractRange fills block[lo:hi] with its own scratch, so ranges can run in
// parallel.
func (as *Assembler) extractRange(block [][]float64, audio []float32, lo, hi int) error {
	frameLen := as.extractor.Params().FrameLen
	sc := as.extractor.NewScratch()
	frame := make([]float64, frameLen)

	for i := lo; i < hi; i++ {
		start := i * as.stride
		for j, v := range audio[start : start+frameLen] {
			frame[j] = float64(v)
		}

		coeffs, err := as.extractor.ComputeWith(sc, nil, frame)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		block[i] = coeffs
	}

	return nil
}
