// SPDX-License-Identifier: EPL-2.0

package mfcc

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Extractor turns one frame of FrameLen samples into NumMFCCFeats
// coefficients. It is immutable after New and safe for concurrent use.
type Extractor struct {
	params   Params
	strategy Strategy
	family   Family

	spectrum *Spectrum
	fbank    *FilterBank
	dct      *mat.Dense

	pool sync.Pool
}

// New builds the filter bank and DCT matrix for p once.
func New(p Params, s Strategy) (*Extractor, error) {
	fbank, err := NewFilterBank(p, s.MelNorm)
	if err != nil {
		return nil, err
	}

	ex := &Extractor{
		params:   p,
		strategy: s,
		family:   FamilyDefault,
		spectrum: NewSpectrum(p, s.Spectrum),
		fbank:    fbank,
		dct:      NewDCTMatrix(s.DCT, p.NumFbankBins, p.NumMFCCFeats),
	}
	if s == StrategyFor(FamilyWav2Letter) {
		ex.family = FamilyWav2Letter
	}

	ex.pool.New = func() any { return newScratch(p) }

	return ex, nil
}

// NewForFamily is New with the Strategy of f.
func NewForFamily(p Params, f Family) (*Extractor, error) {
	ex, err := New(p, StrategyFor(f))
	if err != nil {
		return nil, err
	}

	ex.family = f

	return ex, nil
}

// Params returns the validated parameters.
func (ex *Extractor) Params() Params { return ex.params }

// Strategy returns the post-filter-bank steps in use.
func (ex *Extractor) Strategy() Strategy { return ex.strategy }

// Family returns the model family whose Strategy is in use.
func (ex *Extractor) Family() Family { return ex.family }

// FilterBank returns the cached mel filter bank.
func (ex *Extractor) FilterBank() *FilterBank { return ex.fbank }

// Spectrum returns the cached spectrum estimator.
func (ex *Extractor) Spectrum() *Spectrum { return ex.spectrum }

// DCT returns the NumMFCCFeats x NumFbankBins DCT matrix.
func (ex *Extractor) DCT() mat.Matrix { return ex.dct }

// NumFeatures is the number of coefficients per frame.
func (ex *Extractor) NumFeatures() int { return ex.params.NumMFCCFeats }

// NewScratch allocates buffers for ComputeWith. A Scratch must not be
// shared between goroutines.
func (ex *Extractor) NewScratch() *Scratch { return newScratch(ex.params) }

// Compute returns the MFCCs of frame in a new slice.
func (ex *Extractor) Compute(frame []float64) ([]float64, error) {
	sc := ex.pool.Get().(*Scratch)
	defer ex.pool.Put(sc)

	return ex.ComputeWith(sc, nil, frame)
}

// ComputeWith is Compute with caller-owned buffers. sc must come from
// NewScratch of an extractor with the same parameters. dst is reused when
// it has room for NumFeatures values.
func (ex *Extractor) ComputeWith(sc *Scratch, dst, frame []float64) ([]float64, error) {
	if len(frame) != ex.params.FrameLen {
		return nil, fmt.Errorf("got %d samples, want %d: %w", len(frame), ex.params.FrameLen, ErrFrameLength)
	}
	if !sc.fits(ex.params) {
		return nil, ErrScratch
	}

	spec := ex.spectrum.Estimate(sc, frame)
	mel := ex.fbank.Apply(sc.mel, spec)
	ex.strategy.LogMel.apply(mel)

	if cap(dst) < ex.params.NumMFCCFeats {
		dst = make([]float64, ex.params.NumMFCCFeats)
	}
	dst = dst[:ex.params.NumMFCCFeats]

	out := mat.NewVecDense(len(dst), dst)
	out.MulVec(ex.dct, mat.NewVecDense(len(mel), mel))

	return dst, nil
}
