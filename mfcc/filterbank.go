// SPDX-License-Identifier: EPL-2.0

package mfcc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MelNorm selects how a triangular weight is scaled. It never changes the
// geometry of the filters.
type MelNorm int

const (
	// RawWeight keeps the triangle peak at 1.
	RawWeight MelNorm = iota
	// EnergyNorm scales each filter by 2/(right-left) in Hz so wide
	// high-frequency filters do not dominate (wav2letter front-end).
	EnergyNorm
)

func (n MelNorm) String() string {
	switch n {
	case RawWeight:
		return "raw"
	case EnergyNorm:
		return "energy"
	default:
		return fmt.Sprintf("MelNorm(%d)", int(n))
	}
}

func (n MelNorm) apply(weight, leftMel, rightMel float64, useHTK bool) float64 {
	if n == EnergyNorm {
		return weight * 2.0 / (InvMelScale(rightMel, useHTK) - InvMelScale(leftMel, useHTK))
	}

	return weight
}

// FilterBank is a set of triangular filters spaced uniformly on the mel
// scale, stored as a dense NumFbankBins x (NFFT/2+1) matrix.
type FilterBank struct {
	weights *mat.Dense
	first   []int
	last    []int
}

// NewFilterBank builds the filter bank for p. Filters that cover no FFT bin
// (possible with a coarse FFT at low frequencies) are kept with bounds of -1
// and contribute no energy.
func NewFilterBank(p Params, norm MelNorm) (*FilterBank, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	numBins := p.NumBins()
	binWidth := p.SamplingFreq / float64(p.NFFT)

	melLow := MelScale(p.MelLoFreq, p.UseHTKMethod)
	melHigh := MelScale(p.MelHiFreq, p.UseHTKMethod)
	melDelta := (melHigh - melLow) / float64(p.NumFbankBins+1)

	binMels := make([]float64, numBins)
	for k := range binMels {
		binMels[k] = MelScale(binWidth*float64(k), p.UseHTKMethod)
	}

	fb := &FilterBank{
		weights: mat.NewDense(p.NumFbankBins, numBins, nil),
		first:   make([]int, p.NumFbankBins),
		last:    make([]int, p.NumFbankBins),
	}

	for i := range p.NumFbankBins {
		left := melLow + float64(i)*melDelta
		center := melLow + float64(i+1)*melDelta
		right := melLow + float64(i+2)*melDelta

		first, last := -1, -1
		for k, mel := range binMels {
			if mel <= left || mel >= right {
				continue
			}

			var weight float64
			if mel <= center {
				weight = (mel - left) / (center - left)
			} else {
				weight = (right - mel) / (right - center)
			}

			fb.weights.Set(i, k, norm.apply(weight, left, right, p.UseHTKMethod))
			if first == -1 {
				first = k
			}
			last = k
		}

		fb.first[i] = first
		fb.last[i] = last
	}

	return fb, nil
}

// Len is the number of filters.
func (fb *FilterBank) Len() int { return len(fb.first) }

// NumBins is the number of FFT bins each filter spans.
func (fb *FilterBank) NumBins() int {
	_, c := fb.weights.Dims()
	return c
}

// Bounds returns the first and last FFT bin with a nonzero weight for
// filter i, or -1, -1 for an empty filter.
func (fb *FilterBank) Bounds(i int) (first, last int) {
	return fb.first[i], fb.last[i]
}

// Filter returns a copy of the active weights of filter i, nil when empty.
func (fb *FilterBank) Filter(i int) []float64 {
	first, last := fb.Bounds(i)
	if first < 0 {
		return nil
	}

	out := make([]float64, last-first+1)
	copy(out, fb.weights.RawRowView(i)[first:last+1])

	return out
}

// Matrix exposes the dense weights. Callers must not modify it.
func (fb *FilterBank) Matrix() mat.Matrix { return fb.weights }

// Apply computes the per-filter energies of spectrum into dst and returns
// dst. dst must have Len() elements, spectrum NumBins().
func (fb *FilterBank) Apply(dst, spectrum []float64) []float64 {
	out := mat.NewVecDense(len(dst), dst)
	out.MulVec(fb.weights, mat.NewVecDense(len(spectrum), spectrum))

	return dst
}
