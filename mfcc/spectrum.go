// SPDX-License-Identifier: EPL-2.0

package mfcc

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// SpectrumKind selects what each FFT bin holds.
type SpectrumKind int

const (
	// SpectrumMagnitude keeps |X[k]|.
	SpectrumMagnitude SpectrumKind = iota
	// SpectrumPower keeps |X[k]|^2.
	SpectrumPower
)

func (k SpectrumKind) String() string {
	switch k {
	case SpectrumMagnitude:
		return "magnitude"
	case SpectrumPower:
		return "power"
	default:
		return fmt.Sprintf("SpectrumKind(%d)", int(k))
	}
}

// Spectrum estimates the one-sided spectrum of a Hann-windowed frame.
// It is read-only after construction; the mutable FFT state lives in Scratch.
type Spectrum struct {
	kind   SpectrumKind
	nfft   int
	window []float64
}

// NewSpectrum prepares a periodic Hann window of p.FrameLen samples for an
// NFFT-point transform.
func NewSpectrum(p Params, kind SpectrumKind) *Spectrum {
	return &Spectrum{
		kind:   kind,
		nfft:   p.NFFT,
		window: periodicHann(p.FrameLen),
	}
}

// periodicHann is the symmetric Hann window of n+1 points without its last
// sample.
func periodicHann(n int) []float64 {
	w := make([]float64, n+1)
	for i := range w {
		w[i] = 1
	}

	return window.Hann(w)[:n:n]
}

// Window returns a copy of the analysis window.
func (s *Spectrum) Window() []float64 {
	return append([]float64(nil), s.window...)
}

// Kind reports the bin representation.
func (s *Spectrum) Kind() SpectrumKind { return s.kind }

// Len is the number of bins produced, NFFT/2+1.
func (s *Spectrum) Len() int { return s.nfft/2 + 1 }

// Estimate windows frame, zero-pads it to NFFT and writes the spectrum into
// sc. The returned slice aliases sc and is valid until the next call.
// frame must have the window length.
func (s *Spectrum) Estimate(sc *Scratch, frame []float64) []float64 {
	for i, w := range s.window {
		sc.padded[i] = frame[i] * w
	}
	clear(sc.padded[len(s.window):])

	sc.coeffs = sc.fft.Coefficients(sc.coeffs, sc.padded)

	for k, c := range sc.coeffs {
		switch s.kind {
		case SpectrumPower:
			sc.spec[k] = real(c)*real(c) + imag(c)*imag(c)
		default:
			sc.spec[k] = cmplx.Abs(c)
		}
	}

	return sc.spec
}

// Scratch holds the per-call working buffers of an Extractor. A Scratch is
// not safe for concurrent use; give each goroutine its own.
type Scratch struct {
	fft    *fourier.FFT
	padded []float64
	coeffs []complex128
	spec   []float64
	mel    []float64
}

func newScratch(p Params) *Scratch {
	return &Scratch{
		fft:    fourier.NewFFT(p.NFFT),
		padded: make([]float64, p.NFFT),
		coeffs: make([]complex128, p.NumBins()),
		spec:   make([]float64, p.NumBins()),
		mel:    make([]float64, p.NumFbankBins),
	}
}

func (sc *Scratch) fits(p Params) bool {
	return sc != nil &&
		len(sc.padded) == p.NFFT &&
		len(sc.mel) == p.NumFbankBins
}
