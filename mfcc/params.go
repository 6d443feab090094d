// SPDX-License-Identifier: EPL-2.0

package mfcc

import (
	"fmt"
	"math/bits"
	"strings"
)

// Params configures MFCC extraction. It is a plain value and is never
// mutated by the extractor.
type Params struct {
	SamplingFreq float64 `yaml:"sampling_freq"`  // Hz
	NumFbankBins int     `yaml:"num_fbank_bins"` // triangular filters
	MelLoFreq    float64 `yaml:"mel_lo_freq"`    // Hz
	MelHiFreq    float64 `yaml:"mel_hi_freq"`    // Hz
	NumMFCCFeats int     `yaml:"num_mfcc_feats"` // cepstral coefficients per frame
	FrameLen     int     `yaml:"frame_len"`      // samples per analysis frame
	UseHTKMethod bool    `yaml:"use_htk_method"` // HTK mel formula instead of Slaney
	NFFT         int     `yaml:"n_fft"`          // FFT length, >= FrameLen
}

// Validate reports the first violated constraint. Every returned error
// wraps audio.ErrConfiguration.
func (p Params) Validate() error {
	switch {
	case p.SamplingFreq <= 0:
		return fmt.Errorf("sampling_freq %v: %w", p.SamplingFreq, ErrSamplingFreq)
	case p.NumFbankBins <= 0:
		return fmt.Errorf("num_fbank_bins %d: %w", p.NumFbankBins, ErrFbankBins)
	case p.MelLoFreq < 0 || p.MelLoFreq >= p.MelHiFreq || p.MelHiFreq > p.SamplingFreq/2:
		return fmt.Errorf("mel range [%v, %v] at %v Hz: %w", p.MelLoFreq, p.MelHiFreq, p.SamplingFreq, ErrMelRange)
	case p.NumMFCCFeats <= 0 || p.NumMFCCFeats > p.NumFbankBins:
		return fmt.Errorf("num_mfcc_feats %d with %d bins: %w", p.NumMFCCFeats, p.NumFbankBins, ErrFeatureCount)
	case p.FrameLen <= 0:
		return fmt.Errorf("frame_len %d: %w", p.FrameLen, ErrFrameLen)
	case p.NFFT < p.FrameLen:
		return fmt.Errorf("n_fft %d < frame_len %d: %w", p.NFFT, p.FrameLen, ErrFFTSize)
	}

	return nil
}

// FrameLenPadded is the smallest power of two >= FrameLen.
func (p Params) FrameLenPadded() int {
	if p.FrameLen <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(p.FrameLen-1))
}

// NumBins is the number of real-FFT bins, NFFT/2+1.
func (p Params) NumBins() int {
	return p.NFFT/2 + 1
}

func (p Params) String() string {
	var sb strings.Builder

	method := "no"
	if p.UseHTKMethod {
		method = "yes"
	}

	fmt.Fprintf(&sb, "Sampling frequency:         %f\n", p.SamplingFreq)
	fmt.Fprintf(&sb, "Number of filter banks:     %d\n", p.NumFbankBins)
	fmt.Fprintf(&sb, "Mel frequency limit (low):  %f\n", p.MelLoFreq)
	fmt.Fprintf(&sb, "Mel frequency limit (high): %f\n", p.MelHiFreq)
	fmt.Fprintf(&sb, "Number of MFCC features:    %d\n", p.NumMFCCFeats)
	fmt.Fprintf(&sb, "Frame length:               %d\n", p.FrameLen)
	fmt.Fprintf(&sb, "Padded frame length:        %d\n", p.FrameLenPadded())
	fmt.Fprintf(&sb, "FFT length:                 %d\n", p.NFFT)
	fmt.Fprintf(&sb, "Using HTK for Mel scale:    %s\n", method)

	return sb.String()
}
