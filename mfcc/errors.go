// SPDX-License-Identifier: EPL-2.0

package mfcc

import (
	"fmt"

	"github.com/ik5/audfeat/audio"
)

var (
	ErrSamplingFreq = fmt.Errorf("sampling frequency must be positive: %w", audio.ErrConfiguration)
	ErrFbankBins    = fmt.Errorf("number of filter bank bins must be positive: %w", audio.ErrConfiguration)
	ErrMelRange     = fmt.Errorf("mel range must satisfy 0 <= lo < hi <= sampling_freq/2: %w", audio.ErrConfiguration)
	ErrFeatureCount = fmt.Errorf("number of MFCC features must be in [1, num_fbank_bins]: %w", audio.ErrConfiguration)
	ErrFrameLen     = fmt.Errorf("frame length must be positive: %w", audio.ErrConfiguration)
	ErrFFTSize      = fmt.Errorf("FFT length must be at least the frame length: %w", audio.ErrConfiguration)
	ErrScratch      = fmt.Errorf("scratch buffers were sized for another extractor: %w", audio.ErrConfiguration)

	ErrFrameLength = fmt.Errorf("frame length does not match frame_len: %w", audio.ErrInputLength)

	ErrUnknownFamily = fmt.Errorf("unknown model family: %w", audio.ErrConfiguration)
)
