// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"errors"
	"fmt"

	"github.com/ik5/audfeat/audio"
)

// Configuration errors, returned by constructors.
var (
	ErrOverlapTooLarge = fmt.Errorf("overlap must be smaller than min samples: %w", audio.ErrConfiguration)
	ErrMinSamples      = fmt.Errorf("min samples must be positive: %w", audio.ErrConfiguration)
	ErrSamplingFreq    = fmt.Errorf("sampling frequency must be positive: %w", audio.ErrConfiguration)
	ErrChannels        = fmt.Errorf("channel count must be positive: %w", audio.ErrConfiguration)
	ErrDType           = fmt.Errorf("unsupported sample type: %w", audio.ErrConfiguration)
	ErrQueueCapacity   = fmt.Errorf("queue capacity must be positive: %w", audio.ErrConfiguration)
	ErrOnFull          = fmt.Errorf("unknown queue overflow policy: %w", audio.ErrConfiguration)
	ErrSampleRate      = fmt.Errorf("source sample rate differs from sampling frequency: %w", audio.ErrConfiguration)
)

// Capture errors, returned while blocks are delivered.
var (
	ErrBlockLength = fmt.Errorf("block length does not match the window: %w", audio.ErrCapture)
	ErrOverlap     = fmt.Errorf("block does not fit after the retained overlap: %w", audio.ErrCapture)
	ErrStopped     = fmt.Errorf("capture is stopped: %w", audio.ErrCapture)
	ErrPCMLength   = fmt.Errorf("raw PCM length is not a whole number of samples: %w", audio.ErrCapture)
)

// ErrQueueClosed is returned by Queue operations after Close.
var ErrQueueClosed = errors.New("queue closed")
