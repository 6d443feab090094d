// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"

	"github.com/ik5/audfeat/audio"
	"github.com/ik5/audfeat/formats/internal/intpcm"
)

var (
	ErrNotWavFile           = fmt.Errorf("not a WAV file: %w", audio.ErrUnknownFormat)
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = intpcm.ErrBitDepth
	ErrChannels             = errors.New("channel count must be positive")
)
