// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"

	"github.com/ik5/audfeat/audio"
)

var (
	ErrNotFlacFile         = fmt.Errorf("not a FLAC stream: %w", audio.ErrUnknownFormat)
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrChannelMismatch     = errors.New("frame channel count differs from stream info")
)
