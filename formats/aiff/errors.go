// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"

	"github.com/ik5/audfeat/audio"
	"github.com/ik5/audfeat/formats/internal/intpcm"
)

var (
	// ErrNotAiffFile indicates the input is not a FORM/AIFF stream.
	ErrNotAiffFile = fmt.Errorf("not an AIFF file: %w", audio.ErrUnknownFormat)

	ErrUnsupportedBitDepth = intpcm.ErrBitDepth

	// ErrUnsupportedAiffLayout indicates a header without a usable format.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
