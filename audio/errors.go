// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

// Error kinds shared by every package of the module. Specific errors wrap
// one of these so callers can branch with errors.Is.
var (
	// ErrConfiguration marks invalid parameters detected at construction.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrInputLength marks frames or buffers of the wrong size.
	ErrInputLength = errors.New("invalid input length")
	// ErrCapture marks stream buffer violations detected while capturing.
	ErrCapture = errors.New("capture error")
)

var (
	ErrPartialFrame  = errors.New("block length must be a multiple of channels")
	ErrUnknownFormat = errors.New("unknown audio format")
)
