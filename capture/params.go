// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"fmt"
	"strings"
)

// DType is the sample encoding of raw PCM blocks from a live backend.
type DType int

const (
	Float32 DType = iota // little-endian IEEE 754
	Int16                // little-endian signed 16-bit
)

func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Int16:
		return "int16"
	default:
		return fmt.Sprintf("DType(%d)", int(d))
	}
}

// Size is the number of bytes per sample.
func (d DType) Size() int {
	if d == Int16 {
		return 2
	}

	return 4
}

// ParseDType accepts "float32" and "int16".
func ParseDType(s string) (DType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "float32", "f32":
		return Float32, nil
	case "int16", "s16":
		return Int16, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrDType)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DType) UnmarshalText(text []byte) error {
	parsed, err := ParseDType(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d DType) MarshalText() ([]byte, error) {
	if d != Float32 && d != Int16 {
		return nil, fmt.Errorf("%d: %w", int(d), ErrDType)
	}

	return []byte(d.String()), nil
}

// Params configures how audio is cut into inference windows.
type Params struct {
	DType        DType `yaml:"dtype"`
	Overlap      int   `yaml:"overlap"`       // samples shared by consecutive windows
	MinSamples   int   `yaml:"min_samples"`   // samples per window
	SamplingFreq int   `yaml:"sampling_freq"` // Hz
	Mono         bool  `yaml:"mono"`          // average channels instead of keeping the first
	Channels     int   `yaml:"channels"`      // channels of live blocks, 0 means 1
}

// Validate reports the first violated constraint. Every returned error
// wraps audio.ErrConfiguration.
func (p Params) Validate() error {
	switch {
	case p.MinSamples <= 0:
		return fmt.Errorf("min_samples %d: %w", p.MinSamples, ErrMinSamples)
	case p.Overlap < 0 || p.Overlap >= p.MinSamples:
		return fmt.Errorf("overlap %d with min_samples %d: %w", p.Overlap, p.MinSamples, ErrOverlapTooLarge)
	case p.SamplingFreq <= 0:
		return fmt.Errorf("sampling_freq %d: %w", p.SamplingFreq, ErrSamplingFreq)
	case p.Channels < 0:
		return fmt.Errorf("channels %d: %w", p.Channels, ErrChannels)
	case p.DType != Float32 && p.DType != Int16:
		return fmt.Errorf("dtype %d: %w", int(p.DType), ErrDType)
	}

	return nil
}

// Hop is the number of new samples each window after the first adds.
func (p Params) Hop() int {
	return p.MinSamples - p.Overlap
}

func (p Params) channels() int {
	return max(p.Channels, 1)
}
