// SPDX-License-Identifier: EPL-2.0

// Package audio provides the source abstraction shared by decoders and
// capture.
//
// This package contains:
//   - Source interface for audio input
//   - MonoMixer for channel mixing and channel selection
//   - Format registry for decoder lookup by extension
//   - The error kinds every other package wraps
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1, 1]. ReadSamples returns io.EOF
// once the stream is finished; callers process the n samples returned
// alongside any error first.
//
// # Channel Mixing
//
// Feature extraction runs on one channel. NewMonoMixer averages every
// channel of a frame, NewChannelPicker keeps a single one:
//
//	mono := audio.NewMonoMixer(source)
//	left, err := audio.NewChannelPicker(source, 0)
//
// MixDown and PickChannel do the same on a single interleaved block, which
// is how live capture callbacks use them.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("speech.WAV")
//
// Keys are case-insensitive and may carry a leading dot. ForPath fails with
// ErrUnknownFormat for unregistered extensions.
//
// # Errors
//
// ErrConfiguration, ErrInputLength and ErrCapture classify every error the
// module returns. Package-specific errors wrap one of them:
//
//	if errors.Is(err, audio.ErrConfiguration) {
//	    // Fix the parameters, retrying will not help
//	}
//
// No resampling is offered. Sources must already run at the rate the
// feature extractor is configured for.
package audio
