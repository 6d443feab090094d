// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams through github.com/mewkiz/flac.
//
// Frames are decoded lazily: each ReadSamples call interleaves as many
// subframe samples as dst holds and parses the next frame only when the
// current one is used up. Samples are scaled by the stream bit depth into
// [-1, 1].
//
//	f, _ := os.Open("speech.flac")
//	src, err := flac.Decoder{}.Decode(f)
//	defer src.Close()
package flac
