// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
// Integer PCM at 16, 24 or 32 bits is supported, with any channel count
// and sample rate. Samples are big-endian on disk and come out as float32
// in [-1, 1]. Other depths fail with ErrUnsupportedBitDepth.
//
//	f, _ := os.Open("speech.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//
// AIFF-C compressed variants are not supported.
package aiff
