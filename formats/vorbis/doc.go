// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
// The decoder already produces float32 samples, so ReadSamples hands dst
// to it directly after trimming it to whole frames.
//
//	f, _ := os.Open("speech.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
package vorbis
