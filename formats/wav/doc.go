// SPDX-License-Identifier: EPL-2.0

// Package wav decodes PCM WAV files and writes 16-bit PCM WAV.
//
// Decoding goes through github.com/go-audio/wav and accepts integer PCM at
// 16, 24 or 32 bits, any channel count and any sample rate. Samples come
// out as float32 in [-1, 1]:
//
//	f, _ := os.Open("speech.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // Not a RIFF/WAVE stream
//	}
//
// WriteWAV16 produces the canonical 44-byte header layout and is mostly
// used to build in-memory fixtures:
//
//	var buf bytes.Buffer
//	_ = wav.WriteWAV16(&buf, 16000, 1, pcm)
package wav
