// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audfeat/internal/audiotest"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 1, 100, func(int, int) float32 { return 0.5 })
	mixer := NewMonoMixer(src)

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_AveragesChannels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{"stereo", 2, 0.05},
		{"quad", 4, 0.15},
		{"six", 6, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 100, func(_ int, ch int) float32 {
				return float32(ch) / 10.0
			})
			mixer := NewMonoMixer(src)
			if mixer.Channels() != 1 {
				t.Errorf("Channels() = %d, want 1", mixer.Channels())
			}

			buf := make([]float32, 16)
			n, err := mixer.ReadSamples(buf)
			if err != nil {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			if n != 16 {
				t.Fatalf("ReadSamples() n = %d, want 16", n)
			}
			for i := range n {
				if math.Abs(float64(buf[i]-tt.want)) > 1e-6 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want)
				}
			}
		})
	}
}

func TestChannelPicker(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 3, 20, func(_ int, ch int) float32 {
		return float32(ch + 1)
	})
	picker, err := NewChannelPicker(src, 2)
	if err != nil {
		t.Fatalf("NewChannelPicker() error = %v", err)
	}

	buf := make([]float32, 8)
	n, _ := picker.ReadSamples(buf)
	if n != 8 {
		t.Fatalf("ReadSamples() n = %d, want 8", n)
	}
	for i := range n {
		if buf[i] != 3 {
			t.Errorf("buf[%d] = %v, want 3", i, buf[i])
		}
	}
}

func TestChannelPicker_OutOfRange(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)
	for _, ch := range []int{-1, 2, 7} {
		if _, err := NewChannelPicker(src, ch); !errors.Is(err, ErrConfiguration) {
			t.Errorf("NewChannelPicker(%d) error = %v, want ErrConfiguration", ch, err)
		}
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5))

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 5 {
		t.Errorf("ReadSamples() n = %d, want 5", n)
	}

	n, err = mixer.ReadSamples(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestMonoMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 5))
	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 5)
	if err := NewMonoMixer(src).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the wrapped source")
	}
}

func TestMixDown(t *testing.T) {
	t.Parallel()

	src := []float32{1, 3, -1, 1, 0.5, 0.5, 9}
	dst := make([]float32, 8)

	n := MixDown(dst, src, 2)
	if n != 3 {
		t.Fatalf("MixDown() n = %d, want 3 (odd tail dropped)", n)
	}
	want := []float32{2, 0, 0.5}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	src := audiotest.NewSineSource(16000, 2, math.MaxInt32, 440)
	mixer := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = mixer.ReadSamples(buf)
	}
}
