package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// mockOggReader returns at most burst values per Read, in whole frames.
type mockOggReader struct {
	channels int
	samples  []float32
	burst    int
}

func (m *mockOggReader) SampleRate() int { return 48000 }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if len(m.samples) == 0 {
		return 0, io.EOF
	}

	n := min(len(buf), m.burst)
	n -= n % m.channels
	n = copy(buf[:n], m.samples)
	m.samples = m.samples[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"text":  []byte("This is not Ogg Vorbis data"),
		"empty": nil,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{channels: 2, samples: []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}, burst: 4},
		sampleRate: 48000,
		channels:   2,
	}

	if src.BufSize()%2 != 0 {
		t.Errorf("BufSize() = %d, want whole frames", src.BufSize())
	}

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil || n != 4 {
		t.Fatalf("ReadSamples() = %d, %v; want 4, nil", n, err)
	}
	if dst[0] != 0.1 || dst[3] != -0.2 {
		t.Errorf("dst = %v", dst[:n])
	}

	if n, _ := src.ReadSamples(dst); n != 2 {
		t.Errorf("second ReadSamples() n = %d, want 2", n)
	}
	if n, err := src.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("drained ReadSamples() = %d, %v; want 0, EOF", n, err)
	}
}

func TestSource_ReadSamples_ShortDst(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockOggReader{channels: 3, samples: make([]float32, 9), burst: 9}, channels: 3}

	if n, err := src.ReadSamples(make([]float32, 2)); n != 0 || err != nil {
		t.Errorf("ReadSamples(2) on 3 channels = %d, %v; want 0, nil", n, err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	dst := make([]float32, 4096)

	for b.Loop() {
		src := &source{dec: &mockOggReader{channels: 2, samples: make([]float32, 96000), burst: 2048}, channels: 2}
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
