package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audfeat/audio"
	"github.com/mewkiz/flac/frame"
)

// mockFrames returns one stereo frame per entry.
type mockFrames struct {
	frames [][2][]int32
	err    error
}

func (m *mockFrames) ParseNext() (*frame.Frame, error) {
	if len(m.frames) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}

	next := m.frames[0]
	m.frames = m.frames[1:]

	f := &frame.Frame{}
	for _, samples := range next {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: samples, NSamples: len(samples)})
	}
	return f, nil
}

func newSource(dec frameReader) *source {
	return &source{dec: dec, sampleRate: 16000, channels: 2, scale: 32768, blockSize: 4}
}

func TestSource_ReadSamples_Interleaves(t *testing.T) {
	t.Parallel()

	src := newSource(&mockFrames{frames: [][2][]int32{
		{{16384, 8192}, {-16384, -8192}},
		{{0}, {-32768}},
	}})

	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	if err != nil || n != 3 {
		t.Fatalf("ReadSamples() = %d, %v; want 3, nil", n, err)
	}

	want := []float32{0.5, -0.5, 0.25}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	n, err = src.ReadSamples(dst)
	if err != nil || n != 3 {
		t.Fatalf("ReadSamples() across frames = %d, %v; want 3, nil", n, err)
	}
	if dst[0] != -0.25 || dst[1] != 0 || dst[2] != -1 {
		t.Errorf("dst = %v, want [-0.25 0 -1]", dst)
	}

	if n, err := src.ReadSamples(dst); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("drained ReadSamples() = %d, %v; want 0, EOF", n, err)
	}
}

func TestSource_ReadSamples_FrameError(t *testing.T) {
	t.Parallel()

	boom := errors.New("crc mismatch")
	src := newSource(&mockFrames{frames: [][2][]int32{{{1}, {2}}}, err: boom})

	n, err := src.ReadSamples(make([]float32, 8))
	if n != 2 || !errors.Is(err, boom) {
		t.Errorf("ReadSamples() = %d, %v; want 2, %v", n, err, boom)
	}
}

type monoFrame struct{}

func (monoFrame) ParseNext() (*frame.Frame, error) {
	return &frame.Frame{Subframes: []*frame.Subframe{{Samples: []int32{1}}}}, nil
}

func TestSource_ReadSamples_ChannelMismatch(t *testing.T) {
	t.Parallel()

	if _, err := newSource(monoFrame{}).ReadSamples(make([]float32, 2)); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("ReadSamples() error = %v, want ErrChannelMismatch", err)
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&mockFrames{})
	if src.SampleRate() != 16000 || src.Channels() != 2 || src.BufSize() != 8 {
		t.Errorf("got %d Hz x %d channels, buf %d", src.SampleRate(), src.Channels(), src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"text":  []byte("This is not FLAC data"),
		"empty": nil,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(data))
			if !errors.Is(err, ErrNotFlacFile) || !errors.Is(err, audio.ErrUnknownFormat) {
				t.Errorf("Decode() error = %v, want ErrNotFlacFile", err)
			}
		})
	}
}
