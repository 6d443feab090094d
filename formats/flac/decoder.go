// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audfeat/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameReader is the part of flac.Stream a source reads from.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
}

// source interleaves the subframes of one FLAC frame at a time.
type source struct {
	dec        frameReader
	closer     io.Closer
	sampleRate int
	channels   int
	scale      float32
	blockSize  int

	// pending holds the interleaved samples of the current frame not yet read.
	pending []float32
	done    bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return s.blockSize * s.channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	total := 0

	for total < len(dst) {
		if len(s.pending) == 0 {
			if s.done {
				break
			}
			if err := s.nextFrame(); err != nil {
				return total, err
			}
			continue
		}

		n := copy(dst[total:], s.pending)
		s.pending = s.pending[n:]
		total += n
	}

	if total == 0 && s.done && len(dst) > 0 {
		return 0, io.EOF
	}

	return total, nil
}

func (s *source) nextFrame() error {
	f, err := s.dec.ParseNext()
	if err == io.EOF {
		s.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("decoding flac frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%d subframes, want %d: %w", len(f.Subframes), s.channels, ErrChannelMismatch)
	}

	n := len(f.Subframes[0].Samples)
	if cap(s.pending) < n*s.channels {
		s.pending = make([]float32, n*s.channels)
	}
	s.pending = s.pending[:n*s.channels]

	for ch, sub := range f.Subframes {
		for i, v := range sub.Samples[:n] {
			s.pending[i*s.channels+ch] = float32(v) / s.scale
		}
	}

	return nil
}

type Decoder struct{}

// Decode parses the FLAC stream info and returns a source over its frames.
// Any bit depth from 4 to 32 is accepted.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	bits := int(info.BitsPerSample)
	if bits < 4 || bits > 32 {
		_ = stream.Close()
		return nil, fmt.Errorf("%d bits: %w", bits, ErrUnsupportedBitDepth)
	}

	return &source{
		dec:        stream,
		closer:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      float32(int64(1) << (bits - 1)),
		blockSize:  int(info.BlockSizeMax),
	}, nil
}
