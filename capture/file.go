// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/ik5/audfeat/audio"
)

// maxEmptyReads bounds consecutive (0, nil) reads from a source.
const maxEmptyReads = 100

// Windows reads src synchronously and yields its windows. The first window
// holds the first MinSamples samples, each following window advances by
// Hop samples, and the last one is zero-padded. An empty source yields
// nothing. Multi-channel sources are averaged when p.Mono is set,
// otherwise the first channel is kept. Windows does not close src.
func Windows(src audio.Source, p Params) iter.Seq2[[]float32, error] {
	return func(yield func([]float32, error) bool) {
		if err := p.Validate(); err != nil {
			yield(nil, err)
			return
		}

		if src.SampleRate() != p.SamplingFreq {
			yield(nil, fmt.Errorf("source at %d Hz, want %d Hz: %w", src.SampleRate(), p.SamplingFreq, ErrSampleRate))
			return
		}

		mono, err := monoSource(src, p.Mono)
		if err != nil {
			yield(nil, err)
			return
		}

		buf, err := NewBuffer(p)
		if err != nil {
			yield(nil, err)
			return
		}

		block := make([]float32, p.MinSamples)
		for {
			next := block[:buf.NextBlockLen()]

			n, err := readFull(mono, next)
			if err != nil && !errors.Is(err, io.EOF) {
				yield(nil, err)
				return
			}
			if n == 0 {
				return
			}

			clear(next[n:])

			window, pushErr := buf.Push(next)
			if pushErr != nil {
				yield(nil, pushErr)
				return
			}
			if !yield(window, nil) {
				return
			}

			if n < len(next) || errors.Is(err, io.EOF) {
				return
			}
		}
	}
}

// FileWindows opens a fresh source for every iteration and closes it when
// the iteration ends.
func FileWindows(open func() (audio.Source, error), p Params) iter.Seq2[[]float32, error] {
	return func(yield func([]float32, error) bool) {
		src, err := open()
		if err != nil {
			yield(nil, err)
			return
		}
		defer src.Close()

		for w, err := range Windows(src, p) {
			if !yield(w, err) {
				return
			}
		}
	}
}

func monoSource(src audio.Source, mix bool) (audio.Source, error) {
	if src.Channels() <= 1 {
		return src, nil
	}
	if mix {
		return audio.NewMonoMixer(src), nil
	}

	return audio.NewChannelPicker(src, 0)
}

// readFull reads until dst is full or the source ends. It returns io.EOF
// alongside the last samples when the source is exhausted.
func readFull(src audio.Source, dst []float32) (int, error) {
	total, empty := 0, 0

	for total < len(dst) {
		n, err := src.ReadSamples(dst[total:])
		total += n

		if err != nil {
			return total, err
		}

		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return total, io.ErrNoProgress
			}
			continue
		}
		empty = 0
	}

	return total, nil
}
