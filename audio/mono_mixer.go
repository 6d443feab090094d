// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MixDown averages the interleaved frames of src into dst and returns the
// number of mono samples written. Trailing samples that do not form a full
// frame are ignored. dst must hold at least len(src)/channels samples.
func MixDown(dst, src []float32, channels int) int {
	if channels <= 1 {
		return copy(dst, src)
	}

	frames := min(len(src)/channels, len(dst))
	invChannels := float32(1.0) / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (src[idx] + src[idx+1]) * 0.5
		}
	default:
		for f := range frames {
			sum := float32(0)
			base := f * channels
			for c := range channels {
				sum += src[base+c]
			}
			dst[f] = sum * invChannels
		}
	}

	return frames
}

// PickChannel copies channel ch of the interleaved frames in src into dst and
// returns the number of samples written.
func PickChannel(dst, src []float32, channels, ch int) int {
	if channels <= 1 {
		return copy(dst, src)
	}

	frames := min(len(src)/channels, len(dst))
	for f := range frames {
		dst[f] = src[f*channels+ch]
	}

	return frames
}

// MonoMixer turns a multi-channel Source into a mono one, either by averaging
// all channels or by keeping a single one.
type MonoMixer struct {
	src     Source
	tmp     []float32
	channel int // -1 averages every channel
}

// NewMonoMixer averages all channels of src.
func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src:     src,
		tmp:     make([]float32, 4096),
		channel: -1,
	}
}

// NewChannelPicker keeps only channel ch of src.
func NewChannelPicker(src Source, ch int) (*MonoMixer, error) {
	if ch < 0 || ch >= src.Channels() {
		return nil, fmt.Errorf("channel %d of %d: %w", ch, src.Channels(), ErrConfiguration)
	}

	return &MonoMixer{
		src:     src,
		tmp:     make([]float32, 4096),
		channel: ch,
	}, nil
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }
func (m *MonoMixer) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels
	if cap(m.tmp) < samplesNeeded {
		m.tmp = make([]float32, max(samplesNeeded, 8192))
	}
	m.tmp = m.tmp[:samplesNeeded]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	if m.channel < 0 {
		return MixDown(dst, m.tmp[:n], channels), err
	}

	return PickChannel(dst, m.tmp[:n], channels, m.channel), err
}
