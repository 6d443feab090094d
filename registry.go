// SPDX-License-Identifier: EPL-2.0

package audfeat

import (
	"github.com/ik5/audfeat/audio"
	"github.com/ik5/audfeat/formats/aiff"
	"github.com/ik5/audfeat/formats/flac"
	"github.com/ik5/audfeat/formats/mp3"
	"github.com/ik5/audfeat/formats/vorbis"
	"github.com/ik5/audfeat/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}
