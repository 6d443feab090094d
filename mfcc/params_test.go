package mfcc

import (
	"errors"
	"strings"
	"testing"

	"github.com/ik5/audfeat/audio"
)

func kwsParams() Params {
	return Params{
		SamplingFreq: 16000,
		NumFbankBins: 40,
		MelLoFreq:    20,
		MelHiFreq:    4000,
		NumMFCCFeats: 10,
		FrameLen:     640,
		UseHTKMethod: true,
		NFFT:         1024,
	}
}

func asrParams() Params {
	return Params{
		SamplingFreq: 16000,
		NumFbankBins: 128,
		MelLoFreq:    0,
		MelHiFreq:    8000,
		NumMFCCFeats: 13,
		FrameLen:     512,
		UseHTKMethod: false,
		NFFT:         512,
	}
}

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Params)
		want   error
	}{
		{"valid", func(*Params) {}, nil},
		{"zero sampling freq", func(p *Params) { p.SamplingFreq = 0 }, ErrSamplingFreq},
		{"no bins", func(p *Params) { p.NumFbankBins = 0 }, ErrFbankBins},
		{"inverted range", func(p *Params) { p.MelLoFreq, p.MelHiFreq = 4000, 20 }, ErrMelRange},
		{"negative low", func(p *Params) { p.MelLoFreq = -1 }, ErrMelRange},
		{"above nyquist", func(p *Params) { p.MelHiFreq = 8001 }, ErrMelRange},
		{"too many feats", func(p *Params) { p.NumMFCCFeats = 41 }, ErrFeatureCount},
		{"no feats", func(p *Params) { p.NumMFCCFeats = 0 }, ErrFeatureCount},
		{"no frame", func(p *Params) { p.FrameLen = 0 }, ErrFrameLen},
		{"short fft", func(p *Params) { p.NFFT = 512 }, ErrFFTSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := kwsParams()
			tt.modify(&p)

			err := p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, audio.ErrConfiguration) {
				t.Errorf("Validate() = %v, does not wrap ErrConfiguration", err)
			}
		})
	}
}

func TestParams_FrameLenPadded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		frameLen int
		want     int
	}{
		{1, 1}, {2, 2}, {3, 4}, {400, 512}, {512, 512}, {513, 1024}, {640, 1024},
	}

	for _, tt := range tests {
		p := Params{FrameLen: tt.frameLen}
		if got := p.FrameLenPadded(); got != tt.want {
			t.Errorf("FrameLenPadded(%d) = %d, want %d", tt.frameLen, got, tt.want)
		}
	}
}

func TestParams_String(t *testing.T) {
	t.Parallel()

	s := kwsParams().String()
	for _, want := range []string{
		"Number of filter banks:     40",
		"Padded frame length:        1024",
		"Using HTK for Mel scale:    yes",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
