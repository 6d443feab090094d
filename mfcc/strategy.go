// SPDX-License-Identifier: EPL-2.0

package mfcc

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// LogMel selects the compression applied to mel energies before the DCT.
type LogMel int

const (
	// NaturalLog computes ln(x + 1e-10).
	NaturalLog LogMel = iota
	// DecibelClip computes 10*log10(x + 1e-10) and floors every value at
	// 80 dB below the frame peak.
	DecibelClip
)

const (
	logEpsilon   = 1e-10
	dynamicRange = 80.0
)

func (l LogMel) String() string {
	switch l {
	case NaturalLog:
		return "ln"
	case DecibelClip:
		return "db"
	default:
		return fmt.Sprintf("LogMel(%d)", int(l))
	}
}

// apply compresses mel in place.
func (l LogMel) apply(mel []float64) {
	if l != DecibelClip {
		for i, v := range mel {
			mel[i] = math.Log(v + logEpsilon)
		}

		return
	}

	for i, v := range mel {
		mel[i] = 10.0 * math.Log10(v+logEpsilon)
	}

	floor := floats.Max(mel) - dynamicRange
	for i, v := range mel {
		if v < floor {
			mel[i] = floor
		}
	}
}

// Strategy groups the per-family choices of the pipeline. The zero value is
// the keyword-spotting front-end.
type Strategy struct {
	Spectrum SpectrumKind
	MelNorm  MelNorm
	LogMel   LogMel
	DCT      DCTKind
}

func (s Strategy) String() string {
	return fmt.Sprintf("spectrum=%s mel_norm=%s log=%s dct=%s", s.Spectrum, s.MelNorm, s.LogMel, s.DCT)
}

// Family names a model front-end with a known Strategy.
type Family int

const (
	// FamilyDefault is the DS-CNN keyword-spotting front-end.
	FamilyDefault Family = iota
	// FamilyWav2Letter is the wav2letter speech recognition front-end.
	FamilyWav2Letter
)

var familyNames = map[Family]string{
	FamilyDefault:    "default",
	FamilyWav2Letter: "wav2letter",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}

	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily accepts the String form, case-insensitively. "kws" and "asr"
// are accepted as aliases.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "kws":
		return FamilyDefault, nil
	case "wav2letter", "asr":
		return FamilyWav2Letter, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownFamily)
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if _, ok := familyNames[f]; !ok {
		return nil, fmt.Errorf("%d: %w", int(f), ErrUnknownFamily)
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}

	*f = parsed

	return nil
}

// StrategyFor returns the Strategy of a family. Unknown families get the
// default strategy.
func StrategyFor(f Family) Strategy {
	if f == FamilyWav2Letter {
		return Strategy{
			Spectrum: SpectrumPower,
			MelNorm:  EnergyNorm,
			LogMel:   DecibelClip,
			DCT:      DCTOrthonormal,
		}
	}

	return Strategy{}
}
