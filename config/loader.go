// SPDX-License-Identifier: EPL-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audfeat/audio"
	"gopkg.in/yaml.v3"
)

var (
	ErrProfile       = fmt.Errorf("invalid profile: %w", audio.ErrConfiguration)
	ErrUnknownPreset = fmt.Errorf("unknown preset: %w", audio.ErrConfiguration)
)

// Load reads the YAML profile at path and returns it validated.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	p, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return p, nil
}

// LoadFromReader decodes a YAML profile from r and validates it. When the
// document names a preset, its fields override the preset's.
func LoadFromReader(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}

	p := &Profile{}
	if head.Preset != "" {
		base, err := Preset(head.Preset)
		if err != nil {
			return nil, err
		}
		*p = base
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}

	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that p is coherent. It returns a joined error listing
// every failure; each one wraps ErrProfile or a more specific
// configuration error.
func Validate(p *Profile) error {
	var errs []error

	if err := p.MFCC.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("mfcc: %w", err))
	}
	if err := p.Capture.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("capture: %w", err))
	}

	if p.ModelInputSize <= 0 {
		errs = append(errs, fmt.Errorf("model_input_size %d must be positive: %w", p.ModelInputSize, ErrProfile))
	}
	if p.Stride <= 0 {
		errs = append(errs, fmt.Errorf("stride %d must be positive: %w", p.Stride, ErrProfile))
	}
	if p.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative: %w", p.Workers, ErrProfile))
	}
	if p.Queue.Capacity < 0 {
		errs = append(errs, fmt.Errorf("queue.capacity %d must not be negative: %w", p.Queue.Capacity, ErrProfile))
	}
	if p.Duration < 0 {
		errs = append(errs, fmt.Errorf("duration %v must not be negative: %w", p.Duration, ErrProfile))
	}
	if p.LogLevel != "" && !p.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error: %w", p.LogLevel, ErrProfile))
	}

	if p.MFCC.SamplingFreq != float64(p.Capture.SamplingFreq) {
		errs = append(errs, fmt.Errorf("mfcc.sampling_freq %v differs from capture.sampling_freq %d: %w",
			p.MFCC.SamplingFreq, p.Capture.SamplingFreq, ErrProfile))
	}
	if p.ModelInputSize > 0 && p.Stride > 0 && p.Capture.MinSamples < p.AssemblerMinSamples() {
		errs = append(errs, fmt.Errorf("capture.min_samples %d is shorter than the %d samples %d frames need: %w",
			p.Capture.MinSamples, p.AssemblerMinSamples(), p.ModelInputSize, ErrProfile))
	}

	if p.Quantize != nil {
		if err := p.Quantize.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("quantize: %w", err))
		}
	}

	return errors.Join(errs...)
}
