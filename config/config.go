// SPDX-License-Identifier: EPL-2.0

// Package config loads feature extraction profiles from YAML.
//
// A profile names a model family and carries everything needed to turn
// audio into that model's input: MFCC parameters, capture windowing, the
// frame layout of the tensor and the live queue policy. Two presets cover
// the common front-ends:
//
//	preset: asr           # start from ASR() and override below
//	capture:
//	  overlap: 0
//	queue:
//	  on_full: drop_oldest
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ik5/audfeat/capture"
	"github.com/ik5/audfeat/mfcc"
	"github.com/ik5/audfeat/quantize"
)

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level maps l to a slog level. Empty and unknown levels map to Info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Queue configures the live capture hand-off.
type Queue struct {
	// Capacity is the number of windows buffered. Zero means
	// capture.DefaultQueueCapacity.
	Capacity int `yaml:"capacity"`

	// OnFull is "block" or "drop_oldest".
	OnFull capture.OnFull `yaml:"on_full"`
}

// Profile is one model front-end.
type Profile struct {
	// Preset names a built-in profile the file starts from ("kws", "asr").
	Preset string `yaml:"preset"`

	Name   string      `yaml:"name"`
	Family mfcc.Family `yaml:"family"`

	MFCC    mfcc.Params    `yaml:"mfcc"`
	Capture capture.Params `yaml:"capture"`

	// ModelInputSize is the number of frames per tensor.
	ModelInputSize int `yaml:"model_input_size"`

	// Stride is the hop between frames in samples.
	Stride int `yaml:"stride"`

	// Workers extracts frames in parallel. Zero means one.
	Workers int `yaml:"workers"`

	Queue Queue `yaml:"queue"`

	// Duration bounds live capture. Zero means until stopped.
	Duration time.Duration `yaml:"duration"`

	// Quantize, when set, describes the integer input of a quantized model.
	Quantize *quantize.Params `yaml:"quantize"`

	LogLevel LogLevel `yaml:"log_level"`
}

// KWS is the DS-CNN keyword spotting front-end: one second of 16 kHz audio,
// 49 frames of 10 coefficients.
func KWS() Profile {
	return Profile{
		Preset: "kws",
		Name:   "kws",
		Family: mfcc.FamilyDefault,
		MFCC: mfcc.Params{
			SamplingFreq: 16000,
			NumFbankBins: 40,
			MelLoFreq:    20,
			MelHiFreq:    4000,
			NumMFCCFeats: 10,
			FrameLen:     640,
			UseHTKMethod: true,
			NFFT:         1024,
		},
		Capture: capture.Params{
			DType:        capture.Float32,
			Overlap:      0,
			MinSamples:   16000,
			SamplingFreq: 16000,
			Mono:         true,
		},
		ModelInputSize: 49,
		Stride:         320,
		Workers:        1,
		Queue:          Queue{Capacity: capture.DefaultQueueCapacity, OnFull: capture.Block},
	}
}

// ASR is the wav2letter speech recognition front-end: 296 frames of 13
// coefficients with deltas, windows overlapping by 31712 samples.
func ASR() Profile {
	return Profile{
		Preset: "asr",
		Name:   "asr",
		Family: mfcc.FamilyWav2Letter,
		MFCC: mfcc.Params{
			SamplingFreq: 16000,
			NumFbankBins: 128,
			MelLoFreq:    0,
			MelHiFreq:    8000,
			NumMFCCFeats: 13,
			FrameLen:     512,
			UseHTKMethod: false,
			NFFT:         512,
		},
		Capture: capture.Params{
			DType:        capture.Float32,
			Overlap:      31712,
			MinSamples:   47712,
			SamplingFreq: 16000,
			Mono:         true,
		},
		ModelInputSize: 296,
		Stride:         160,
		Workers:        1,
		Queue:          Queue{Capacity: capture.DefaultQueueCapacity, OnFull: capture.Block},
	}
}

var presets = map[string]func() Profile{
	"kws":        KWS,
	"asr":        ASR,
	"ds_cnn":     KWS,
	"wav2letter": ASR,
}

// Preset returns the built-in profile called name.
func Preset(name string) (Profile, error) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("preset %q: %w", name, ErrUnknownPreset)
	}

	return fn(), nil
}

// AssemblerMinSamples is the shortest window the frame layout needs,
// (ModelInputSize-1)*Stride + FrameLen.
func (p Profile) AssemblerMinSamples() int {
	return (p.ModelInputSize-1)*p.Stride + p.MFCC.FrameLen
}

// QueueCapacity resolves the zero value to the default.
func (p Profile) QueueCapacity() int {
	if p.Queue.Capacity == 0 {
		return capture.DefaultQueueCapacity
	}

	return p.Queue.Capacity
}

// WorkerCount resolves the zero value to one.
func (p Profile) WorkerCount() int {
	return max(p.Workers, 1)
}
