package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ik5/audfeat/audio"
	"github.com/ik5/audfeat/capture"
	"github.com/ik5/audfeat/config"
	"github.com/ik5/audfeat/mfcc"
)

func TestPresets_Valid(t *testing.T) {
	t.Parallel()

	for _, p := range []config.Profile{config.KWS(), config.ASR()} {
		if err := config.Validate(&p); err != nil {
			t.Errorf("Validate(%s) = %v", p.Name, err)
		}
	}

	if got := config.KWS().AssemblerMinSamples(); got != 16000 {
		t.Errorf("KWS AssemblerMinSamples() = %d, want 16000", got)
	}
	if got := config.ASR().AssemblerMinSamples(); got != 47712 {
		t.Errorf("ASR AssemblerMinSamples() = %d, want 47712", got)
	}
}

func TestPreset(t *testing.T) {
	t.Parallel()

	p, err := config.Preset("Wav2Letter")
	if err != nil {
		t.Fatalf("Preset() error = %v", err)
	}
	if p.Family != mfcc.FamilyWav2Letter {
		t.Errorf("Family = %v, want wav2letter", p.Family)
	}

	if _, err := config.Preset("whisper"); !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("Preset(whisper) error = %v, want ErrUnknownPreset", err)
	}
}

func TestLoadFromReader_Full(t *testing.T) {
	t.Parallel()
	yaml := `
name: kws-custom
family: kws
mfcc:
  sampling_freq: 16000
  num_fbank_bins: 40
  mel_lo_freq: 20
  mel_hi_freq: 4000
  num_mfcc_feats: 10
  frame_len: 640
  use_htk_method: true
  n_fft: 1024
capture:
  dtype: int16
  min_samples: 16000
  sampling_freq: 16000
  mono: true
  channels: 2
model_input_size: 49
stride: 320
workers: 4
queue:
  capacity: 3
  on_full: drop_oldest
duration: 10s
quantize:
  scale: 1.5
  offset: -3
log_level: debug
`
	p, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	if p.Family != mfcc.FamilyDefault || p.Capture.DType != capture.Int16 || p.Capture.Channels != 2 {
		t.Errorf("unexpected profile: %+v", p)
	}
	if p.Queue.OnFull != capture.DropOldest || p.QueueCapacity() != 3 || p.WorkerCount() != 4 {
		t.Errorf("unexpected queue/workers: %+v", p.Queue)
	}
	if p.Duration != 10*time.Second {
		t.Errorf("Duration = %v, want 10s", p.Duration)
	}
	if p.Quantize == nil || p.Quantize.Scale != 1.5 || p.Quantize.Offset != -3 {
		t.Errorf("Quantize = %+v", p.Quantize)
	}
	if p.LogLevel.Level() != slog.LevelDebug {
		t.Errorf("LogLevel = %q", p.LogLevel)
	}
}

func TestLoadFromReader_PresetOverride(t *testing.T) {
	t.Parallel()
	yaml := `
preset: asr
name: asr-no-overlap
capture:
  overlap: 0
`
	p, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	if p.Name != "asr-no-overlap" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Capture.Overlap != 0 {
		t.Errorf("Overlap = %d, want 0", p.Capture.Overlap)
	}
	if p.Capture.MinSamples != 47712 || p.MFCC.NumFbankBins != 128 || p.Family != mfcc.FamilyWav2Letter {
		t.Errorf("preset fields lost: %+v", p)
	}
	if p.QueueCapacity() != capture.DefaultQueueCapacity {
		t.Errorf("QueueCapacity() = %d", p.QueueCapacity())
	}
}

func TestLoadFromReader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		want    error
		message string
	}{
		{
			name:    "overlap too large",
			yaml:    "preset: kws\ncapture:\n  overlap: 16000\n",
			want:    capture.ErrOverlapTooLarge,
			message: "overlap",
		},
		{
			name:    "mel range",
			yaml:    "preset: kws\nmfcc:\n  mel_lo_freq: 5000\n",
			want:    mfcc.ErrMelRange,
			message: "mel range",
		},
		{
			name:    "feature count",
			yaml:    "preset: kws\nmfcc:\n  num_mfcc_feats: 41\n",
			want:    mfcc.ErrFeatureCount,
			message: "num_mfcc_feats",
		},
		{
			name:    "window too short",
			yaml:    "preset: kws\ncapture:\n  min_samples: 8000\n",
			want:    config.ErrProfile,
			message: "shorter than",
		},
		{
			name:    "rate mismatch",
			yaml:    "preset: kws\ncapture:\n  sampling_freq: 8000\n",
			want:    config.ErrProfile,
			message: "differs",
		},
		{
			name:    "unknown family",
			yaml:    "preset: kws\nfamily: whisper\n",
			want:    mfcc.ErrUnknownFamily,
			message: "whisper",
		},
		{
			name:    "unknown preset",
			yaml:    "preset: nope\n",
			want:    config.ErrUnknownPreset,
			message: "nope",
		},
		{
			name:    "bad log level",
			yaml:    "preset: kws\nlog_level: loud\n",
			want:    config.ErrProfile,
			message: "log_level",
		},
		{
			name:    "bad quantize scale",
			yaml:    "preset: kws\nquantize:\n  scale: 0\n",
			want:    audio.ErrConfiguration,
			message: "quantize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadFromReader(strings.NewReader(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error should mention %q, got: %v", tt.message, err)
			}
		})
	}
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromReader(strings.NewReader("preset: kws\nsample_rate: 16000\n"))
	if err == nil || !strings.Contains(err.Error(), "sample_rate") {
		t.Errorf("expected unknown field error, got: %v", err)
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	t.Parallel()

	p := config.KWS()
	p.Stride = 0
	p.ModelInputSize = 0
	p.Capture.Overlap = -1

	err := config.Validate(&p)
	for _, want := range []string{"stride", "model_input_size", "overlap"} {
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("preset: kws\nworkers: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Workers != 2 || p.ModelInputSize != 49 {
		t.Errorf("unexpected profile: %+v", p)
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) expected error")
	}
}
