// SPDX-License-Identifier: EPL-2.0

package audfeat

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"time"

	"github.com/ik5/audfeat/audio"
	"github.com/ik5/audfeat/capture"
	"github.com/ik5/audfeat/config"
	"github.com/ik5/audfeat/feature"
	"github.com/ik5/audfeat/mfcc"
)

// Inference consumes one feature tensor. The tensor is not reused after
// the call returns.
type Inference func(ctx context.Context, t *feature.Tensor) error

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithRegistry sets the decoders RunFile picks from. The default is
// DefaultRegistry().
func WithRegistry(r *audio.Registry) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.registry = r
		}
	}
}

// Pipeline extracts model input tensors from audio windows per a profile.
// It is safe for concurrent use; each run owns its own windows.
type Pipeline struct {
	profile   config.Profile
	extractor *mfcc.Extractor
	assembler *feature.Assembler
	registry  *audio.Registry
	base      *slog.Logger
	logger    *slog.Logger
}

// New validates profile and builds its extractor and assembler.
func New(profile config.Profile, opts ...Option) (*Pipeline, error) {
	if err := config.Validate(&profile); err != nil {
		return nil, err
	}

	ex, err := mfcc.NewForFamily(profile.MFCC, profile.Family)
	if err != nil {
		return nil, err
	}

	as, err := feature.NewAssembler(ex, profile.ModelInputSize, profile.Stride,
		feature.WithWorkers(profile.WorkerCount()))
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		profile:   profile,
		extractor: ex,
		assembler: as,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.registry == nil {
		p.registry = DefaultRegistry()
	}
	p.base = p.logger
	p.logger = p.logger.With("component", "pipeline", "profile", profile.Name)

	return p, nil
}

// NewFromConfig loads the YAML profile at path and builds a pipeline.
func NewFromConfig(path string, opts ...Option) (*Pipeline, error) {
	profile, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return New(*profile, opts...)
}

func (p *Pipeline) Profile() config.Profile       { return p.profile }
func (p *Pipeline) Extractor() *mfcc.Extractor    { return p.extractor }
func (p *Pipeline) Assembler() *feature.Assembler { return p.assembler }

// NewStream returns a live capture stream using the profile's capture,
// queue and duration settings. opts are applied after them.
func (p *Pipeline) NewStream(opts ...capture.StreamOption) (*capture.Stream, error) {
	defaults := []capture.StreamOption{
		capture.WithQueue(p.profile.QueueCapacity(), p.profile.Queue.OnFull),
		capture.WithDuration(p.profile.Duration),
		capture.WithLogger(p.base),
	}

	return capture.NewStream(p.profile.Capture, append(defaults, opts...)...)
}

// Run consumes stream until it ends, ctx is done or infer fails. The
// stream is stopped when Run returns an error so the producer unblocks.
func (p *Pipeline) Run(ctx context.Context, stream *capture.Stream, infer Inference) error {
	err := p.run(ctx, "live", stream.Windows(ctx), infer)
	if err != nil {
		stream.Stop()
	}

	return err
}

// RunSource extracts every window of src in order. src is not closed.
func (p *Pipeline) RunSource(ctx context.Context, src audio.Source, infer Inference) error {
	return p.run(ctx, "source", capture.Windows(src, p.profile.Capture), infer)
}

// RunFile decodes path with the decoder registered for its extension.
func (p *Pipeline) RunFile(ctx context.Context, path string, infer Inference) error {
	dec, err := p.registry.ForPath(path)
	if err != nil {
		return fmt.Errorf("%q: %w", path, err)
	}

	open := func() (audio.Source, error) {
		return openFile(path, dec)
	}

	return p.run(ctx, "file", capture.FileWindows(open, p.profile.Capture), infer)
}

// ExtractFile returns the tensors of every window of path.
func (p *Pipeline) ExtractFile(ctx context.Context, path string) ([]*feature.Tensor, error) {
	var tensors []*feature.Tensor

	err := p.RunFile(ctx, path, func(_ context.Context, t *feature.Tensor) error {
		tensors = append(tensors, t)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tensors, nil
}

func (p *Pipeline) run(ctx context.Context, mode string, windows iter.Seq2[[]float32, error], infer Inference) error {
	start := time.Now()
	n := 0

	p.logger.Info("run started", "mode", mode)

	for window, err := range windows {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			p.logger.Error("run failed", "mode", mode, "window", n, "err", err)
			return fmt.Errorf("window %d: %w", n, err)
		}

		t, err := p.assembler.Extract(window)
		if err != nil {
			return fmt.Errorf("extract window %d: %w", n, err)
		}

		if err := infer(ctx, t); err != nil {
			return fmt.Errorf("inference on window %d: %w", n, err)
		}

		p.logger.Debug("window processed", "mode", mode, "window", n, "rows", t.Rows, "cols", t.Cols)
		n++
	}

	p.logger.Info("run finished", "mode", mode, "windows", n, "elapsed", time.Since(start))

	return nil
}

// fileSource closes the underlying file along with the decoded source.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s fileSource) Close() error {
	err := s.Source.Close()
	if ferr := s.f.Close(); err == nil {
		err = ferr
	}
	return err
}

func openFile(path string, dec audio.Decoder) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}

	return fileSource{Source: src, f: f}, nil
}
