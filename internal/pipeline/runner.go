package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/sobel-edge-filter/internal/imaging"
	"github.com/ironsheep/sobel-edge-filter/internal/sobel"
)

// Job names one source image and where its edge map goes.
type Job struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Report describes the outcome of one job.
type Report struct {
	Input        string           `json:"input"`
	Output       string           `json:"output,omitempty"`
	SourceWidth  int              `json:"source_width"`
	SourceHeight int              `json:"source_height"`
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	Bands        sobel.BandCounts `json:"bands"`
	Duration     time.Duration    `json:"duration_ns"`
	Failure      string           `json:"error,omitempty"`
	Err          error            `json:"-"`
}

// Option configures a Runner.
type Option func(*Runner)

// WithCache makes the runner decode through cache instead of reading the
// file on every run.
func WithCache(cache *imaging.ImageCache) Option {
	return func(r *Runner) { r.cache = cache }
}

// WithSaveOptions sets how output files are encoded.
func WithSaveOptions(opts imaging.SaveOptions) Option {
	return func(r *Runner) { r.save = opts }
}

// Runner executes edge-filter jobs.
type Runner struct {
	log   zerolog.Logger
	cache *imaging.ImageCache
	save  imaging.SaveOptions
}

// NewRunner returns a Runner that logs to log.
func NewRunner(log zerolog.Logger, opts ...Option) *Runner {
	r := &Runner{log: log.With().Str("component", "pipeline").Logger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Filter loads the image at path and runs the edge filter on it without
// persisting anything.
func (r *Runner) Filter(path string) (*sobel.Result, image.Rectangle, error) {
	src, err := r.load(path)
	if err != nil {
		return nil, image.Rectangle{}, err
	}

	res, err := r.apply(path, src)
	if err != nil {
		return nil, src.Bounds(), err
	}
	return res, src.Bounds(), nil
}

// Run processes job and writes the edge map to job.Output, or to
// DefaultOutputName(job.Input) when Output is empty.
//
// The returned error is also stored in the report. The report is never nil.
func (r *Runner) Run(ctx context.Context, job Job) (*Report, error) {
	start := time.Now()
	if job.Output == "" {
		job.Output = DefaultOutputName(job.Input)
	}
	rep := &Report{Input: job.Input, Output: job.Output}

	fail := func(err error) (*Report, error) {
		rep.Err = err
		rep.Failure = err.Error()
		rep.Duration = time.Since(start)
		r.log.Debug().Err(err).Str("input", job.Input).Msg("edge filter failed")
		return rep, err
	}

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	res, bounds, err := r.Filter(job.Input)
	rep.SourceWidth, rep.SourceHeight = bounds.Dx(), bounds.Dy()
	if err != nil {
		return fail(err)
	}
	rep.Width, rep.Height = res.Image.Bounds().Dx(), res.Image.Bounds().Dy()
	rep.Bands = res.Bands

	r.log.Debug().Str("output", job.Output).Msg("saving edge map")
	if err := imaging.Save(res.Image, job.Output, r.save); err != nil {
		return fail(fmt.Errorf("save %dx%d edge map: %w", rep.Width, rep.Height, err))
	}

	rep.Duration = time.Since(start)
	r.log.Info().
		Str("input", job.Input).
		Str("output", job.Output).
		Int("width", rep.Width).
		Int("height", rep.Height).
		Int("white", rep.Bands.White).
		Int("grey", rep.Bands.Grey).
		Dur("took", rep.Duration).
		Msg("edge map saved")

	return rep, nil
}

func (r *Runner) load(path string) (image.Image, error) {
	r.log.Debug().Str("input", path).Msg("loading image")
	if r.cache != nil {
		return r.cache.Load(path)
	}
	return imaging.Decode(path)
}

func (r *Runner) apply(path string, src image.Image) (*sobel.Result, error) {
	b := src.Bounds()
	r.log.Debug().
		Str("input", path).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Msg("running sobel stages")

	res, err := sobel.Apply(src)
	if err != nil {
		if errors.Is(err, sobel.ErrInvalidImageSize) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, fmt.Errorf("filter %s: %w", path, err)
	}
	return res, nil
}

// DefaultOutputName returns "<dir>/<stem>_edges.jpg" for input.
func DefaultOutputName(input string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(input, ext)
	return stem + "_edges.jpg"
}
