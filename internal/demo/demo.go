// Package demo runs the three collection demonstrations: in-place employee
// sorting, the student filter/sort/project pipeline, and product grouping
// with per-category and overall aggregates.
//
// Each block computes its result first and then hands the lines to a
// render.Renderer. Blocks share no state; the only thing a Demo remembers is
// whether a block has already printed, so consecutive blocks are separated
// the way the legacy console output separated them.
package demo

import (
	"go.uber.org/zap"

	"lambdastream/internal/render"
)

// DefaultThreshold is the mark a student must exceed to be listed.
const DefaultThreshold = 75.0

// Demo renders demonstration blocks through a single renderer.
type Demo struct {
	out       render.Renderer
	logger    *zap.Logger
	threshold float64
	printed   bool
}

// Option configures a Demo.
type Option func(*Demo)

// WithLogger sets the logger used for debug tracing. The default is a no-op
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Demo) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithThreshold overrides the student pass mark.
func WithThreshold(t float64) Option {
	return func(d *Demo) { d.threshold = t }
}

// New returns a Demo writing to out.
func New(out render.Renderer, opts ...Option) *Demo {
	d := &Demo{
		out:       out,
		logger:    zap.NewNop(),
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Threshold returns the effective student pass mark.
func (d *Demo) Threshold() float64 { return d.threshold }

// section opens a block. Every block after the first is preceded by two
// empty lines.
func (d *Demo) section(title string) {
	if d.printed {
		d.out.Blank()
		d.out.Blank()
	}
	d.printed = true
	d.out.Banner(title)
}
