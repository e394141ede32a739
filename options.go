package contour

import "runtime"

// Defaults used by Extract.
const (
	// DefaultStep is the grid spacing in pixels along both axes.
	DefaultStep = 8

	// DefaultThreshold is the brightness at or below which a sample is dark.
	DefaultThreshold = 200

	// DefaultCanvas is the width and height images are downscaled to when
	// either dimension exceeds it.
	DefaultCanvas = 2048
)

// Option configures an Extract run.
// Use functional options to override the defaults.
//
// Example:
//
//	out, err := contour.Extract(img, table,
//	    contour.WithWorkers(4),
//	    contour.WithThreshold(180),
//	)
type Option func(*options)

// options holds the configuration of one Extract run.
type options struct {
	workers      int
	stepX, stepY int
	threshold    uint8
	canvasW      int
	canvasH      int
}

// defaultOptions returns the default run options.
func defaultOptions() options {
	return options{
		workers:   runtime.GOMAXPROCS(0),
		stepX:     DefaultStep,
		stepY:     DefaultStep,
		threshold: DefaultThreshold,
		canvasW:   DefaultCanvas,
		canvasH:   DefaultCanvas,
	}
}

// validate reports the first invalid setting.
func (o *options) validate() error {
	switch {
	case o.workers < 1:
		return ErrInvalidWorkers
	case o.stepX < 1 || o.stepY < 1:
		return ErrInvalidStep
	case o.canvasW < 2 || o.canvasH < 2:
		return ErrInvalidCanvas
	}
	return nil
}

// WithWorkers sets the number of worker goroutines (P). It must be at least 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithStep sets the grid spacing in pixels. Stencils in the table must
// measure exactly x by y pixels.
func WithStep(x, y int) Option {
	return func(o *options) {
		o.stepX = x
		o.stepY = y
	}
}

// WithThreshold sets the brightness threshold. A sample whose channel mean is
// at or below t is dark.
func WithThreshold(t uint8) Option {
	return func(o *options) {
		o.threshold = t
	}
}

// WithCanvas sets the rescale target. Images wider than w or taller than h
// are downscaled to exactly w x h before sampling. Both must be at least 2.
func WithCanvas(w, h int) Option {
	return func(o *options) {
		o.canvasW = w
		o.canvasH = h
	}
}
