package contour

import (
	"errors"
	"runtime"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.workers != runtime.GOMAXPROCS(0) {
		t.Errorf("workers = %d, want GOMAXPROCS", o.workers)
	}
	if o.stepX != DefaultStep || o.stepY != DefaultStep {
		t.Errorf("step = (%d, %d), want (%d, %d)", o.stepX, o.stepY, DefaultStep, DefaultStep)
	}
	if o.threshold != DefaultThreshold {
		t.Errorf("threshold = %d, want %d", o.threshold, DefaultThreshold)
	}
	if o.canvasW != DefaultCanvas || o.canvasH != DefaultCanvas {
		t.Errorf("canvas = (%d, %d), want (%d, %d)", o.canvasW, o.canvasH, DefaultCanvas, DefaultCanvas)
	}
	if err := o.validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestOptions_Apply(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{WithWorkers(3), WithStep(4, 6), WithThreshold(90), WithCanvas(512, 256)} {
		opt(&o)
	}
	if o.workers != 3 || o.stepX != 4 || o.stepY != 6 || o.threshold != 90 || o.canvasW != 512 || o.canvasH != 256 {
		t.Errorf("options = %+v", o)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"one worker", WithWorkers(1), nil},
		{"no workers", WithWorkers(0), ErrInvalidWorkers},
		{"unit step", WithStep(1, 1), nil},
		{"zero step y", WithStep(8, 0), ErrInvalidStep},
		{"negative step x", WithStep(-1, 8), ErrInvalidStep},
		{"smallest canvas", WithCanvas(2, 2), nil},
		{"flat canvas", WithCanvas(100, 1), ErrInvalidCanvas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if err := o.validate(); !errors.Is(err, tt.want) {
				t.Errorf("validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
