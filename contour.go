package contour

import (
	"fmt"
	"log/slog"
	"time"

	intImage "github.com/gogpu/contour/internal/image"
	"github.com/gogpu/contour/internal/march"
	"github.com/gogpu/contour/internal/parallel"
)

// job is the state shared by all workers of one Extract run. It is built
// before the pool starts and dropped after the last phase joins.
type job struct {
	opts    options
	source  *Image
	image   *Image // rescaled canvas, or source when no rescale runs
	rescale bool
	grid    *march.Grid
	table   *Table
	pool    *parallel.WorkerPool
	log     *slog.Logger
}

// Extract draws the marching squares contours of src into an image and
// returns it.
//
// Images larger than the canvas (2048x2048 by default) in either dimension
// are first downscaled to exactly the canvas size with bicubic
// interpolation; smaller images keep their size. The image is then sampled
// on a grid and every grid cell is overwritten with the table stencil of its
// configuration.
//
// Extract takes ownership of src: when no rescale is needed, src itself is
// annotated and returned. The output is identical for any worker count.
func Extract(src *Image, table *Table, opts ...Option) (*Image, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilImage
	}
	if table == nil {
		return nil, ErrNilTable
	}

	j, err := newJob(src, table, o)
	if err != nil {
		return nil, err
	}
	defer j.pool.Close()

	j.run()
	return j.image, nil
}

// newJob allocates the shared buffers and starts the worker pool.
func newJob(src *Image, table *Table, o options) (*job, error) {
	j := &job{
		opts:   o,
		source: src,
		image:  src,
		table:  table,
		log:    Logger(),
	}

	w, h := src.Bounds()
	if w > o.canvasW || h > o.canvasH {
		canvas, err := intImage.NewRGB(o.canvasW, o.canvasH)
		if err != nil {
			return nil, fmt.Errorf("contour: allocate canvas: %w", err)
		}
		j.image = canvas
		j.rescale = true
	}

	iw, ih := j.image.Bounds()
	j.grid = march.NewGrid(iw, ih, o.stepX, o.stepY)
	j.pool = parallel.NewWorkerPool(o.workers)
	return j, nil
}

// run executes the phases in order. Each phase returns only after every
// worker is done, so a phase sees all writes of the previous one.
func (j *job) run() {
	sw, sh := j.source.Bounds()
	j.log.Debug("contour: start",
		"width", sw, "height", sh,
		"workers", j.opts.workers,
		"step_x", j.opts.stepX, "step_y", j.opts.stepY,
		"threshold", j.opts.threshold,
		"rescale", j.rescale,
		"grid_rows", j.grid.Rows()+1, "grid_cols", j.grid.Cols()+1,
	)

	if j.rescale {
		j.phase("rescale", j.resampleWorker)
		j.source = nil // canvas is the only image from here on
	}
	j.phase("sample", j.sampleWorker)
	j.phase("stamp", j.stampWorker)
}

// phase runs fn on every worker and waits for all of them.
func (j *job) phase(name string, fn func(worker int)) {
	start := time.Now()
	j.pool.Rendezvous(fn)
	j.log.Debug("contour: phase done", "phase", name, "elapsed", time.Since(start))
}

func (j *job) resampleWorker(id int) {
	_, h := j.image.Bounds()
	march.Resample(j.image, j.source, parallel.SpanOf(id, j.opts.workers, h))
}

func (j *job) sampleWorker(id int) {
	a := parallel.Assign(id, j.opts.workers, j.grid.Rows())
	march.Sample(j.image, j.grid, a, j.opts.stepX, j.opts.stepY, j.opts.threshold)
}

func (j *job) stampWorker(id int) {
	rows := parallel.SpanOf(id, j.opts.workers, j.grid.Rows())
	march.Stamp(j.image, j.grid, &j.table.stencils, rows, j.opts.stepX, j.opts.stepY)
}
