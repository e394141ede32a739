// Command contour draws marching squares contour lines into an image.
//
// Usage:
//
//	contour [flags] <in_file> <out_file> <P>
//
// P is the number of worker goroutines. Stencils are read from the
// directory given by -contours (files 0.ppm ... 15.ppm), or rendered in
// memory with -builtin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/gogpu/contour"
	"github.com/gogpu/contour/internal/stencil"
)

const usage = "Usage: contour [flags] <in_file> <out_file> <P>"

// errUsage marks argument errors that print the usage line.
var errUsage = errors.New("usage")

// config holds the parsed command line.
type config struct {
	in, out   string
	workers   int
	contours  string
	builtin   bool
	fit       bool
	step      int
	threshold int
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, usage)
		}
		fmt.Fprintf(stderr, "contour: %v\n", err)
		return 1
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	contour.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if err := process(cfg); err != nil {
		fmt.Fprintf(stderr, "contour: %v\n", err)
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	cfg := config{}
	fs := flag.NewFlagSet("contour", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.contours, "contours", "contours", "directory holding stencils 0..15 (.ppm or .png)")
	fs.BoolVar(&cfg.builtin, "builtin", false, "render stencils in memory instead of loading them")
	fs.BoolVar(&cfg.fit, "fit", false, "rescale loaded stencils to the grid step")
	fs.IntVar(&cfg.step, "step", contour.DefaultStep, "grid step in pixels")
	fs.IntVar(&cfg.threshold, "threshold", contour.DefaultThreshold, "brightness threshold (0-255)")
	fs.BoolVar(&cfg.verbose, "v", false, "log run parameters and phase timings")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() < 3 {
		return cfg, fmt.Errorf("%w: expected 3 arguments, got %d", errUsage, fs.NArg())
	}

	cfg.in, cfg.out = fs.Arg(0), fs.Arg(1)
	p, err := strconv.Atoi(fs.Arg(2))
	if err != nil || p < 1 {
		return cfg, fmt.Errorf("%w: P must be a positive integer, got %q", errUsage, fs.Arg(2))
	}
	cfg.workers = p

	if cfg.threshold < 0 || cfg.threshold > 255 {
		return cfg, fmt.Errorf("%w: threshold %d out of range", errUsage, cfg.threshold)
	}
	return cfg, nil
}

// process loads the stencils and the input, runs the pipeline and writes
// the output. Nothing is written unless every earlier step succeeded.
func process(cfg config) error {
	table, err := loadTable(cfg)
	if err != nil {
		return err
	}

	src, err := contour.LoadImage(cfg.in)
	if err != nil {
		return err
	}

	out, err := contour.Extract(src, table,
		contour.WithWorkers(cfg.workers),
		contour.WithStep(cfg.step, cfg.step),
		contour.WithThreshold(uint8(cfg.threshold)),
	)
	if err != nil {
		return err
	}
	return contour.SaveImage(out, cfg.out)
}

func loadTable(cfg config) (*contour.Table, error) {
	if cfg.builtin {
		st, err := stencil.RenderAll(cfg.step, cfg.step, 0)
		if err != nil {
			return nil, err
		}
		return contour.NewTable(*st)
	}

	table, err := contour.LoadTable(cfg.contours)
	if err != nil {
		return nil, err
	}
	if cfg.fit {
		return table.Fit(cfg.step, cfg.step)
	}
	return table, nil
}
