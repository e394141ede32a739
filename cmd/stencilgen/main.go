// Command stencilgen writes the 16 marching squares stencil images used by
// the contour command.
//
// Usage:
//
//	stencilgen [-size 8] [-width 1.5] [-format ppm] <dir>
//
// Stencil k is written to <dir>/<k>.<format>.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gogpu/contour"
	"github.com/gogpu/contour/internal/stencil"
)

const usage = "Usage: stencilgen [flags] <dir>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("stencilgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	size := fs.Int("size", contour.DefaultStep, "stencil width and height in pixels")
	width := fs.Float64("width", stencil.DefaultLineWidth, "contour line width in pixels")
	format := fs.String("format", "ppm", "output format: ppm or png")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	if *format != "ppm" && *format != "png" {
		fmt.Fprintf(stderr, "stencilgen: unsupported format %q\n", *format)
		return 1
	}

	dir := fs.Arg(0)
	if err := generate(dir, *size, *width, *format); err != nil {
		fmt.Fprintf(stderr, "stencilgen: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Stencils saved to %s (%dx%d)\n", dir, *size, *size)
	return 0
}

func generate(dir string, size int, width float64, format string) error {
	stencils, err := stencil.RenderAll(size, size, width)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for k, img := range stencils {
		path := filepath.Join(dir, strconv.Itoa(k)+"."+format)
		if err := contour.SaveImage(img, path); err != nil {
			return fmt.Errorf("save stencil %d: %w", k, err)
		}
	}
	return nil
}
