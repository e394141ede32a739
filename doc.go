// Package contour draws marching squares contour lines into raster images.
//
// # Overview
//
// The image is sampled on a regular grid every step pixels. Each sample is
// classified dark or light against a brightness threshold, and every grid
// cell is then overwritten with the stencil matching the 4-bit
// configuration of its corners:
//
//	k = 8*topLeft + 4*topRight + 2*bottomRight + 1*bottomLeft
//
// Images larger than the canvas (2048x2048 by default) are first downscaled
// to exactly the canvas size with bicubic interpolation.
//
// # Quick Start
//
//	import "github.com/gogpu/contour"
//
//	table, err := contour.LoadTable("contours")
//	if err != nil {
//	    return err
//	}
//	img, err := contour.LoadImage("in.ppm")
//	if err != nil {
//	    return err
//	}
//	out, err := contour.Extract(img, table, contour.WithWorkers(4))
//	if err != nil {
//	    return err
//	}
//	return contour.SaveImage(out, "out.ppm")
//
// # Parallelism
//
// Extract splits each phase (rescale, sample, stamp) into contiguous row
// bands, one per worker, and waits for all workers before starting the
// next phase. Every byte of the output is written by exactly one worker,
// so the result does not depend on the worker count.
//
// # Image Formats
//
// LoadImage detects Netpbm (PPM, PGM, PBM, PAM), PNG, JPEG, BMP, TIFF and
// WebP input by content. SaveImage picks the encoder from the extension;
// WebP is decode only.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive run and
// phase timing records at debug level.
package contour
