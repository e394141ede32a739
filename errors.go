package contour

import "errors"

// Configuration and input errors returned by Extract, NewTable and LoadTable.
var (
	// ErrInvalidWorkers is returned when the worker count is below 1.
	ErrInvalidWorkers = errors.New("contour: worker count must be at least 1")

	// ErrInvalidStep is returned when a grid step is below 1.
	ErrInvalidStep = errors.New("contour: grid step must be at least 1")

	// ErrInvalidCanvas is returned when a rescale canvas dimension is below 2.
	ErrInvalidCanvas = errors.New("contour: canvas dimensions must be at least 2")

	// ErrNilImage is returned when the source image is nil.
	ErrNilImage = errors.New("contour: nil image")

	// ErrNilTable is returned when the stencil table is nil.
	ErrNilTable = errors.New("contour: nil stencil table")

	// ErrStencilCount is returned when a table is missing stencils.
	ErrStencilCount = errors.New("contour: table needs 16 stencils")
)
