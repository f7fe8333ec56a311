package maze

import "errors"

var (
	// ErrInvalidDimensions is returned when a mask or grid is created with
	// fewer than one column or row, or with more cells than an int can index.
	ErrInvalidDimensions = errors.New("dimensions must be at least 1x1")

	// ErrMalformedMask is returned by [ParseMask] for ragged or empty diagrams.
	ErrMalformedMask = errors.New("malformed mask")

	// ErrEmptyMask is returned when an operation needs a present cell and the
	// mask has none.
	ErrEmptyMask = errors.New("mask has no present cells")

	// ErrDisconnectedMask is returned by generators when the present cells do
	// not form a single connected component.
	ErrDisconnectedMask = errors.New("mask cells are not connected")

	// ErrUnsupportedMask is returned by [BinaryTree] and [Sidewinder] when the
	// mask shape would leave their biased construction with more than one tree.
	ErrUnsupportedMask = errors.New("mask shape not supported by algorithm")

	// ErrMaskMismatch is returned by [NewGrid] when the mask dimensions differ
	// from the grid dimensions.
	ErrMaskMismatch = errors.New("mask dimensions do not match grid")

	// ErrAlreadyLinked is returned by generators when the grid already carries
	// links from a previous run.
	ErrAlreadyLinked = errors.New("grid already has links")

	// ErrUnknownAlgorithm is returned by [ParseAlgorithm] and [Generate].
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrUnreachable is returned when a path target cannot be reached from
	// the root over links.
	ErrUnreachable = errors.New("cell unreachable from root")

	// ErrForeignCell is returned when cells from different grids are combined.
	ErrForeignCell = errors.New("cell belongs to a different grid")

	// ErrNilRandom is returned by generators called without a random source.
	ErrNilRandom = errors.New("nil random source")
)
