package domutil

import "errors"

var (
	// ErrInvalidArgument is returned when a required node is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutsideRegion is returned when a climb reaches the top of the tree
	// without passing through an editing region.
	ErrOutsideRegion = errors.New("node is not inside an editing region")
)
