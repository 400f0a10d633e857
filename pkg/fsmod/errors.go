package fsmod

import "errors"

var (
	// ErrInvalidArgument indicates an argument that is the wrong type or
	// shape for the operation, e.g. a relative path where an absolute one
	// is required.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoCommonRoot indicates two paths that do not share a first
	// component, e.g. different drives under Windows syntax.
	ErrNoCommonRoot = errors.New("no common root")

	// ErrNotAFile indicates a path that does not denote a regular file.
	ErrNotAFile = errors.New("not a file")

	// ErrUnsupportedAlgorithm indicates an unrecognized digest name.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

	// ErrSizeUnavailable indicates a file whose size could not be
	// determined.
	ErrSizeUnavailable = errors.New("size unavailable")
)
