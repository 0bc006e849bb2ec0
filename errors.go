package vtscreen

import "errors"

// Error kinds returned across the public API. Errors are never stored
// on the Screen; every failed operation leaves state unchanged and
// the caller may retry or surface the error.
var (
	// ErrInvalidArg signals a null/zero/out-of-range input that is not
	// otherwise clamped.
	ErrInvalidArg = errors.New("vtscreen: invalid argument")

	// ErrOutOfMemory signals an allocation failure. No operation in
	// this package returns it: Resize performs no allocation-size check
	// and reports only ErrInvalidArg or ErrReentrant.
	ErrOutOfMemory = errors.New("vtscreen: out of memory")

	// ErrRange signals a lookup with no data available, such as
	// ScrollbackLine with an out-of-bounds index.
	ErrRange = errors.New("vtscreen: no data in range")

	// ErrNotSupported is reserved for behavior not yet implemented.
	ErrNotSupported = errors.New("vtscreen: not supported")

	// ErrNotActive signals selection_copy called with no active selection.
	ErrNotActive = errors.New("vtscreen: selection not active")

	// ErrReentrant signals a mutating call made from within a Draw
	// callback on the same Screen.
	ErrReentrant = errors.New("vtscreen: reentrant call during draw")
)
