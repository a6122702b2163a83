package format

import "errors"

// Sentinel errors returned by the low-level decoders in this package. These
// are deliberately plain (not errs.Error) so format stays independent of the
// orchestrating packages; callers at the page/pagetree layer wrap them into
// errs.Error with the appropriate Kind and page-level context.
var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")

	// ErrBoundsCheck indicates a buffer access exceeded bounds.
	ErrBoundsCheck = errors.New("format: buffer bounds exceeded")

	// ErrFlagMismatch indicates a page carried flag bits outside the
	// supported mask for its required role, or lacked the required bit
	// entirely.
	ErrFlagMismatch = errors.New("format: unsupported page flag combination")
)
