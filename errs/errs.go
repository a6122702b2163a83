// Package errs implements the error taxonomy the page-tree engine and its
// collaborators use to report failures. Errors are classified by Kind so
// callers can branch on intent rather than parsing message text.
package errs

import "fmt"

// Kind classifies an Error into one of the engine's failure categories.
type Kind int

const (
	// InvalidArgument indicates a nil or otherwise missing required input.
	InvalidArgument Kind = iota + 1
	// MissingState indicates runtime state corruption: a missing sub-list,
	// an unexpected nil, or a required bound schema that was never set.
	MissingState
	// Unsupported indicates a flag violation, wrong size, or foreign FDP id
	// the engine is not willing to interpret.
	Unsupported
	// OutOfRange indicates a key size or offset that exceeds its container.
	OutOfRange
	// IOFailure indicates the page source failed to fetch a page.
	IOFailure
	// InitialisationFailure indicates a PageTree could not be constructed.
	InitialisationFailure
	// GetFailure indicates a lookup (e.g. by identifier) failed unexpectedly.
	GetFailure
	// AppendFailure indicates a registry append could not complete.
	AppendFailure
	// SetFailure indicates a single-value field (e.g. long-value) could not be set.
	SetFailure
	// FinalisationFailure indicates release/teardown could not complete cleanly.
	FinalisationFailure
)

// String renders the Kind's name for diagnostics and error messages.
func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid_argument"
	case MissingState:
		return "missing_state"
	case Unsupported:
		return "unsupported"
	case OutOfRange:
		return "out_of_range"
	case IOFailure:
		return "io_failure"
	case InitialisationFailure:
		return "initialisation_failure"
	case GetFailure:
		return "get_failure"
	case AppendFailure:
		return "append_failure"
	case SetFailure:
		return "set_failure"
	case FinalisationFailure:
		return "finalisation_failure"
	default:
		return "unknown"
	}
}

// Error is a typed error carrying a Kind and an optional underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an *Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an *Error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Is reports whether err is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if as(err, &e) {
		return e.Kind == kind
	}
	return false
}

// as is a tiny local shim so this package doesn't need to import errors
// just for errors.As in the one place it's used internally.
func as(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
