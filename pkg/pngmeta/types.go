package pngmeta

import "errors"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIO       ErrKind = iota + 1 // source unreadable, or destination not writable/renamable
	ErrKindFormat                      // bad signature, or malformed/truncated chunk structure
	ErrKindCapacity                    // input or assembled output exceeds the configured bound
	ErrKindEncoding                    // synthesized density chunk does not fit the output bound
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Kind extracts the error classification, or 0 when err is not from this
// package. A nil err reports 0 as well.
func Kind(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ExitCode maps an error returned by this package to the stable status code
// the CLI reports. 0 denotes success; every failure class has a distinct
// nonzero code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch Kind(err) {
	case ErrKindFormat:
		return 2
	case ErrKindCapacity:
		return 3
	case ErrKindEncoding:
		return 4
	default:
		return 1 // ErrKindIO and anything unclassified
	}
}
