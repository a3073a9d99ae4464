package format

import "errors"

var (
	// ErrSignatureMismatch indicates the input does not begin with the PNG signature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
)
