package pngmeta

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hevi0/cardprint/internal/format"
	"github.com/hevi0/cardprint/internal/mmfile"
	"github.com/hevi0/cardprint/internal/writer"
)

// Patch returns a copy of data with every existing pHYs chunk removed and a
// single synthesized pHYs chunk for dpi inserted immediately before the first
// IDAT chunk. All other chunks are copied verbatim in their original order,
// stored trailers included. Bytes after the IEND chunk are discarded. When
// the stream contains no IDAT chunk there is no injection anchor and the
// output carries no density chunk at all.
//
// A stream that ends without an IEND chunk is not an error; the pass ends
// with whatever output was assembled. A chunk whose header cannot be read or
// whose declared length overruns the buffer aborts the whole patch.
func Patch(data []byte, dpi int, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = &Options{}
	}
	if len(data) > opts.maxInput() {
		return nil, &Error{
			Kind: ErrKindCapacity,
			Msg:  fmt.Sprintf("input is %d bytes, limit is %d", len(data), opts.maxInput()),
		}
	}
	if len(data) < format.SignatureSize || !bytes.Equal(data[:format.SignatureSize], format.Signature) {
		return nil, &Error{Kind: ErrKindFormat, Msg: "not a PNG stream", Err: format.ErrSignatureMismatch}
	}

	maxOut := opts.maxOutput()
	out := make([]byte, 0, len(data)+format.PhysChunkSize)
	out = append(out, data[:format.SignatureSize]...)

	phys := format.EncodePhys(dpi)
	injected := false

	it := format.Chunks(data)
	for {
		c, err := it.Next()
		if errors.Is(err, io.EOF) {
			// Truncated stream without a terminator; keep what we have.
			break
		}
		if err != nil {
			return nil, &Error{Kind: ErrKindFormat, Msg: "malformed chunk stream", Err: err}
		}

		// Drop stale density chunks; ours replaces all of them.
		if c.IsPhys() {
			continue
		}

		if !injected && c.IsImageData() {
			if len(out)+len(phys) > maxOut {
				return nil, &Error{
					Kind: ErrKindEncoding,
					Msg:  fmt.Sprintf("density chunk does not fit output limit %d", maxOut),
				}
			}
			out = append(out, phys...)
			injected = true
		}

		if len(out)+len(c.Raw) > maxOut {
			return nil, &Error{
				Kind: ErrKindCapacity,
				Msg:  fmt.Sprintf("assembled output exceeds limit %d", maxOut),
			}
		}
		out = append(out, c.Raw...)

		if c.IsEnd() {
			break
		}
	}
	return out, nil
}

// SetDPI rewrites the density metadata of the PNG at path so that it declares
// the given dots-per-inch resolution, isotropically. The destination is the
// source path; commit behavior follows opts.Strategy. A nil opts selects the
// atomic strategy with default bounds.
//
// The returned error maps to a stable status code via ExitCode. No retries
// are attempted; transient I/O failures surface as-is.
func SetDPI(path string, dpi int, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return &Error{Kind: ErrKindIO, Msg: "read " + path, Err: err}
	}
	defer func() { _ = cleanup() }()

	out, err := Patch(data, dpi, opts)
	if err != nil {
		return err
	}

	var sink writer.Sink
	switch opts.Strategy {
	case CommitDirect:
		sink = &writer.DirectWriter{Path: path}
	default:
		sink = &writer.FileWriter{Path: path}
	}
	if err := sink.WriteImage(out); err != nil {
		return &Error{Kind: ErrKindIO, Msg: "write " + path, Err: err}
	}
	return nil
}
