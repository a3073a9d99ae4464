package pngmeta

import "github.com/hevi0/cardprint/internal/format"

// CommitStrategy selects how SetDPI persists the patched bytes.
type CommitStrategy int

const (
	// CommitAtomic writes the assembled output to a temp file next to the
	// destination and renames it into place. A crash or write error at any
	// point leaves the original file untouched. This is the strategy
	// production callers should use.
	CommitAtomic CommitStrategy = iota

	// CommitDirect truncates and rewrites the destination in place. An
	// interruption mid-write can leave a corrupted partial file; acceptable
	// only for bounded offline tooling that can regenerate its inputs.
	CommitDirect
)

// DefaultMaxInputSize bounds how large an input SetDPI will process when
// Options does not say otherwise.
const DefaultMaxInputSize = 32 << 20

// Options control patching and commit behavior. The zero value selects the
// atomic strategy with default capacity bounds.
type Options struct {
	// Strategy picks the commit path. Defaults to CommitAtomic.
	Strategy CommitStrategy

	// MaxInputSize caps the input size in bytes. 0 means DefaultMaxInputSize.
	MaxInputSize int

	// MaxOutputSize caps the assembled output size in bytes. 0 means the
	// input bound plus room for one density chunk.
	MaxOutputSize int
}

func (o *Options) maxInput() int {
	if o.MaxInputSize > 0 {
		return o.MaxInputSize
	}
	return DefaultMaxInputSize
}

func (o *Options) maxOutput() int {
	if o.MaxOutputSize > 0 {
		return o.MaxOutputSize
	}
	return o.maxInput() + format.PhysChunkSize
}
