package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hevi0/cardprint/internal/buf"
)

// Chunk is a single typed record inside a PNG stream. All slices alias the
// scanned buffer; callers must not mutate them.
type Chunk struct {
	Tag  []byte // 4-byte type tag, case-significant
	Data []byte // payload of the declared length
	CRC  []byte // the 4 stored trailer bytes, as read, never verified
	Raw  []byte // full encoding: length + tag + data + trailer
}

// IsPhys reports whether the chunk is a pHYs density chunk.
func (c Chunk) IsPhys() bool { return bytes.Equal(c.Tag, TagPHYS) }

// IsImageData reports whether the chunk is an IDAT chunk.
func (c Chunk) IsImageData() bool { return bytes.Equal(c.Tag, TagIDAT) }

// IsEnd reports whether the chunk is the IEND terminator.
func (c Chunk) IsEnd() bool { return bytes.Equal(c.Tag, TagIEND) }

// ChunkIterator walks the chunk sequence of a PNG buffer. It is single-pass:
// once Next returns an error the iterator stays done, because a bad chunk
// boundary invalidates every later offset.
type ChunkIterator struct {
	data []byte
	off  int
	done bool
}

// Chunks returns an iterator positioned immediately after the signature.
// The caller is responsible for having verified the signature first.
func Chunks(data []byte) *ChunkIterator {
	return &ChunkIterator{data: data, off: SignatureSize}
}

// Next yields the next chunk. It returns io.EOF once the IEND chunk has been
// yielded or the buffer is exhausted, and a wrapped ErrTruncated when a
// header cannot be read or a declared payload overruns the buffer.
func (it *ChunkIterator) Next() (Chunk, error) {
	if it.done {
		return Chunk{}, io.EOF
	}

	data := it.data
	if it.off >= len(data) {
		it.done = true
		return Chunk{}, io.EOF
	}

	if !buf.Has(data, it.off, LengthSize+TagSize) {
		it.done = true
		return Chunk{}, fmt.Errorf("chunk header at %d: %w", it.off, ErrTruncated)
	}
	length := int(buf.U32BE(data[it.off:]))

	total, ok := buf.AddOverflowSafe(length, ChunkOverhead)
	if !ok || !buf.Has(data, it.off, total) {
		it.done = true
		return Chunk{}, fmt.Errorf("chunk at %d: declared length %d: %w", it.off, length, ErrTruncated)
	}

	raw := data[it.off : it.off+total]
	c := Chunk{
		Tag:  raw[LengthSize : LengthSize+TagSize],
		Data: raw[LengthSize+TagSize : LengthSize+TagSize+length],
		CRC:  raw[total-CRCSize:],
		Raw:  raw,
	}
	it.off += total

	// Scanning stops at the terminator even if trailing bytes exist.
	if c.IsEnd() {
		it.done = true
	}
	return c, nil
}
