// Package format houses low-level decoders for the PNG container format. The
// goal is to keep the parsing focused, allocation-free where possible, and
// independent from the public API so higher-level packages can orchestrate
// the chunk stream in a more ergonomic form.
//
// Only the container structure is modeled here: a PNG is the eight-byte
// signature followed by typed, length-prefixed, checksummed chunks. Pixel
// data is never decoded.
package format

var (
	// Signature is the eight-byte magic at the start of every PNG stream.
	// Layout:
	//   0x00  0x89 'P' 'N' 'G' 0x0D 0x0A 0x1A 0x0A
	Signature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

	// TagPHYS identifies the physical pixel density chunk.
	TagPHYS = []byte{'p', 'H', 'Y', 's'}

	// TagIDAT identifies a compressed image data chunk. A stream normally
	// carries several; only the first one matters as an injection anchor.
	TagIDAT = []byte{'I', 'D', 'A', 'T'}

	// TagIEND identifies the stream terminator chunk.
	TagIEND = []byte{'I', 'E', 'N', 'D'}
)

const (
	// SignatureSize is the length of the PNG signature in bytes.
	SignatureSize = 8

	// LengthSize, TagSize, and CRCSize are the fixed field widths of the
	// structural bytes surrounding every chunk payload.
	LengthSize = 4
	TagSize    = 4
	CRCSize    = 4

	// ChunkOverhead is the total structural byte count per chunk
	// (length + tag + crc).
	ChunkOverhead = LengthSize + TagSize + CRCSize

	// PhysDataSize is the pHYs payload size: ppmX(4) + ppmY(4) + unit(1).
	PhysDataSize = 9

	// PhysChunkSize is the size of a fully encoded pHYs chunk.
	PhysChunkSize = PhysDataSize + ChunkOverhead

	// PhysUnitMeter is the pHYs unit byte meaning pixels per meter.
	PhysUnitMeter = 1

	// PixelsPerMeterPerInch converts dots-per-inch to pixels-per-meter.
	// Exactly 1/0.0254.
	PixelsPerMeterPerInch = 39.37007874
)
