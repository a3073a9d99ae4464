package pngmeta

import (
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/hevi0/cardprint/internal/format"
	"github.com/stretchr/testify/require"
)

// chunk encodes a well-formed chunk with a correct trailer.
func chunk(tag string, data []byte) []byte {
	out := binary.BigEndian.AppendUint32(nil, uint32(len(data)))
	out = append(out, tag...)
	out = append(out, data...)
	crc := crc32.Update(crc32.ChecksumIEEE([]byte(tag)), crc32.IEEETable, data)
	return binary.BigEndian.AppendUint32(out, crc)
}

// buildPNG concatenates the signature and the given encoded chunks.
func buildPNG(chunks ...[]byte) []byte {
	out := append([]byte{}, format.Signature...)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// minimalPNG is a structurally valid stream with one IHDR, two IDATs, and an
// IEND. Payload contents are arbitrary; nothing here decodes pixels.
func minimalPNG() []byte {
	return buildPNG(
		chunk("IHDR", make([]byte, 13)),
		chunk("IDAT", []byte{0x78, 0x9c, 0x62, 0x00}),
		chunk("IDAT", []byte{0x01, 0x02}),
		chunk("IEND", nil),
	)
}

// scanTags re-scans a patched stream and returns the chunk tag sequence.
func scanTags(t *testing.T, data []byte) []string {
	t.Helper()
	var tags []string
	it := format.Chunks(data)
	for {
		c, err := it.Next()
		if err != nil {
			return tags
		}
		tags = append(tags, string(c.Tag))
	}
}

// physValues extracts (ppmX, ppmY, unit) from the single pHYs chunk in data.
func physValues(t *testing.T, data []byte) (uint32, uint32, byte) {
	t.Helper()
	it := format.Chunks(data)
	for {
		c, err := it.Next()
		require.NoError(t, err, "re-scan of patched output must succeed")
		if !c.IsPhys() {
			continue
		}
		require.Len(t, c.Data, format.PhysDataSize)
		return binary.BigEndian.Uint32(c.Data[0:4]), binary.BigEndian.Uint32(c.Data[4:8]), c.Data[8]
	}
}
