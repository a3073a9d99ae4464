package format

import "github.com/hevi0/cardprint/internal/buf"

// DPIToPixelsPerMeter converts a dots-per-inch value to the pixels-per-meter
// figure stored in a pHYs chunk. Non-positive inputs are floored to 1 DPI;
// the converted value is rounded to nearest and clamped to the uint32 range.
func DPIToPixelsPerMeter(dpi int) uint32 {
	if dpi <= 0 {
		dpi = 1
	}
	ppm := float64(dpi) * PixelsPerMeterPerInch
	if ppm <= 1 {
		return 1
	}
	if ppm >= 4294967295 {
		return 4294967295
	}
	return uint32(ppm + 0.5)
}

// EncodePhys builds the complete encoded pHYs chunk for an isotropic
// resolution given in dots-per-inch.
//
//	Offset  Size  Description
//	------  ----  --------------------------------
//	 0x00    4    payload length (9), big-endian
//	 0x04    4    'p' 'H' 'Y' 's'
//	 0x08    4    pixels per meter, X axis
//	 0x0C    4    pixels per meter, Y axis (= X)
//	 0x10    1    unit (1 = meter)
//	 0x11    4    CRC-32 over tag + payload
func EncodePhys(dpi int) []byte {
	ppm := DPIToPixelsPerMeter(dpi)

	out := make([]byte, 0, PhysChunkSize)
	out = buf.AppendU32BE(out, PhysDataSize)
	out = append(out, TagPHYS...)
	out = buf.AppendU32BE(out, ppm)
	out = buf.AppendU32BE(out, ppm)
	out = append(out, PhysUnitMeter)
	crc := ChunkCRC(TagPHYS, out[LengthSize+TagSize:])
	return buf.AppendU32BE(out, crc)
}
