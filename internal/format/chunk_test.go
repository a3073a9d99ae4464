package format

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
	"testing"
)

// appendChunk appends a well-formed chunk with a correct trailer.
func appendChunk(b []byte, tag string, data []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, uint32(len(data)))
	b = append(b, tag...)
	b = append(b, data...)
	crc := crc32.Update(crc32.ChecksumIEEE([]byte(tag)), crc32.IEEETable, data)
	return binary.BigEndian.AppendUint32(b, crc)
}

func TestChunkIteratorWalk(t *testing.T) {
	png := append([]byte{}, Signature...)
	png = appendChunk(png, "IHDR", make([]byte, 13))
	png = appendChunk(png, "IDAT", []byte{1, 2, 3})
	png = appendChunk(png, "IEND", nil)

	it := Chunks(png)

	c, err := it.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if string(c.Tag) != "IHDR" || len(c.Data) != 13 {
		t.Fatalf("unexpected first chunk: tag=%q len=%d", c.Tag, len(c.Data))
	}
	if len(c.Raw) != 13+ChunkOverhead {
		t.Fatalf("raw length = %d, want %d", len(c.Raw), 13+ChunkOverhead)
	}

	c, err = it.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !c.IsImageData() || string(c.Data) != "\x01\x02\x03" {
		t.Fatalf("unexpected second chunk: tag=%q data=%v", c.Tag, c.Data)
	}

	c, err = it.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !c.IsEnd() {
		t.Fatalf("expected IEND, got %q", c.Tag)
	}

	if _, err := it.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF after IEND, got %v", err)
	}
}

func TestChunkIteratorStopsAtTerminator(t *testing.T) {
	png := append([]byte{}, Signature...)
	png = appendChunk(png, "IEND", nil)
	png = append(png, []byte("trailing garbage")...)

	it := Chunks(png)
	c, err := it.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !c.IsEnd() {
		t.Fatalf("expected IEND, got %q", c.Tag)
	}
	if _, err := it.Next(); err != io.EOF {
		t.Fatalf("trailing bytes must not be scanned, got %v", err)
	}
}

func TestChunkIteratorExhaustedWithoutTerminator(t *testing.T) {
	png := append([]byte{}, Signature...)
	png = appendChunk(png, "IHDR", make([]byte, 13))

	it := Chunks(png)
	if _, err := it.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, err := it.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF at buffer end, got %v", err)
	}
}

func TestChunkIteratorTruncatedHeader(t *testing.T) {
	png := append([]byte{}, Signature...)
	png = append(png, 0, 0, 0, 5) // length without a tag

	it := Chunks(png)
	if _, err := it.Next(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	// A failed scan never recovers.
	if _, err := it.Next(); err != io.EOF {
		t.Fatalf("iterator must stay done after error, got %v", err)
	}
}

func TestChunkIteratorOverrunningLength(t *testing.T) {
	png := append([]byte{}, Signature...)
	png = appendChunk(png, "IHDR", make([]byte, 13))
	// Chunk whose declared length reads past the buffer end.
	png = binary.BigEndian.AppendUint32(png, 1000)
	png = append(png, "IDAT"...)
	png = append(png, 1, 2, 3)

	it := Chunks(png)
	if _, err := it.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, err := it.Next(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestChunkIteratorHugeLengthOverflow(t *testing.T) {
	png := append([]byte{}, Signature...)
	png = binary.BigEndian.AppendUint32(png, 0xFFFFFFFF)
	png = append(png, "IDAT"...)
	png = append(png, make([]byte, 32)...)

	it := Chunks(png)
	if _, err := it.Next(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated for absurd length, got %v", err)
	}
}
