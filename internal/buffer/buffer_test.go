package buffer

import (
	"os"
	"testing"
)

func TestNewCopiesInput(t *testing.T) {
	src := []byte{0x41, 0x42, 0x43}
	b := New(src)
	src[0] = 0xFF

	if b.Size() != 3 {
		t.Errorf("expected size 3, got %d", b.Size())
	}
	if val, ok := b.GetByte(0); !ok || val != 0x41 {
		t.Errorf("expected 0x41 at offset 0, got %02X", val)
	}
}

func TestEmpty(t *testing.T) {
	b := New(nil)
	if b.Size() != 0 {
		t.Errorf("expected size 0, got %d", b.Size())
	}
	if b.Rows() != 0 {
		t.Errorf("expected 0 rows, got %d", b.Rows())
	}
	if _, ok := b.GetByte(0); ok {
		t.Error("expected GetByte(0) to fail on an empty buffer")
	}
}

func TestGetByteOutOfRange(t *testing.T) {
	b := New([]byte{0x01})
	if _, ok := b.GetByte(-1); ok {
		t.Error("expected GetByte(-1) to fail")
	}
	if _, ok := b.GetByte(1); ok {
		t.Error("expected GetByte(1) to fail")
	}
}

func TestGetBytes(t *testing.T) {
	b := New([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

	bytes := b.GetBytes(1, 3)
	if len(bytes) != 3 {
		t.Errorf("expected 3 bytes, got %d", len(bytes))
	}
	if bytes[0] != 0x02 || bytes[1] != 0x03 || bytes[2] != 0x04 {
		t.Errorf("unexpected bytes: %v", bytes)
	}

	tail := b.GetBytes(3, 10)
	if len(tail) != 2 {
		t.Errorf("expected 2 bytes at tail, got %d", len(tail))
	}

	if b.GetBytes(5, 1) != nil {
		t.Error("expected nil past end")
	}

	bytes[0] = 0xFF
	if val, _ := b.GetByte(1); val != 0x02 {
		t.Errorf("GetBytes must copy, buffer now has %02X", val)
	}
}

func TestRows(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i)
	}
	b := New(data)

	if b.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", b.Rows())
	}
	if b := New(data[:RowWidth]); b.Rows() != 1 {
		t.Errorf("expected 1 row for exactly %d bytes, got %d", RowWidth, b.Rows())
	}
}

func TestOpen(t *testing.T) {
	f, err := os.CreateTemp("", "binviz_test_*.bin")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	testData := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	f.Write(testData)
	f.Close()

	b, err := Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}

	if b.Size() != 5 {
		t.Errorf("expected size 5, got %d", b.Size())
	}
	if b.Filename() != f.Name() {
		t.Errorf("expected filename %q, got %q", f.Name(), b.Filename())
	}
	if b.Checksum() != New(testData).Checksum() {
		t.Error("expected checksum to match in-memory buffer with same contents")
	}
	if len(b.Checksum()) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(b.Checksum()))
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open("/nonexistent/binviz.bin"); err == nil {
		t.Error("expected error opening missing file")
	}
}
