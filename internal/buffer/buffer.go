package buffer

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// RowWidth is the number of bytes shown on one row of every view.
const RowWidth = 16

// Buffer is a read-only view over the bytes of one file. It is never
// mutated after construction.
type Buffer struct {
	filename string
	data     []byte
	checksum string
}

// New wraps a copy of data.
func New(data []byte) *Buffer {
	c := make([]byte, len(data))
	copy(c, data)
	return &Buffer{
		data:     c,
		checksum: sum(c),
	}
}

func Open(filename string) (*Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &Buffer{
		filename: filename,
		data:     data,
		checksum: sum(data),
	}, nil
}

func sum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (b *Buffer) Filename() string {
	return b.filename
}

// Checksum is the hex SHA-256 of the contents.
func (b *Buffer) Checksum() string {
	return b.checksum
}

func (b *Buffer) Size() int {
	return len(b.data)
}

// Data returns the underlying bytes. Callers must not modify them.
func (b *Buffer) Data() []byte {
	return b.data
}

func (b *Buffer) GetByte(offset int) (byte, bool) {
	if offset < 0 || offset >= len(b.data) {
		return 0, false
	}
	return b.data[offset], true
}

// GetBytes copies up to count bytes starting at offset. The result is
// shorter than count at the end of the buffer and nil when offset is out
// of range.
func (b *Buffer) GetBytes(offset int, count int) []byte {
	if offset < 0 || offset >= len(b.data) || count <= 0 {
		return nil
	}
	end := offset + count
	if end > len(b.data) {
		end = len(b.data)
	}
	result := make([]byte, end-offset)
	copy(result, b.data[offset:end])
	return result
}

// Rows is the number of RowWidth rows needed to show the buffer.
func (b *Buffer) Rows() int {
	return (len(b.data) + RowWidth - 1) / RowWidth
}
