// Package decode turns byte windows into fixed-width integers and renders
// them into the fixed text fields used by the value view.
package decode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInsufficientBytes = errors.New("insufficient bytes")
	ErrNotNumeric        = errors.New("mode has no numeric decoding")
)

// Decode interprets the leading mode.Width() bytes of b as an integer in
// the given byte order. Signed modes use two's complement.
func Decode(b []byte, mode Mode, e Endianness) (int64, error) {
	if mode == ModeASCII || !mode.valid() {
		return 0, fmt.Errorf("decode %s: %w", mode, ErrNotNumeric)
	}
	width := mode.Width()
	if len(b) < width {
		return 0, fmt.Errorf("decode %s: have %d of %d: %w", mode, len(b), width, ErrInsufficientBytes)
	}

	order := e.ByteOrder()
	switch width {
	case 1:
		if mode.Signed() {
			return int64(int8(b[0])), nil
		}
		return int64(b[0]), nil
	case 2:
		v := order.Uint16(b[:2])
		if mode.Signed() {
			return int64(int16(v)), nil
		}
		return int64(v), nil
	default:
		v := order.Uint32(b[:4])
		if mode.Signed() {
			return int64(int32(v)), nil
		}
		return int64(v), nil
	}
}

// Field renders v left-justified and padded to the mode's field width.
func Field(v int64, mode Mode) string {
	s := strconv.FormatInt(v, 10)
	if pad := mode.FieldWidth() - len(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Blank is an empty field of the mode's width.
func Blank(mode Mode) string {
	return strings.Repeat(" ", mode.FieldWidth())
}

// Glyph returns b itself when printable ASCII and '.' otherwise.
func Glyph(b byte) byte {
	if b >= 0x20 && b <= 0x7E {
		return b
	}
	return '.'
}

// ASCII renders data one glyph per byte.
func ASCII(data []byte) string {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = Glyph(b)
	}
	return string(out)
}
