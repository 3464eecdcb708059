// Package layout renders buffer rows as fixed-width text for the hex and
// value views and indexes the resulting text against byte offsets.
//
// Hex slots are separated by one space with one more at each 4-byte group
// boundary. The last slot has no trailing space, so the hex area of a row
// is 50 columns, not 51.
package layout

import (
	"fmt"
	"strconv"
	"strings"

	"binviz/internal/buffer"
	"binviz/internal/decode"
)

const (
	// GroupSize is the number of hex slots between extra group gaps.
	GroupSize = 4

	hexSlotWidth = 2
	minDecWidth  = 7
)

// Range is a half-open interval of byte offsets or text positions.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) Empty() bool { return r.End <= r.Start }

func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Normalize swaps reversed bounds.
func (r Range) Normalize() Range {
	if r.Start > r.End {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Entry links the bytes [ByteStart, ByteEnd) to the text [TextStart, TextEnd).
type Entry struct {
	ByteStart int
	ByteEnd   int
	TextStart int
	TextEnd   int
}

func (e Entry) Bytes() Range { return Range{e.ByteStart, e.ByteEnd} }

func (e Entry) Text() Range { return Range{e.TextStart, e.TextEnd} }

// Row is one rendered line. Entry offsets are relative to the row's first
// byte and the line's first character.
type Row struct {
	Text    string
	Entries []Entry
}

// DecimalWidth is the width of the "(N)" column of the hex prefix for a
// buffer of dataLen bytes. It is the same for every row of that buffer.
func DecimalWidth(dataLen int) int {
	last := 0
	if dataLen > 0 {
		last = (dataLen - 1) / buffer.RowWidth * buffer.RowWidth
	}
	w := len(strconv.Itoa(last)) + 2
	if w < minDecWidth {
		w = minDecWidth
	}
	return w
}

// HexPrefix renders "00000010 (16)     : " for the row starting at rowStart.
func HexPrefix(rowStart, decWidth int) string {
	return fmt.Sprintf("%08X %-*s: ", rowStart, decWidth, "("+strconv.Itoa(rowStart)+")")
}

// hexSlotOffset is the column of slot i relative to the end of the prefix.
func hexSlotOffset(i int) int {
	return i*(hexSlotWidth+1) + i/GroupSize
}

// HexAreaWidth is the width of the 16 hex slots including separators.
func HexAreaWidth() int {
	return hexSlotOffset(buffer.RowWidth-1) + hexSlotWidth
}

// HexRowWidth is the full width of every hex line.
func HexRowWidth(decWidth int) int {
	return len(HexPrefix(0, decWidth)) + HexAreaWidth()
}

// HexRow lays out up to 16 bytes as uppercase hex pairs. Missing slots of
// a short row are blank so every line has the same width.
func HexRow(rowStart int, row []byte, decWidth int) Row {
	prefix := HexPrefix(rowStart, decWidth)
	line := []byte(prefix + strings.Repeat(" ", HexAreaWidth()))
	entries := make([]Entry, 0, len(row))

	for i, b := range row {
		if i >= buffer.RowWidth {
			break
		}
		col := len(prefix) + hexSlotOffset(i)
		line[col] = hexDigits[b>>4]
		line[col+1] = hexDigits[b&0x0F]
		entries = append(entries, Entry{
			ByteStart: i,
			ByteEnd:   i + 1,
			TextStart: col,
			TextEnd:   col + hexSlotWidth,
		})
	}
	return Row{Text: string(line), Entries: entries}
}

const hexDigits = "0123456789ABCDEF"

// ValueRowWidth is the width of every value line in mode.
func ValueRowWidth(mode decode.Mode) int {
	if mode == decode.ModeASCII {
		return buffer.RowWidth
	}
	n := buffer.RowWidth / mode.Width()
	return n*mode.FieldWidth() + n - 1
}

// ValueRow lays out up to 16 bytes as decoded elements. A trailing element
// with too few bytes is left blank but still owns its bytes, so every byte
// of the row has an entry.
func ValueRow(row []byte, mode decode.Mode, e decode.Endianness) Row {
	if len(row) > buffer.RowWidth {
		row = row[:buffer.RowWidth]
	}
	if mode == decode.ModeASCII {
		return asciiRow(row)
	}

	width := mode.Width()
	field := mode.FieldWidth()
	elements := buffer.RowWidth / width

	var sb strings.Builder
	sb.Grow(ValueRowWidth(mode))
	entries := make([]Entry, 0, elements)

	for k := 0; k < elements; k++ {
		if k > 0 {
			sb.WriteByte(' ')
		}
		col := sb.Len()
		off := k * width
		if off >= len(row) {
			sb.WriteString(decode.Blank(mode))
			continue
		}

		end := off + width
		if end > len(row) {
			end = len(row)
			sb.WriteString(decode.Blank(mode))
		} else {
			v, err := decode.Decode(row[off:end], mode, e)
			if err != nil {
				sb.WriteString(decode.Blank(mode))
			} else {
				sb.WriteString(decode.Field(v, mode))
			}
		}
		entries = append(entries, Entry{
			ByteStart: off,
			ByteEnd:   end,
			TextStart: col,
			TextEnd:   col + field,
		})
	}
	return Row{Text: sb.String(), Entries: entries}
}

func asciiRow(row []byte) Row {
	line := []byte(strings.Repeat(" ", buffer.RowWidth))
	entries := make([]Entry, len(row))
	for i, b := range row {
		line[i] = decode.Glyph(b)
		entries[i] = Entry{ByteStart: i, ByteEnd: i + 1, TextStart: i, TextEnd: i + 1}
	}
	return Row{Text: string(line), Entries: entries}
}
