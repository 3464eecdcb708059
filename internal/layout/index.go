package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"binviz/internal/buffer"
	"binviz/internal/decode"
)

var ErrOutOfRange = errors.New("out of range")

// Index is the rendered text of one view together with its byte <-> text
// table. Entries are sorted by both byte and text offset, do not overlap,
// and cover every byte of the buffer exactly once.
type Index struct {
	text    string
	entries []Entry
	size    int
}

// BuildHex renders the hex grid for data.
func BuildHex(data []byte) *Index {
	decWidth := DecimalWidth(len(data))
	return build(data, func(rowStart int, row []byte) Row {
		return HexRow(rowStart, row, decWidth)
	})
}

// BuildValues renders the value view for data under mode and byte order.
func BuildValues(data []byte, mode decode.Mode, e decode.Endianness) *Index {
	return build(data, func(_ int, row []byte) Row {
		return ValueRow(row, mode, e)
	})
}

func build(data []byte, render func(rowStart int, row []byte) Row) *Index {
	rows := (len(data) + buffer.RowWidth - 1) / buffer.RowWidth
	ix := &Index{
		entries: make([]Entry, 0, len(data)),
		size:    len(data),
	}

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		rowStart := r * buffer.RowWidth
		rowEnd := rowStart + buffer.RowWidth
		if rowEnd > len(data) {
			rowEnd = len(data)
		}

		lineStart := sb.Len()
		row := render(rowStart, data[rowStart:rowEnd])
		sb.WriteString(row.Text)

		for _, e := range row.Entries {
			ix.entries = append(ix.entries, Entry{
				ByteStart: rowStart + e.ByteStart,
				ByteEnd:   rowStart + e.ByteEnd,
				TextStart: lineStart + e.TextStart,
				TextEnd:   lineStart + e.TextEnd,
			})
		}
	}
	ix.text = sb.String()
	return ix
}

func (ix *Index) Text() string { return ix.text }

// Len is the length of the rendered text.
func (ix *Index) Len() int { return len(ix.text) }

// Size is the number of bytes indexed.
func (ix *Index) Size() int { return ix.size }

func (ix *Index) Entries() []Entry { return ix.entries }


// ByteToText returns the text span rendering byte i. Bytes that share a
// multi-byte element share that element's span.
func (ix *Index) ByteToText(i int) (Range, error) {
	if i < 0 || i >= ix.size {
		return Range{}, fmt.Errorf("byte %d of %d: %w", i, ix.size, ErrOutOfRange)
	}
	j := sort.Search(len(ix.entries), func(k int) bool { return ix.entries[k].ByteEnd > i })
	if j == len(ix.entries) || ix.entries[j].ByteStart > i {
		return Range{}, fmt.Errorf("byte %d has no entry: %w", i, ErrOutOfRange)
	}
	return ix.entries[j].Text(), nil
}

// overlapping returns the entries whose text overlaps r, not merely
// touching it. An empty range is a caret and overlaps nothing.
func (ix *Index) overlapping(r Range) ([]Entry, error) {
	r = r.Normalize()
	if r.Start < 0 || r.End > len(ix.text) {
		return nil, fmt.Errorf("text [%d,%d) of %d: %w", r.Start, r.End, len(ix.text), ErrOutOfRange)
	}
	if r.Empty() {
		return nil, nil
	}
	j := sort.Search(len(ix.entries), func(k int) bool { return ix.entries[k].TextEnd > r.Start })
	k := j
	for k < len(ix.entries) && ix.entries[k].TextStart < r.End {
		k++
	}
	return ix.entries[j:k], nil
}

// TextToBytes lists, in ascending order, every byte whose text overlaps
// [start, end). The result is empty when the range covers only separators
// or padding.
func (ix *Index) TextToBytes(start, end int) ([]int, error) {
	hits, err := ix.overlapping(Range{start, end})
	if err != nil {
		return nil, err
	}
	var out []int
	for _, e := range hits {
		bytes := e.Bytes()
		for b := bytes.Start; b < bytes.End; b++ {
			out = append(out, b)
		}
	}
	return out, nil
}

// TextToSpan is the bounding byte span of TextToBytes.
func (ix *Index) TextToSpan(r Range) (Range, error) {
	hits, err := ix.overlapping(r)
	if err != nil || len(hits) == 0 {
		return Range{}, err
	}
	return Range{Start: hits[0].ByteStart, End: hits[len(hits)-1].ByteEnd}, nil
}

// SpanToText maps a byte span to one contiguous text range from the start
// of its first byte's span to the end of its last byte's span.
func (ix *Index) SpanToText(span Range) (Range, error) {
	span = span.Normalize()
	if span.Empty() {
		return Range{}, nil
	}
	lo, err := ix.ByteToText(span.Start)
	if err != nil {
		return Range{}, err
	}
	hi, err := ix.ByteToText(span.End - 1)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: lo.Start, End: hi.End}, nil
}
