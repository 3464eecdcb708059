// Package inspect renders a selected byte span in every supported
// representation at once.
package inspect

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"binviz/internal/decode"
)

// NoSelection is the text shown when nothing is selected.
const NoSelection = "No bytes selected."

type Representation struct {
	Label string
	Value string
}

// Report is the ordered list of representations for one selection. The
// zero Report means "no selection".
type Report struct {
	Length int
	Lines  []Representation
}

func (r Report) Empty() bool {
	return r.Length == 0
}

func (r Report) String() string {
	if r.Empty() {
		return NoSelection
	}
	var b strings.Builder
	for i, line := range r.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line.Label)
		b.WriteString(": ")
		b.WriteString(line.Value)
	}
	return b.String()
}

// Get returns the value of the line labeled label.
func (r Report) Get(label string) (string, bool) {
	for _, line := range r.Lines {
		if line.Label == label {
			return line.Value, true
		}
	}
	return "", false
}

var integers = []struct {
	mode  decode.Mode
	label string
}{
	{decode.ModeInt8, "Signed 8-bit Int"},
	{decode.ModeUint8, "Unsigned 8-bit Int"},
	{decode.ModeInt16, "Signed 16-bit Int"},
	{decode.ModeUint16, "Unsigned 16-bit Int"},
	{decode.ModeInt32, "Signed 32-bit Int"},
	{decode.ModeUint32, "Unsigned 32-bit Int"},
}

// Inspect decodes the head of sel. Numeric lines only appear when sel has
// enough bytes for them; bytes past the eighth are counted, not decoded.
func Inspect(sel []byte, e decode.Endianness) Report {
	if len(sel) == 0 {
		return Report{}
	}

	r := Report{Length: len(sel)}
	add := func(label, value string) {
		r.Lines = append(r.Lines, Representation{Label: label, Value: value})
	}

	add("Hex", hexBytes(sel, " "))
	add("ASCII", decode.ASCII(sel))

	for _, in := range integers {
		v, err := decode.Decode(sel, in.mode, e)
		if err != nil {
			continue
		}
		add(in.label, fmt.Sprintf("%d (%s)", v, hexLiteral(sel[:in.mode.Width()])))
	}

	order := e.ByteOrder()
	if len(sel) >= 4 {
		// shown as the exact double it widens to
		f := float64(math.Float32frombits(order.Uint32(sel[:4])))
		add("Float (32-bit)", fmt.Sprintf("%s (%s)", strconv.FormatFloat(f, 'g', -1, 64), hexLiteral(sel[:4])))
	}
	if len(sel) >= 8 {
		f := math.Float64frombits(order.Uint64(sel[:8]))
		add("Double (64-bit)", fmt.Sprintf("%s (%s)", strconv.FormatFloat(f, 'g', -1, 64), hexLiteral(sel[:8])))
	}
	if len(sel) > 8 {
		add("Undecoded", fmt.Sprintf("%d bytes", len(sel)-8))
	}
	return r
}

func hexBytes(b []byte, sep string) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, sep)
}

// hexLiteral shows the consumed bytes in file order, e.g. 0x0102.
func hexLiteral(b []byte) string {
	return "0x" + hexBytes(b, "")
}
