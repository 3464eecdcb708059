package decode

import (
	"errors"
	"testing"
)

func TestDecodeWidths(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		mode  Mode
		order Endianness
		want  int64
	}{
		{"int8 negative", []byte{0x80}, ModeInt8, LittleEndian, -128},
		{"uint8", []byte{0x80}, ModeUint8, LittleEndian, 128},
		{"int16 le", []byte{0xFE, 0xFF}, ModeInt16, LittleEndian, -2},
		{"int16 be", []byte{0xFE, 0xFF}, ModeInt16, BigEndian, -257},
		{"uint16 le", []byte{0xFE, 0xFF}, ModeUint16, LittleEndian, 65534},
		{"int32 le", []byte{0x01, 0x00, 0x00, 0x00}, ModeInt32, LittleEndian, 1},
		{"int32 be", []byte{0x01, 0x00, 0x00, 0x00}, ModeInt32, BigEndian, 16777216},
		{"int32 min", []byte{0x00, 0x00, 0x00, 0x80}, ModeInt32, LittleEndian, -2147483648},
		{"uint32 max", []byte{0xFF, 0xFF, 0xFF, 0xFF}, ModeUint32, BigEndian, 4294967295},
		{"extra bytes ignored", []byte{0x02, 0x00, 0xAA}, ModeUint16, LittleEndian, 2},
	}

	for _, tt := range tests {
		got, err := Decode(tt.data, tt.mode, tt.order)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestDecodeIsPure(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78}
	first, _ := Decode(data, ModeInt32, BigEndian)
	for i := 0; i < 5; i++ {
		got, _ := Decode(data, ModeInt32, BigEndian)
		if got != first {
			t.Fatalf("expected %d on every call, got %d", first, got)
		}
	}
	if data[0] != 0x12 {
		t.Error("decode must not modify its input")
	}
}

func TestDecodeInsufficientBytes(t *testing.T) {
	_, err := Decode([]byte{0x01, 0x02}, ModeInt32, LittleEndian)
	if !errors.Is(err, ErrInsufficientBytes) {
		t.Errorf("expected ErrInsufficientBytes, got %v", err)
	}
	_, err = Decode(nil, ModeUint8, LittleEndian)
	if !errors.Is(err, ErrInsufficientBytes) {
		t.Errorf("expected ErrInsufficientBytes for empty input, got %v", err)
	}
}

func TestDecodeASCII(t *testing.T) {
	if _, err := Decode([]byte{0x41}, ModeASCII, LittleEndian); !errors.Is(err, ErrNotNumeric) {
		t.Errorf("expected ErrNotNumeric, got %v", err)
	}
}

func TestField(t *testing.T) {
	if got := Field(-128, ModeInt8); got != "-128" {
		t.Errorf("expected %q, got %q", "-128", got)
	}
	if got := Field(1, ModeInt32); got != "1          " {
		t.Errorf("expected 1 padded to 11, got %q", got)
	}
	if got := Field(4294967295, ModeUint32); len(got) != 10 {
		t.Errorf("expected width 10, got %q", got)
	}
	if got := Blank(ModeUint16); got != "     " {
		t.Errorf("expected 5 blanks, got %q", got)
	}
}

func TestFieldFitsExtremes(t *testing.T) {
	extremes := map[Mode][]int64{
		ModeInt8:   {-128, 127},
		ModeInt16:  {-32768, 32767},
		ModeInt32:  {-2147483648, 2147483647},
		ModeUint8:  {0, 255},
		ModeUint16: {0, 65535},
		ModeUint32: {0, 4294967295},
	}
	for mode, values := range extremes {
		for _, v := range values {
			if got := Field(v, mode); len(got) != mode.FieldWidth() {
				t.Errorf("%s: %d rendered as %q, expected width %d", mode, v, got, mode.FieldWidth())
			}
		}
	}
}

func TestModeTable(t *testing.T) {
	widths := []int{1, 1, 2, 4, 1, 2, 4}
	fields := []int{1, 4, 6, 11, 3, 5, 10}
	for i, m := range Modes {
		if m.Width() != widths[i] {
			t.Errorf("%s: expected width %d, got %d", m, widths[i], m.Width())
		}
		if m.FieldWidth() != fields[i] {
			t.Errorf("%s: expected field %d, got %d", m, fields[i], m.FieldWidth())
		}
	}
	if ModeUint32.Next() != ModeASCII {
		t.Error("expected Next to wrap around")
	}
	if ModeASCII.Prev() != ModeUint32 {
		t.Error("expected Prev to wrap around")
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.Key())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q): expected %s, got %s (%v)", m.Key(), m, got, err)
		}
		got, err = ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q): expected %s, got %s (%v)", m.String(), m, got, err)
		}
	}
	if _, err := ParseMode("int64"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestEndianness(t *testing.T) {
	e, err := ParseEndianness("BIG")
	if err != nil || e != BigEndian {
		t.Errorf("expected BigEndian, got %v (%v)", e, err)
	}
	if e.Toggle() != LittleEndian {
		t.Error("expected toggle to LittleEndian")
	}
	if _, err := ParseEndianness("middle"); err == nil {
		t.Error("expected error for unknown endianness")
	}
}

func TestASCII(t *testing.T) {
	got := ASCII([]byte{'H', 'i', 0x00, 0x7F, 0x20, 0x7E})
	if got != "Hi.. ~" {
		t.Errorf("expected %q, got %q", "Hi.. ~", got)
	}
}
