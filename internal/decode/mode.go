package decode

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Mode selects how the value view interprets bytes.
type Mode int

const (
	ModeASCII Mode = iota
	ModeInt8
	ModeInt16
	ModeInt32
	ModeUint8
	ModeUint16
	ModeUint32
)

// Modes lists every mode in dropdown order.
var Modes = []Mode{ModeASCII, ModeInt8, ModeInt16, ModeInt32, ModeUint8, ModeUint16, ModeUint32}

type modeInfo struct {
	label  string
	key    string
	width  int
	field  int
	signed bool
}

// Field widths fit the widest decimal value of each type, sign included.
var modes = [...]modeInfo{
	ModeASCII:  {"ASCII", "ascii", 1, 1, false},
	ModeInt8:   {"8-bit int", "int8", 1, 4, true},
	ModeInt16:  {"16-bit int", "int16", 2, 6, true},
	ModeInt32:  {"32-bit int", "int32", 4, 11, true},
	ModeUint8:  {"Unsigned 8-bit int", "uint8", 1, 3, false},
	ModeUint16: {"Unsigned 16-bit int", "uint16", 2, 5, false},
	ModeUint32: {"Unsigned 32-bit int", "uint32", 4, 10, false},
}

func (m Mode) valid() bool {
	return m >= ModeASCII && m <= ModeUint32
}

func (m Mode) info() modeInfo {
	if !m.valid() {
		return modes[ModeASCII]
	}
	return modes[m]
}

// Width is the number of bytes one element consumes.
func (m Mode) Width() int { return m.info().width }

// FieldWidth is the number of text columns one element occupies.
func (m Mode) FieldWidth() int { return m.info().field }

func (m Mode) Signed() bool { return m.info().signed }

func (m Mode) String() string { return m.info().label }

// Key is the config file spelling of the mode.
func (m Mode) Key() string { return m.info().key }

func (m Mode) Next() Mode {
	return Mode((int(m) + 1) % len(modes))
}

func (m Mode) Prev() Mode {
	return Mode((int(m) + len(modes) - 1) % len(modes))
}

// ParseMode accepts the config key ("uint16") or the display label
// ("Unsigned 16-bit int"), case-insensitively.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	for i, info := range modes {
		if strings.EqualFold(s, info.key) || strings.EqualFold(s, info.label) {
			return Mode(i), nil
		}
	}
	return ModeASCII, fmt.Errorf("unknown render mode %q", s)
}

type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (e Endianness) Toggle() Endianness {
	if e == BigEndian {
		return LittleEndian
	}
	return BigEndian
}

func (e Endianness) String() string {
	if e == BigEndian {
		return "Big Endian"
	}
	return "Little Endian"
}

func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le", "little endian":
		return LittleEndian, nil
	case "big", "be", "big endian":
		return BigEndian, nil
	}
	return LittleEndian, fmt.Errorf("unknown endianness %q", s)
}
