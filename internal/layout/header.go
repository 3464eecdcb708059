package layout

import (
	"fmt"
	"strings"

	"binviz/internal/buffer"
)

// HexHeader renders a column header aligned with the hex slots: decimal
// column numbers when hex is false, two-digit hex column numbers otherwise.
func HexHeader(decWidth int, hex bool) string {
	prefix := len(HexPrefix(0, decWidth))
	line := []byte(strings.Repeat(" ", prefix+HexAreaWidth()))
	for i := 0; i < buffer.RowWidth; i++ {
		label := fmt.Sprintf("%-2d", i)
		if hex {
			label = fmt.Sprintf("%02X", i)
		}
		copy(line[prefix+hexSlotOffset(i):], label)
	}
	return string(line)
}
