package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"binviz/internal/layout"
)

type mark struct {
	r     layout.Range
	style lipgloss.Style
}

// paint styles the parts of text covered by marks. Later marks win where
// marks overlap. Lines no mark touches are copied unchanged.
func paint(text string, marks []mark) string {
	if len(marks) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	base := 0
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		lineRange := layout.Range{Start: base, End: base + len(line)}
		if touches(lineRange, marks) {
			paintLine(&b, line, base, marks)
		} else {
			b.WriteString(line)
		}
		base += len(line) + 1
	}
	return b.String()
}

func touches(r layout.Range, marks []mark) bool {
	for _, m := range marks {
		if m.r.End > r.Start && m.r.Start < r.End {
			return true
		}
	}
	return false
}

func markAt(pos int, marks []mark) int {
	found := -1
	for i, m := range marks {
		if m.r.Contains(pos) {
			found = i
		}
	}
	return found
}

func paintLine(b *strings.Builder, line string, base int, marks []mark) {
	pos := 0
	for pos < len(line) {
		idx := markAt(base+pos, marks)
		end := pos + 1
		for end < len(line) && markAt(base+end, marks) == idx {
			end++
		}
		if idx < 0 {
			b.WriteString(line[pos:end])
		} else {
			b.WriteString(marks[idx].style.Render(line[pos:end]))
		}
		pos = end
	}
}
