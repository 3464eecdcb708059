package viewer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"binviz/internal/buffer"
	"binviz/internal/config"
	"binviz/internal/layout"
	"binviz/internal/session"
)

// Lines outside the two panes: title, two header lines, pane borders,
// inspector box and help line.
const (
	chromeLines    = 6
	inspectorLines = 14
	minPaneHeight  = 3
)

// pane is the terminal side of one view. It implements session.Pane.
type pane struct {
	vp       viewport.Model
	sel      layout.Range
	selected bool
}

func (p *pane) SetSelection(r layout.Range) {
	p.sel = r
	p.selected = !r.Empty()
}

func (p *pane) ClearSelection() {
	p.sel = layout.Range{}
	p.selected = false
}

func (p *pane) ScrollTo(row int) {
	p.vp.SetYOffset(row)
}

type Model struct {
	session *session.Session
	styles  *config.Styles
	keys    KeyMap
	panes   [2]*pane
	focus   session.View

	cursor    int
	anchor    int
	selecting bool

	width  int
	height int

	statusMsg string
	log       *logrus.Entry
}

func NewModel(s *session.Session, cfg *config.Config) *Model {
	m := &Model{
		session: s,
		styles:  config.NewStyles(&cfg.Theme),
		keys:    Keys,
		focus:   session.HexView,
		log:     logrus.WithField("component", "viewer"),
	}
	for _, v := range []session.View{session.HexView, session.ValueView} {
		p := &pane{vp: viewport.New(0, 0)}
		m.panes[v] = p
		s.Attach(v, p)
	}
	if i, ok := s.HighlightIndex(); ok {
		m.cursor = i
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	mode := m.session.Mode()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		m.focus = m.focus.Other()
	case key.Matches(msg, m.keys.Left):
		m.move(-m.step(), false)
	case key.Matches(msg, m.keys.Right):
		m.move(m.step(), false)
	case key.Matches(msg, m.keys.Up):
		m.move(-buffer.RowWidth, false)
	case key.Matches(msg, m.keys.Down):
		m.move(buffer.RowWidth, false)
	case key.Matches(msg, m.keys.SelectLeft):
		m.move(-m.step(), true)
	case key.Matches(msg, m.keys.SelectRight):
		m.move(m.step(), true)
	case key.Matches(msg, m.keys.SelectUp):
		m.move(-buffer.RowWidth, true)
	case key.Matches(msg, m.keys.SelectDown):
		m.move(buffer.RowWidth, true)
	case key.Matches(msg, m.keys.ClearSel):
		m.clearSelection()
	case key.Matches(msg, m.keys.PageUp):
		m.page(-1)
	case key.Matches(msg, m.keys.PageDown):
		m.page(1)
	case key.Matches(msg, m.keys.NextMode):
		m.session.OnModeChanged(mode.Next())
		m.resize()
	case key.Matches(msg, m.keys.PrevMode):
		m.session.OnModeChanged(mode.Prev())
		m.resize()
	case key.Matches(msg, m.keys.Endian):
		m.session.OnEndiannessChanged(m.session.Endianness().Toggle())
	case key.Matches(msg, m.keys.Reset):
		m.session.OnResetHighlight()
		if i, ok := m.session.HighlightIndex(); ok {
			m.cursor = i
			m.ensureVisible()
		} else {
			m.statusMsg = "Original index is outside the file"
		}
	}

	m.refresh()
	return m, nil
}

// step is the cursor movement for one element in the focused pane.
func (m *Model) step() int {
	if m.focus == session.ValueView {
		return m.session.Mode().Width()
	}
	return 1
}

func (m *Model) move(delta int, extend bool) {
	size := m.session.Buffer().Size()
	if size == 0 {
		return
	}

	if extend && !m.selecting {
		m.anchor = m.cursor
		m.selecting = true
	} else if !extend && m.selecting {
		m.clearSelection()
	}

	pos := m.cursor + delta
	if pos < 0 {
		pos = 0
	}
	if pos > size-1 {
		pos = size - 1
	}
	m.cursor = pos
	if err := m.session.MoveHighlight(pos); err != nil {
		m.log.Errorf("move highlight: %v", err)
	}

	if extend {
		m.selectSpan()
	}
	m.ensureVisible()
}

// selectSpan selects anchor..cursor in the focused pane and lets the
// session mirror it onto the other pane.
func (m *Model) selectSpan() {
	lo, hi := m.anchor, m.cursor
	if lo > hi {
		lo, hi = hi, lo
	}
	span := layout.Range{Start: lo, End: hi + 1}

	r, err := m.session.Synchronizer().TextRange(m.focus, span)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return
	}
	m.panes[m.focus].SetSelection(r)
	if _, err := m.session.OnSelectionChanged(m.focus, r); err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
	}
}

func (m *Model) clearSelection() {
	m.selecting = false
	m.panes[m.focus].ClearSelection()
	if _, err := m.session.OnSelectionChanged(m.focus, layout.Range{}); err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
	}
}

func (m *Model) page(dir int) {
	vp := &m.panes[m.focus].vp
	vp.SetYOffset(vp.YOffset + dir*vp.Height)
	m.session.OnScroll(m.focus, vp.YOffset)
}

// ensureVisible scrolls the focused pane so the cursor row is shown and
// mirrors the offset onto the other pane.
func (m *Model) ensureVisible() {
	vp := &m.panes[m.focus].vp
	row := m.cursor / buffer.RowWidth

	if row < vp.YOffset {
		vp.SetYOffset(row)
	} else if vp.Height > 0 && row >= vp.YOffset+vp.Height {
		vp.SetYOffset(row - vp.Height + 1)
	}
	m.session.OnScroll(m.focus, vp.YOffset)
}

func (m *Model) paneHeight() int {
	h := m.height - chromeLines - inspectorLines
	if h < minPaneHeight {
		h = minPaneHeight
	}
	return h
}

func (m *Model) resize() {
	decWidth := layout.DecimalWidth(m.session.Buffer().Size())
	widths := [2]int{
		session.HexView:   layout.HexRowWidth(decWidth),
		session.ValueView: layout.ValueRowWidth(m.session.Mode()),
	}
	for v, p := range m.panes {
		p.vp.Width = widths[v]
		p.vp.Height = m.paneHeight()
	}
	m.refresh()
	m.panes[m.focus.Other()].ScrollTo(m.panes[m.focus].vp.YOffset)
}

// refresh repaints both panes with the current selection and highlight.
func (m *Model) refresh() {
	for _, v := range []session.View{session.HexView, session.ValueView} {
		p := m.panes[v]
		var marks []mark
		if p.selected {
			marks = append(marks, mark{r: p.sel, style: m.styles.Selection})
		}
		if r, ok := m.session.HighlightTextRange(v); ok {
			marks = append(marks, mark{r: r, style: m.styles.Highlight})
		}
		p.vp.SetContent(paint(m.session.Index(v).Text(), marks))
	}
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	decWidth := layout.DecimalWidth(m.session.Buffer().Size())
	hexBody := m.styles.Header.Render(layout.HexHeader(decWidth, false)) + "\n" +
		m.styles.Header.Render(layout.HexHeader(decWidth, true)) + "\n" +
		m.panes[session.HexView].vp.View()
	valueBody := m.styles.Header.Render(m.session.Mode().String()) + "\n\n" +
		m.panes[session.ValueView].vp.View()

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.paneStyle(session.HexView).Render(hexBody),
		" ",
		m.paneStyle(session.ValueView).Render(valueBody),
	))
	b.WriteString("\n")
	b.WriteString(m.styles.Inspector.Render(m.renderInspector()))
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.statusMsg)
	}
	return b.String()
}

func (m *Model) paneStyle(v session.View) lipgloss.Style {
	if v == m.focus {
		return m.styles.ActivePane
	}
	return m.styles.Pane
}

func (m *Model) renderTitle() string {
	buf := m.session.Buffer()
	name := "[memory]"
	if buf.Filename() != "" {
		name = filepath.Base(buf.Filename())
	}
	info := fmt.Sprintf(" %d bytes | sha256 %.12s | %s | %s | cursor %08X (%d)",
		buf.Size(), buf.Checksum(), m.session.Mode(), m.session.Endianness(), m.cursor, m.cursor)
	if b, ok := buf.GetByte(m.cursor); ok {
		info += fmt.Sprintf(" = 0x%02X", b)
	}
	return m.styles.Title.Render(name) + m.styles.Status.Render(info)
}

func (m *Model) renderInspector() string {
	var b strings.Builder
	b.WriteString(m.styles.DecoderLabel.Render("Endianness: "))
	b.WriteString(m.styles.DecoderValue.Render(m.session.Endianness().String()))
	b.WriteString("\n")

	report := m.session.Report()
	if report.Empty() {
		b.WriteString(m.session.InspectorText())
		return b.String()
	}
	for i, line := range report.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.DecoderLabel.Render(line.Label + ": "))
		b.WriteString(m.styles.DecoderValue.Render(line.Value))
	}
	return b.String()
}

func (m *Model) renderHelp() string {
	items := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		items = append(items, h.Key+" "+h.Desc)
	}
	return m.styles.Status.Render(strings.Join(items, " | "))
}
