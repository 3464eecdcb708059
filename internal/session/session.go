// Package session holds the state of one viewing session and turns
// presentation events into updated text, selections and highlights.
package session

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"binviz/internal/buffer"
	"binviz/internal/decode"
	"binviz/internal/inspect"
	"binviz/internal/layout"
)

// Pane is the presentation side of one view. The session calls it to
// mirror selections and scroll offsets coming from the other view.
type Pane interface {
	SetSelection(r layout.Range)
	ClearSelection()
	ScrollTo(row int)
}

type Options struct {
	Mode       decode.Mode
	Endianness decode.Endianness
	// Highlight is the byte to emphasise initially. Values outside the
	// buffer mean no highlight.
	Highlight int
}

type valueKey struct {
	mode   decode.Mode
	endian decode.Endianness
}

// Session is driven from a single goroutine and is not safe for concurrent
// use.
type Session struct {
	buf    *buffer.Buffer
	mode   decode.Mode
	endian decode.Endianness

	hex    *layout.Index
	values map[valueKey]*layout.Index
	sync   *Synchronizer
	panes  [2]Pane

	selection layout.Range
	report    inspect.Report

	highlight int
	original  int

	scrollRow int

	selecting latch
	scrolling latch

	log *logrus.Entry
}

func New(buf *buffer.Buffer, opts Options) *Session {
	s := &Session{
		buf:      buf,
		mode:     opts.Mode,
		endian:   opts.Endianness,
		hex:      layout.BuildHex(buf.Data()),
		values:   make(map[valueKey]*layout.Index),
		original: opts.Highlight,
		log:      logrus.WithField("component", "session"),
	}
	s.sync = NewSynchronizer(s.hex, s.valueIndex())
	s.highlight = s.resolve(opts.Highlight)
	if s.highlight < 0 {
		s.log.Warnf("highlight index %d outside %d-byte buffer, no highlight", opts.Highlight, buf.Size())
	}
	s.log.Debugf("session started: %d bytes, mode=%s, %s", buf.Size(), s.mode, s.endian)
	return s
}

func (s *Session) resolve(i int) int {
	if i < 0 || i >= s.buf.Size() {
		return -1
	}
	return i
}

// valueIndex returns the cached value index for the current mode and byte
// order, building it on first use.
func (s *Session) valueIndex() *layout.Index {
	key := valueKey{s.mode, s.endian}
	ix, ok := s.values[key]
	if !ok {
		ix = layout.BuildValues(s.buf.Data(), s.mode, s.endian)
		s.values[key] = ix
		s.log.Debugf("built value index for %s/%s: %d entries", s.mode, s.endian, len(ix.Entries()))
	}
	return ix
}

// Attach registers the pane that displays v.
func (s *Session) Attach(v View, p Pane) {
	s.panes[v] = p
}

func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) Mode() decode.Mode { return s.mode }

func (s *Session) Endianness() decode.Endianness { return s.endian }

func (s *Session) Synchronizer() *Synchronizer { return s.sync }

func (s *Session) Index(v View) *layout.Index {
	if v == HexView {
		return s.hex
	}
	return s.valueIndex()
}

func (s *Session) HexText() string { return s.hex.Text() }

func (s *Session) ValueText() string { return s.valueIndex().Text() }

func (s *Session) InspectorText() string { return s.report.String() }

func (s *Session) Report() inspect.Report { return s.report }

// Selection is the selected byte span, empty when nothing is selected.
func (s *Session) Selection() layout.Range { return s.selection }

// SelectionTextRange maps the current selection into v's text.
func (s *Session) SelectionTextRange(v View) (layout.Range, bool) {
	if s.selection.Empty() {
		return layout.Range{}, false
	}
	r, err := s.sync.TextRange(v, s.selection)
	if err != nil {
		return layout.Range{}, false
	}
	return r, true
}

// HighlightIndex reports the highlighted byte, if any.
func (s *Session) HighlightIndex() (int, bool) {
	return s.highlight, s.highlight >= 0
}

func (s *Session) HighlightTextRange(v View) (layout.Range, bool) {
	if s.highlight < 0 {
		return layout.Range{}, false
	}
	r, err := s.Index(v).ByteToText(s.highlight)
	if err != nil {
		return layout.Range{}, false
	}
	return r, true
}

func (s *Session) ScrollRow() int { return s.scrollRow }

func (s *Session) OnModeChanged(m decode.Mode) {
	if m == s.mode {
		return
	}
	s.log.Debugf("mode %s -> %s", s.mode, m)
	s.mode = m
	s.refreshValues()
}

// OnEndiannessChanged rebuilds the value view and re-runs the inspector
// for the active selection.
func (s *Session) OnEndiannessChanged(e decode.Endianness) {
	if e == s.endian {
		return
	}
	s.log.Debugf("endianness %s -> %s", s.endian, e)
	s.endian = e
	s.refreshValues()
	if !s.selection.Empty() {
		s.report = inspect.Inspect(s.selectedBytes(), s.endian)
	}
}

func (s *Session) refreshValues() {
	s.sync.SetValueIndex(s.valueIndex())
	if s.selection.Empty() {
		return
	}
	s.selecting.do(func() {
		r, err := s.sync.ByteSpanToValueTextRange(s.selection)
		if err != nil {
			s.log.Errorf("remap selection %v: %v", s.selection, err)
			return
		}
		if p := s.panes[ValueView]; p != nil {
			p.SetSelection(r)
		}
	})
}

func (s *Session) selectedBytes() []byte {
	return s.buf.GetBytes(s.selection.Start, s.selection.Len())
}

// OnSelectionChanged handles a selection made in v and mirrors it onto the
// other view. It returns the resulting byte span. Calls made while a
// previous call is still applying its result are ignored.
func (s *Session) OnSelectionChanged(v View, r layout.Range) (layout.Range, error) {
	var err error
	ran := s.selecting.do(func() {
		var span layout.Range
		span, err = s.sync.SpanFrom(v, r)
		if err != nil || span.Empty() {
			s.clearSelection(v.Other())
			return
		}

		var dst layout.Range
		dst, err = s.sync.TextRange(v.Other(), span)
		if err != nil {
			s.clearSelection(v.Other())
			return
		}

		s.selection = span
		s.report = inspect.Inspect(s.selectedBytes(), s.endian)
		if p := s.panes[v.Other()]; p != nil {
			p.SetSelection(dst)
		}
		s.log.Debugf("%s selection %v -> bytes %v -> %s %v", v, r, span, v.Other(), dst)
	})
	if !ran {
		s.log.Debugf("ignored re-entrant %s selection %v", v, r)
		return s.selection, nil
	}
	if err != nil {
		return layout.Range{}, fmt.Errorf("%s selection %v: %w", v, r, err)
	}
	return s.selection, nil
}

func (s *Session) clearSelection(v View) {
	s.selection = layout.Range{}
	s.report = inspect.Report{}
	if p := s.panes[v]; p != nil {
		p.ClearSelection()
	}
}

// OnScroll records the first visible row of v and mirrors it onto the
// other view. Both views have one line per buffer row, so the offset is
// copied as is after clamping. It returns the clamped row.
func (s *Session) OnScroll(v View, row int) int {
	if last := s.buf.Rows() - 1; row > last {
		row = last
	}
	if row < 0 {
		row = 0
	}
	s.scrolling.do(func() {
		s.scrollRow = row
		if p := s.panes[v.Other()]; p != nil {
			p.ScrollTo(row)
		}
	})
	return row
}

// OnResetHighlight returns the highlight to the index given at startup.
func (s *Session) OnResetHighlight() {
	s.highlight = s.resolve(s.original)
}

// MoveHighlight emphasises byte i instead of the current highlight.
func (s *Session) MoveHighlight(i int) error {
	if s.resolve(i) < 0 {
		return fmt.Errorf("highlight %d of %d: %w", i, s.buf.Size(), layout.ErrOutOfRange)
	}
	s.highlight = i
	return nil
}
