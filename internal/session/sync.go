package session

import (
	"binviz/internal/layout"
)

// View names one of the two text panes.
type View int

const (
	HexView View = iota
	ValueView
)

func (v View) Other() View {
	if v == HexView {
		return ValueView
	}
	return HexView
}

func (v View) String() string {
	if v == HexView {
		return "hex"
	}
	return "value"
}

// latch is a single-flight guard: do runs fn unless a call is already in
// progress on the same latch.
type latch struct {
	busy bool
}

func (l *latch) do(fn func()) bool {
	if l.busy {
		return false
	}
	l.busy = true
	defer func() { l.busy = false }()
	fn()
	return true
}

// Synchronizer translates selections between the hex and value views.
// Discontiguous selections collapse to their bounding byte span.
type Synchronizer struct {
	hex    *layout.Index
	values *layout.Index
}

func NewSynchronizer(hex, values *layout.Index) *Synchronizer {
	return &Synchronizer{hex: hex, values: values}
}

func (s *Synchronizer) SetValueIndex(ix *layout.Index) {
	s.values = ix
}

// SyncFromHexSelection returns the byte span behind a hex text range. The
// span is empty when the range covers only whitespace.
func (s *Synchronizer) SyncFromHexSelection(r layout.Range) (layout.Range, error) {
	return s.hex.TextToSpan(r)
}

func (s *Synchronizer) SyncFromValueSelection(r layout.Range) (layout.Range, error) {
	return s.values.TextToSpan(r)
}

func (s *Synchronizer) ByteSpanToHexTextRange(span layout.Range) (layout.Range, error) {
	return s.hex.SpanToText(span)
}

func (s *Synchronizer) ByteSpanToValueTextRange(span layout.Range) (layout.Range, error) {
	return s.values.SpanToText(span)
}

// SpanFrom is SyncFromHexSelection or SyncFromValueSelection depending on v.
func (s *Synchronizer) SpanFrom(v View, r layout.Range) (layout.Range, error) {
	if v == HexView {
		return s.SyncFromHexSelection(r)
	}
	return s.SyncFromValueSelection(r)
}

// TextRange is ByteSpanToHexTextRange or ByteSpanToValueTextRange
// depending on v.
func (s *Synchronizer) TextRange(v View, span layout.Range) (layout.Range, error) {
	if v == HexView {
		return s.ByteSpanToHexTextRange(span)
	}
	return s.ByteSpanToValueTextRange(span)
}
