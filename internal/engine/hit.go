// internal/engine/hit.go
package engine

import (
	"sort"

	"motifhunt/internal/motif"
)

// Hit is one successful attempt. Start and End are half-open offsets into the
// sequence, so seq[Start:End] is the matched window.
type Hit struct {
	Start      int
	End        int
	Mismatches int
	Automaton  *motif.Automaton
}

func (h Hit) Length() int { return h.End - h.Start }

// MarkerKind orders markers sharing an offset: spans open before any span
// closes, and spans close before mismatches are marked.
type MarkerKind uint8

const (
	SpanStart MarkerKind = iota
	SpanEnd
	Mismatch
)

func (k MarkerKind) String() string {
	switch k {
	case SpanStart:
		return "start"
	case SpanEnd:
		return "end"
	case Mismatch:
		return "mismatch"
	}
	return "unknown"
}

// Marker annotates one sequence offset. A SpanEnd marker sits on the last
// symbol of its span. Motif is the registration index of the automaton that
// produced it.
type Marker struct {
	Kind   MarkerKind
	Offset int
	Motif  int
}

// LessMarker is the rendering order: offset, then kind.
func LessMarker(a, b Marker) bool {
	if a.Offset != b.Offset {
		return a.Offset < b.Offset
	}
	return a.Kind < b.Kind
}

// SortMarkers orders ms in place; markers with equal keys keep their order.
func SortMarkers(ms []Marker) {
	sort.SliceStable(ms, func(i, j int) bool { return LessMarker(ms[i], ms[j]) })
}

// Result is everything reported for one sequence record. Desc and
// SourceFile are filled by the pipeline.
type Result struct {
	SequenceID string
	Desc       string
	SourceFile string
	Sequence   []byte
	Markers    []Marker
	Hits       []Hit
}

// Name is the label used by reports: the full header when known.
func (r Result) Name() string {
	if r.Desc != "" {
		return r.Desc
	}
	return r.SequenceID
}
