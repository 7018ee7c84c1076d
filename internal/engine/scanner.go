// internal/engine/scanner.go
package engine

import "motifhunt/internal/motif"

// ResultFunc receives the markers and hits of a record with at least one
// surviving hit. The slices are owned by the callee.
type ResultFunc func(sequenceID string, seq []byte, markers []Marker, hits []Hit)

// Stats summarizes one record's scan for an Observer.
type Stats struct {
	SequenceID string
	Length     int
	Attempts   int // start offsets tried, all motifs
	Hits       int // hits kept after gating
	Gated      int // hits dropped by the minimum-occurrence gate
}

// Observer is notified once per scanned record.
type Observer interface {
	ObserveScan(Stats)
}

// Scanner holds the registered automata in registration order.
type Scanner struct {
	automata []*motif.Automaton
	obs      Observer
}

func New() *Scanner { return &Scanner{} }

// Register appends a; its position becomes the Marker.Motif index.
func (s *Scanner) Register(a *motif.Automaton) {
	s.automata = append(s.automata, a)
}

// Automata returns the registry in registration order.
func (s *Scanner) Automata() []*motif.Automaton {
	return append([]*motif.Automaton(nil), s.automata...)
}

func (s *Scanner) SetObserver(o Observer) { s.obs = o }

// Scan runs every registered automaton over seq and calls onResult if at
// least one hit survives. Records without hits produce no call.
func (s *Scanner) Scan(sequenceID string, seq []byte, maxMismatches int, onResult ResultFunc) {
	res, ok := s.ScanRecord(sequenceID, seq, maxMismatches)
	if ok && onResult != nil {
		onResult(res.SequenceID, res.Sequence, res.Markers, res.Hits)
	}
}

// ScanRecord is Scan returning the result as a value; ok is false when no hit
// survived.
func (s *Scanner) ScanRecord(sequenceID string, seq []byte, maxMismatches int) (Result, bool) {
	if maxMismatches < 0 {
		maxMismatches = 0
	}
	st := Stats{SequenceID: sequenceID, Length: len(seq)}
	var (
		hits    []Hit
		markers []Marker
		scratch []Marker
	)

	for idx, a := range s.automata {
		n := a.Size()
		// A motif longer than the record cannot match; checking here keeps
		// len(seq)-n from going negative below.
		if n == 0 || n > len(seq) {
			continue
		}
		var (
			aHits    []Hit
			aMarkers []Marker
		)
		last := len(seq) - n
		for off := 0; off <= last; off++ {
			st.Attempts++
			var (
				h  Hit
				ok bool
			)
			h, scratch, ok = attempt(a, seq, off, maxMismatches, idx, scratch[:0])
			if !ok {
				continue
			}
			aMarkers = append(aMarkers,
				Marker{Kind: SpanStart, Offset: h.Start, Motif: idx},
				Marker{Kind: SpanEnd, Offset: h.End - 1, Motif: idx},
			)
			aMarkers = append(aMarkers, scratch...)
			aHits = append(aHits, h)
		}
		if len(aHits) < a.MinOccurrences() {
			st.Gated += len(aHits)
			continue
		}
		hits = append(hits, aHits...)
		markers = append(markers, aMarkers...)
	}
	st.Hits = len(hits)
	if s.obs != nil {
		s.obs.ObserveScan(st)
	}

	if len(hits) == 0 {
		return Result{}, false
	}
	SortMarkers(markers)
	return Result{SequenceID: sequenceID, Sequence: seq, Markers: markers, Hits: hits}, true
}

// attempt walks a from seq[start]. Mismatch markers are appended to mm, which
// the caller reuses between attempts; they are only meaningful when ok.
func attempt(a *motif.Automaton, seq []byte, start, maxMismatches, idx int, mm []Marker) (Hit, []Marker, bool) {
	cur := a.Cursor()
	cur.Restart()
	count := 0
	for pos := start; pos < len(seq); pos++ {
		st, ok := cur.Advance()
		if !ok {
			// automaton ran out without reaching a terminal state
			return Hit{}, mm, false
		}
		if !st.Contains(seq[pos]) {
			if !st.Tolerant {
				return Hit{}, mm, false
			}
			mm = append(mm, Marker{Kind: Mismatch, Offset: pos, Motif: idx})
			count++
			if count > maxMismatches {
				return Hit{}, mm, false
			}
		}
		if st.Terminal {
			return Hit{Start: start, End: pos + 1, Mismatches: count, Automaton: a}, mm, true
		}
	}
	return Hit{}, mm, false
}
