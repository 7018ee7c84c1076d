// internal/engine/scanner_test.go
package engine

import (
	"bytes"
	"testing"

	"motifhunt/internal/motif"
)

func mustCompile(t *testing.T, label, pattern string, minOcc int) *motif.Automaton {
	t.Helper()
	a, err := motif.Compile(label, pattern, minOcc, motif.StrandForward)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return a
}

func scanOne(t *testing.T, seq string, maxMM int, automata ...*motif.Automaton) (Result, bool) {
	t.Helper()
	s := New()
	for _, a := range automata {
		s.Register(a)
	}
	return s.ScanRecord("seq", []byte(seq), maxMM)
}

func TestScanScenarios(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		seq       string
		maxMM     int
		wantStart int
		wantEnd   int
		wantMM    int
	}{
		{"exact literal", "ACGT", "TTACGTTT", 0, 2, 6, 0},
		{"wildcard", "ACNT", "ACGT", 0, 0, 4, 0},
		{"one substitution", "ACGT", "ACTT", 1, 0, 4, 1},
		{"alternation", "A[CG]GT", "AGGT", 0, 0, 4, 0},
	}
	for _, tc := range tests {
		res, ok := scanOne(t, tc.seq, tc.maxMM, mustCompile(t, "m", tc.pattern, 0))
		if !ok {
			t.Fatalf("%s: no result", tc.name)
		}
		if len(res.Hits) != 1 {
			t.Fatalf("%s: got %d hits, want 1: %+v", tc.name, len(res.Hits), res.Hits)
		}
		h := res.Hits[0]
		if h.Start != tc.wantStart || h.End != tc.wantEnd || h.Mismatches != tc.wantMM {
			t.Errorf("%s: hit = {%d %d %d}, want {%d %d %d}", tc.name,
				h.Start, h.End, h.Mismatches, tc.wantStart, tc.wantEnd, tc.wantMM)
		}
		if h.Automaton == nil || h.Automaton.Label() != "m" {
			t.Errorf("%s: hit lost its automaton", tc.name)
		}
	}
}

func TestScanMismatchMarkers(t *testing.T) {
	res, ok := scanOne(t, "ACTT", 1, mustCompile(t, "m", "ACGT", 0))
	if !ok {
		t.Fatal("no result")
	}
	want := []Marker{
		{Kind: SpanStart, Offset: 0},
		{Kind: Mismatch, Offset: 2},
		{Kind: SpanEnd, Offset: 3},
	}
	if len(res.Markers) != len(want) {
		t.Fatalf("markers = %+v", res.Markers)
	}
	for i := range want {
		if res.Markers[i] != want[i] {
			t.Errorf("marker %d = %+v, want %+v", i, res.Markers[i], want[i])
		}
	}
}

func TestScanBudgetExceeded(t *testing.T) {
	if _, ok := scanOne(t, "AGTT", 1, mustCompile(t, "m", "ACGT", 0)); ok {
		t.Fatal("two mismatches should exceed a budget of one")
	}
}

func TestScanStrictRegionAborts(t *testing.T) {
	// the mismatch falls inside the exact region, so the budget is irrelevant
	if _, ok := scanOne(t, "ACTT", 3, mustCompile(t, "m", "A(CG)T", 0)); ok {
		t.Fatal("strict state mismatch should abort the attempt")
	}
	res, ok := scanOne(t, "TCGT", 1, mustCompile(t, "m", "A(CG)T", 0))
	if !ok || res.Hits[0].Mismatches != 1 {
		t.Fatalf("tolerant mismatch outside the exact region should count: %+v", res.Hits)
	}
}

func TestScanSequenceN(t *testing.T) {
	// an N in the sequence is never accepted, not even by a wildcard
	if _, ok := scanOne(t, "ANGT", 0, mustCompile(t, "m", "ANGT", 0)); ok {
		t.Fatal("sequence N matched")
	}
	res, ok := scanOne(t, "ANGT", 1, mustCompile(t, "m", "ANGT", 0))
	if !ok || res.Hits[0].Mismatches != 1 {
		t.Fatal("sequence N should count as one mismatch")
	}
}

// With no budget and only literals, a hit at o exists iff the window equals
// the motif.
func TestScanExactEquivalence(t *testing.T) {
	seq := []byte("ACGTTACGACGTACGTT")
	motifText := "ACGT"
	res, _ := scanOne(t, string(seq), 0, mustCompile(t, "m", motifText, 0))
	got := map[int]bool{}
	for _, h := range res.Hits {
		got[h.Start] = true
	}
	for o := 0; o+len(motifText) <= len(seq); o++ {
		want := bytes.Equal(seq[o:o+len(motifText)], []byte(motifText))
		if got[o] != want {
			t.Errorf("offset %d: hit=%v, window equal=%v", o, got[o], want)
		}
	}
}

func TestScanOverlappingHits(t *testing.T) {
	res, ok := scanOne(t, "AAAA", 0, mustCompile(t, "m", "AA", 0))
	if !ok || len(res.Hits) != 3 {
		t.Fatalf("want 3 overlapping hits, got %+v", res.Hits)
	}
	for i, h := range res.Hits {
		if h.Start != i {
			t.Errorf("hit %d start %d", i, h.Start)
		}
	}
}

func TestScanMotifLongerThanSequence(t *testing.T) {
	if _, ok := scanOne(t, "ACG", 5, mustCompile(t, "m", "ACGTACGT", 0)); ok {
		t.Fatal("motif longer than sequence matched")
	}
	if _, ok := scanOne(t, "", 0, mustCompile(t, "m", "A", 0)); ok {
		t.Fatal("empty sequence matched")
	}
}

func TestScanEmptyAutomaton(t *testing.T) {
	if _, ok := scanOne(t, "ACGT", 0, mustCompile(t, "e", "()", 0)); ok {
		t.Fatal("zero-state motif matched")
	}
}

func TestScanMinOccurrencesGate(t *testing.T) {
	gated := mustCompile(t, "gated", "TTT", 2) // occurs once
	kept := mustCompile(t, "kept", "ACG", 2)   // occurs twice
	res, ok := scanOne(t, "ACGTTTACG", 0, gated, kept)
	if !ok {
		t.Fatal("no result")
	}
	if len(res.Hits) != 2 {
		t.Fatalf("hits = %+v", res.Hits)
	}
	for _, h := range res.Hits {
		if h.Automaton != kept {
			t.Errorf("hit from gated motif survived: %+v", h)
		}
	}
	for _, m := range res.Markers {
		if m.Motif != 1 {
			t.Errorf("marker from gated motif survived: %+v", m)
		}
	}

	if _, ok := scanOne(t, "ACGTTTACG", 0, gated); ok {
		t.Fatal("result reported with only gated hits")
	}
}

func TestScanMarkerOrderAcrossMotifs(t *testing.T) {
	// motif 0 "AC" ends at offset 1; motif 1 "CC" mismatches at offset 1 and
	// starts at 0 ("AC" vs "CC").
	m0 := mustCompile(t, "a", "AC", 0)
	m1 := mustCompile(t, "b", "CC", 0)
	res, ok := scanOne(t, "AC", 1, m0, m1)
	if !ok {
		t.Fatal("no result")
	}
	want := []Marker{
		{Kind: SpanStart, Offset: 0, Motif: 0},
		{Kind: SpanStart, Offset: 0, Motif: 1},
		{Kind: Mismatch, Offset: 0, Motif: 1},
		{Kind: SpanEnd, Offset: 1, Motif: 0},
		{Kind: SpanEnd, Offset: 1, Motif: 1},
	}
	if len(res.Markers) != len(want) {
		t.Fatalf("markers = %+v", res.Markers)
	}
	for i := range want {
		if res.Markers[i] != want[i] {
			t.Errorf("marker %d = %+v, want %+v", i, res.Markers[i], want[i])
		}
	}
}

func TestScanCallback(t *testing.T) {
	s := New()
	s.Register(mustCompile(t, "m", "GG", 0))
	calls := 0
	cb := func(id string, seq []byte, markers []Marker, hits []Hit) {
		calls++
		if id != "r1" || string(seq) != "AGGA" || len(hits) != 1 || len(markers) != 2 {
			t.Errorf("callback got %q %q %+v %+v", id, seq, markers, hits)
		}
	}
	s.Scan("r1", []byte("AGGA"), 0, cb)
	s.Scan("r2", []byte("AAAA"), 0, cb)
	if calls != 1 {
		t.Fatalf("callback fired %d times, want 1", calls)
	}
}

func TestScanRepeatable(t *testing.T) {
	s := New()
	s.Register(mustCompile(t, "m", "A[CG]T", 0))
	first, _ := s.ScanRecord("x", []byte("ACTAGTAAT"), 1)
	second, _ := s.ScanRecord("x", []byte("ACTAGTAAT"), 1)
	if len(first.Hits) != len(second.Hits) || len(first.Markers) != len(second.Markers) {
		t.Fatalf("rescanning changed the result: %d/%d hits", len(first.Hits), len(second.Hits))
	}
}

type countingObserver struct{ got []Stats }

func (c *countingObserver) ObserveScan(s Stats) { c.got = append(c.got, s) }

func TestScanObserver(t *testing.T) {
	s := New()
	obs := &countingObserver{}
	s.SetObserver(obs)
	s.Register(mustCompile(t, "once", "TTT", 2))
	s.Register(mustCompile(t, "twice", "ACG", 0))
	s.ScanRecord("r", []byte("ACGTTTACG"), 0)
	if len(obs.got) != 1 {
		t.Fatalf("observer called %d times", len(obs.got))
	}
	st := obs.got[0]
	if st.Attempts != 14 || st.Hits != 2 || st.Gated != 1 || st.Length != 9 {
		t.Fatalf("stats = %+v", st)
	}
}
