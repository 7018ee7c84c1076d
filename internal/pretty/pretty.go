// Package pretty draws ASCII alignment blocks for hits: the motif, a bar
// track, and the matched site on the plus strand.
package pretty

import (
	"fmt"
	"strings"

	"motifhunt/internal/engine"
	"motifhunt/internal/motif"
)

// Options control the ASCII rendering.
type Options struct {
	ExactGlyph   string // single-base position matched; default "|"
	PartialGlyph string // wildcard or group position matched; default "¦"

	// Draw a caret track under the site marking exact-region positions.
	ShowCaret  bool
	CaretGlyph string // default "^"
}

var DefaultOptions = Options{
	ExactGlyph:   "|",
	PartialGlyph: "¦",
	ShowCaret:    true,
	CaretGlyph:   "^",
}

const (
	linePrefix = "# "
	prefixPlus = "5'-"
	suffixPlus = "-3'"
)

// iupac is indexed by a state's accept mask (bit0=A … bit3=T).
const iupac = "-ACMGRSVTWYHKDBN"

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// MotifLine spells each state of a as one IUPAC letter, so groups and
// wildcards keep the columns aligned with the site.
func MotifLine(a *motif.Automaton) string {
	states := a.States()
	b := make([]byte, len(states))
	for i, st := range states {
		b[i] = iupac[st.Accept&0xF]
	}
	return string(b)
}

func single(mask uint8) bool { return mask != 0 && mask&(mask-1) == 0 }

// RenderHit prints one block for h over seq, followed by a "#" spacer line.
func RenderHit(seqID string, seq []byte, h engine.Hit, opt Options) string {
	a := h.Automaton
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s (%c) %s:%d-%d mismatches=%d\n",
		linePrefix, a.Label(), a.Strand(), seqID, h.Start, h.End, h.Mismatches)

	states := a.States()
	if h.Start < 0 || h.End > len(seq) || h.Length() != len(states) {
		fmt.Fprintf(&b, "%s(pretty not available: site out of range)\n#\n", linePrefix)
		return b.String()
	}
	site := seq[h.Start:h.End]

	exact := orDefault(opt.ExactGlyph, DefaultOptions.ExactGlyph)
	partial := orDefault(opt.PartialGlyph, DefaultOptions.PartialGlyph)
	var bars, carets strings.Builder
	strict := false
	for i, st := range states {
		switch {
		case !st.Contains(site[i]):
			bars.WriteByte(' ')
		case single(st.Accept):
			bars.WriteString(exact)
		default:
			bars.WriteString(partial)
		}
		if st.Tolerant {
			carets.WriteByte(' ')
		} else {
			carets.WriteString(orDefault(opt.CaretGlyph, DefaultOptions.CaretGlyph))
			strict = true
		}
	}
	pad := strings.Repeat(" ", len(prefixPlus))

	fmt.Fprintf(&b, "%s%s%s%s\n", linePrefix, prefixPlus, MotifLine(a), suffixPlus)
	fmt.Fprintf(&b, "%s%s%s\n", linePrefix, pad, strings.TrimRight(bars.String(), " "))
	fmt.Fprintf(&b, "%s%s%s%s # (+)\n", linePrefix, prefixPlus, site, suffixPlus)
	if opt.ShowCaret && strict {
		fmt.Fprintf(&b, "%s%s%s\n", linePrefix, pad, strings.TrimRight(carets.String(), " "))
	}
	b.WriteString("#\n")
	return b.String()
}

// RenderResult prints a block per hit in hit order.
func RenderResult(r engine.Result, opt Options) string {
	var b strings.Builder
	for _, h := range r.Hits {
		b.WriteString(RenderHit(r.SequenceID, r.Sequence, h, opt))
	}
	return b.String()
}
