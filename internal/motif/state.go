// internal/motif/state.go
package motif

/* -------------------------- nucleotide bit masks ------------------------- */

// Symbol sets are 4-bit masks: bit0=A bit1=C bit2=G bit3=T.
const (
	maskA   uint8 = 1 << 0
	maskC   uint8 = 1 << 1
	maskG   uint8 = 1 << 2
	maskT   uint8 = 1 << 3
	maskAny       = maskA | maskC | maskG | maskT
)

var baseMask [256]uint8

func init() {
	baseMask['A'], baseMask['a'] = maskA, maskA
	baseMask['C'], baseMask['c'] = maskC, maskC
	baseMask['G'], baseMask['g'] = maskG, maskG
	baseMask['T'], baseMask['t'] = maskT, maskT
}

// MatchState is one position of a compiled motif.
//
// Accept is the set of sequence symbols satisfying the position. A symbol
// outside the set is a countable mismatch when Tolerant is true and aborts the
// attempt otherwise. Terminal is set on the last state only.
type MatchState struct {
	Accept   uint8
	Tolerant bool
	Terminal bool
}

// Contains reports whether sequence symbol b is accepted. Anything outside
// A/C/G/T (an 'N' in the sequence included) is never accepted.
func (s MatchState) Contains(b byte) bool {
	return baseMask[b]&s.Accept != 0
}

// Symbols lists the accepted nucleotides in ACGT order.
func (s MatchState) Symbols() string {
	out := make([]byte, 0, 4)
	for i, c := range []byte("ACGT") {
		if s.Accept&(1<<uint(i)) != 0 {
			out = append(out, c)
		}
	}
	return string(out)
}
