// internal/motif/revcomp.go
package motif

var complement [256]byte

func init() {
	for _, p := range [][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'N', 'N'},
		// grouping tokens swap so the reversed motif stays well formed
		{ExactOpen, ExactClose}, {AltOpen, AltClose},
	} {
		complement[p[0]] = p[1]
		complement[p[1]] = p[0]
	}
}

// ReverseComplement returns the motif as read on the opposite strand.
// Characters outside the grammar are dropped; Compile rejects them on the
// forward strand first.
func ReverseComplement(text string) string {
	out := make([]byte, 0, len(text))
	for i := len(text) - 1; i >= 0; i-- {
		b := text[i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if c := complement[b]; c != 0 {
			out = append(out, c)
		}
	}
	return string(out)
}
