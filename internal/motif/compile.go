// internal/motif/compile.go
package motif

import (
	"fmt"
	"strings"
)

// Grammar tokens.
const (
	Wildcard   = 'N'
	ExactOpen  = '('
	ExactClose = ')'
	AltOpen    = '['
	AltClose   = ']'
)

// Strand tags.
const (
	StrandForward byte = '+'
	StrandReverse byte = '-'
)

// GrammarError reports an invalid motif. Offset is the 0-based position of the
// offending character, or len(Pattern) for errors detected at end of input.
type GrammarError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("motif %q: %s at offset %d", e.Pattern, e.Reason, e.Offset)
}

// Compile parses text into an Automaton in a single left-to-right pass.
//
//	A C G T   literal nucleotide (tolerant outside an exact region)
//	N         any nucleotide
//	( ... )   exact region: states inside never absorb mismatches
//	[ ... ]   alternation: the collected symbols become one state
//
// The two region kinds never nest, in themselves or in each other. The
// returned Automaton is either complete or nil.
func Compile(label, text string, minOccurrences int, strand byte) (*Automaton, error) {
	pattern := strings.ToUpper(text)
	fail := func(off int, format string, a ...any) (*Automaton, error) {
		return nil, &GrammarError{Pattern: pattern, Offset: off, Reason: fmt.Sprintf(format, a...)}
	}
	if minOccurrences < 0 {
		return fail(0, "negative minimum occurrences %d", minOccurrences)
	}

	var (
		states  []MatchState
		inExact bool
		inAlt   bool
		group   uint8
	)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case 'A', 'C', 'G', 'T', Wildcard:
			m := baseMask[c]
			if c == Wildcard {
				m = maskAny
			}
			if inAlt {
				group |= m
				continue
			}
			states = append(states, MatchState{Accept: m, Tolerant: !inExact})

		case ExactOpen:
			if inAlt {
				return fail(i, "exact region inside alternation group")
			}
			if inExact {
				return fail(i, "nested exact region")
			}
			inExact = true

		case ExactClose:
			if inAlt {
				return fail(i, "exact region closed inside alternation group")
			}
			if !inExact {
				return fail(i, "closing %q without opening", ExactClose)
			}
			inExact = false

		case AltOpen:
			if inAlt {
				return fail(i, "nested alternation group")
			}
			if inExact {
				return fail(i, "alternation group inside exact region")
			}
			inAlt = true
			group = 0

		case AltClose:
			if !inAlt {
				return fail(i, "closing %q without opening", AltClose)
			}
			if group == 0 {
				return fail(i, "empty alternation group")
			}
			states = append(states, MatchState{Accept: group, Tolerant: !inExact})
			inAlt = false

		default:
			return fail(i, "invalid character %q", c)
		}
	}
	if inAlt {
		return fail(len(pattern), "unclosed alternation group")
	}
	if inExact {
		return fail(len(pattern), "unclosed exact region")
	}
	if n := len(states); n > 0 {
		states[n-1].Terminal = true
	}

	return &Automaton{
		label:   label,
		pattern: pattern,
		strand:  strand,
		minOcc:  minOccurrences,
		states:  states,
	}, nil
}

// CompileBoth compiles text on the forward strand and its reverse complement
// on the reverse strand. The two automata are independent.
func CompileBoth(label, text string, minOccurrences int) (fwd, rev *Automaton, err error) {
	fwd, err = Compile(label, text, minOccurrences, StrandForward)
	if err != nil {
		return nil, nil, err
	}
	rev, err = Compile(label, ReverseComplement(text), minOccurrences, StrandReverse)
	if err != nil {
		return nil, nil, err
	}
	return fwd, rev, nil
}
