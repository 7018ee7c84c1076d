// internal/motif/automaton.go
package motif

// Automaton is a compiled motif: an ordered list of match states plus the
// metadata reported with each hit. It is immutable after Compile, so one
// Automaton can be scanned from many goroutines; walking state is kept in a
// Cursor owned by each attempt.
type Automaton struct {
	label   string
	pattern string
	strand  byte
	minOcc  int
	states  []MatchState
}

func (a *Automaton) Size() int           { return len(a.states) }
func (a *Automaton) Label() string       { return a.label }
func (a *Automaton) Pattern() string     { return a.pattern }
func (a *Automaton) Strand() byte        { return a.strand }
func (a *Automaton) MinOccurrences() int { return a.minOcc }

// States returns a copy of the compiled states.
func (a *Automaton) States() []MatchState {
	return append([]MatchState(nil), a.states...)
}

// Cursor returns a fresh cursor positioned at the first state.
func (a *Automaton) Cursor() Cursor {
	c := Cursor{states: a.states}
	c.Restart()
	return c
}

// Cursor walks an Automaton's states one at a time.
type Cursor struct {
	states []MatchState
	next   int // -1 once exhausted
}

// Restart rewinds to the first state, or to exhausted for an empty automaton.
func (c *Cursor) Restart() {
	if len(c.states) == 0 {
		c.next = -1
		return
	}
	c.next = 0
}

// Advance returns the current state and moves forward. ok is false once the
// cursor has passed the last state.
func (c *Cursor) Advance() (st MatchState, ok bool) {
	if c.next < 0 || c.next >= len(c.states) {
		c.next = -1
		return MatchState{}, false
	}
	st = c.states[c.next]
	c.next++
	return st, true
}

// Exhausted reports whether Advance would fail.
func (c *Cursor) Exhausted() bool {
	return c.next < 0 || c.next >= len(c.states)
}
