// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"motifhunt/internal/engine"
	"motifhunt/internal/pretty"
)

// TSVHeader is the canonical header row for text output.
const TSVHeader = "sequence_id\tlabel\tpattern\tstrand\tstart\tend\tmismatches"

type textRenderer struct{ header, pretty bool }

func NewText(o Options) Renderer { return &textRenderer{header: o.Header, pretty: o.Pretty} }

func (t *textRenderer) Begin(w io.Writer) error {
	if !t.header {
		return nil
	}
	_, err := fmt.Fprintln(w, TSVHeader)
	return err
}

func (t *textRenderer) Record(w io.Writer, r engine.Result) error {
	for _, h := range r.Hits {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%c\t%d\t%d\t%d\n",
			r.SequenceID, h.Automaton.Label(), h.Automaton.Pattern(), h.Automaton.Strand(),
			h.Start, h.End, h.Mismatches,
		)
		if err != nil {
			return err
		}
	}
	if t.pretty {
		_, err := io.WriteString(w, pretty.RenderResult(r, pretty.DefaultOptions))
		return err
	}
	return nil
}

func (t *textRenderer) End(io.Writer, int) error { return nil }
