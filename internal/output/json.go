// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"motifhunt/internal/engine"
	"motifhunt/pkg/api"
)

// ToAPIRecord converts a result to the stable wire schema (v1).
func ToAPIRecord(r engine.Result) api.RecordV1 {
	v := api.RecordV1{
		SequenceID: r.SequenceID,
		Length:     len(r.Sequence),
		Hits:       make([]api.HitV1, 0, len(r.Hits)),
		SourceFile: r.SourceFile,
	}
	for _, h := range r.Hits {
		hv := api.HitV1{
			Label:      h.Automaton.Label(),
			Pattern:    h.Automaton.Pattern(),
			Strand:     string(h.Automaton.Strand()),
			Start:      h.Start,
			End:        h.End,
			Mismatches: h.Mismatches,
		}
		if h.End <= len(r.Sequence) {
			hv.Site = string(r.Sequence[h.Start:h.End])
		}
		v.Hits = append(v.Hits, hv)
	}
	for _, m := range r.Markers {
		v.Markers = append(v.Markers, api.MarkerV1{Kind: m.Kind.String(), Offset: m.Offset, Motif: m.Motif})
	}
	return v
}

// jsonRenderer buffers every record and writes one indented array at End.
type jsonRenderer struct{ buf []api.RecordV1 }

func NewJSON(Options) Renderer { return &jsonRenderer{} }

func (j *jsonRenderer) Begin(io.Writer) error { return nil }

func (j *jsonRenderer) Record(_ io.Writer, r engine.Result) error {
	j.buf = append(j.buf, ToAPIRecord(r))
	return nil
}

func (j *jsonRenderer) End(w io.Writer, _ int) error {
	if j.buf == nil {
		j.buf = []api.RecordV1{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(j.buf)
}

// jsonlRenderer streams one record per line.
type jsonlRenderer struct{ enc *json.Encoder }

func NewJSONL(Options) Renderer { return &jsonlRenderer{} }

func (j *jsonlRenderer) Begin(w io.Writer) error {
	j.enc = json.NewEncoder(w)
	return nil
}

func (j *jsonlRenderer) Record(_ io.Writer, r engine.Result) error {
	return j.enc.Encode(ToAPIRecord(r))
}

func (j *jsonlRenderer) End(io.Writer, int) error { return nil }
