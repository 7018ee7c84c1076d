// Package output renders scan results. Every format implements Renderer;
// the writers package drives a Renderer from a channel of results.
package output

import (
	"io"

	"motifhunt/internal/engine"
)

// Format names.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatHTML    = "html"
	FormatSummary = "summary"
)

// Options tune renderers; each format reads the fields it needs.
type Options struct {
	Header      bool   // text: print the TSV header row
	Pretty      bool   // text: alignment block after each record's rows
	CommandLine string // summary: shown above the table
}

// Renderer writes one report. Begin is called once, Record once per matched
// sequence in input order, End once with the number of records written.
type Renderer interface {
	Begin(w io.Writer) error
	Record(w io.Writer, r engine.Result) error
	End(w io.Writer, count int) error
}
