// internal/writers/registry.go
package writers

import (
	"fmt"
	"sort"

	"motifhunt/internal/output"
)

// Factory builds a fresh renderer for one report.
type Factory func(output.Options) output.Renderer

// Renderers maps format name → factory. Register in init(); last wins.
var Renderers = map[string]Factory{}

func Register(format string, fn Factory) { Renderers[format] = fn }

func init() {
	Register(output.FormatText, output.NewText)
	Register(output.FormatJSON, output.NewJSON)
	Register(output.FormatJSONL, output.NewJSONL)
	Register(output.FormatHTML, output.NewHTML)
	Register(output.FormatSummary, output.NewSummary)
}

// Lookup returns a renderer for format.
func Lookup(format string, opt output.Options) (output.Renderer, error) {
	fn, ok := Renderers[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(opt), nil
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(Renderers))
	for k := range Renderers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
