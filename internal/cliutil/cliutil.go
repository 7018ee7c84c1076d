// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandInputs expands globs among FASTA inputs, keeping order. "-" (stdin)
// and plain paths pass through untouched; a glob that matches nothing is an
// error, so a typo never turns into an empty run.
func ExpandInputs(inputs []string) ([]string, error) {
	out := make([]string, 0, len(inputs))
	for _, a := range inputs {
		if a == "-" || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", a)
		}
		out = append(out, m...)
	}
	return out, nil
}
