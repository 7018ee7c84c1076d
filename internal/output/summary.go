// internal/output/summary.go
package output

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"motifhunt/internal/engine"
)

// summaryRenderer writes the HTML hit table: one row per matched sequence
// with nested tables for motif details and positions.
type summaryRenderer struct{ cmdline string }

func NewSummary(o Options) Renderer { return &summaryRenderer{cmdline: o.CommandLine} }

func (s *summaryRenderer) Begin(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("<html>\n<p>\n<font size=2>\nsearch-parameters:\n\n")
	bw.WriteString(html.EscapeString(s.cmdline))
	bw.WriteString("\n</font></p>\n  <br>\n  <body>\n    <table border=\"1\">\n      <tr>\n")
	for _, h := range []string{"Sequence Name", "Hit Pattern", "Positions"} {
		fmt.Fprintf(bw, "        <td><h5><center>%s</center></h5></td>\n", h)
	}
	bw.WriteString("      </tr>\n")
	return bw.Flush()
}

func (s *summaryRenderer) Record(w io.Writer, r engine.Result) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("      <tr>\n")
	fmt.Fprintf(bw, "        <td>%s</td>\n", html.EscapeString(r.Name()))

	bw.WriteString("        <td>\n          <table border=\"1\" width=\"100%\">\n")
	row(bw, "Name", "Match", "Mismatch", "Strand")
	for _, h := range r.Hits {
		a := h.Automaton
		row(bw, a.Label(), a.Pattern(), fmt.Sprint(h.Mismatches), string(a.Strand()))
	}
	bw.WriteString("          </table>\n        </td>\n")

	bw.WriteString("        <td>\n          <table border=\"1\" width=\"100%\">\n")
	row(bw, "Start", "End")
	for _, h := range r.Hits {
		row(bw, fmt.Sprint(h.Start), fmt.Sprint(h.End))
	}
	bw.WriteString("          </table>\n        </td>\n      </tr>\n")
	return bw.Flush()
}

func (s *summaryRenderer) End(w io.Writer, count int) error {
	_, err := fmt.Fprintf(w, "    </table>\n<br> Number of target sequences: %d\n </body></html>\n", count)
	return err
}

func row(bw *bufio.Writer, cells ...string) {
	bw.WriteString("            <tr>")
	for _, c := range cells {
		fmt.Fprintf(bw, "<td>%s</td>", html.EscapeString(c))
	}
	bw.WriteString("</tr>\n")
}
