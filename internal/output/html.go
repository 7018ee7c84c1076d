// internal/output/html.go
package output

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"motifhunt/internal/engine"
)

// Palette is the number of pattern colour classes in the stylesheet;
// motif indexes wrap around it.
const Palette = 8

const htmlHead = `<html>
  <style type="text/css">
    .pattern0 { color: darkblue; font-weight:bold; }
    .pattern1 { color: lightblue; font-weight:bold; }
    .pattern2 { color: darkgreen; font-weight:bold; }
    .pattern3 { color: lightgreen; font-weight:bold; }
    .pattern4 { color: darkred; font-weight:bold; }
    .pattern5 { color: salmon; font-weight:bold; }
    .pattern6 { color: saddlebrown; font-weight:bold; }
    .pattern7 { color: peru; font-weight:bold; }
    .gene {width:800px; word-wrap: break-word;}
  </style>
  <body>
`

const htmlFoot = "  </body>\n</html>\n"

type htmlRenderer struct{}

func NewHTML(Options) Renderer { return htmlRenderer{} }

func (htmlRenderer) Begin(w io.Writer) error {
	_, err := io.WriteString(w, htmlHead)
	return err
}

func (htmlRenderer) Record(w io.Writer, r engine.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "    <div class=\"gene\">\n      <pre>%s\n", html.EscapeString(r.Name()))
	writeHighlighted(bw, r.Sequence, r.Markers)
	bw.WriteString("\n      </pre>\n    </div>\n")
	return bw.Flush()
}

func (htmlRenderer) End(w io.Writer, _ int) error {
	_, err := io.WriteString(w, htmlFoot)
	return err
}

// writeHighlighted emits seq with markers applied. markers must be in
// engine.LessMarker order. At each offset spans open before the symbol, a
// mismatch underlines the symbol, and spans ending there close after it.
func writeHighlighted(bw *bufio.Writer, seq []byte, markers []engine.Marker) {
	m := 0
	for i, c := range seq {
		var underline bool
		closes := 0
		for ; m < len(markers) && markers[m].Offset == i; m++ {
			switch mk := markers[m]; mk.Kind {
			case engine.SpanStart:
				fmt.Fprintf(bw, `<span class="pattern%d">`, mk.Motif%Palette)
			case engine.SpanEnd:
				closes++
			case engine.Mismatch:
				underline = true
			}
		}
		if underline {
			bw.WriteString("<u>")
		}
		writeSymbol(bw, c)
		if underline {
			bw.WriteString("</u>")
		}
		for ; closes > 0; closes-- {
			bw.WriteString("</span>")
		}
	}
}

// writeSymbol writes one sequence byte, escaping the characters that would
// otherwise become markup.
func writeSymbol(bw *bufio.Writer, c byte) {
	switch c {
	case '<':
		bw.WriteString("&lt;")
	case '>':
		bw.WriteString("&gt;")
	case '&':
		bw.WriteString("&amp;")
	case '"':
		bw.WriteString("&#34;")
	case '\'':
		bw.WriteString("&#39;")
	default:
		bw.WriteByte(c)
	}
}
