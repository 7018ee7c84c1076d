package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"motifhunt/internal/engine"
	"motifhunt/internal/motif"
	"motifhunt/pkg/api"
)

func scan(t *testing.T, seq string, mm int, patterns ...string) engine.Result {
	t.Helper()
	sc := engine.New()
	for _, p := range patterns {
		a, err := motif.Compile("m_"+p, p, 0, motif.StrandForward)
		if err != nil {
			t.Fatalf("compile %q: %v", p, err)
		}
		sc.Register(a)
	}
	res, ok := sc.ScanRecord("seq1", []byte(seq), mm)
	if !ok {
		t.Fatalf("no hit for %v in %s", patterns, seq)
	}
	res.Desc = "seq1 test record"
	return res
}

func render(t *testing.T, r Renderer, results ...engine.Result) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Begin(&buf); err != nil {
		t.Fatalf("begin: %v", err)
	}
	for _, res := range results {
		if err := r.Record(&buf, res); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if err := r.End(&buf, len(results)); err != nil {
		t.Fatalf("end: %v", err)
	}
	return buf.String()
}

func TestHTML_Highlight(t *testing.T) {
	cases := []struct {
		name string
		seq  string
		mm   int
		pats []string
		want string
	}{
		{"exact", "TTACGTTT", 0, []string{"ACGT"}, `TT<span class="pattern0">ACGT</span>TT`},
		{"mismatch on span end", "TTACGTTT", 1, []string{"ACGA"}, `TT<span class="pattern0">ACG<u>T</u></span>TT`},
		{"second motif colour", "AAAACCCC", 0, []string{"GGG", "CCCC"}, `AAAA<span class="pattern1">CCCC</span>`},
		{"markup in sequence", "AC<SCRIPT>&\"'", 0, []string{"AC"}, `<span class="pattern0">AC</span>&lt;SCRIPT&gt;&amp;&#34;&#39;`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := render(t, NewHTML(Options{}), scan(t, c.seq, c.mm, c.pats...))
			if !strings.Contains(out, c.want) {
				t.Fatalf("missing %q in:\n%s", c.want, out)
			}
			if strings.Contains(out, "<SCRIPT>") {
				t.Fatalf("raw markup from sequence:\n%s", out)
			}
			if !strings.HasPrefix(out, "<html>") || !strings.HasSuffix(out, "</html>\n") {
				t.Fatalf("document not wrapped:\n%s", out)
			}
		})
	}
}

func TestHTML_EscapesName(t *testing.T) {
	res := scan(t, "ACGT", 0, "ACGT")
	res.Desc = "a<b>"
	out := render(t, NewHTML(Options{}), res)
	if !strings.Contains(out, "<pre>a&lt;b&gt;\n") {
		t.Fatalf("name not escaped:\n%s", out)
	}
}

func TestSummary(t *testing.T) {
	out := render(t, NewSummary(Options{CommandLine: "hunt -p ACGT in.fa"}),
		scan(t, "TTACGTTT", 0, "ACGT"))
	for _, want := range []string{
		"hunt -p ACGT in.fa",
		"<td>seq1 test record</td>",
		"<td>m_ACGT</td><td>ACGT</td><td>0</td><td>+</td>",
		"<td>2</td><td>6</td>",
		"Number of target sequences: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestText(t *testing.T) {
	res := scan(t, "TTACGTTT", 1, "ACGA")
	out := render(t, NewText(Options{Header: true}), res)
	want := TSVHeader + "\nseq1\tm_ACGA\tACGA\t+\t2\t6\t1\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
	if out := render(t, NewText(Options{}), res); strings.Contains(out, "sequence_id") {
		t.Fatalf("header printed without Header")
	}
}

func TestJSON(t *testing.T) {
	res := scan(t, "TTACGTTT", 0, "ACGT")
	res.SourceFile = "in.fa"
	out := render(t, NewJSON(Options{}), res)
	var got []api.RecordV1
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if len(got) != 1 || len(got[0].Hits) != 1 {
		t.Fatalf("unexpected: %+v", got)
	}
	h := got[0].Hits[0]
	if h.Site != "ACGT" || h.Start != 2 || h.End != 6 || h.Strand != "+" {
		t.Fatalf("hit: %+v", h)
	}
	if got[0].Length != 8 || got[0].SourceFile != "in.fa" {
		t.Fatalf("record: %+v", got[0])
	}
	if len(got[0].Markers) != 2 || got[0].Markers[0].Kind != "start" || got[0].Markers[1].Offset != 5 {
		t.Fatalf("markers: %+v", got[0].Markers)
	}
}

func TestJSON_EmptyIsArray(t *testing.T) {
	if out := strings.TrimSpace(render(t, NewJSON(Options{}))); out != "[]" {
		t.Fatalf("got %q", out)
	}
}

func TestJSONL(t *testing.T) {
	a := scan(t, "TTACGTTT", 0, "ACGT")
	b := scan(t, "ACGTACGT", 0, "ACGT")
	out := render(t, NewJSONL(Options{}), a, b)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d:\n%s", len(lines), out)
	}
	var rec api.RecordV1
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.Hits) != 2 {
		t.Fatalf("want 2 hits, got %+v", rec.Hits)
	}
}

func TestText_Pretty(t *testing.T) {
	res := scan(t, "TTACGTTT", 1, "ACGA")
	out := render(t, NewText(Options{Pretty: true}), res)
	for _, want := range []string{
		"seq1\tm_ACGA\tACGA\t+\t2\t6\t1\n",
		"# m_ACGA (+) seq1:2-6 mismatches=1\n",
		"# 5'-ACGA-3'\n",
		"#    |||\n",
		"# 5'-ACGT-3' # (+)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
