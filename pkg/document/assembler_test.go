package document

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-embedkit/pkg/chart"
	"github.com/goliatone/go-embedkit/pkg/model"
)

func newAssembler(t *testing.T) *Assembler {
	t.Helper()

	assembler, err := New()
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}
	return assembler
}

func TestAssemble_ContentTypeClass(t *testing.T) {
	assembler := newAssembler(t)

	cases := []model.BlockKind{model.KindQuestion, model.KindOption, model.KindGeneral}
	for _, kind := range cases {
		out, err := assembler.Assemble("<p>body</p>", Options{Kind: kind})
		if err != nil {
			t.Fatalf("assemble %s: %v", kind, err)
		}
		want := `class="content-container content-` + kind.String() + `"`
		if !strings.Contains(out, want) {
			t.Fatalf("%s document missing %s", kind, want)
		}
		if !strings.Contains(out, "<p>body</p>") {
			t.Fatalf("content not embedded verbatim:\n%s", out)
		}
	}
}

func TestAssemble_DefaultsToGeneral(t *testing.T) {
	assembler := newAssembler(t)

	out, err := assembler.Assemble("x", Options{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(out, "content-general") {
		t.Fatalf("expected general kind fallback:\n%s", out)
	}
	if !strings.Contains(out, "<title>Content</title>") {
		t.Fatalf("expected default title:\n%s", out)
	}
}

func TestAssemble_EscapesTitle(t *testing.T) {
	assembler := newAssembler(t)

	out, err := assembler.Assemble("x", Options{Title: `<Quiz & "Co">`})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if strings.Contains(out, `<title><Quiz`) {
		t.Fatalf("title not escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;Quiz &amp;") {
		t.Fatalf("expected escaped title:\n%s", out)
	}
}

func TestAssemble_LatexIncludes(t *testing.T) {
	assembler := newAssembler(t)

	with, err := assembler.Assemble("$x^2$", Options{NeedLaTeX: true})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(with, "katex.min.css") || !strings.Contains(with, "auto-render.min.js") {
		t.Fatalf("expected KaTeX includes:\n%s", with)
	}
	if !strings.Contains(with, "renderMathInElement") {
		t.Fatalf("expected KaTeX bootstrap:\n%s", with)
	}

	without, err := assembler.Assemble("plain", Options{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if strings.Contains(without, "katex.min.css") || strings.Contains(without, "katex.min.js") {
		t.Fatalf("unexpected KaTeX include:\n%s", without)
	}
}

func TestAssemble_ChartBootstrap(t *testing.T) {
	assembler := newAssembler(t)

	fig, err := chart.Bar([]string{"A", "B"}, []float64{1, 2})
	if err != nil {
		t.Fatalf("bar: %v", err)
	}

	out, err := assembler.Assemble("", Options{Figure: fig})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	for _, want := range []string{
		"plotly.min.js",
		`id="plotly-div"`,
		`"type":"bar"`,
		`"displayModeBar":false`,
		"Plotly.newPlot",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("chart document missing %s:\n%s", want, out)
		}
	}
}

func TestAssemble_ChartConfigOverride(t *testing.T) {
	assembler := newAssembler(t)

	fig, err := chart.Pie([]string{"a"}, []float64{1})
	if err != nil {
		t.Fatalf("pie: %v", err)
	}

	out, err := assembler.Assemble("", Options{
		Figure:      fig,
		ChartConfig: map[string]any{"displayModeBar": true},
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(out, `"displayModeBar":true`) {
		t.Fatalf("config override lost:\n%s", out)
	}
}

func TestAssemble_CustomChrome(t *testing.T) {
	assembler := newAssembler(t)

	out, err := assembler.Assemble("x", Options{
		CustomCSS: ".mine { color: teal; }",
		CustomJS:  `console.log("ready");`,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !strings.Contains(out, ".mine { color: teal; }") {
		t.Fatalf("custom css missing:\n%s", out)
	}
	if !strings.Contains(out, `console.log("ready");`) {
		t.Fatalf("custom js missing:\n%s", out)
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	assembler := newAssembler(t)

	fig, err := chart.Scatter([]float64{1, 2}, []float64{3, 4})
	if err != nil {
		t.Fatalf("scatter: %v", err)
	}
	opts := Options{Title: "Stable", Figure: fig, ChartConfig: map[string]any{"responsive": true}}

	first, err := assembler.Assemble("x", opts)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	second, err := assembler.Assemble("x", opts)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if first != second {
		t.Fatalf("output not deterministic")
	}
}

func TestRenderTable_Shape(t *testing.T) {
	assembler := newAssembler(t)

	out, err := assembler.RenderTable(model.Table{
		Headers: []string{"ID", "Val"},
		Rows:    [][]any{{1, "x"}, {2, "y"}},
	})
	if err != nil {
		t.Fatalf("render table: %v", err)
	}

	if got := strings.Count(out, "<th>"); got != 2 {
		t.Fatalf("expected 2 header cells, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "<tr>"); got != 3 {
		t.Fatalf("expected 3 rows, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "<td>"); got != 4 {
		t.Fatalf("expected 4 body cells, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "<thead>") {
		t.Fatalf("expected thead:\n%s", out)
	}
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assembler := newAssembler(t)

	out, err := assembler.RenderTable(model.Table{Rows: [][]any{{1}}})
	if err != nil {
		t.Fatalf("render table: %v", err)
	}
	if strings.Contains(out, "<thead>") {
		t.Fatalf("unexpected thead:\n%s", out)
	}
}

func TestRenderTable_EscapesCells(t *testing.T) {
	assembler := newAssembler(t)

	out, err := assembler.RenderTable(model.Table{Rows: [][]any{{`<b>raw</b>`}}})
	if err != nil {
		t.Fatalf("render table: %v", err)
	}
	if strings.Contains(out, "<b>raw</b>") {
		t.Fatalf("cell not escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;b&gt;raw&lt;/b&gt;") {
		t.Fatalf("expected escaped cell:\n%s", out)
	}
}

func TestRenderTable_PadsRaggedRows(t *testing.T) {
	assembler := newAssembler(t)

	out, err := assembler.RenderTable(model.Table{
		Headers: []string{"ID", "Val"},
		Rows:    [][]any{{1}, {2, "y"}},
	})
	if err != nil {
		t.Fatalf("render table: %v", err)
	}
	if got := strings.Count(out, "<td>"); got != 4 {
		t.Fatalf("expected padded cells (4), got %d:\n%s", got, out)
	}
}

func TestCompact_PreservesPreContent(t *testing.T) {
	const markup = `<!DOCTYPE html><html><head><title>t</title></head><body>
    <div>
        <pre>  two  spaces
	and a tab</pre>
    </div>
</body></html>`

	out, err := Compact(markup)
	if err != nil {
		t.Fatalf("compact: %v", err)
	}
	if !strings.Contains(out, "<pre>  two  spaces\n\tand a tab</pre>") {
		t.Fatalf("pre content altered:\n%s", out)
	}
	if len(out) >= len(markup) {
		t.Fatalf("compact did not shrink output: %d >= %d", len(out), len(markup))
	}
}

func TestCompact_DOMEquivalent(t *testing.T) {
	assembler := newAssembler(t)

	full, err := assembler.Assemble("<p>hello <em>world</em></p>", Options{
		Title:     "Compact",
		Kind:      model.KindQuestion,
		NeedLaTeX: true,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	compacted, err := Compact(full)
	if err != nil {
		t.Fatalf("compact: %v", err)
	}

	if diff := cmp.Diff(domOutline(t, full), domOutline(t, compacted)); diff != "" {
		t.Fatalf("compact output not DOM-equivalent (-full +compact):\n%s", diff)
	}
}

// domOutline flattens a parsed document into a tag/text sequence with
// whitespace runs collapsed, the shape compact mode is allowed to vary.
func domOutline(t *testing.T, markup string) []string {
	t.Helper()

	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			out = append(out, "<"+n.Data+">")
		case html.TextNode:
			text := strings.Join(strings.Fields(n.Data), " ")
			if text != "" {
				out = append(out, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return out
}
