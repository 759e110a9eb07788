// Package document assembles content fragments into self-contained HTML
// documents suitable for iframe embedding. All output is produced from the
// embedded pongo2 template bundle; there is no network or file I/O and
// identical inputs always yield identical output.
package document

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/goliatone/go-embedkit/internal/engine"
	"github.com/goliatone/go-embedkit/pkg/chart"
	"github.com/goliatone/go-embedkit/pkg/model"
)

// Pinned runtime versions for the CDN includes.
const (
	KaTeXVersion  = "0.16.8"
	PlotlyVersion = "2.26.0"
)

const standaloneChartDiv = "plotly-div"

// Option configures the assembler before construction.
type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// Assembler renders blocks and pages from the template bundle.
type Assembler struct {
	engine *engine.Engine
}

// New constructs an assembler applying any provided options.
func New(options ...Option) (*Assembler, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	eng, err := engine.New(cfg.templateFS)
	if err != nil {
		return nil, fmt.Errorf("document: configure template engine: %w", err)
	}
	return &Assembler{engine: eng}, nil
}

// Options describe one standalone document. Content is assumed pre-sanitized
// HTML; it is embedded verbatim. The title is always escaped.
type Options struct {
	Title       string
	Kind        model.BlockKind
	NeedLaTeX   bool
	Figure      *chart.Figure
	ChartConfig map[string]any
	CustomCSS   string
	CustomJS    string
	Compact     bool
}

// Assemble wraps content into a complete HTML document. When a figure is
// attached the document pulls in the Plotly runtime and bootstraps the chart
// into its container on load.
func (a *Assembler) Assemble(content string, opts Options) (string, error) {
	kind := opts.Kind
	if kind == "" {
		kind = model.KindGeneral
	}
	title := opts.Title
	if title == "" {
		title = "Content"
	}

	chartDiv := ""
	if opts.Figure != nil {
		chartDiv = standaloneChartDiv
	}

	fragment, err := a.fragment(kind, content, chartDiv)
	if err != nil {
		return "", err
	}

	ctx := map[string]any{
		"title":          title,
		"kind_css":       styleForKind(kind),
		"custom_css":     opts.CustomCSS,
		"custom_js":      opts.CustomJS,
		"need_latex":     opts.NeedLaTeX,
		"need_plotly":    opts.Figure != nil,
		"has_chart":      opts.Figure != nil,
		"fragment":       fragment,
		"katex_version":  KaTeXVersion,
		"plotly_version": PlotlyVersion,
	}
	if opts.Figure != nil {
		ctx["figure"] = opts.Figure
		ctx["chart_config"] = mergeChartConfig(embedChartDefaults(), opts.ChartConfig)
	}

	out, err := a.engine.Render("templates/document.tmpl", ctx)
	if err != nil {
		return "", fmt.Errorf("document: assemble: %w", err)
	}
	if opts.Compact {
		return Compact(out)
	}
	return out, nil
}

// Page describes an aggregate document that shares one set of chrome across
// every block.
type Page struct {
	Config model.Config
	// ThemeCSS is injected after the built-in styles, before CustomCSS.
	ThemeCSS string
	// ThemeStylesheet, when set, adds a stylesheet link to the head.
	ThemeStylesheet string
	Blocks          []model.Block
}

// AssemblePage concatenates all blocks inside one outer document. Chrome is
// injected once; KaTeX and Plotly includes appear only when some block needs
// them. Block order is preserved.
func (a *Assembler) AssemblePage(page Page, compact bool) (string, error) {
	needLatex := false
	needPlotly := false
	kinds := make(map[model.BlockKind]bool)

	fragments := make([]string, 0, len(page.Blocks))
	charts := make([]map[string]any, 0)

	for i, block := range page.Blocks {
		if block.NeedsLaTeX {
			needLatex = true
		}
		kinds[block.Kind] = true

		chartDiv := ""
		if block.NeedsChart && block.Figure != nil {
			needPlotly = true
			chartDiv = standaloneChartDiv + "-" + strconv.Itoa(i)
			charts = append(charts, map[string]any{
				"div":    chartDiv,
				"figure": block.Figure,
				"config": mergeChartConfig(pageChartDefaults(), block.ChartConfig),
			})
		}

		fragment, err := a.fragment(block.Kind, block.HTML, chartDiv)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, fragment)
	}

	title := page.Config.Title
	if title == "" {
		title = model.DefaultTitle
	}

	out, err := a.engine.Render("templates/page.tmpl", map[string]any{
		"title":            title,
		"kind_css":         stylesForKinds(kinds),
		"theme_css":        page.ThemeCSS,
		"theme_stylesheet": page.ThemeStylesheet,
		"custom_css":       page.Config.CustomCSS,
		"custom_js":        page.Config.CustomJS,
		"need_latex":       needLatex,
		"need_plotly":      needPlotly,
		"blocks":           fragments,
		"charts":           charts,
		"katex_version":    KaTeXVersion,
		"plotly_version":   PlotlyVersion,
	})
	if err != nil {
		return "", fmt.Errorf("document: assemble page: %w", err)
	}
	if compact {
		return Compact(out)
	}
	return out, nil
}

// RenderTable turns a cell matrix into table markup. Ragged input is
// normalised first: short rows are padded with empty cells.
func (a *Assembler) RenderTable(table model.Table) (string, error) {
	normalized := table.Normalized()

	rows := make([][]string, 0, len(normalized.Rows))
	for _, row := range normalized.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}

	out, err := a.engine.Render("templates/table.tmpl", map[string]any{
		"headers": normalized.Headers,
		"rows":    rows,
	})
	if err != nil {
		return "", fmt.Errorf("document: render table: %w", err)
	}
	return out, nil
}

func (a *Assembler) fragment(kind model.BlockKind, content, chartDiv string) (string, error) {
	if kind == "" {
		kind = model.KindGeneral
	}
	out, err := a.engine.Render("templates/fragment.tmpl", map[string]any{
		"kind":      kind.String(),
		"content":   content,
		"chart_div": chartDiv,
	})
	if err != nil {
		return "", fmt.Errorf("document: render fragment: %w", err)
	}
	return out, nil
}

// embedChartDefaults is the config for charts inside standalone block
// documents: toolbar hidden, interactions trimmed for small iframes.
func embedChartDefaults() map[string]any {
	return map[string]any{
		"displayModeBar":          false,
		"responsive":              true,
		"staticPlot":              false,
		"doubleClick":             false,
		"showTips":                false,
		"showAxisDragHandles":     false,
		"showAxisRangeEntryBoxes": false,
		"modeBarButtonsToRemove":  []string{"pan2d", "select2d", "lasso2d", "resetScale2d", "zoomIn2d", "zoomOut2d"},
	}
}

// pageChartDefaults is the config for charts inside aggregate pages, where
// there is room for the toolbar.
func pageChartDefaults() map[string]any {
	return map[string]any{
		"displayModeBar": true,
		"responsive":     true,
	}
}

func mergeChartConfig(defaults, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(overrides))
	for key, value := range defaults {
		out[key] = value
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}
