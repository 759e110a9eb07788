package builder

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-embedkit/pkg/chart"
	"github.com/goliatone/go-embedkit/pkg/document"
	"github.com/goliatone/go-embedkit/pkg/model"
	"github.com/goliatone/go-embedkit/pkg/wire"
)

// themeStylesheetKey is the asset key the builder resolves against a theme's
// AssetURL to link the theme stylesheet.
const themeStylesheetKey = "embedkit.stylesheet"

// Builder aggregates blocks and renders them through a document assembler.
type Builder struct {
	config    model.Config
	theme     *theme.RendererConfig
	sanitizer *bluemonday.Policy
	markdown  goldmark.Markdown
	assembler *document.Assembler

	blocks []model.Block
	err    error
}

// New constructs a builder applying any provided options.
func New(options ...Option) (*Builder, error) {
	b := &Builder{
		config: model.Config{Title: model.DefaultTitle},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}

	if b.config.Title == "" {
		b.config.Title = model.DefaultTitle
	}
	if b.assembler == nil {
		assembler, err := document.New()
		if err != nil {
			return nil, fmt.Errorf("builder: configure assembler: %w", err)
		}
		b.assembler = assembler
	}
	if b.markdown == nil {
		b.markdown = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(ghtml.WithUnsafe()),
		)
	}
	return b, nil
}

// AddContent appends a text block. Content is assumed pre-sanitized HTML
// unless a sanitizer was configured.
func (b *Builder) AddContent(content string, kind model.BlockKind) *Builder {
	if b.err != nil {
		return b
	}
	if b.sanitizer != nil {
		content = b.sanitizer.Sanitize(content)
	}
	if kind == "" {
		kind = model.KindGeneral
	}

	b.blocks = append(b.blocks, model.Block{
		HTML:       content,
		Kind:       kind,
		NeedsLaTeX: true,
	})
	return b
}

// AddMarkdown converts markdown (GFM) to HTML and appends it as a text
// block of the given kind.
func (b *Builder) AddMarkdown(source string, kind model.BlockKind) *Builder {
	if b.err != nil {
		return b
	}

	var buf bytes.Buffer
	if err := b.markdown.Convert([]byte(source), &buf); err != nil {
		b.err = fmt.Errorf("builder: convert markdown: %w", err)
		return b
	}
	return b.AddContent(buf.String(), kind)
}

// AddFigure appends a chart block. Config overrides are merged over the
// embed defaults at render time.
func (b *Builder) AddFigure(fig *chart.Figure, config map[string]any) *Builder {
	if b.err != nil {
		return b
	}
	if fig == nil {
		b.err = fmt.Errorf("%w: figure is nil", chart.ErrInvalidInput)
		return b
	}

	b.blocks = append(b.blocks, model.Block{
		Kind:        model.KindGeneral,
		NeedsChart:  true,
		Figure:      fig,
		ChartConfig: config,
	})
	return b
}

// AddTable renders a cell matrix into table markup and appends it as a
// table block. Ragged rows are padded, never rejected.
func (b *Builder) AddTable(rows [][]any, headers []string) *Builder {
	if b.err != nil {
		return b
	}

	markup, err := b.assembler.RenderTable(model.Table{Headers: headers, Rows: rows})
	if err != nil {
		b.err = err
		return b
	}

	b.blocks = append(b.blocks, model.Block{
		HTML: markup,
		Kind: model.KindTable,
	})
	return b
}

// Err reports the first structural error recorded by an Add call.
func (b *Builder) Err() error {
	return b.err
}

// Len reports how many blocks have been appended.
func (b *Builder) Len() int {
	return len(b.blocks)
}

// Blocks returns a copy of the appended blocks in insertion order.
func (b *Builder) Blocks() []model.Block {
	out := make([]model.Block, len(b.blocks))
	copy(out, b.blocks)
	return out
}

// Render concatenates all blocks inside one outer document sharing the
// builder's chrome. Calling it twice without mutation yields byte-identical
// output.
func (b *Builder) Render(compact bool) (string, error) {
	if b.err != nil {
		return "", b.err
	}

	page := document.Page{
		Config: b.config,
		Blocks: b.blocks,
	}
	if b.theme != nil {
		page.ThemeCSS = cssVarsStyle(b.theme.CSSVars)
		if b.theme.AssetURL != nil {
			page.ThemeStylesheet = strings.TrimSpace(b.theme.AssetURL(themeStylesheetKey))
		}
	}

	out, err := b.assembler.AssemblePage(page, compact)
	if err != nil {
		return "", fmt.Errorf("builder: render: %w", err)
	}
	return out, nil
}

// RenderAsBlocks renders every block as its own self-contained document,
// preserving insertion order. Each element is independently valid for
// iframe embedding.
func (b *Builder) RenderAsBlocks() ([]string, error) {
	if b.err != nil {
		return nil, b.err
	}

	out := make([]string, 0, len(b.blocks))
	for i, block := range b.blocks {
		opts := document.Options{Kind: block.Kind}

		switch {
		case block.NeedsChart:
			opts.Title = fmt.Sprintf("%s - Chart %d", b.config.Title, i+1)
			opts.Figure = block.Figure
			opts.ChartConfig = block.ChartConfig
		case block.Kind == model.KindTable:
			opts.Title = fmt.Sprintf("%s - Table %d", b.config.Title, i+1)
		default:
			opts.Title = fmt.Sprintf("%s - Text %d", b.config.Title, i+1)
			opts.NeedLaTeX = true
		}

		doc, err := b.assembler.Assemble(block.HTML, opts)
		if err != nil {
			return nil, fmt.Errorf("builder: render block %d: %w", i+1, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

// RenderAsJSON renders the document and wraps it as {"html": <string>}.
func (b *Builder) RenderAsJSON(compact bool) (string, error) {
	markup, err := b.Render(compact)
	if err != nil {
		return "", err
	}
	return wire.ToJSON(markup)
}

// RenderAsCompressedJSON renders the compacted document, zlib-compresses
// it, and wraps the base64 payload as {"html_compressed": <string>}.
// Inflating and decoding the payload yields output byte-identical to
// Render(true).
func (b *Builder) RenderAsCompressedJSON() (string, error) {
	markup, err := b.Render(true)
	if err != nil {
		return "", err
	}
	return wire.ToCompressedJSON(markup)
}

// cssVarsStyle turns theme CSS variables into a deterministic :root block.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, key := range keys {
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(vars[key])
		sb.WriteString(";\n")
	}
	sb.WriteString("}")
	return sb.String()
}
