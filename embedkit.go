// Package embedkit wraps HTML fragments into self-contained, style-isolated
// documents for iframe embedding and serializes the result into raw HTML,
// JSON, or compressed JSON envelopes.
package embedkit

import (
	"github.com/goliatone/go-embedkit/pkg/builder"
	"github.com/goliatone/go-embedkit/pkg/chart"
	"github.com/goliatone/go-embedkit/pkg/document"
	"github.com/goliatone/go-embedkit/pkg/model"
)

// Builder aggregates content blocks; see pkg/builder.
type Builder = builder.Builder

// Option configures a Builder.
type Option = builder.Option

// BlockKind tags a content block for styling and front-end targeting.
type BlockKind = model.BlockKind

// Block kinds exported for convenience.
const (
	KindQuestion = model.KindQuestion
	KindOption   = model.KindOption
	KindTable    = model.KindTable
	KindGeneral  = model.KindGeneral
)

// Config is the shared document chrome.
type Config = model.Config

// Figure is a chart description; build one with the pkg/chart presets.
type Figure = chart.Figure

// New constructs a block builder. See pkg/builder for the available options.
func New(options ...Option) (*Builder, error) {
	return builder.New(options...)
}

// WithTitle, WithCustomCSS, and WithCustomJS re-export the common builder
// options so simple callers only import this package.
var (
	WithTitle     = builder.WithTitle
	WithCustomCSS = builder.WithCustomCSS
	WithCustomJS  = builder.WithCustomJS
)

// WrapContent assembles a single content string into a standalone document
// without going through a builder. The content is embedded verbatim; the
// title is escaped.
func WrapContent(content string, kind BlockKind, title string) (string, error) {
	assembler, err := document.New()
	if err != nil {
		return "", err
	}
	return assembler.Assemble(content, document.Options{
		Title:     title,
		Kind:      kind,
		NeedLaTeX: true,
	})
}
