package builder

import (
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/goliatone/go-embedkit/pkg/document"
	"github.com/goliatone/go-embedkit/pkg/model"
)

// Option customises a builder at construction time.
type Option func(*Builder)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(b *Builder) {
		b.config.Title = title
	}
}

// WithCustomCSS appends caller CSS to the document chrome.
func WithCustomCSS(css string) Option {
	return func(b *Builder) {
		b.config.CustomCSS = css
	}
}

// WithCustomJS appends caller JavaScript to the document chrome.
func WithCustomJS(js string) Option {
	return func(b *Builder) {
		b.config.CustomJS = js
	}
}

// WithConfig replaces the whole document config in one call, typically after
// model.LoadConfig.
func WithConfig(cfg model.Config) Option {
	return func(b *Builder) {
		b.config = cfg
	}
}

// WithSanitizer runs every AddContent and AddMarkdown payload through the
// given bluemonday policy. By default content is embedded verbatim and
// sanitization is the caller's responsibility.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(b *Builder) {
		b.sanitizer = policy
	}
}

// WithTheme applies a resolved go-theme renderer config: CSS variables are
// injected as a :root block and the theme stylesheet, when resolvable, is
// linked from the document head.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(b *Builder) {
		b.theme = cfg
	}
}

// WithMarkdown overrides the goldmark instance used by AddMarkdown.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(b *Builder) {
		if md != nil {
			b.markdown = md
		}
	}
}

// WithAssembler injects a custom document assembler, e.g. one constructed
// with an alternate template bundle.
func WithAssembler(assembler *document.Assembler) Option {
	return func(b *Builder) {
		if assembler != nil {
			b.assembler = assembler
		}
	}
}
