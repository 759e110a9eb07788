package document

import (
	"fmt"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

var (
	minifierOnce sync.Once
	minifier     *minify.M
)

// Compact collapses insignificant whitespace between tags. The minifier
// never touches content inside pre, script, or style elements, so the
// compacted document stays semantically identical to the input.
func Compact(markup string) (string, error) {
	out, err := htmlMinifier().String("text/html", markup)
	if err != nil {
		return "", fmt.Errorf("document: compact: %w", err)
	}
	return out, nil
}

func htmlMinifier() *minify.M {
	minifierOnce.Do(func() {
		m := minify.New()
		m.Add("text/html", &html.Minifier{
			KeepDocumentTags: true,
			KeepEndTags:      true,
			KeepQuotes:       true,
		})
		minifier = m
	})
	return minifier
}
