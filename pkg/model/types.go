package model

import (
	"strings"

	"github.com/goliatone/go-embedkit/pkg/chart"
)

// BlockKind tags a content block so document styling and front-end CSS can
// target it.
type BlockKind string

const (
	KindQuestion BlockKind = "question"
	KindOption   BlockKind = "option"
	KindTable    BlockKind = "table"
	KindGeneral  BlockKind = "general"
)

// ParseKind normalises free-form kind strings, falling back to KindGeneral
// for anything it does not recognise.
func ParseKind(raw string) BlockKind {
	switch BlockKind(strings.ToLower(strings.TrimSpace(raw))) {
	case KindQuestion:
		return KindQuestion
	case KindOption:
		return KindOption
	case KindTable:
		return KindTable
	default:
		return KindGeneral
	}
}

// String returns the kind as its wire representation.
func (k BlockKind) String() string {
	return string(k)
}

// Block is one unit of content owned by the builder that created it. Blocks
// are never mutated after creation; the builder only appends.
type Block struct {
	// HTML holds the block's inner markup. Empty for pure chart blocks.
	HTML string
	// Kind drives the container class and the per-kind styles.
	Kind BlockKind
	// NeedsLaTeX requests the KaTeX runtime when the block renders standalone.
	NeedsLaTeX bool
	// NeedsChart marks blocks that carry a figure.
	NeedsChart bool
	// Figure is the chart description for chart blocks, nil otherwise.
	Figure *chart.Figure
	// ChartConfig carries caller overrides merged over the embed defaults.
	ChartConfig map[string]any
}
