package chart

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks structurally bad series input, such as mismatched
// label/value lengths. Callers can test for it with errors.Is.
var ErrInvalidInput = errors.New("chart: invalid input")

// Preset colors keep embedded charts visually consistent across documents.
const (
	barColor       = "#3498db"
	lineColor      = "#e74c3c"
	scatterColor   = "#9b59b6"
	histogramColor = "#f39c12"
	boxColor       = "#1abc9c"
)

const defaultBins = 15

// Option adjusts a preset figure before it is returned.
type Option func(*settings)

type settings struct {
	title  string
	xTitle string
	yTitle string
	color  string
	bins   int
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(s *settings) {
		s.title = title
	}
}

// WithAxisTitles sets the x and y axis titles.
func WithAxisTitles(x, y string) Option {
	return func(s *settings) {
		s.xTitle = x
		s.yTitle = y
	}
}

// WithColor overrides the preset series color.
func WithColor(color string) Option {
	return func(s *settings) {
		if color != "" {
			s.color = color
		}
	}
}

// WithBins overrides the histogram bin count.
func WithBins(bins int) Option {
	return func(s *settings) {
		if bins > 0 {
			s.bins = bins
		}
	}
}

// Bar builds a compact bar chart. Labels and values must be equal length.
func Bar(labels []string, values []float64, options ...Option) (*Figure, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("%w: labels/values length mismatch (%d != %d)", ErrInvalidInput, len(labels), len(values))
	}
	s := apply(settings{color: barColor}, options)

	return &Figure{
		Data: []Trace{{
			Type:   "bar",
			X:      anySlice(labels),
			Y:      floatsToAny(values),
			Marker: &Marker{Color: s.color},
		}},
		Layout: compactLayout(s),
	}, nil
}

// Line builds a compact line chart with markers. X and y must be equal length.
func Line(x []any, y []float64, options ...Option) (*Figure, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x/y length mismatch (%d != %d)", ErrInvalidInput, len(x), len(y))
	}
	s := apply(settings{color: lineColor}, options)

	return &Figure{
		Data: []Trace{{
			Type:   "scatter",
			X:      x,
			Y:      floatsToAny(y),
			Mode:   "lines+markers",
			Line:   &LineStyle{Color: s.color, Width: 2},
			Marker: &Marker{Size: 4, Color: s.color},
		}},
		Layout: compactLayout(s),
	}, nil
}

// Pie builds a compact donut-style pie chart.
func Pie(labels []string, values []float64, options ...Option) (*Figure, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("%w: labels/values length mismatch (%d != %d)", ErrInvalidInput, len(labels), len(values))
	}
	s := apply(settings{}, options)

	showLegend := true
	layout := &Layout{
		Template:   "plotly_white",
		Margin:     &Margin{L: 20, R: 20, T: 40, B: 20},
		Height:     200,
		ShowLegend: &showLegend,
		Legend:     &Legend{Font: &Font{Size: 9}, Orientation: "h", Y: -0.1},
	}
	if s.title != "" {
		layout.Title = &Title{Text: s.title, Font: &Font{Size: 14}}
	}

	return &Figure{
		Data: []Trace{{
			Type:     "pie",
			Labels:   labels,
			Values:   values,
			Hole:     0.3,
			TextFont: &Font{Size: 10},
		}},
		Layout: layout,
	}, nil
}

// Histogram builds a compact histogram over the sample data.
func Histogram(data []float64, options ...Option) (*Figure, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: histogram data is empty", ErrInvalidInput)
	}
	s := apply(settings{color: histogramColor, bins: defaultBins, yTitle: "Frequency"}, options)

	return &Figure{
		Data: []Trace{{
			Type:   "histogram",
			X:      floatsToAny(data),
			NBinsX: s.bins,
			Marker: &Marker{Color: s.color},
		}},
		Layout: compactLayout(s),
	}, nil
}

// Scatter builds a compact scatter plot. X and y must be equal length.
func Scatter(x []float64, y []float64, options ...Option) (*Figure, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x/y length mismatch (%d != %d)", ErrInvalidInput, len(x), len(y))
	}
	s := apply(settings{color: scatterColor}, options)

	return &Figure{
		Data: []Trace{{
			Type:   "scatter",
			X:      floatsToAny(x),
			Y:      floatsToAny(y),
			Mode:   "markers",
			Marker: &Marker{Size: 6, Color: s.color, Opacity: 0.7},
		}},
		Layout: compactLayout(s),
	}, nil
}

// Box builds a compact box plot over the sample data.
func Box(data []float64, options ...Option) (*Figure, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: box plot data is empty", ErrInvalidInput)
	}
	s := apply(settings{color: boxColor}, options)

	showLegend := false
	layout := compactLayout(s)
	layout.XAxis = nil
	layout.ShowLegend = &showLegend

	return &Figure{
		Data: []Trace{{
			Type:   "box",
			Y:      floatsToAny(data),
			Marker: &Marker{Color: s.color},
		}},
		Layout: layout,
	}, nil
}

// Heatmap builds a compact heatmap from a z matrix with axis labels. Every z
// row must match the x label count, and the row count must match y.
func Heatmap(z [][]float64, xLabels, yLabels []string, options ...Option) (*Figure, error) {
	if len(z) != len(yLabels) {
		return nil, fmt.Errorf("%w: z rows/y labels length mismatch (%d != %d)", ErrInvalidInput, len(z), len(yLabels))
	}
	for i, row := range z {
		if len(row) != len(xLabels) {
			return nil, fmt.Errorf("%w: z row %d/x labels length mismatch (%d != %d)", ErrInvalidInput, i, len(row), len(xLabels))
		}
	}
	s := apply(settings{}, options)

	layout := &Layout{
		Template: "plotly_white",
		Margin:   &Margin{L: 60, R: 20, T: 40, B: 40},
		Height:   200,
		XAxis:    &Axis{TickFont: &Font{Size: 9}},
		YAxis:    &Axis{TickFont: &Font{Size: 9}},
	}
	if s.title != "" {
		layout.Title = &Title{Text: s.title, Font: &Font{Size: 14}}
	}

	return &Figure{
		Data: []Trace{{
			Type:       "heatmap",
			Z:          z,
			X:          anySlice(xLabels),
			Y:          anySlice(yLabels),
			Colorscale: "Viridis",
		}},
		Layout: layout,
	}, nil
}

func apply(base settings, options []Option) settings {
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&base)
	}
	return base
}

// compactLayout is the shared embed layout: white template, fixed height,
// tight margins, small tick fonts.
func compactLayout(s settings) *Layout {
	layout := &Layout{
		Template: "plotly_white",
		Margin:   &Margin{L: 40, R: 20, T: 40, B: 40},
		Height:   200,
		XAxis:    &Axis{Title: s.xTitle, TickFont: &Font{Size: 10}},
		YAxis:    &Axis{Title: s.yTitle, TickFont: &Font{Size: 10}},
	}
	if s.title != "" {
		layout.Title = &Title{Text: s.title, Font: &Font{Size: 14}}
	}
	return layout
}

func anySlice(in []string) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func floatsToAny(in []float64) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
