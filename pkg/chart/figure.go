package chart

import (
	"encoding/json"
	"fmt"
)

// Figure mirrors the Plotly figure shape: a list of traces plus a layout.
// The JSON tags follow the plotly.js schema so a marshalled figure can be
// handed straight to Plotly.newPlot.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout *Layout `json:"layout,omitempty"`
}

// Trace is one data series. Only the fields the presets use are modelled;
// callers needing more can extend the struct literal directly.
type Trace struct {
	Type   string      `json:"type"`
	X      []any       `json:"x,omitempty"`
	Y      []any       `json:"y,omitempty"`
	Z      [][]float64 `json:"z,omitempty"`
	Labels []string    `json:"labels,omitempty"`
	Values []float64   `json:"values,omitempty"`
	Mode   string      `json:"mode,omitempty"`
	Name   string      `json:"name,omitempty"`
	Hole   float64     `json:"hole,omitempty"`
	NBinsX int         `json:"nbinsx,omitempty"`

	Marker     *Marker    `json:"marker,omitempty"`
	Line       *LineStyle `json:"line,omitempty"`
	TextFont   *Font      `json:"textfont,omitempty"`
	Colorscale string     `json:"colorscale,omitempty"`
}

// Marker styles trace points and bars.
type Marker struct {
	Color   string  `json:"color,omitempty"`
	Size    int     `json:"size,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// LineStyle styles connected traces.
type LineStyle struct {
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
}

// Font carries the subset of Plotly font options the presets set.
type Font struct {
	Size int `json:"size,omitempty"`
}

// Title wraps a layout title with its font.
type Title struct {
	Text string `json:"text"`
	Font *Font  `json:"font,omitempty"`
}

// Axis describes one layout axis.
type Axis struct {
	Title    string `json:"title,omitempty"`
	TickFont *Font  `json:"tickfont,omitempty"`
}

// Margin is the layout margin box.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Legend styles the layout legend.
type Legend struct {
	Font        *Font   `json:"font,omitempty"`
	Orientation string  `json:"orientation,omitempty"`
	Y           float64 `json:"y,omitempty"`
}

// Layout mirrors plotly.js layout options used by the presets.
type Layout struct {
	Title      *Title  `json:"title,omitempty"`
	XAxis      *Axis   `json:"xaxis,omitempty"`
	YAxis      *Axis   `json:"yaxis,omitempty"`
	Template   string  `json:"template,omitempty"`
	Margin     *Margin `json:"margin,omitempty"`
	Height     int     `json:"height,omitempty"`
	ShowLegend *bool   `json:"showlegend,omitempty"`
	Legend     *Legend `json:"legend,omitempty"`
}

// JSON marshals the figure into the compact payload embedded in chart
// bootstrap scripts.
func (f *Figure) JSON() (string, error) {
	if f == nil {
		return "", fmt.Errorf("chart: figure is nil")
	}
	data, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("chart: marshal figure: %w", err)
	}
	return string(data), nil
}
