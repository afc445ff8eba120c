// Package chart builds the skill radar and experience timeline figures shown on the home view.
package chart

import (
	"fmt"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

// Charter turns portfolio data into figures. Callers forward figures as JSON
// and never inspect them.
type Charter interface {
	SkillRadar(skills []types.Skill) (Figure, error)
	Timeline(entries []types.TimelineEntry) (Figure, error)
}

// Figure is a Plotly figure: data traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Empty reports whether the figure has no traces.
func (f Figure) Empty() bool {
	return len(f.Data) == 0
}

// Trace is one Plotly trace. Only the fields used by the two figures are modelled.
type Trace struct {
	Type        string    `json:"type"`
	Name        string    `json:"name,omitempty"`
	R           []float64 `json:"r,omitempty"`
	Theta       []string  `json:"theta,omitempty"`
	Fill        string    `json:"fill,omitempty"`
	X           []int64   `json:"x,omitempty"`
	Y           []string  `json:"y,omitempty"`
	Base        []string  `json:"base,omitempty"`
	Orientation string    `json:"orientation,omitempty"`
	HoverText   []string  `json:"hovertext,omitempty"`
	Marker      *Marker   `json:"marker,omitempty"`
	ShowLegend  *bool     `json:"showlegend,omitempty"`
}

// Marker sets the trace colour.
type Marker struct {
	Color string `json:"color,omitempty"`
}

// Layout is the subset of Plotly layout options the dashboard sets.
type Layout struct {
	Polar        *Polar `json:"polar,omitempty"`
	XAxis        *Axis  `json:"xaxis,omitempty"`
	YAxis        *Axis  `json:"yaxis,omitempty"`
	ShowLegend   bool   `json:"showlegend"`
	Height       int    `json:"height,omitempty"`
	BarMode      string `json:"barmode,omitempty"`
	PaperBgColor string `json:"paper_bgcolor,omitempty"`
	PlotBgColor  string `json:"plot_bgcolor,omitempty"`
}

// Polar configures a polar subplot.
type Polar struct {
	RadialAxis Axis `json:"radialaxis"`
}

// Axis configures a single axis.
type Axis struct {
	Visible   *bool     `json:"visible,omitempty"`
	Type      string    `json:"type,omitempty"`
	Range     []float64 `json:"range,omitempty"`
	AutoRange string    `json:"autorange,omitempty"`
}

// InputError reports chart input that cannot be drawn.
type InputError struct {
	Chart string
	Index int
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s input: entry #%d has invalid %s %q", e.Chart, e.Index, e.Field, e.Value)
}
