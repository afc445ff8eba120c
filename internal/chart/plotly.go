package chart

import (
	"strconv"
	"time"

	"github.com/yaswanthreddy/portfolio/internal/types"
)

const (
	// MaxSkillLevel is the outer ring of the radar chart.
	MaxSkillLevel = 10

	dateLayout  = "2006-01-02"
	transparent = "rgba(0,0,0,0)"
)

var timelineColors = []string{"#3498db", "#2ecc71", "#9b59b6"}

// Plotly renders figures as Plotly.js JSON.
type Plotly struct {
	// TimelineHeight is the timeline plot height in pixels. Zero uses 200.
	TimelineHeight int
}

var _ Charter = Plotly{}

// SkillRadar returns a closed, filled scatterpolar trace with the radial axis fixed to 0-10.
func (p Plotly) SkillRadar(skills []types.Skill) (Figure, error) {
	visible := true
	fig := Figure{
		Data: []Trace{},
		Layout: Layout{
			Polar: &Polar{RadialAxis: Axis{
				Visible: &visible,
				Range:   []float64{0, MaxSkillLevel},
			}},
			PaperBgColor: transparent,
			PlotBgColor:  transparent,
		},
	}
	if len(skills) == 0 {
		return fig, nil
	}

	r := make([]float64, 0, len(skills)+1)
	theta := make([]string, 0, len(skills)+1)
	for i, s := range skills {
		if !(s.Level >= 0 && s.Level <= MaxSkillLevel) {
			return Figure{}, &InputError{
				Chart: "skill radar",
				Index: i,
				Field: "level",
				Value: strconv.FormatFloat(s.Level, 'g', -1, 64),
			}
		}
		r = append(r, s.Level)
		theta = append(theta, s.Name)
	}
	// repeat the first point so the outline closes
	r = append(r, r[0])
	theta = append(theta, theta[0])

	fig.Data = append(fig.Data, Trace{
		Type:  "scatterpolar",
		Name:  "Skills",
		R:     r,
		Theta: theta,
		Fill:  "toself",
	})
	return fig, nil
}

// Timeline returns a Gantt chart: one horizontal bar per entry, in input order,
// starting at the entry's start date with a length of its duration.
func (p Plotly) Timeline(entries []types.TimelineEntry) (Figure, error) {
	height := p.TimelineHeight
	if height == 0 {
		height = 200
	}
	fig := Figure{
		Data: []Trace{},
		Layout: Layout{
			XAxis:   &Axis{Type: "date"},
			YAxis:   &Axis{AutoRange: "reversed"},
			Height:  height,
			BarMode: "overlay",
		},
	}

	seenRole := make(map[string]bool)
	for i, e := range entries {
		start, err := time.Parse(dateLayout, e.Start)
		if err != nil {
			return Figure{}, &InputError{Chart: "timeline", Index: i, Field: "start", Value: e.Start}
		}
		end, err := time.Parse(dateLayout, e.End)
		if err != nil {
			return Figure{}, &InputError{Chart: "timeline", Index: i, Field: "end", Value: e.End}
		}
		if end.Before(start) {
			return Figure{}, &InputError{Chart: "timeline", Index: i, Field: "end", Value: e.End}
		}

		name := e.Role
		if name == "" {
			name = e.Task
		}
		// one legend entry per role
		showLegend := !seenRole[name]
		seenRole[name] = true

		fig.Data = append(fig.Data, Trace{
			Type:        "bar",
			Name:        name,
			Orientation: "h",
			Base:        []string{e.Start},
			X:           []int64{end.Sub(start).Milliseconds()},
			Y:           []string{e.Task},
			HoverText:   []string{e.Task + ": " + e.Start + " to " + e.End},
			Marker:      &Marker{Color: timelineColors[i%len(timelineColors)]},
			ShowLegend:  &showLegend,
		})
	}
	if len(fig.Data) > 0 {
		fig.Layout.ShowLegend = true
	}
	return fig, nil
}
