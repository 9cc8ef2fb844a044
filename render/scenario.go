// render/scenario.go
package render

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/signalsfoundry/skyplot"
	"github.com/signalsfoundry/skyplot/angle"
)

// ChartScenario is a small summary of what was drawn from JSON.
// It's mainly useful for logging or debugging from main().
type ChartScenario struct {
	Circles int
	Markers int
}

// internal JSON shapes - keep them unexported so the file format can evolve.
type chartScenarioJSON struct {
	Circles []chartCircleJSON `json:"circles"`
	Markers []chartMarkerJSON `json:"markers"`
}

type chartCircleJSON struct {
	Lon        float64 `json:"lon"`
	Lat        float64 `json:"lat"`
	Radius     float64 `json:"radius"`
	Unit       string  `json:"unit"`       // "deg" | "rad"; empty means deg
	Resolution int     `json:"resolution"` // 0 means the generator default
	Fill       string  `json:"fill"`       // hex such as "#22aa5540"; empty means no fill
	Edge       string  `json:"edge"`       // hex; empty means no edge
	LineWidth  float64 `json:"line_width"`
}

type chartMarkerJSON struct {
	Lon   float64 `json:"lon"`
	Lat   float64 `json:"lat"`
	Size  float64 `json:"size"` // pixel radius; 0 means 2
	Color string  `json:"color"`
	Label string  `json:"label"`
}

// LoadChart reads a JSON chart description from r and draws it onto c,
// returning a summary of what was drawn.
//
// Circle vertices are generated in the unit each entry declares, so the
// file is expected to agree with the canvas viewport's unit. Structural
// problems, unknown units, and malformed colors fail with the index of
// the offending entry.
func LoadChart(c *Canvas, r io.Reader) (*ChartScenario, error) {
	if c == nil {
		return nil, fmt.Errorf("LoadChart: canvas is nil")
	}

	var payload chartScenarioJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadChart: decode failed: %w", err)
	}

	result := &ChartScenario{}

	// 1) Circles
	for i, jc := range payload.Circles {
		unit := angle.Degree
		if jc.Unit != "" {
			var err error
			unit, err = angle.ParseUnit(jc.Unit)
			if err != nil {
				return nil, fmt.Errorf("LoadChart: circle %d: %w", i, err)
			}
		}

		var center skyplot.Coord
		var radius angle.Angle
		if unit == angle.Radian {
			center = skyplot.Coord{Lon: angle.Radians(jc.Lon), Lat: angle.Radians(jc.Lat)}
			radius = angle.Radians(jc.Radius)
		} else {
			center = skyplot.Coord{Lon: angle.Degrees(jc.Lon), Lat: angle.Degrees(jc.Lat)}
			radius = angle.Degrees(jc.Radius)
		}

		ring, err := skyplot.Circle(center, radius, skyplot.CircleOptions{
			Resolution: jc.Resolution,
			Unit:       unit,
		})
		if err != nil {
			return nil, fmt.Errorf("LoadChart: circle %d: %w", i, err)
		}

		style := Style{LineWidth: jc.LineWidth}
		if jc.Fill != "" {
			if style.Fill, err = parseHexColor(jc.Fill); err != nil {
				return nil, fmt.Errorf("LoadChart: circle %d: %w", i, err)
			}
		}
		if jc.Edge != "" {
			if style.Edge, err = parseHexColor(jc.Edge); err != nil {
				return nil, fmt.Errorf("LoadChart: circle %d: %w", i, err)
			}
		}

		c.Polygon(ring, style)
		result.Circles++
	}

	// 2) Markers
	for i, jm := range payload.Markers {
		col := color.Color(color.Black)
		if jm.Color != "" {
			var err error
			col, err = parseHexColor(jm.Color)
			if err != nil {
				return nil, fmt.Errorf("LoadChart: marker %d: %w", i, err)
			}
		}
		size := jm.Size
		if size == 0 {
			size = 2
		}

		p := orb.Point{jm.Lon, jm.Lat}
		c.Marker(p, size, col)
		if jm.Label != "" {
			c.Label(p, jm.Label, col)
		}
		result.Markers++
	}

	return result, nil
}

// parseHexColor reads "#rrggbb" or "#rrggbbaa", leading '#' optional.
func parseHexColor(s string) (color.Color, error) {
	hexs := strings.TrimPrefix(s, "#")
	if len(hexs) != 6 && len(hexs) != 8 {
		return nil, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(hexs, 16, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed color %q", s)
	}
	c := color.RGBA{A: 0xff}
	if len(hexs) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}
