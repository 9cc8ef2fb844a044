package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
)

// Style carries the drawing options passed through to a polygon patch.
// The zero value draws a black hairline outline with no fill.
type Style struct {
	Fill      color.Color
	Edge      color.Color
	LineWidth float64
}

// CanvasOptions configure a Canvas. An all-zero viewport selects the
// full-sky degree range [0, 360] x [-90, 90]; a nil Background is white.
type CanvasOptions struct {
	XMin, XMax float64
	YMin, YMax float64
	Background color.Color
}

// Canvas is a fixed-size rectilinear lon/lat plotting surface. It treats
// vertex components as plain x/y magnitudes; the angular unit is whatever
// the vertices were generated in.
type Canvas struct {
	dc         *gg.Context
	xMin, xMax float64
	yMin, yMax float64
}

// NewCanvas returns a cleared canvas of the given pixel size.
func NewCanvas(width, height int, opts CanvasOptions) *Canvas {
	if opts.XMin == 0 && opts.XMax == 0 && opts.YMin == 0 && opts.YMax == 0 {
		opts.XMin, opts.XMax = 0, 360
		opts.YMin, opts.YMax = -90, 90
	}
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{
		dc:   dc,
		xMin: opts.XMin,
		xMax: opts.XMax,
		yMin: opts.YMin,
		yMax: opts.YMax,
	}
}

// project maps a data point to pixel coordinates, y axis flipped so that
// north is up.
func (c *Canvas) project(p orb.Point) (float64, float64) {
	w := float64(c.dc.Width())
	h := float64(c.dc.Height())
	x := (p.Lon() - c.xMin) / (c.xMax - c.xMin) * w
	y := h - (p.Lat()-c.yMin)/(c.yMax-c.yMin)*h
	return x, y
}

// Polygon draws ring as a closed patch, filled and stroked per style.
// Vertices are consumed in order with no resampling or reordering; the
// path is closed back to the first vertex. An empty ring is a no-op.
func (c *Canvas) Polygon(ring orb.Ring, style Style) {
	if len(ring) == 0 {
		return
	}
	x, y := c.project(ring[0])
	c.dc.MoveTo(x, y)
	for _, p := range ring[1:] {
		x, y = c.project(p)
		c.dc.LineTo(x, y)
	}
	c.dc.ClosePath()

	edge := style.Edge
	if style.Fill == nil && edge == nil {
		edge = color.Black
	}
	if style.Fill != nil {
		c.dc.SetColor(style.Fill)
		if edge != nil {
			c.dc.FillPreserve()
		} else {
			c.dc.Fill()
		}
	}
	if edge != nil {
		lw := style.LineWidth
		if lw == 0 {
			lw = 1
		}
		c.dc.SetColor(edge)
		c.dc.SetLineWidth(lw)
		c.dc.Stroke()
	}
}

// Marker draws a filled dot with the given pixel radius at p.
func (c *Canvas) Marker(p orb.Point, radius float64, col color.Color) {
	x, y := c.project(p)
	c.dc.SetColor(col)
	c.dc.DrawCircle(x, y, radius)
	c.dc.Fill()
}

// Label draws s just beside p in the context's default face.
func (c *Canvas) Label(p orb.Point, s string, col color.Color) {
	x, y := c.project(p)
	c.dc.SetColor(col)
	c.dc.DrawString(s, x+4, y-4)
}

// Grid strokes a rectilinear graticule with the given spacing, in the same
// units as the viewport.
func (c *Canvas) Grid(stepX, stepY float64, col color.Color) {
	if stepX <= 0 || stepY <= 0 {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(1)
	for x := c.xMin; x <= c.xMax; x += stepX {
		px, _ := c.project(orb.Point{x, c.yMin})
		c.dc.DrawLine(px, 0, px, float64(c.dc.Height()))
		c.dc.Stroke()
	}
	for y := c.yMin; y <= c.yMax; y += stepY {
		_, py := c.project(orb.Point{c.xMin, y})
		c.dc.DrawLine(0, py, float64(c.dc.Width()), py)
		c.dc.Stroke()
	}
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }
