package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"

	"github.com/katalvlaran/cfgraph/coordinate"
)

// Heuristic text-measurement constants, grounded on stacktower's
// styles.FontSize/TruncateLabel: absent an actual font metrics table,
// width is estimated from a fixed average character-width ratio of the
// requested font size.
const (
	charWidthRatio = 0.55
	minMeasuredW   = 1
)

// Option configures an SVGRenderer under construction.
type Option func(*SVGRenderer)

// WithBackground sets the canvas background fill. The zero Color (fully
// transparent) omits the background rectangle entirely.
func WithBackground(c Color) Option {
	return func(r *SVGRenderer) { r.background = c }
}

// WithCanvasSize pins the rendered viewBox instead of letting it grow
// to fit whatever has been drawn.
func WithCanvasSize(w, h int) Option {
	return func(r *SVGRenderer) { r.fixedW, r.fixedH = w, h }
}

// SVGRenderer is an ExportingRenderer that accumulates SVG markup in
// memory and writes it out as a single document, grounded on
// stacktower's sink.RenderSVG (buffer-based element emission, viewBox
// sized to content, one <svg> wrapper).
type SVGRenderer struct {
	buf        bytes.Buffer
	maxX, maxY int
	background Color
	fixedW     int
	fixedH     int
}

// NewSVGRenderer returns an empty SVGRenderer ready to accept draw
// calls.
func NewSVGRenderer(opts ...Option) *SVGRenderer {
	r := &SVGRenderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SVGRenderer) track(points ...coordinate.Point) {
	for _, p := range points {
		if p.X > r.maxX {
			r.maxX = p.X
		}
		if p.Y > r.maxY {
			r.maxY = p.Y
		}
	}
}

func colorAttr(c Color) string {
	if c.A == 0 {
		return "none"
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

func (r *SVGRenderer) DrawLine(p0, p1 coordinate.Point, stroke Stroke) {
	r.track(p0, p1)
	fmt.Fprintf(&r.buf, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%.2f" />`+"\n",
		p0.X, p0.Y, p1.X, p1.Y, colorAttr(stroke.Color), stroke.Thickness)
}

func (r *SVGRenderer) DrawTriangle(v1, v2, v3 coordinate.Point, fill Color) {
	r.track(v1, v2, v3)
	fmt.Fprintf(&r.buf, `<polygon points="%d,%d %d,%d %d,%d" fill="%s" />`+"\n",
		v1.X, v1.Y, v2.X, v2.Y, v3.X, v3.Y, colorAttr(fill))
}

func (r *SVGRenderer) DrawRectangle(topLeft coordinate.Point, w, h int, fill Color) {
	r.track(topLeft, coordinate.Point{X: topLeft.X + w, Y: topLeft.Y + h})
	fmt.Fprintf(&r.buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" />`+"\n",
		topLeft.X, topLeft.Y, w, h, colorAttr(fill))
}

func (r *SVGRenderer) DrawRectangleBorder(topLeft coordinate.Point, w, h int, stroke Stroke) {
	r.track(topLeft, coordinate.Point{X: topLeft.X + w, Y: topLeft.Y + h})
	fmt.Fprintf(&r.buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="%.2f" />`+"\n",
		topLeft.X, topLeft.Y, w, h, colorAttr(stroke.Color), stroke.Thickness)
}

func (r *SVGRenderer) DrawText(topLeft coordinate.Point, text string, style TextStyle) {
	w, h := r.MeasureText(text, style)
	r.track(topLeft, coordinate.Point{X: topLeft.X + w, Y: topLeft.Y + h})
	baseline := topLeft.Y + int(style.Size)
	fmt.Fprintf(&r.buf, `<text x="%d" y="%d" font-size="%.1f" fill="%s">%s</text>`+"\n",
		topLeft.X, baseline, style.Size, colorAttr(style.Color), escapeXML(text))
}

// MeasureText estimates the pixel footprint of text set in style,
// using a fixed average-character-width ratio rather than a real font
// metrics table (no pack library supplies one; see DESIGN.md).
func (r *SVGRenderer) MeasureText(text string, style TextStyle) (w, h int) {
	n := len([]rune(text))
	if n == 0 {
		n = 1
	}
	w = int(float64(n) * style.Size * charWidthRatio)
	if w < minMeasuredW {
		w = minMeasuredW
	}
	lineHeight := style.LineHeight
	if lineHeight == 0 {
		lineHeight = style.Size
	}
	h = int(lineHeight)
	if h < minMeasuredW {
		h = minMeasuredW
	}
	return w, h
}

// Save renders the accumulated document and writes it to path.
func (r *SVGRenderer) Save(path string) error {
	return os.WriteFile(path, r.Bytes(), 0o644)
}

// Bytes returns the complete SVG document for the shapes drawn so far.
func (r *SVGRenderer) Bytes() []byte {
	width, height := r.fixedW, r.fixedH
	if width == 0 {
		width = r.maxX
	}
	if height == 0 {
		height = r.maxY
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	if r.background.A != 0 {
		fmt.Fprintf(&out, `<rect x="0" y="0" width="%d" height="%d" fill="%s" />`+"\n",
			width, height, colorAttr(r.background))
	}
	out.Write(r.buf.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
