package render

import "github.com/katalvlaran/cfgraph/coordinate"

// Color is an RGBA color in byte components, per spec.md §6.
type Color struct {
	R, G, B, A uint8
}

// Stroke is a line style: width and color.
type Stroke struct {
	Thickness float64
	Color     Color
}

// TextStyle is a text style: font size, line height, and color.
type TextStyle struct {
	Size       float64
	LineHeight float64
	Color      Color
}

// Renderer draws the primitive shapes a CFGLayout is built from onto
// some backend surface, and measures text so the layout builder can
// size label nodes before running the pipeline.
type Renderer interface {
	DrawLine(p0, p1 coordinate.Point, stroke Stroke)
	DrawTriangle(v1, v2, v3 coordinate.Point, fill Color)
	DrawRectangle(topLeft coordinate.Point, w, h int, fill Color)
	DrawRectangleBorder(topLeft coordinate.Point, w, h int, stroke Stroke)
	DrawText(topLeft coordinate.Point, text string, style TextStyle)
	MeasureText(text string, style TextStyle) (w, h int)
}

// ExportingRenderer is a Renderer that can also persist what it drew.
type ExportingRenderer interface {
	Renderer
	Save(path string) error
}
