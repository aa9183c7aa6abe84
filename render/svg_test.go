package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/cfgraph/coordinate"
	"github.com/katalvlaran/cfgraph/render"
	"github.com/stretchr/testify/require"
)

func TestSVGRendererImplementsExportingRenderer(t *testing.T) {
	var _ render.ExportingRenderer = render.NewSVGRenderer()
}

func TestSVGRendererDrawsIntoGrowingViewBox(t *testing.T) {
	r := render.NewSVGRenderer()
	r.DrawRectangle(coordinate.Point{X: 10, Y: 10}, 50, 20, render.Color{R: 255, A: 255})
	r.DrawLine(coordinate.Point{X: 0, Y: 0}, coordinate.Point{X: 100, Y: 40}, render.Stroke{Thickness: 1, Color: render.Color{A: 255}})

	doc := string(r.Bytes())
	require.Contains(t, doc, "<svg")
	require.Contains(t, doc, "<rect")
	require.Contains(t, doc, "<line")
	require.Contains(t, doc, `viewBox="0 0 100 40"`)
}

func TestSVGRendererMeasureTextScalesWithLength(t *testing.T) {
	r := render.NewSVGRenderer()
	style := render.TextStyle{Size: 12, Color: render.Color{A: 255}}
	shortW, _ := r.MeasureText("a", style)
	longW, _ := r.MeasureText("a much longer label", style)
	require.Greater(t, longW, shortW)
}

func TestSVGRendererSaveWritesFile(t *testing.T) {
	r := render.NewSVGRenderer()
	r.DrawRectangle(coordinate.Point{X: 0, Y: 0}, 10, 10, render.Color{A: 255})

	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, r.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")
}

func TestSVGRendererEscapesText(t *testing.T) {
	r := render.NewSVGRenderer()
	r.DrawText(coordinate.Point{X: 0, Y: 0}, "a < b && c", render.TextStyle{Size: 10, Color: render.Color{A: 255}})
	require.Contains(t, string(r.Bytes()), "&lt;")
}
