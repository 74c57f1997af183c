package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Point — вершина многоугольника в экранных координатах.
type Point struct {
	X, Y float32
}

// ShapeRenderer рисует произвольные многоугольники через DrawTriangles,
// переиспользуя буферы вершин между вызовами.
type ShapeRenderer struct {
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func NewShapeRenderer() *ShapeRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &ShapeRenderer{
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
	}
}

// FillPolygon fills the closed polygon through pts.
func (r *ShapeRenderer) FillPolygon(target *ebiten.Image, pts []Point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	path := polygonPath(pts)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, c)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// StrokePolygon outlines the closed polygon through pts.
func (r *ShapeRenderer) StrokePolygon(target *ebiten.Image, pts []Point, width float32, c color.RGBA) {
	if len(pts) < 2 {
		return
	}
	path := polygonPath(pts)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paint(r.strokeVs, c)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// RegularPolygon returns the vertices of a regular n-gon centred on (x, y).
func RegularPolygon(x, y, radius float32, n int, rotation float64) []Point {
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + rotation
		pts = append(pts, Point{
			X: x + radius*float32(math.Cos(angle)),
			Y: y + radius*float32(math.Sin(angle)),
		})
	}
	return pts
}

func polygonPath(pts []Point) *vector.Path {
	path := &vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(p.X, p.Y)
		} else {
			path.LineTo(p.X, p.Y)
		}
	}
	path.Close()
	return path
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	r, g, b, a := colorScale(c)
	for i := range vs {
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}
