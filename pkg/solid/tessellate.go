package solid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/ledmatrix/pkg/geometry"
)

const maxArcSegments = 1024

// Tolerance controls how curved surfaces are approximated by triangles
type Tolerance struct {
	Linear  float64 // maximum distance between a chord and its arc
	Angular float64 // maximum angle spanned by one chord, in degrees
}

func (t Tolerance) validate() error {
	if !(t.Linear > 0) || math.IsInf(t.Linear, 0) {
		return fmt.Errorf("%w: linear %v", ErrTolerance, t.Linear)
	}
	if !(t.Angular > 0) || math.IsInf(t.Angular, 0) {
		return fmt.Errorf("%w: angular %v", ErrTolerance, t.Angular)
	}
	return nil
}

// Segments returns the number of chords used for an arc of the given radius
// and sweep (radians)
func (t Tolerance) Segments(radius, sweep float64) int {
	n := int(math.Ceil(sweep/(t.Angular*math.Pi/180) - 1e-9))
	if t.Linear < radius {
		step := 2 * math.Acos(1-t.Linear/radius)
		n = max(n, int(math.Ceil(sweep/step-1e-9)))
	}
	return min(max(n, 1), maxArcSegments)
}

// Tessellate triangulates the boundary of the solid. The result is closed,
// every triangle faces outward, and the order depends only on the solid.
func (s Solid) Tessellate(tol Tolerance) ([]geometry.Triangle, error) {
	if err := tol.validate(); err != nil {
		return nil, err
	}
	if s.Empty() {
		return nil, fmt.Errorf("%w: nothing to tessellate", ErrDegenerate)
	}
	g, err := s.grid()
	if err != nil {
		return nil, err
	}

	m := &mesher{grid: g, tol: tol}
	g.eachFilled(func(i, j, k int) {
		if r, ok := g.rounded[g.index(i, j, k)]; ok {
			m.roundedCell(i, j, k, r)
			return
		}
		m.cell(i, j, k)
	})
	return m.tris, nil
}

type mesher struct {
	*grid
	tol  Tolerance
	tris []geometry.Triangle
}

func (m *mesher) quad(out, a, b, c, d r3.Vec) {
	m.tris = append(m.tris,
		geometry.FacingTriangle(out, a, b, c),
		geometry.FacingTriangle(out, a, c, d),
	)
}

func (m *mesher) xFace(x float64, b r3.Box, dir float64) {
	m.quad(r3.Vec{X: dir},
		r3.Vec{X: x, Y: b.Min.Y, Z: b.Min.Z},
		r3.Vec{X: x, Y: b.Max.Y, Z: b.Min.Z},
		r3.Vec{X: x, Y: b.Max.Y, Z: b.Max.Z},
		r3.Vec{X: x, Y: b.Min.Y, Z: b.Max.Z},
	)
}

func (m *mesher) yFace(y float64, b r3.Box, dir float64) {
	m.quad(r3.Vec{Y: dir},
		r3.Vec{X: b.Min.X, Y: y, Z: b.Min.Z},
		r3.Vec{X: b.Max.X, Y: y, Z: b.Min.Z},
		r3.Vec{X: b.Max.X, Y: y, Z: b.Max.Z},
		r3.Vec{X: b.Min.X, Y: y, Z: b.Max.Z},
	)
}

func (m *mesher) zFace(z float64, b r3.Box, dir float64) {
	m.quad(r3.Vec{Z: dir},
		r3.Vec{X: b.Min.X, Y: b.Min.Y, Z: z},
		r3.Vec{X: b.Max.X, Y: b.Min.Y, Z: z},
		r3.Vec{X: b.Max.X, Y: b.Max.Y, Z: z},
		r3.Vec{X: b.Min.X, Y: b.Max.Y, Z: z},
	)
}

// cell emits the faces of a box cell that border empty space
func (m *mesher) cell(i, j, k int) {
	b := m.cellBox(i, j, k)
	if !m.at(i-1, j, k) {
		m.xFace(b.Min.X, b, -1)
	}
	if !m.at(i+1, j, k) {
		m.xFace(b.Max.X, b, 1)
	}
	if !m.at(i, j-1, k) {
		m.yFace(b.Min.Y, b, -1)
	}
	if !m.at(i, j+1, k) {
		m.yFace(b.Max.Y, b, 1)
	}
	if !m.at(i, j, k-1) {
		m.zFace(b.Min.Z, b, -1)
	}
	if !m.at(i, j, k+1) {
		m.zFace(b.Max.Z, b, 1)
	}
}

// roundedCell emits a quarter cylinder cell. Its two outer faces are
// replaced by the arc; the inner faces and caps follow the box rules.
func (m *mesher) roundedCell(i, j, k int, r round) {
	b := m.cellBox(i, j, k)
	sx, sy := float64(r.sx), float64(r.sy)

	center := r2.Vec{X: b.Min.X, Y: b.Min.Y}
	edge := r2.Vec{X: b.Max.X, Y: b.Max.Y}
	if r.sx < 0 {
		center.X, edge.X = b.Max.X, b.Min.X
	}
	if r.sy < 0 {
		center.Y, edge.Y = b.Max.Y, b.Min.Y
	}

	if !m.at(i-r.sx, j, k) {
		m.xFace(center.X, b, -sx)
	}
	if !m.at(i, j-r.sy, k) {
		m.yFace(center.Y, b, -sy)
	}

	arc := m.arc(center, edge, sx, sy)
	n := len(arc) - 1
	for s := 0; s < n; s++ {
		mid := (float64(s) + 0.5) / float64(n) * math.Pi / 2
		out := r3.Vec{X: sx * math.Cos(mid), Y: sy * math.Sin(mid)}
		a, c := arc[s], arc[s+1]
		m.quad(out,
			r3.Vec{X: a.X, Y: a.Y, Z: b.Min.Z},
			r3.Vec{X: c.X, Y: c.Y, Z: b.Min.Z},
			r3.Vec{X: c.X, Y: c.Y, Z: b.Max.Z},
			r3.Vec{X: a.X, Y: a.Y, Z: b.Max.Z},
		)
	}

	if !m.at(i, j, k-1) {
		m.fan(center, arc, b.Min.Z, -1)
	}
	if !m.at(i, j, k+1) {
		m.fan(center, arc, b.Max.Z, 1)
	}
}

// arc returns the chord points from the edge point on the x face to the
// edge point on the y face. The end points are taken from the grid so that
// they coincide exactly with neighbouring cells.
func (m *mesher) arc(center, edge r2.Vec, sx, sy float64) []r2.Vec {
	rx, ry := math.Abs(edge.X-center.X), math.Abs(edge.Y-center.Y)
	n := m.tol.Segments(math.Min(rx, ry), math.Pi/2)

	pts := make([]r2.Vec, n+1)
	pts[0] = r2.Vec{X: edge.X, Y: center.Y}
	for s := 1; s < n; s++ {
		t := float64(s) / float64(n) * math.Pi / 2
		pts[s] = r2.Vec{X: center.X + sx*rx*math.Cos(t), Y: center.Y + sy*ry*math.Sin(t)}
	}
	pts[n] = r2.Vec{X: center.X, Y: edge.Y}
	return pts
}

func (m *mesher) fan(center r2.Vec, arc []r2.Vec, z, dir float64) {
	c := r3.Vec{X: center.X, Y: center.Y, Z: z}
	out := r3.Vec{Z: dir}
	for s := 0; s+1 < len(arc); s++ {
		m.tris = append(m.tris, geometry.FacingTriangle(out,
			c,
			r3.Vec{X: arc[s].X, Y: arc[s].Y, Z: z},
			r3.Vec{X: arc[s+1].X, Y: arc[s+1].Y, Z: z},
		))
	}
}
