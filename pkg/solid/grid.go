package solid

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// grid is the coordinate-compressed cell decomposition of a solid. Every
// box and rounded edge boundary lies on a grid line, so each cell is either
// completely inside or completely outside the solid.
type grid struct {
	xs, ys, zs []float64
	nx, ny, nz int
	filled     []bool
	rounded    map[int]round
}

func (s Solid) grid() (*grid, error) {
	var xs, ys, zs []float64
	for _, b := range s.boxes {
		if !finite(b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z) {
			return nil, fmt.Errorf("%w: box %v", ErrDegenerate, b)
		}
		xs = append(xs, b.Min.X, b.Max.X)
		ys = append(ys, b.Min.Y, b.Max.Y)
		zs = append(zs, b.Min.Z, b.Max.Z)
	}
	for _, r := range s.rounds {
		xs = append(xs, r.x, r.centerX())
		ys = append(ys, r.y, r.centerY())
		zs = append(zs, r.z0, r.z1)
	}

	g := &grid{
		xs:      compress(xs),
		ys:      compress(ys),
		zs:      compress(zs),
		rounded: make(map[int]round),
	}
	g.nx, g.ny, g.nz = len(g.xs)-1, len(g.ys)-1, len(g.zs)-1
	if g.nx < 1 || g.ny < 1 || g.nz < 1 {
		return nil, fmt.Errorf("%w: solid has no volume", ErrDegenerate)
	}
	g.filled = make([]bool, g.nx*g.ny*g.nz)

	for _, b := range s.boxes {
		g.fill(b)
	}
	for _, r := range s.rounds {
		if err := g.round(r); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// compress sorts the coordinates and merges values closer than snap
func compress(vs []float64) []float64 {
	sorted := append([]float64(nil), vs...)
	sort.Float64s(sorted)

	out := make([]float64, 0, len(sorted))
	for _, v := range sorted {
		if len(out) == 0 || v-out[len(out)-1] > snap {
			out = append(out, v)
		}
	}
	return out
}

// find returns the index of the grid line at v, or -1
func find(lines []float64, v float64) int {
	i := sort.SearchFloat64s(lines, v-snap)
	if i < len(lines) && math.Abs(lines[i]-v) <= snap {
		return i
	}
	return -1
}

func (g *grid) index(i, j, k int) int {
	return (k*g.ny+j)*g.nx + i
}

// at reports whether a cell is solid; cells outside the grid are empty
func (g *grid) at(i, j, k int) bool {
	if i < 0 || j < 0 || k < 0 || i >= g.nx || j >= g.ny || k >= g.nz {
		return false
	}
	return g.filled[g.index(i, j, k)]
}

func (g *grid) fill(b r3.Box) {
	i0, i1 := find(g.xs, b.Min.X), find(g.xs, b.Max.X)
	j0, j1 := find(g.ys, b.Min.Y), find(g.ys, b.Max.Y)
	k0, k1 := find(g.zs, b.Min.Z), find(g.zs, b.Max.Z)
	for k := k0; k < k1; k++ {
		for j := j0; j < j1; j++ {
			for i := i0; i < i1; i++ {
				g.filled[g.index(i, j, k)] = true
			}
		}
	}
}

// eachFilled visits solid cells in z, y, x order
func (g *grid) eachFilled(fn func(i, j, k int)) {
	for k := 0; k < g.nz; k++ {
		for j := 0; j < g.ny; j++ {
			for i := 0; i < g.nx; i++ {
				if g.filled[g.index(i, j, k)] {
					fn(i, j, k)
				}
			}
		}
	}
}

// cellBox returns the extent of a cell
func (g *grid) cellBox(i, j, k int) r3.Box {
	return r3.Box{
		Min: r3.Vec{X: g.xs[i], Y: g.ys[j], Z: g.zs[k]},
		Max: r3.Vec{X: g.xs[i+1], Y: g.ys[j+1], Z: g.zs[k+1]},
	}
}
