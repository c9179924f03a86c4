package solid

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Profile is a planar region made of non-overlapping axis-aligned rectangles
type Profile struct {
	rects []r2.Box
}

// Rect returns a rectangle of the given size centered on center
func Rect(center, size r2.Vec) Profile {
	half := r2.Scale(0.5, size)
	return Profile{rects: []r2.Box{{Min: r2.Sub(center, half), Max: r2.Add(center, half)}}}
}

// Ring returns the region of outer that is not covered by inner. Inner must
// lie strictly inside outer.
func Ring(outer, inner Profile) (Profile, error) {
	if len(outer.rects) != 1 || len(inner.rects) != 1 {
		return Profile{}, fmt.Errorf("%w: ring needs single rectangles", ErrDegenerate)
	}
	o, i := outer.rects[0], inner.rects[0]
	if !positive(o) || !positive(i) {
		return Profile{}, fmt.Errorf("%w: ring rectangle has no area", ErrDegenerate)
	}
	if i.Min.X <= o.Min.X || i.Min.Y <= o.Min.Y || i.Max.X >= o.Max.X || i.Max.Y >= o.Max.Y {
		return Profile{}, fmt.Errorf("%w: ring inner %v not inside outer %v", ErrDegenerate, i, o)
	}

	return Profile{rects: []r2.Box{
		{Min: o.Min, Max: r2.Vec{X: o.Max.X, Y: i.Min.Y}},
		{Min: r2.Vec{X: o.Min.X, Y: i.Max.Y}, Max: o.Max},
		{Min: r2.Vec{X: o.Min.X, Y: i.Min.Y}, Max: r2.Vec{X: i.Min.X, Y: i.Max.Y}},
		{Min: r2.Vec{X: i.Max.X, Y: i.Min.Y}, Max: r2.Vec{X: o.Max.X, Y: i.Max.Y}},
	}}, nil
}

// Rects returns a copy of the rectangles making up the profile
func (p Profile) Rects() []r2.Box {
	return append([]r2.Box(nil), p.rects...)
}

// Area returns the enclosed area of the profile
func (p Profile) Area() float64 {
	var a float64
	for _, r := range p.rects {
		a += (r.Max.X - r.Min.X) * (r.Max.Y - r.Min.Y)
	}
	return a
}

func positive(b r2.Box) bool {
	return b.Max.X > b.Min.X && b.Max.Y > b.Min.Y
}
