package geometry

import "gonum.org/v1/gonum/spatial/r3"

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     r3.Vec
	V1, V2, V3 r3.Vec
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 r3.Vec) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// FacingTriangle creates a triangle wound counter-clockwise when seen from
// the outward direction. The stored normal is the unit face normal.
func FacingTriangle(outward, v1, v2, v3 r3.Vec) Triangle {
	t := Triangle{V1: v1, V2: v2, V3: v3}
	n := t.CalculateNormal()
	if r3.Dot(n, outward) < 0 {
		t.V2, t.V3 = t.V3, t.V2
		n = r3.Scale(-1, n)
	}
	t.Normal = n
	return t
}

// CalculateNormal computes the normal vector for the triangle
func (t Triangle) CalculateNormal() r3.Vec {
	cross := r3.Cross(r3.Sub(t.V2, t.V1), r3.Sub(t.V3, t.V1))
	if r3.Norm(cross) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(cross)
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return r3.Norm(r3.Cross(r3.Sub(t.V2, t.V1), r3.Sub(t.V3, t.V1))) / 2.0
}

// SignedVolume returns the signed volume of the tetrahedron spanned by the
// triangle and the origin. Summed over a closed mesh it yields the enclosed volume.
func (t Triangle) SignedVolume() float64 {
	return r3.Dot(t.V1, r3.Cross(t.V2, t.V3)) / 6.0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		r3.Norm(r3.Sub(t.V2, t.V1)),
		r3.Norm(r3.Sub(t.V3, t.V2)),
		r3.Norm(r3.Sub(t.V1, t.V3)),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() r3.Vec {
	return r3.Scale(1.0/3.0, r3.Add(r3.Add(t.V1, t.V2), t.V3))
}
