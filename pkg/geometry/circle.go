package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// CircleFit represents the result of fitting a circle to planar points
type CircleFit struct {
	Center r2.Vec  // Circle center
	Radius float64 // Circle radius
	StdDev float64 // Standard deviation of fit (quality measure)
}

// FitCircle fits a circle through the first, middle and last point and
// reports how far the remaining points deviate from it.
//
// Uses the 3-point determinant formula:
//
//	D = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func FitCircle(points []r2.Vec) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle")
	}

	p1 := points[0]
	p2 := points[len(points)/2]
	p3 := points[len(points)-1]

	d := 2.0 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	if math.Abs(d) < 1e-10 {
		return nil, fmt.Errorf("points are collinear")
	}

	s1 := r2.Dot(p1, p1)
	s2 := r2.Dot(p2, p2)
	s3 := r2.Dot(p3, p3)

	center := r2.Vec{
		X: (s1*(p2.Y-p3.Y) + s2*(p3.Y-p1.Y) + s3*(p1.Y-p2.Y)) / d,
		Y: (s1*(p3.X-p2.X) + s2*(p1.X-p3.X) + s3*(p2.X-p1.X)) / d,
	}
	radius := r2.Norm(r2.Sub(p1, center))

	var sumError float64
	for _, p := range points {
		e := r2.Norm(r2.Sub(p, center)) - radius
		sumError += e * e
	}

	return &CircleFit{
		Center: center,
		Radius: radius,
		StdDev: math.Sqrt(sumError / float64(len(points))),
	}, nil
}
