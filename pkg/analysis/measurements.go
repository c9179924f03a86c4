package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/ledmatrix/pkg/geometry"
	"github.com/philipparndt/ledmatrix/pkg/stl"
)

// EdgeInfo contains information about an edge in the model
type EdgeInfo struct {
	Start      r3.Vec
	End        r3.Vec
	Length     float64
	TriangleID int
}

// MeasurementResult contains various measurements of an STL model
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    r3.Vec
	Volume        float64 // enclosed volume, meaningful for closed meshes
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	OpenEdges     int // directed edges without an opposite partner
	AllEdges      []EdgeInfo
}

// Watertight reports whether every edge is shared by two consistently
// oriented triangles
func (r *MeasurementResult) Watertight() bool {
	return r.TriangleCount > 0 && r.OpenEdges == 0
}

type edgeKey struct {
	from, to r3.Vec
}

// AnalyzeModel performs comprehensive analysis on an STL model
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		Volume:        model.Volume(),
		TriangleCount: model.TriangleCount(),
		AllEdges:      make([]EdgeInfo, 0, 3*model.TriangleCount()),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	directed := make(map[edgeKey]int, 3*model.TriangleCount())

	for i, triangle := range model.Triangles {
		edges := [3][2]r3.Vec{
			{triangle.V1, triangle.V2},
			{triangle.V2, triangle.V3},
			{triangle.V3, triangle.V1},
		}

		for _, edge := range edges {
			length := r3.Norm(r3.Sub(edge[1], edge[0]))
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:      edge[0],
				End:        edge[1],
				Length:     length,
				TriangleID: i,
			})
			directed[edgeKey{edge[0], edge[1]}]++

			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
		}
	}

	for key, n := range directed {
		if directed[edgeKey{key.to, key.from}] != n {
			result.OpenEdges++
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// VerticesNear returns the distinct vertices within radius of a point, in
// first-seen order
func VerticesNear(model *stl.Model, point r3.Vec, radius float64) []r3.Vec {
	seen := make(map[r3.Vec]bool)
	var out []r3.Vec
	for _, triangle := range model.Triangles {
		for _, v := range [3]r3.Vec{triangle.V1, triangle.V2, triangle.V3} {
			if seen[v] || r3.Norm(r3.Sub(v, point)) > radius {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v r3.Vec) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
