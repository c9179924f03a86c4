package solid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/ledmatrix/pkg/analysis"
	"github.com/philipparndt/ledmatrix/pkg/geometry"
	"github.com/philipparndt/ledmatrix/pkg/stl"
)

var fine = Tolerance{Linear: 0.99, Angular: 2}

func box(t *testing.T, cx, cy, w, d, z0, h float64) Solid {
	t.Helper()
	s, err := Extrude(Rect(r2.Vec{X: cx, Y: cy}, r2.Vec{X: w, Y: d}), z0, h)
	require.NoError(t, err)
	return s
}

func analyze(t *testing.T, s Solid) *analysis.MeasurementResult {
	t.Helper()
	tris, err := s.Tessellate(fine)
	require.NoError(t, err)
	m := stl.NewModel("test")
	m.Triangles = tris
	return analysis.AnalyzeModel(m)
}

func TestExtrudeSingleBox(t *testing.T) {
	s := box(t, 0, 0, 4, 2, 1, 3)

	b := s.Bounds()
	assert.Equal(t, r3.Vec{X: -2, Y: -1, Z: 1}, b.Min)
	assert.Equal(t, r3.Vec{X: 2, Y: 1, Z: 4}, b.Max)

	result := analyze(t, s)
	assert.Equal(t, 12, result.TriangleCount)
	assert.True(t, result.Watertight())
	assert.InDelta(t, 24.0, result.Volume, 1e-9)
}

func TestExtrudeRejectsDegenerateInput(t *testing.T) {
	_, err := Extrude(Rect(r2.Vec{}, r2.Vec{X: 1, Y: 1}), 0, 0)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Extrude(Rect(r2.Vec{}, r2.Vec{X: 0, Y: 1}), 0, 1)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Extrude(Profile{}, 0, 1)
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Extrude(Rect(r2.Vec{}, r2.Vec{X: math.NaN(), Y: 1}), 0, 1)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestRing(t *testing.T) {
	ring, err := Ring(Rect(r2.Vec{}, r2.Vec{X: 10, Y: 8}), Rect(r2.Vec{}, r2.Vec{X: 6, Y: 4}))
	require.NoError(t, err)
	assert.Len(t, ring.Rects(), 4)
	assert.InDelta(t, 80.0-24.0, ring.Area(), 1e-12)

	s, err := Extrude(ring, 0, 2)
	require.NoError(t, err)
	result := analyze(t, s)
	assert.True(t, result.Watertight())
	assert.InDelta(t, 112.0, result.Volume, 1e-9)
}

func TestRingRejectsInnerOutside(t *testing.T) {
	_, err := Ring(Rect(r2.Vec{}, r2.Vec{X: 4, Y: 4}), Rect(r2.Vec{}, r2.Vec{X: 4, Y: 2}))
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestUnionMergesCoincidentFaces(t *testing.T) {
	a := box(t, 0, 0, 2, 2, 0, 1)
	b := box(t, 2, 0, 2, 2, 0, 1)

	result := analyze(t, Union(a, b))
	assert.True(t, result.Watertight())
	assert.InDelta(t, 8.0, result.Volume, 1e-9)
	// no internal wall at x=1: 2 cells give 2*(4 side quads) + 2*(2 caps) = 10 quads
	assert.Equal(t, 20, result.TriangleCount)
}

func TestUnionOverlapIsCommutative(t *testing.T) {
	a := box(t, 0, 0, 4, 1, 0, 2)
	b := box(t, 0, 0, 1, 4, 0, 3)

	ab, err := Union(a, b).Volume()
	require.NoError(t, err)
	ba, err := Union(b, a).Volume()
	require.NoError(t, err)

	assert.InDelta(t, 8+12-2, ab, 1e-9)
	assert.Equal(t, ab, ba)

	result := analyze(t, Union(b, a))
	assert.True(t, result.Watertight())
	assert.InDelta(t, ab, result.Volume, 1e-9)
}

func TestTranslateDoesNotModifyReceiver(t *testing.T) {
	a := box(t, 0, 0, 2, 2, 0, 1)
	moved := a.Translate(r3.Vec{X: 5, Z: 1})

	assert.Equal(t, r3.Vec{X: -1, Y: -1}, a.Bounds().Min)
	assert.Equal(t, r3.Vec{X: 4, Y: -1, Z: 1}, moved.Bounds().Min)
}

func TestReplicate(t *testing.T) {
	wall := box(t, 0, 0, 1, 10, 0, 2)
	set := Replicate(wall, []r3.Vec{{X: -3}, {X: 0}, {X: 3}})

	v, err := set.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 60.0, v, 1e-9)
	assert.InDelta(t, 7.0, set.Bounds().Max.X-set.Bounds().Min.X, 1e-12)

	assert.True(t, Replicate(wall, nil).Empty())
}

func TestTessellateEmptySolid(t *testing.T) {
	_, err := Solid{}.Tessellate(fine)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestTessellateRejectsBadTolerance(t *testing.T) {
	s := box(t, 0, 0, 1, 1, 0, 1)

	_, err := s.Tessellate(Tolerance{Linear: 0, Angular: 2})
	assert.ErrorIs(t, err, ErrTolerance)
	_, err = s.Tessellate(Tolerance{Linear: 0.1, Angular: -1})
	assert.ErrorIs(t, err, ErrTolerance)
}

func TestSegments(t *testing.T) {
	assert.Equal(t, 45, fine.Segments(1.2, math.Pi/2))

	tight := Tolerance{Linear: 0.01, Angular: 90}
	n := tight.Segments(1.2, math.Pi/2)
	deviation := 1.2 * (1 - math.Cos(math.Pi/2/float64(n)/2))
	assert.LessOrEqual(t, deviation, 0.01)
	assert.Greater(t, n, 1)

	assert.Equal(t, 1, Tolerance{Linear: 5, Angular: 180}.Segments(1.2, math.Pi/2))
}

func TestFilletVerticalEdgesOnExtremeX(t *testing.T) {
	const r = 1.2
	s := box(t, 0, 0, 10, 6, 0, 2)

	rounded, err := s.Fillet(VerticalOnExtremeX, r)
	require.NoError(t, err)
	assert.Equal(t, s.Bounds(), rounded.Bounds())

	v, err := rounded.Volume()
	require.NoError(t, err)
	assert.InDelta(t, 120-4*(1-math.Pi/4)*r*r*2, v, 1e-9)

	result := analyze(t, rounded)
	assert.True(t, result.Watertight())
	assert.InDelta(t, v, result.Volume, 0.01)
	assert.Equal(t, r3.Vec{X: 10, Y: 6, Z: 2}, result.Dimensions)
}

func TestFilletArcHasRadius(t *testing.T) {
	const r = 1.2
	s := box(t, 0, 0, 10, 10, 0, 3)
	rounded, err := s.Fillet(VerticalOnExtremeX, r)
	require.NoError(t, err)

	tris, err := rounded.Tessellate(fine)
	require.NoError(t, err)
	m := stl.NewModel("arc")
	m.Triangles = tris

	near := analysis.VerticesNear(m, r3.Vec{X: 5, Y: 5, Z: 3}, r*1.001)
	require.Len(t, near, fine.Segments(r, math.Pi/2)+1)

	points := make([]r2.Vec, len(near))
	for i, p := range near {
		points[i] = r2.Vec{X: p.X, Y: p.Y}
	}
	fit, err := geometry.FitCircle(points)
	require.NoError(t, err)
	assert.InDelta(t, r, fit.Radius, 1e-9)
	assert.InDelta(t, 5-r, fit.Center.X, 1e-9)
	assert.InDelta(t, 5-r, fit.Center.Y, 1e-9)
}

func TestFilletRadiusTooLarge(t *testing.T) {
	s := box(t, 0, 0, 10, 10, 0, 2)
	_, err := s.Fillet(VerticalOnExtremeX, 6)
	assert.ErrorIs(t, err, ErrFillet)
}

func TestFilletCrossingFeatureFails(t *testing.T) {
	s := Union(box(t, 0, 0, 10, 10, 0, 2), box(t, 4.5, 0, 1, 10, 0, 1))
	_, err := s.Fillet(VerticalOnExtremeX, 1.2)
	assert.ErrorIs(t, err, ErrFillet)
}

func TestFilletCoveredCornerFails(t *testing.T) {
	low, err := Extrude(Profile{rects: []r2.Box{{Max: r2.Vec{X: 10, Y: 10}}}}, 0, 1)
	require.NoError(t, err)
	high, err := Extrude(Profile{rects: []r2.Box{{Max: r2.Vec{X: 10, Y: 12}}}}, 1, 1)
	require.NoError(t, err)

	_, err = Union(low, high).Fillet(VerticalOnExtremeX, 1)
	assert.ErrorIs(t, err, ErrFillet)
}

func TestFilletInvalidRadius(t *testing.T) {
	s := box(t, 0, 0, 10, 10, 0, 2)
	_, err := s.Fillet(VerticalOnExtremeX, 0)
	assert.ErrorIs(t, err, ErrFillet)
	_, err = Solid{}.Fillet(VerticalOnExtremeX, 1)
	assert.ErrorIs(t, err, ErrFillet)
}

func TestFilletExtremeY(t *testing.T) {
	s := box(t, 0, 0, 10, 6, 0, 2)
	rounded, err := s.Fillet(VerticalOnExtremeY, 1)
	require.NoError(t, err)
	assert.True(t, analyze(t, rounded).Watertight())
}

func TestTessellateIsDeterministic(t *testing.T) {
	s := Union(box(t, 0, 0, 10, 10, 0, 1), box(t, 0, 0, 1, 10, 0, 3))
	s, err := s.Fillet(VerticalOnExtremeX, 1)
	require.NoError(t, err)

	a, err := s.Tessellate(fine)
	require.NoError(t, err)
	b, err := s.Tessellate(fine)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
