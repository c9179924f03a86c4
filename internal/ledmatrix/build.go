package ledmatrix

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/philipparndt/ledmatrix/pkg/solid"
)

var origin = r2.Vec{}

// Diffusor is the floor slab under the LEDs covering the whole footprint
func Diffusor(l Layout, p Params) (solid.Solid, error) {
	return solid.Extrude(solid.Rect(origin, r2.Vec{X: l.BoxX, Y: l.BoxY}), 0, p.DiffusorHeight)
}

// XDividers are the walls perpendicular to X, running along Y and spaced along X
func XDividers(l Layout, p Params) (solid.Solid, error) {
	wall, err := solid.Extrude(solid.Rect(origin, r2.Vec{X: p.DividerThickness, Y: l.BoxY}), 0, p.DividerHeightX)
	if err != nil {
		return solid.Solid{}, err
	}
	offsets := make([]r3.Vec, len(l.PositionsX))
	for i, x := range l.PositionsX {
		offsets[i] = r3.Vec{X: x}
	}
	return solid.Replicate(wall, offsets), nil
}

// YDividers are the walls perpendicular to Y, running along X and spaced along Y
func YDividers(l Layout, p Params) (solid.Solid, error) {
	wall, err := solid.Extrude(solid.Rect(origin, r2.Vec{X: l.BoxX, Y: p.DividerThickness}), 0, p.DividerHeightY)
	if err != nil {
		return solid.Solid{}, err
	}
	offsets := make([]r3.Vec, len(l.PositionsY))
	for i, y := range l.PositionsY {
		offsets[i] = r3.Vec{Y: y}
	}
	return solid.Replicate(wall, offsets), nil
}

// OuterWall is a ledge up to the Y divider height that the PCB rests on,
// topped by a narrower rim as high as the PCB is thick
func OuterWall(l Layout, p Params) (solid.Solid, error) {
	outer := solid.Rect(origin, r2.Vec{X: l.BoxX, Y: l.BoxY})

	inset := 2 * (p.WallThickness + p.DividerThickness/2)
	seat, err := solid.Ring(outer, solid.Rect(origin, r2.Vec{X: l.BoxX - inset, Y: l.BoxY - inset}))
	if err != nil {
		return solid.Solid{}, fmt.Errorf("pcb seat: %w", err)
	}
	ledge, err := solid.Extrude(seat, 0, p.DividerHeightY)
	if err != nil {
		return solid.Solid{}, fmt.Errorf("pcb seat: %w", err)
	}

	inset = 2 * p.WallThickness
	band, err := solid.Ring(outer, solid.Rect(origin, r2.Vec{X: l.BoxX - inset, Y: l.BoxY - inset}))
	if err != nil {
		return solid.Solid{}, fmt.Errorf("rim: %w", err)
	}
	rim, err := solid.Extrude(band, ledge.Bounds().Max.Z, p.PCBThickness)
	if err != nil {
		return solid.Solid{}, fmt.Errorf("rim: %w", err)
	}

	return solid.Union(ledge, rim), nil
}

// Build validates p and assembles the grid: diffusor, X dividers, Y dividers
// and outer wall are unioned in that order, then the vertical edges on the
// ±X faces are rounded.
func Build(p Params) (solid.Solid, error) {
	if err := p.Validate(); err != nil {
		return solid.Solid{}, err
	}
	l := Derive(p)

	parts := []struct {
		name  string
		build func(Layout, Params) (solid.Solid, error)
	}{
		{"diffusor", Diffusor},
		{"x dividers", XDividers},
		{"y dividers", YDividers},
		{"outer wall", OuterWall},
	}

	solids := make([]solid.Solid, 0, len(parts))
	for _, part := range parts {
		s, err := part.build(l, p)
		if err != nil {
			return solid.Solid{}, fmt.Errorf("%w: %s: %w", ErrConstruction, part.name, err)
		}
		solids = append(solids, s)
	}

	result, err := solid.Union(solids...).Fillet(solid.VerticalOnExtremeX, p.FilletRadius)
	if err != nil {
		return solid.Solid{}, fmt.Errorf("%w: %w", ErrConstruction, err)
	}
	return result, nil
}
