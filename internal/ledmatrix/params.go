// Package ledmatrix builds the diffusor grid for a 16x16 LED matrix PCB:
// a thin diffusor floor, crossing divider walls between the LEDs and an
// outer wall with a ledge that carries the PCB and a rim around its edges.
//
// Print with 0.2 mm layers: the first two in white filament for the
// diffusor, then switch to black for the grid.
package ledmatrix

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidParameter is returned before any geometry is attempted
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrConstruction wraps kernel failures during extrude, union or fillet
	ErrConstruction = errors.New("geometric construction failed")
	// ErrExport wraps tessellation and file write failures
	ErrExport = errors.New("export failed")
)

// Params are the physical dimensions of the grid in millimetres
type Params struct {
	PCBX, PCBY       float64 // PCB size
	PCBThickness     float64
	PCBClearance     float64 // gap between PCB and outer wall
	WallThickness    float64 // outer wall
	DiffusorHeight   float64
	CountX, CountY   int // LEDs per axis
	DividerThickness float64
	DividerHeightX   float64 // walls perpendicular to X
	DividerHeightY   float64 // walls perpendicular to Y, also the PCB seat height
	FilletRadius     float64 // rounding of the vertical edges on the ±X faces
}

// DefaultParams returns the dimensions of the 160x160 mm 16x16 matrix
func DefaultParams() Params {
	return Params{
		PCBX:             160.0,
		PCBY:             160.0,
		PCBThickness:     2.0,
		PCBClearance:     0.4,
		WallThickness:    1.2,
		DiffusorHeight:   0.4,
		CountX:           16,
		CountY:           16,
		DividerThickness: 1.0,
		DividerHeightX:   8.0,
		DividerHeightY:   9.0,
		FilletRadius:     1.2,
	}
}

// Validate checks that every length is positive and finite and that every
// LED count leaves a non-negative number of dividers
func (p Params) Validate() error {
	var problems []string
	lengths := []struct {
		name  string
		value float64
	}{
		{"pcb_x", p.PCBX},
		{"pcb_y", p.PCBY},
		{"pcb_thickness", p.PCBThickness},
		{"pcb_clearance", p.PCBClearance},
		{"wall_thickness", p.WallThickness},
		{"diffusor_height", p.DiffusorHeight},
		{"divider_thickness", p.DividerThickness},
		{"divider_height_x", p.DividerHeightX},
		{"divider_height_y", p.DividerHeightY},
		{"fillet_radius", p.FilletRadius},
	}
	for _, l := range lengths {
		if !(l.value > 0) || math.IsInf(l.value, 0) {
			problems = append(problems, fmt.Sprintf("%s must be a positive length, got %v", l.name, l.value))
		}
	}
	if p.CountX < 1 {
		problems = append(problems, fmt.Sprintf("count_x must be at least 1, got %d", p.CountX))
	}
	if p.CountY < 1 {
		problems = append(problems, fmt.Sprintf("count_y must be at least 1, got %d", p.CountY))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidParameter, strings.Join(problems, "; "))
	}
	return nil
}

// Warnings lists parameter combinations that still build but are unlikely
// to print as intended. They are reported, not corrected.
func (p Params) Warnings() []string {
	var out []string
	l := Derive(p)
	if l.DividerCountX > 1 && l.PitchX <= p.DividerThickness {
		out = append(out, fmt.Sprintf("X dividers overlap: pitch %.3f <= divider thickness %.3f", l.PitchX, p.DividerThickness))
	}
	if l.DividerCountY > 1 && l.PitchY <= p.DividerThickness {
		out = append(out, fmt.Sprintf("Y dividers overlap: pitch %.3f <= divider thickness %.3f", l.PitchY, p.DividerThickness))
	}
	if p.DividerHeightX > p.DividerHeightY {
		out = append(out, fmt.Sprintf("X dividers (%.3f) rise above the PCB seat (%.3f)", p.DividerHeightX, p.DividerHeightY))
	}
	return out
}
