package ledmatrix

// Layout holds the quantities derived from Params
type Layout struct {
	BoxX, BoxY                   float64 // overall outer size
	DividerCountX, DividerCountY int
	PitchX, PitchY               float64 // LED spacing
	PositionsX, PositionsY       []float64
}

// Derive computes the layout. It is a pure function of p.
func Derive(p Params) Layout {
	l := Layout{
		BoxX:          OuterSize(p.PCBX, p.PCBClearance, p.WallThickness),
		BoxY:          OuterSize(p.PCBY, p.PCBClearance, p.WallThickness),
		DividerCountX: max(p.CountX-1, 0),
		DividerCountY: max(p.CountY-1, 0),
	}
	if p.CountX > 0 {
		l.PitchX = p.PCBX / float64(p.CountX)
	}
	if p.CountY > 0 {
		l.PitchY = p.PCBY / float64(p.CountY)
	}
	l.PositionsX = DividerPositions(l.DividerCountX, l.PitchX)
	l.PositionsY = DividerPositions(l.DividerCountY, l.PitchY)
	return l
}

// OuterSize is the PCB size plus clearance and wall on both sides
func OuterSize(pcb, clearance, wall float64) float64 {
	return pcb + 2*clearance + 2*wall
}

// DividerPositions spaces count dividers by pitch, centered on zero
func DividerPositions(count int, pitch float64) []float64 {
	out := make([]float64, count)
	offset := pitch * float64(count-1) / 2
	for i := range out {
		out[i] = float64(i)*pitch - offset
	}
	return out
}
