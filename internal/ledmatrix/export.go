package ledmatrix

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/philipparndt/ledmatrix/internal/logging"
	"github.com/philipparndt/ledmatrix/pkg/analysis"
	"github.com/philipparndt/ledmatrix/pkg/solid"
	"github.com/philipparndt/ledmatrix/pkg/stl"
)

// ExportTolerance is the fixed tessellation tolerance of the mesh file
var ExportTolerance = solid.Tolerance{Linear: 0.99, Angular: 2}

// Filename names the mesh file after the LED grid
func Filename(p Params) string {
	return fmt.Sprintf("led-matrix-%dx%d.stl", p.CountX, p.CountY)
}

// Export tessellates s and writes it as binary STL to path
func Export(s solid.Solid, path string) error {
	tris, err := s.Tessellate(ExportTolerance)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}

	model := stl.NewModel(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	model.Triangles = tris
	if err := stl.Save(path, model); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
	}
	return nil
}

// Result describes one generated mesh file
type Result struct {
	Path   string
	Layout Layout
	Volume float64 // exact volume of the solid
	Mesh   *analysis.MeasurementResult
}

// Generate builds the grid for p, writes it into dir and reads the file
// back to report on the mesh that was actually written
func Generate(dir string, p Params, log *slog.Logger) (*Result, error) {
	if log == nil {
		log = logging.NewNop()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for _, w := range p.Warnings() {
		log.Warn(w)
	}

	l := Derive(p)
	log.Debug("derived layout",
		"box_x", l.BoxX, "box_y", l.BoxY,
		"dividers_x", l.DividerCountX, "dividers_y", l.DividerCountY,
		"pitch_x", l.PitchX, "pitch_y", l.PitchY,
	)

	s, err := Build(p)
	if err != nil {
		return nil, err
	}
	volume, err := s.Volume()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}

	path := filepath.Join(dir, Filename(p))
	if err := Export(s, path); err != nil {
		return nil, err
	}

	model, err := stl.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExport, err)
	}
	mesh := analysis.AnalyzeModel(model)
	if !mesh.Watertight() {
		return nil, fmt.Errorf("%w: %s has %d open edges", ErrExport, path, mesh.OpenEdges)
	}

	log.Info("exported mesh",
		"file", path,
		"triangles", mesh.TriangleCount,
		"volume", volume,
	)
	return &Result{Path: path, Layout: l, Volume: volume, Mesh: mesh}, nil
}
