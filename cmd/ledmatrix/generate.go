package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/ledmatrix/internal/ledmatrix"
	"github.com/philipparndt/ledmatrix/internal/logging"
	"github.com/philipparndt/ledmatrix/pkg/analysis"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	result, err := ledmatrix.Generate(dir, ledmatrix.DefaultParams(), logging.New(slog.LevelInfo))
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), result)
	return nil
}

func printSummary(w io.Writer, r *ledmatrix.Result) {
	mesh := r.Mesh

	fmt.Fprintln(w, "LED Matrix Grid")
	fmt.Fprintln(w, "===============")
	fmt.Fprintf(w, "File: %s\n\n", r.Path)

	fmt.Fprintln(w, "Layout:")
	fmt.Fprintf(w, "  Outer Size: %.3f x %.3f mm\n", r.Layout.BoxX, r.Layout.BoxY)
	fmt.Fprintf(w, "  Dividers:   %d x %d\n", r.Layout.DividerCountX, r.Layout.DividerCountY)
	fmt.Fprintf(w, "  Pitch:      %.3f x %.3f mm\n\n", r.Layout.PitchX, r.Layout.PitchY)

	fmt.Fprintln(w, "Mesh:")
	fmt.Fprintf(w, "  Triangles: %d\n", mesh.TriangleCount)
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(mesh.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(mesh.BoundingBox.Max))
	fmt.Fprintf(w, "  Surface Area: %s\n", analysis.FormatMeasurement(mesh.SurfaceArea, "mm²"))
	fmt.Fprintf(w, "  Volume: %s\n\n", analysis.FormatMeasurement(mesh.Volume, "mm³"))

	fmt.Fprintln(w, "Print with 0.2 mm layers: two layers of white filament for the diffusor,")
	fmt.Fprintln(w, "then change to black filament for the grid.")
}
