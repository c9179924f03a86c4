package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/ledmatrix/version"
)

var rootCmd = &cobra.Command{
	Use:   "ledmatrix",
	Short: "Generate the diffusor grid for a 16x16 LED matrix",
	Long: `ledmatrix builds the diffusor grid for a 160x160 mm 16x16 LED matrix PCB
and writes it as a binary STL file to the current directory.

All dimensions are fixed in the program; the output is named after the LED grid,
e.g. led-matrix-16x16.stl.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
