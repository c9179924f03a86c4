package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/ledmatrix/internal/ledmatrix"
)

func TestPrintSummary(t *testing.T) {
	p := ledmatrix.DefaultParams()
	p.CountX, p.CountY = 2, 3

	result, err := ledmatrix.Generate(t.TempDir(), p, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	printSummary(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "led-matrix-2x3.stl")
	assert.Contains(t, out, "Outer Size: 163.200 x 163.200 mm")
	assert.Contains(t, out, "Dividers:   1 x 2")
	assert.Contains(t, out, "Pitch:      80.000 x 53.333 mm")
}

func TestRootRejectsArguments(t *testing.T) {
	rootCmd.SetArgs([]string{"extra"})
	defer rootCmd.SetArgs(nil)

	assert.Error(t, rootCmd.Execute())
}
