package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

const (
	headerSize = 80
	facetSize  = 50
)

// binaryFacet is the on-disk layout of one triangle in a binary STL file
type binaryFacet struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

// WriteBinary encodes the model as binary STL.
// The header carries the model name, zero padded; output depends only on the model.
func WriteBinary(w io.Writer, m *Model) error {
	if uint64(len(m.Triangles)) > math.MaxUint32 {
		return fmt.Errorf("too many triangles for binary STL: %d", len(m.Triangles))
	}

	bw := bufio.NewWriter(w)

	header := make([]byte, headerSize)
	copy(header, m.Name)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(m.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, t := range m.Triangles {
		facet := binaryFacet{
			Normal: [3]float32{float32(t.Normal.X), float32(t.Normal.Y), float32(t.Normal.Z)},
			V1:     [3]float32{float32(t.V1.X), float32(t.V1.Y), float32(t.V1.Z)},
			V2:     [3]float32{float32(t.V2.X), float32(t.V2.Y), float32(t.V2.Z)},
			V3:     [3]float32{float32(t.V3.X), float32(t.V3.Y), float32(t.V3.Z)},
		}
		if err := binary.Write(bw, binary.LittleEndian, &facet); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush STL data: %w", err)
	}
	return nil
}

// Save writes the model as binary STL to filename, replacing any existing file
func Save(filename string, m *Model) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := WriteBinary(file, m); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}
