// Package writefiles persists the generated probe artifacts: the OBJ
// mesh, the electrode CSV table and the metadata JSON document.
package writefiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/VirtualBrainLab/probe-library/geometry"
)

// WriteOBJ writes the mesh as a Wavefront-style text document: a comment
// header with the probe name and counts, one "v" line per vertex at
// fixed 6-decimal precision, a blank separator, then one "f" line per
// face with 1-based indices. No normals or texture coordinates.
func WriteOBJ(w io.Writer, m *geometry.Mesh, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Probe: %s\n", name)
	fmt.Fprintf(bw, "# Generated by probe-library\n")
	fmt.Fprintf(bw, "# Vertices: %d\n", m.VertexCount())
	fmt.Fprintf(bw, "# Faces: %d\n\n", m.FaceCount())

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}

	fmt.Fprintln(bw)

	for _, f := range m.Faces {
		parts := make([]string, len(f))
		for i, idx := range f {
			parts[i] = strconv.Itoa(idx)
		}
		fmt.Fprintf(bw, "f %s\n", strings.Join(parts, " "))
	}

	return bw.Flush()
}

// SaveOBJ writes the mesh to path. On failure a partially written file
// may remain; there is no atomic-replace contract.
func SaveOBJ(path string, m *geometry.Mesh, name string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving OBJ %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteOBJ(f, m, name); err != nil {
		return fmt.Errorf("saving OBJ %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("saving OBJ %s: %w", path, err)
	}
	return nil
}

// ReadOBJ parses the subset of OBJ emitted by WriteOBJ: comment lines,
// "v x y z" vertex lines and "f i j k ..." face lines. Anything else is
// ignored, matching the line-oriented structural compatibility contract.
func ReadOBJ(r io.Reader) (*geometry.Mesh, error) {
	m := &geometry.Mesh{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates, got %d", lineNo, len(fields)-1)
			}
			var coords [3]float64
			for i, s := range fields[1:] {
				val, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad coordinate %q: %w", lineNo, s, err)
				}
				coords[i] = val
			}
			m.Vertices = append(m.Vertices, geometry.Vertex{X: coords[0], Y: coords[1], Z: coords[2]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 indices", lineNo)
			}
			face := make(geometry.Face, 0, len(fields)-1)
			for _, s := range fields[1:] {
				idx, err := strconv.Atoi(s)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad face index %q: %w", lineNo, s, err)
				}
				if idx < 1 || idx > len(m.Vertices) {
					return nil, fmt.Errorf("line %d: face index %d out of range [1,%d]", lineNo, idx, len(m.Vertices))
				}
				face = append(face, idx)
			}
			m.Faces = append(m.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}
	return m, nil
}
