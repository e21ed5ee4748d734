package writefiles

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VirtualBrainLab/probe-library/geometry"
)

func boxMesh() *geometry.Mesh {
	b := geometry.NewBuilder()
	geometry.Extrude(b, geometry.Contour{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, -10, 10)
	return b.Mesh()
}

func TestWriteOBJLayout(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, WriteOBJ(&buf, boxMesh(), "test_probe"))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "# Probe: test_probe", lines[0])
	assert.Equal(t, "# Generated by probe-library", lines[1])
	assert.Equal(t, "# Vertices: 8", lines[2])
	assert.Equal(t, "# Faces: 6", lines[3])
	assert.Equal(t, "", lines[4])

	// Fixed 6-decimal vertex lines.
	assert.Equal(t, "v 0.000000 0.000000 -10.000000", lines[5])
	assert.Equal(t, "v 0.000000 0.000000 10.000000", lines[6])

	// Blank separator between vertices and faces.
	assert.Equal(t, "", lines[13])
	assert.Equal(t, "f 7 5 3 1", lines[14])
	assert.Equal(t, "f 2 4 6 8", lines[15])
}

func TestOBJRoundTrip(t *testing.T) {
	mesh := boxMesh()

	var buf bytes.Buffer
	assert.NoError(t, WriteOBJ(&buf, mesh, "round_trip"))

	parsed, err := ReadOBJ(&buf)
	assert.NoError(t, err)

	assert.Equal(t, mesh.VertexCount(), parsed.VertexCount())
	assert.Equal(t, mesh.Faces, parsed.Faces)
	for i, v := range mesh.Vertices {
		p := parsed.Vertices[i]
		assert.InDelta(t, v.X, p.X, 1e-6)
		assert.InDelta(t, v.Y, p.Y, 1e-6)
		assert.InDelta(t, v.Z, p.Z, 1e-6)
	}
}

func TestReadOBJRejectsBadIndex(t *testing.T) {
	doc := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n"
	_, err := ReadOBJ(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestReadOBJRejectsShortFace(t *testing.T) {
	doc := "v 0 0 0\nv 1 0 0\nf 1 2\n"
	_, err := ReadOBJ(strings.NewReader(doc))
	assert.Error(t, err)
}

func TestSaveOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.obj")
	assert.NoError(t, SaveOBJ(path, boxMesh(), "saved"))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Probe: saved\n"))
}

func TestSaveOBJMissingDirectory(t *testing.T) {
	err := SaveOBJ(filepath.Join(t.TempDir(), "no", "such", "dir", "probe.obj"), boxMesh(), "x")
	assert.Error(t, err)
}
