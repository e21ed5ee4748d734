// Package geometry builds indexed-face probe meshes by extruding 2D
// contours along the z axis. All coordinates are micrometers.
package geometry

// Vertex is a single mesh vertex.
type Vertex struct {
	X, Y, Z float64
}

// Face is an ordered list of 1-based vertex indices. The winding order
// determines the outward normal; reversing the order flips the normal.
type Face []int

// Mesh holds vertices in insertion order (the Nth inserted vertex has
// index N, 1-based) and the faces referencing them. A mesh owns its
// vertices and faces exclusively.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Builder is an append-only vertex/face accumulator. It performs no
// geometric validation: callers supply valid indices and consistent
// winding. One probe generation per builder between resets.
type Builder struct {
	mesh Mesh
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Reset clears all accumulated vertices and faces.
func (b *Builder) Reset() {
	b.mesh.Vertices = b.mesh.Vertices[:0]
	b.mesh.Faces = b.mesh.Faces[:0]
}

// AddVertex appends a vertex and returns its 1-based index. Indices are
// monotonically increasing and never reused.
func (b *Builder) AddVertex(x, y, z float64) int {
	b.mesh.Vertices = append(b.mesh.Vertices, Vertex{X: x, Y: y, Z: z})
	return len(b.mesh.Vertices)
}

// AddFace appends a face of 1-based vertex indices. An out-of-range
// index is a caller bug, not a runtime condition the builder checks.
func (b *Builder) AddFace(indices []int) {
	b.mesh.Faces = append(b.mesh.Faces, Face(indices))
}

// VertexCount returns the number of accumulated vertices.
func (b *Builder) VertexCount() int {
	return len(b.mesh.Vertices)
}

// FaceCount returns the number of accumulated faces.
func (b *Builder) FaceCount() int {
	return len(b.mesh.Faces)
}

// Mesh returns the accumulated mesh. The returned mesh shares storage
// with the builder and is invalidated by the next Reset.
func (b *Builder) Mesh() *Mesh {
	return &b.mesh
}
