package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtrudeCounts(t *testing.T) {
	// An N-point contour always yields 2N vertices and N+2 faces, with
	// every face index inside [1, 2N].
	for _, n := range []int{3, 4, 5, 8, 17} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			c := make(Contour, 0, n)
			for i := 0; i < n; i++ {
				angle := 2 * math.Pi * float64(i) / float64(n)
				c = append(c, Point{math.Cos(angle), math.Sin(angle)})
			}

			b := NewBuilder()
			Extrude(b, c, -1, 1)

			assert.Equal(t, 2*n, b.VertexCount())
			assert.Equal(t, n+2, b.FaceCount())
			for _, f := range b.Mesh().Faces {
				for _, idx := range f {
					assert.GreaterOrEqual(t, idx, 1)
					assert.LessOrEqual(t, idx, 2*n)
				}
			}
		})
	}
}

func TestExtrudeVertexOrder(t *testing.T) {
	c := Contour{{0, 0}, {0, 10}, {10, 10}}
	b := NewBuilder()
	bottom, top := ExtrudeContour(b, c, -7, 7)

	// Bottom-then-top per contour point, in contour order.
	assert.Equal(t, []int{1, 3, 5}, bottom)
	assert.Equal(t, []int{2, 4, 6}, top)

	verts := b.Mesh().Vertices
	assert.Equal(t, Vertex{X: 0, Y: 0, Z: -7}, verts[0])
	assert.Equal(t, Vertex{X: 0, Y: 0, Z: 7}, verts[1])
	assert.Equal(t, Vertex{X: 10, Y: 10, Z: -7}, verts[4])
}

func TestCapWinding(t *testing.T) {
	c := Contour{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	b := NewBuilder()
	Extrude(b, c, -10, 10)

	faces := b.Mesh().Faces
	bottomCap := faces[0]
	topCap := faces[1]

	// Bottom cap visits the contour points in reverse order, top cap in
	// forward order: same points, opposite winding.
	assert.Equal(t, Face{7, 5, 3, 1}, bottomCap)
	assert.Equal(t, Face{2, 4, 6, 8}, topCap)
}

func TestUnitSquareScenario(t *testing.T) {
	// contour = [(0,0),(0,10),(10,10),(10,0)], thickness 20.
	c := Contour{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	b := NewBuilder()
	Extrude(b, c, -10, 10)

	assert.Equal(t, 8, b.VertexCount())
	assert.Equal(t, 6, b.FaceCount())

	faces := b.Mesh().Faces
	assert.Equal(t, Face{7, 5, 3, 1}, faces[0])

	// Side quads: [bottom(i), bottom(i+1), top(i+1), top(i)].
	assert.Equal(t, Face{1, 3, 4, 2}, faces[2])
	assert.Equal(t, Face{3, 5, 6, 4}, faces[3])
	assert.Equal(t, Face{5, 7, 8, 6}, faces[4])
	assert.Equal(t, Face{7, 1, 2, 8}, faces[5])
}

func TestDegenerateContourEmitsNoCaps(t *testing.T) {
	// Two points cannot bound an area: no caps, only the two side quads.
	c := Contour{{0, 0}, {10, 0}}
	assert.False(t, c.Usable())

	b := NewBuilder()
	Extrude(b, c, -1, 1)
	assert.Equal(t, 4, b.VertexCount())
	assert.Equal(t, 2, b.FaceCount())
	for _, f := range b.Mesh().Faces {
		assert.Len(t, f, 4)
	}
}
