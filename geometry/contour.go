package geometry

// Point is a 2D point.
type Point [2]float64

// X returns the first coordinate.
func (p Point) X() float64 { return p[0] }

// Y returns the second coordinate.
func (p Point) Y() float64 { return p[1] }

// Contour is an ordered, non-self-intersecting closed polygon boundary.
// The last point connects implicitly back to the first. Contours with
// fewer than MinContourPoints points cannot be extruded.
type Contour []Point

// MinContourPoints is the smallest contour that bounds an area.
const MinContourPoints = 3

// Usable reports whether the contour has enough points to extrude.
func (c Contour) Usable() bool {
	return len(c) >= MinContourPoints
}

// ExtrudeContour inserts one bottom and one top vertex per contour point,
// in contour order, bottom-then-top, and returns the two index lists.
func ExtrudeContour(b *Builder, c Contour, zBottom, zTop float64) (bottom, top []int) {
	bottom = make([]int, 0, len(c))
	top = make([]int, 0, len(c))
	for _, p := range c {
		bottom = append(bottom, b.AddVertex(p.X(), p.Y(), zBottom))
		top = append(top, b.AddVertex(p.X(), p.Y(), zTop))
	}
	return bottom, top
}

// AddPrismFaces closes an extrusion: a bottom cap in reversed contour
// order (normal pointing down), a top cap in forward order (normal
// pointing up), and one outward-facing quad per contour edge. Caps are
// only emitted for three or more points.
func AddPrismFaces(b *Builder, bottom, top []int) {
	n := len(bottom)

	if n >= MinContourPoints {
		reversed := make([]int, n)
		for i, idx := range bottom {
			reversed[n-1-i] = idx
		}
		b.AddFace(reversed)
	}

	if n >= MinContourPoints {
		topCap := make([]int, n)
		copy(topCap, top)
		b.AddFace(topCap)
	}

	for i := 0; i < n; i++ {
		next := (i + 1) % n
		b.AddFace([]int{bottom[i], bottom[next], top[next], top[i]})
	}
}

// Extrude sweeps a contour between two z planes into a closed prism.
// An N-point contour yields exactly 2N vertices and N+2 faces. This is
// the single geometric kernel: the shank body, the contact primitives
// and the fallback shape all go through it.
func Extrude(b *Builder, c Contour, zBottom, zTop float64) {
	bottom, top := ExtrudeContour(b, c, zBottom, zTop)
	AddPrismFaces(b, bottom, top)
}
