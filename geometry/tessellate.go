package geometry

import (
	"fmt"

	"github.com/pradeep-pyro/triangle"
)

// ExtrudeTriangulated extrudes a contour like Extrude but replaces the
// two polygon caps with a constrained Delaunay triangulation of the
// contour interior. Side quads are unchanged. Concave contours (multi
// shank outlines) come out renderable in viewers that cannot handle
// concave N-gon faces.
//
// The default extrusion path never calls this; it changes the N+2 face
// count contract (caps become N-2 triangles each for a simple polygon).
func ExtrudeTriangulated(b *Builder, c Contour, zBottom, zTop float64) error {
	if !c.Usable() {
		return fmt.Errorf("triangulated extrusion: contour has %d points, need %d", len(c), MinContourPoints)
	}

	pts := make([][2]float64, len(c))
	segs := make([][2]int32, len(c))
	for i, p := range c {
		pts[i] = [2]float64(p)
		segs[i] = [2]int32{int32(i), int32((i + 1) % len(c))}
	}

	// The triangulator requires at least one hole seed. A seed strictly
	// outside the contour's bounding box lands outside the triangulated
	// region and marks no hole.
	verts, tris := triangle.ConstrainedDelaunay(pts, segs, [][2]float64{outsidePoint(c)})

	// Contour points must map 1:1, in order, onto extruded vertex
	// pairs; Steiner points or reordering would silently corrupt the
	// cap indices.
	if len(verts) != len(pts) {
		return fmt.Errorf("triangulated extrusion: triangulation returned %d points for %d contour points", len(verts), len(pts))
	}
	for i := range verts {
		if verts[i] != pts[i] {
			return fmt.Errorf("triangulated extrusion: triangulation reordered point %d", i)
		}
	}

	bottom, top := ExtrudeContour(b, c, zBottom, zTop)

	for _, tri := range tris {
		// Delaunay output is counter-clockwise: forward for the top
		// cap, reversed for the bottom cap.
		b.AddFace([]int{bottom[tri[2]], bottom[tri[1]], bottom[tri[0]]})
	}
	for _, tri := range tris {
		b.AddFace([]int{top[tri[0]], top[tri[1]], top[tri[2]]})
	}
	for i := range c {
		next := (i + 1) % len(c)
		b.AddFace([]int{bottom[i], bottom[next], top[next], top[i]})
	}
	return nil
}

// outsidePoint returns a point strictly outside the contour's bounding
// box, one full box extent past the maximum corner.
func outsidePoint(c Contour) [2]float64 {
	xMin, xMax := c[0].X(), c[0].X()
	yMin, yMax := c[0].Y(), c[0].Y()
	for _, p := range c[1:] {
		if p.X() < xMin {
			xMin = p.X()
		}
		if p.X() > xMax {
			xMax = p.X()
		}
		if p.Y() < yMin {
			yMin = p.Y()
		}
		if p.Y() > yMax {
			yMax = p.Y()
		}
	}
	return [2]float64{xMax + (xMax - xMin) + 1, yMax + (yMax - yMin) + 1}
}
