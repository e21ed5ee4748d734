package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// FallbackMargin is how far the generated rectangle sits outside the
// bounding box of the contact positions, on all four sides.
const FallbackMargin = 30.0

// BoundingContour computes the axis-aligned bounding box of the given
// x/y coordinate slices, expands it by margin on all sides, and returns
// a 4-point rectangular contour.
//
// The corner order is top-left, bottom-left, bottom-right, top-right:
// counter-clockwise viewed from +z, matching the winding convention of
// Extrude. Do not change the starting corner without re-deriving the
// winding, or the cap normals silently flip.
func BoundingContour(xs, ys []float64, margin float64) (Contour, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return nil, fmt.Errorf("bounding contour: no positions to bound")
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("bounding contour: %d x coordinates vs %d y coordinates", len(xs), len(ys))
	}

	xMin := floats.Min(xs) - margin
	xMax := floats.Max(xs) + margin
	yMin := floats.Min(ys) - margin
	yMax := floats.Max(ys) + margin

	return Contour{
		{xMin, yMax},
		{xMin, yMin},
		{xMax, yMin},
		{xMax, yMax},
	}, nil
}
