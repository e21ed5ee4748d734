package geometry

import "math"

// Footprint constants shared by shape resolution and contact synthesis.
const (
	// CircleSegments is the fixed polygon count approximating a circular
	// contact. It is a literal constant, not derived from radius.
	CircleSegments = 8

	// DefaultRadius is substituted when a circular contact has no usable
	// radius parameter.
	DefaultRadius = 10.0

	// DefaultSide is substituted when a rectangular contact has no usable
	// width parameter.
	DefaultSide = 20.0
)

// ShapeKind tags a contact footprint variant.
type ShapeKind int

const (
	// KindCircle is a circular pad described by a radius.
	KindCircle ShapeKind = iota
	// KindRect is a rectangular pad described by width and height.
	KindRect
)

// ContactShape describes one sensor pad's footprint. Circle variants use
// Radius; Rect variants use Width and Height.
type ContactShape struct {
	Kind   ShapeKind
	Radius float64
	Width  float64
	Height float64
}

// CircleShape returns a circular footprint. A non-positive radius gets
// the default.
func CircleShape(radius float64) ContactShape {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return ContactShape{Kind: KindCircle, Radius: radius}
}

// RectShape returns a rectangular footprint. A non-positive width gets
// the default side; a non-positive height defaults to the width (square).
func RectShape(width, height float64) ContactShape {
	if width <= 0 {
		width = DefaultSide
	}
	if height <= 0 {
		height = width
	}
	return ContactShape{Kind: KindRect, Width: width, Height: height}
}

// DefaultShape is the footprint used when nothing is specified: a circle
// of the default radius.
func DefaultShape() ContactShape {
	return CircleShape(DefaultRadius)
}

// AddCircularContact adds a short cylinder (octagonal prism) centered at
// (x,y,z) with the given radius, extruded over z±height/2.
func AddCircularContact(b *Builder, x, y, z, radius, height float64) {
	c := make(Contour, 0, CircleSegments)
	for i := 0; i < CircleSegments; i++ {
		// Evenly spaced over [0,2π); closure back to the first point
		// is implicit in the contour.
		angle := 2 * math.Pi * float64(i) / CircleSegments
		c = append(c, Point{x + radius*math.Cos(angle), y + radius*math.Sin(angle)})
	}
	Extrude(b, c, z-height/2, z+height/2)
}

// AddRectangularContact adds an axis-aligned box centered at (x,y,z),
// width by height in the plane, extruded over z±thickness/2.
func AddRectangularContact(b *Builder, x, y, z, width, height, thickness float64) {
	c := Contour{
		{x - width/2, y - height/2},
		{x + width/2, y - height/2},
		{x + width/2, y + height/2},
		{x - width/2, y + height/2},
	}
	Extrude(b, c, z-thickness/2, z+thickness/2)
}

// AddContact adds the prism for one contact pad according to its
// footprint variant.
func AddContact(b *Builder, x, y, z float64, shape ContactShape, height float64) {
	switch shape.Kind {
	case KindRect:
		AddRectangularContact(b, x, y, z, shape.Width, shape.Height, height)
	default:
		AddCircularContact(b, x, y, z, shape.Radius, height)
	}
}
