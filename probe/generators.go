package probe

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/VirtualBrainLab/probe-library/geometry"
)

// AutoShapeMargin is the clearance between the contact bounding box and
// the synthesized contour.
const AutoShapeMargin = 20.0

// GenerateLinearProbe builds a single-column probe with numElec contacts
// spaced ypitch apart along y, circular pads of radius 6.
func GenerateLinearProbe(numElec int, ypitch float64) *Probe {
	positions := mat.NewDense(numElec, 2, nil)
	shapes := make([]geometry.ContactShape, numElec)
	shanks := make([]string, numElec)
	for i := 0; i < numElec; i++ {
		positions.Set(i, 0, 0)
		positions.Set(i, 1, float64(i)*ypitch)
		shapes[i] = geometry.CircleShape(6)
		shanks[i] = "0"
	}
	return &Probe{
		NDim:    2,
		SIUnits: "um",
		Annotations: map[string]string{
			"model_name":   fmt.Sprintf("linear_%dch", numElec),
			"manufacturer": "demo",
		},
		Positions: positions,
		Shapes:    shapes,
		ShankIDs:  shanks,
	}
}

// GenerateMultiColumnsProbe builds a grid probe: numColumns columns of
// perColumn contacts, xpitch/ypitch spacing, circular pads of radius 6.
func GenerateMultiColumnsProbe(numColumns, perColumn int, xpitch, ypitch float64) *Probe {
	n := numColumns * perColumn
	positions := mat.NewDense(n, 2, nil)
	shapes := make([]geometry.ContactShape, n)
	shanks := make([]string, n)
	i := 0
	for col := 0; col < numColumns; col++ {
		for row := 0; row < perColumn; row++ {
			positions.Set(i, 0, float64(col)*xpitch)
			positions.Set(i, 1, float64(row)*ypitch)
			shapes[i] = geometry.CircleShape(6)
			shanks[i] = "0"
			i++
		}
	}
	return &Probe{
		NDim:    2,
		SIUnits: "um",
		Annotations: map[string]string{
			"model_name":   fmt.Sprintf("multi_column_%dx%d", numColumns, perColumn),
			"manufacturer": "demo",
		},
		Positions: positions,
		Shapes:    shapes,
		ShankIDs:  shanks,
	}
}

// GenerateDummyProbe builds a small grid probe for smoke testing.
func GenerateDummyProbe() *Probe {
	p := GenerateMultiColumnsProbe(3, 8, 25, 25)
	p.Annotations["model_name"] = "dummy_probe"
	return p
}

// CreateAutoShape synthesizes a planar contour around the contacts when
// a probe specification carries none. kind "rect" is the margin-expanded
// bounding box; kind "tip" additionally drops a triangular tip 4 margins
// below the box. Probes without contacts are left unchanged.
func (p *Probe) CreateAutoShape(kind string, margin float64) {
	if p.ContactCount() == 0 {
		return
	}
	xs, ys := p.XYCoords()
	x0 := floats.Min(xs) - margin
	x1 := floats.Max(xs) + margin
	y0 := floats.Min(ys) - margin
	y1 := floats.Max(ys) + margin

	switch kind {
	case "tip":
		tip := geometry.Point{(x0 + x1) / 2, y0 - margin*4}
		p.Contour = geometry.Contour{{x0, y1}, {x0, y0}, tip, {x1, y0}, {x1, y1}}
	default:
		p.Contour = geometry.Contour{{x0, y1}, {x0, y0}, {x1, y0}, {x1, y1}}
	}
}
