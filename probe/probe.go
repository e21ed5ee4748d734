// Package probe models neural probe specifications: contact positions,
// footprint shapes and the planar contour of the shank body. Probes are
// read from probeinterface-format documents or synthesized by the demo
// generators.
package probe

import (
	"gonum.org/v1/gonum/mat"

	"github.com/VirtualBrainLab/probe-library/geometry"
)

// Probe is one probe specification. Positions are stored as an
// NContacts x NDim matrix in micrometers; 2D probes are lifted to 3D
// with z = 0 at generation time.
type Probe struct {
	NDim        int
	SIUnits     string
	Annotations map[string]string

	Positions *mat.Dense
	Contour   geometry.Contour
	Shapes    []geometry.ContactShape

	ShankIDs []string
}

// ContactCount returns the number of contacts.
func (p *Probe) ContactCount() int {
	if p.Positions == nil {
		return 0
	}
	r, _ := p.Positions.Dims()
	return r
}

// ShankCount returns the number of distinct shank IDs, or 1 when no
// shank IDs are recorded and the probe has contacts.
func (p *Probe) ShankCount() int {
	if len(p.ShankIDs) == 0 {
		if p.ContactCount() > 0 {
			return 1
		}
		return 0
	}
	seen := make(map[string]struct{}, len(p.ShankIDs))
	for _, id := range p.ShankIDs {
		seen[id] = struct{}{}
	}
	return len(seen)
}

// Position3D returns contact i's position lifted to 3D.
func (p *Probe) Position3D(i int) (x, y, z float64) {
	x = p.Positions.At(i, 0)
	y = p.Positions.At(i, 1)
	if p.NDim >= 3 {
		z = p.Positions.At(i, 2)
	}
	return x, y, z
}

// Shape returns contact i's footprint, substituting the default when
// shapes are missing or shorter than the contact list.
func (p *Probe) Shape(i int) geometry.ContactShape {
	if i < 0 || i >= len(p.Shapes) {
		return geometry.DefaultShape()
	}
	return p.Shapes[i]
}

// Name returns the model name annotation, or fallback when absent.
func (p *Probe) Name(fallback string) string {
	if name, ok := p.Annotations["model_name"]; ok && name != "" {
		return name
	}
	return fallback
}

// Manufacturer returns the manufacturer annotation, or "unknown".
func (p *Probe) Manufacturer() string {
	if m, ok := p.Annotations["manufacturer"]; ok && m != "" {
		return m
	}
	return "unknown"
}

// XYCoords returns the contact x and y coordinates as two slices, for
// bounding-box computation.
func (p *Probe) XYCoords() (xs, ys []float64) {
	n := p.ContactCount()
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = p.Positions.At(i, 0)
		ys[i] = p.Positions.At(i, 1)
	}
	return xs, ys
}
