// Package mesher turns a probe specification into an indexed-face mesh:
// the shank contour (or a fallback bounding rectangle) is extruded into
// a prism, with optional per-contact pad geometry on top.
package mesher

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/VirtualBrainLab/probe-library/geometry"
	"github.com/VirtualBrainLab/probe-library/probe"
)

// ErrInsufficientGeometry means neither a usable contour nor any contact
// positions were available. It is fatal for that probe only; callers
// processing batches skip the probe and continue.
var ErrInsufficientGeometry = errors.New("insufficient geometry")

// Defaults for numeric configuration, in micrometers.
const (
	DefaultThickness     = 20.0
	DefaultContactHeight = 2.0
)

// Options configures one mesh generation.
type Options struct {
	// Thickness is the shank extrusion depth.
	Thickness float64
	// ContactHeight is the extrusion depth of per-contact pads.
	ContactHeight float64
	// AddContacts enables per-contact pad geometry. Off by default; the
	// capability exists but no default caller path enables it.
	AddContacts bool
	// TriangulateCaps replaces the polygon cap faces with a constrained
	// Delaunay triangulation, for viewers that cannot render concave
	// N-gon faces.
	TriangulateCaps bool
}

// DefaultOptions returns the standard generation settings.
func DefaultOptions() Options {
	return Options{
		Thickness:     DefaultThickness,
		ContactHeight: DefaultContactHeight,
	}
}

// Generator produces probe meshes. It owns a builder that is reset at
// the start of every generation; generations are serialized, one probe
// at a time, and share no state between probes.
type Generator struct {
	b   *geometry.Builder
	log *zap.Logger
}

// New returns a generator logging through log (zap.NewNop is fine).
func New(log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{b: geometry.NewBuilder(), log: log}
}

// Generate builds the mesh for one probe. The returned mesh shares
// storage with the generator and is invalidated by the next call.
func (g *Generator) Generate(p *probe.Probe, opts Options) (*geometry.Mesh, error) {
	g.b.Reset()

	contour := p.Contour
	if !contour.Usable() {
		// Degenerate or absent contour: recover with a bounding
		// rectangle around the contacts.
		g.log.Warn("no usable planar contour, generating basic shape",
			zap.Int("contour_points", len(contour)))
		xs, ys := p.XYCoords()
		var err error
		contour, err = geometry.BoundingContour(xs, ys, geometry.FallbackMargin)
		if err != nil {
			return nil, fmt.Errorf("%w: no contour and no contact positions", ErrInsufficientGeometry)
		}
	} else {
		g.log.Debug("using probe contour", zap.Int("points", len(contour)))
	}

	if err := g.extrudeBody(contour, opts); err != nil {
		return nil, err
	}

	if opts.AddContacts {
		g.addContactGeometry(p, opts.ContactHeight)
	}

	return g.b.Mesh(), nil
}

func (g *Generator) extrudeBody(c geometry.Contour, opts Options) error {
	zBottom := -opts.Thickness / 2
	zTop := opts.Thickness / 2
	if opts.TriangulateCaps {
		return geometry.ExtrudeTriangulated(g.b, c, zBottom, zTop)
	}
	geometry.Extrude(g.b, c, zBottom, zTop)
	return nil
}

func (g *Generator) addContactGeometry(p *probe.Probe, height float64) {
	for i := 0; i < p.ContactCount(); i++ {
		x, y, z := p.Position3D(i)
		geometry.AddContact(g.b, x, y, z, p.Shape(i), height)
	}
}
