package probe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VirtualBrainLab/probe-library/geometry"
)

const sampleJSON = `{
  "specification": "probeinterface",
  "version": "0.2.16",
  "probes": [
    {
      "ndim": 2,
      "si_units": "um",
      "annotations": {"model_name": "test_probe", "manufacturer": "testco"},
      "contact_positions": [[0.0, 0.0], [0.0, 50.0], [0.0, 100.0]],
      "probe_planar_contour": [[-20.0, 120.0], [-20.0, -20.0], [20.0, -20.0], [20.0, 120.0]],
      "contact_shapes": ["circle", "rect", "square"],
      "contact_shape_params": [{"radius": 5}, {"width": 12, "height": 8}, {"width": 9}],
      "shank_ids": ["0", "0", "0"]
    }
  ]
}`

func TestParseProbeinterfaceJSON(t *testing.T) {
	probes, err := Parse([]byte(sampleJSON))
	assert.NoError(t, err)
	assert.Len(t, probes, 1)

	p := probes[0]
	assert.Equal(t, 2, p.NDim)
	assert.Equal(t, "um", p.SIUnits)
	assert.Equal(t, "test_probe", p.Name("fallback"))
	assert.Equal(t, "testco", p.Manufacturer())
	assert.Equal(t, 3, p.ContactCount())
	assert.Equal(t, 1, p.ShankCount())

	x, y, z := p.Position3D(1)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 50.0, y)
	assert.Equal(t, 0.0, z)

	assert.Equal(t, geometry.Contour{{-20, 120}, {-20, -20}, {20, -20}, {20, 120}}, p.Contour)

	assert.Equal(t, geometry.CircleShape(5), p.Shape(0))
	assert.Equal(t, geometry.RectShape(12, 8), p.Shape(1))
	assert.Equal(t, geometry.RectShape(9, 9), p.Shape(2))
}

func TestParseYAML(t *testing.T) {
	doc := `
specification: probeinterface
probes:
  - ndim: 2
    si_units: um
    contact_positions:
      - [0, 0]
      - [0, 25]
    contact_shapes: [circle, circle]
    contact_shape_params:
      - {radius: 6}
      - {radius: 6}
`
	probes, err := Read(strings.NewReader(doc))
	assert.NoError(t, err)
	assert.Len(t, probes, 1)
	assert.Equal(t, 2, probes[0].ContactCount())
	assert.Equal(t, geometry.CircleShape(6), probes[0].Shape(0))
}

func TestParseShapeDefaults(t *testing.T) {
	doc := `{
  "probes": [{
    "ndim": 2,
    "contact_positions": [[0,0],[0,10],[0,20],[0,30]],
    "contact_shapes": ["circle", "blob", "rect"],
    "contact_shape_params": [{"radius": "not-a-number"}, {"radius": 4}, {}]
  }]
}`
	probes, err := Parse([]byte(doc))
	assert.NoError(t, err)
	p := probes[0]

	// Non-numeric radius substitutes the default.
	assert.Equal(t, geometry.CircleShape(geometry.DefaultRadius), p.Shape(0))
	// Unknown tag falls back to the default circle.
	assert.Equal(t, geometry.DefaultShape(), p.Shape(1))
	// Rect with no params gets the default square.
	assert.Equal(t, geometry.RectShape(geometry.DefaultSide, geometry.DefaultSide), p.Shape(2))
	// Shorter shape list than contacts: default for the tail.
	assert.Equal(t, geometry.DefaultShape(), p.Shape(3))
}

func TestParse3DPositions(t *testing.T) {
	doc := `{"probes": [{"ndim": 3, "contact_positions": [[1, 2, 3]]}]}`
	probes, err := Parse([]byte(doc))
	assert.NoError(t, err)

	x, y, z := probes[0].Position3D(0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
	assert.Equal(t, 3.0, z)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`{"probes": []}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"probes": [{"ndim": 5}]}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"probes": [{"ndim": 2, "contact_positions": [[1]]}]}`))
	assert.Error(t, err)

	_, err = Parse([]byte(`not a document {{{`))
	assert.Error(t, err)
}
