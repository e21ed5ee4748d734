package probe

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
	"gonum.org/v1/gonum/mat"

	"github.com/VirtualBrainLab/probe-library/geometry"
)

// Wire format of a probeinterface document. ghodss/yaml converts YAML
// to JSON before unmarshalling, so the same reader accepts both.
type document struct {
	Specification string      `json:"specification"`
	Version       string      `json:"version"`
	Probes        []probeWire `json:"probes"`
}

type probeWire struct {
	NDim               int                      `json:"ndim"`
	SIUnits            string                   `json:"si_units"`
	Annotations        map[string]interface{}   `json:"annotations"`
	ContactPositions   [][]float64              `json:"contact_positions"`
	PlanarContour      [][]float64              `json:"probe_planar_contour"`
	ContactShapes      []string                 `json:"contact_shapes"`
	ContactShapeParams []map[string]interface{} `json:"contact_shape_params"`
	ShankIDs           []string                 `json:"shank_ids"`
}

// Read decodes a probeinterface document (JSON or YAML) into probes.
func Read(r io.Reader) ([]*Probe, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading probe document: %w", err)
	}
	return Parse(data)
}

// ReadFile decodes the probeinterface document at path.
func ReadFile(path string) ([]*Probe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	probes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return probes, nil
}

// Parse decodes raw probeinterface document bytes.
func Parse(data []byte) ([]*Probe, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding probe document: %w", err)
	}
	if len(doc.Probes) == 0 {
		return nil, fmt.Errorf("probe document contains no probes")
	}

	probes := make([]*Probe, 0, len(doc.Probes))
	for i, w := range doc.Probes {
		p, err := w.toProbe()
		if err != nil {
			return nil, fmt.Errorf("probe %d: %w", i, err)
		}
		probes = append(probes, p)
	}
	return probes, nil
}

func (w probeWire) toProbe() (*Probe, error) {
	ndim := w.NDim
	if ndim != 2 && ndim != 3 {
		return nil, fmt.Errorf("unsupported ndim %d", ndim)
	}

	// mat.NewDense rejects zero rows; contactless probes keep a nil
	// position matrix.
	n := len(w.ContactPositions)
	var positions *mat.Dense
	if n > 0 {
		positions = mat.NewDense(n, ndim, nil)
		for i, pos := range w.ContactPositions {
			if len(pos) < ndim {
				return nil, fmt.Errorf("contact %d: position has %d coordinates, need %d", i, len(pos), ndim)
			}
			for j := 0; j < ndim; j++ {
				positions.Set(i, j, pos[j])
			}
		}
	}

	contour := make(geometry.Contour, 0, len(w.PlanarContour))
	for i, pt := range w.PlanarContour {
		if len(pt) < 2 {
			return nil, fmt.Errorf("contour point %d has %d coordinates", i, len(pt))
		}
		contour = append(contour, geometry.Point{pt[0], pt[1]})
	}

	annotations := make(map[string]string, len(w.Annotations))
	for k, v := range w.Annotations {
		annotations[k] = fmt.Sprint(v)
	}

	return &Probe{
		NDim:        ndim,
		SIUnits:     w.SIUnits,
		Annotations: annotations,
		Positions:   positions,
		Contour:     contour,
		Shapes:      resolveShapes(n, w.ContactShapes, w.ContactShapeParams),
		ShankIDs:    w.ShankIDs,
	}, nil
}

// resolveShapes turns the parallel tag/param sequences into footprint
// variants, one per contact. Missing tags, missing parameters and
// non-numeric parameter values all substitute defaults rather than fail.
func resolveShapes(n int, tags []string, params []map[string]interface{}) []geometry.ContactShape {
	shapes := make([]geometry.ContactShape, n)
	for i := range shapes {
		tag := ""
		if i < len(tags) {
			tag = tags[i]
		}
		var p map[string]interface{}
		if i < len(params) {
			p = params[i]
		}
		shapes[i] = resolveShape(tag, p)
	}
	return shapes
}

func resolveShape(tag string, params map[string]interface{}) geometry.ContactShape {
	switch tag {
	case "square":
		side := numParam(params, "width", geometry.DefaultSide)
		return geometry.RectShape(side, side)
	case "rect":
		width := numParam(params, "width", geometry.DefaultSide)
		height := numParam(params, "height", width)
		return geometry.RectShape(width, height)
	case "circle":
		return geometry.CircleShape(numParam(params, "radius", geometry.DefaultRadius))
	default:
		// Unknown tags fall back to a default circle.
		return geometry.DefaultShape()
	}
}

// numParam fetches a numeric shape parameter, substituting def when the
// key is absent or the value is not a number.
func numParam(params map[string]interface{}, key string, def float64) float64 {
	v, ok := params[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}
