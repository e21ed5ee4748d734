package writefiles

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/VirtualBrainLab/probe-library/geometry"
	"github.com/VirtualBrainLab/probe-library/probe"
)

var electrodeHeader = []string{"electrode_number", "x", "y", "z", "width", "height", "depth"}

// WriteElectrodeCSV writes one row per contact with its 1-based
// electrode number, position, and footprint dimensions.
func WriteElectrodeCSV(w io.Writer, p *probe.Probe) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(electrodeHeader); err != nil {
		return fmt.Errorf("writing electrode header: %w", err)
	}

	for i := 0; i < p.ContactCount(); i++ {
		x, y, z := p.Position3D(i)
		width, height, depth := footprintDims(p.Shape(i))
		row := []string{
			strconv.Itoa(i + 1),
			formatCoord(x), formatCoord(y), formatCoord(z),
			formatCoord(width), formatCoord(height), formatCoord(depth),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing electrode %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveElectrodeCSV writes the electrode table to path.
func SaveElectrodeCSV(path string, p *probe.Probe) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving CSV %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteElectrodeCSV(f, p); err != nil {
		return fmt.Errorf("saving CSV %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("saving CSV %s: %w", path, err)
	}
	return nil
}

// footprintDims maps a footprint variant to the width/height/depth
// columns: circles span their diameter in all three, squares their side,
// rectangles use width x height with depth = min(width, height).
func footprintDims(s geometry.ContactShape) (width, height, depth float64) {
	switch s.Kind {
	case geometry.KindRect:
		if s.Width == s.Height {
			return s.Width, s.Width, s.Width
		}
		depth = s.Height
		if s.Width < s.Height {
			depth = s.Width
		}
		return s.Width, s.Height, depth
	default:
		d := 2 * s.Radius
		return d, d, d
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
