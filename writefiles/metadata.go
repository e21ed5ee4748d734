package writefiles

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"

	"github.com/VirtualBrainLab/probe-library/probe"
)

// Metadata is the per-probe JSON document consumed alongside the mesh.
type Metadata struct {
	Name           string      `json:"name"`
	Type           int         `json:"type"`
	Producer       string      `json:"producer"`
	Sites          int         `json:"sites"`
	Shanks         int         `json:"shanks"`
	TipCoordinates [][]float64 `json:"tip_coordinates"`
	References     string      `json:"references"`
	Spec           string      `json:"spec"`
}

// BuildMetadata assembles the metadata document for one probe. typeID is
// the integer probe type assigned by the caller.
func BuildMetadata(p *probe.Probe, name string, typeID int) Metadata {
	return Metadata{
		Name:           displayTitle(name),
		Type:           typeID,
		Producer:       p.Manufacturer(),
		Sites:          p.ContactCount(),
		Shanks:         p.ShankCount(),
		TipCoordinates: tipCoordinates(p),
		References:     "Generated using probeinterface library",
		Spec:           "https://probeinterface.readthedocs.io/",
	}
}

// displayTitle renders a probe name for display: underscores become
// spaces and each letter run is capitalized ("multi_column_4x8" comes
// out "Multi Column 4X8").
func displayTitle(name string) string {
	runes := []rune(strings.ReplaceAll(name, "_", " "))
	prevLetter := false
	for i, r := range runes {
		if unicode.IsLetter(r) {
			if prevLetter {
				runes[i] = unicode.ToLower(r)
			} else {
				runes[i] = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
	}
	return string(runes)
}

// SaveMetadata writes the document to path as indented JSON.
func SaveMetadata(path string, md Metadata) error {
	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("saving metadata %s: %w", path, err)
	}
	return nil
}

// tipCoordinates finds the probe tips. With a contour, every contour
// point at the minimum y counts as a tip, grouped by x rounded to two
// decimals so a multi-shank probe reports one tip per shank. Without a
// contour, the lowest-y contact of each shank stands in.
func tipCoordinates(p *probe.Probe) [][]float64 {
	if len(p.Contour) > 0 {
		return contourTips(p)
	}
	return contactTips(p)
}

func contourTips(p *probe.Probe) [][]float64 {
	minY := math.Inf(1)
	for _, pt := range p.Contour {
		if pt.Y() < minY {
			minY = pt.Y()
		}
	}

	var tips [][]float64
	seen := make(map[float64]bool)
	for _, pt := range p.Contour {
		if !closeTo(pt.Y(), minY) {
			continue
		}
		x := math.Round(pt.X()*100) / 100
		if seen[x] {
			continue
		}
		seen[x] = true
		tips = append(tips, []float64{pt.X(), pt.Y(), 0})
	}
	return tips
}

func contactTips(p *probe.Probe) [][]float64 {
	if p.ContactCount() == 0 {
		return nil
	}

	shankOf := func(i int) string {
		if i < len(p.ShankIDs) {
			return p.ShankIDs[i]
		}
		return "0"
	}

	lowest := make(map[string]int)
	var order []string
	for i := 0; i < p.ContactCount(); i++ {
		id := shankOf(i)
		best, ok := lowest[id]
		if !ok {
			lowest[id] = i
			order = append(order, id)
			continue
		}
		if p.Positions.At(i, 1) < p.Positions.At(best, 1) {
			lowest[id] = i
		}
	}

	tips := make([][]float64, 0, len(order))
	for _, id := range order {
		x, y, z := p.Position3D(lowest[id])
		tips = append(tips, []float64{x, y, z})
	}
	return tips
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= 1e-8*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
