package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// NicheImport holds the niche footprint measured from a DXF plan drawing,
// plus any diagnostics collected while reading it.
type NicheImport struct {
	Width    float64 // mm
	Height   float64 // mm
	Warnings []string
}

// ImportNicheDXF measures the niche opening drawn in a DXF file. The
// bounding box of all supported entities (LWPOLYLINE, LINE, CIRCLE, ARC)
// becomes the niche width and height in mm. Architects usually export the
// niche as a single rectangle; anything extra in the file simply grows the
// box, which is reported as a warning.
func ImportNicheDXF(path string) (NicheImport, error) {
	drawing, err := dxf.Open(path)
	if err != nil {
		return NicheImport{}, fmt.Errorf("cannot open DXF file: %w", err)
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		return NicheImport{}, fmt.Errorf("DXF file contains no entities")
	}

	box := newBounds()
	supported := 0
	skipped := 0

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			for _, v := range e.Vertices {
				box.extend(v[0], v[1])
			}
			supported++

		case *entity.Line:
			box.extend(e.Start[0], e.Start[1])
			box.extend(e.End[0], e.End[1])
			supported++

		case *entity.Circle:
			cx, cy, r := e.Center[0], e.Center[1], e.Radius
			box.extend(cx-r, cy-r)
			box.extend(cx+r, cy+r)
			supported++

		case *entity.Arc:
			// The full circle bound is a safe over-approximation; niche
			// outlines rarely contain arcs at all.
			cx, cy, r := e.Circle.Center[0], e.Circle.Center[1], e.Circle.Radius
			box.extend(cx-r, cy-r)
			box.extend(cx+r, cy+r)
			supported++

		default:
			skipped++
		}
	}

	if supported == 0 {
		return NicheImport{}, fmt.Errorf("DXF file contains no measurable entities")
	}

	width := box.maxX - box.minX
	height := box.maxY - box.minY
	if width < 1 || height < 1 {
		return NicheImport{}, fmt.Errorf("degenerate niche outline (%.2f x %.2f mm)", width, height)
	}

	result := NicheImport{Width: width, Height: height}
	if supported > 1 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Drawing contains %d entities; the niche is their combined bounding box", supported))
	}
	if skipped > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Skipped %d unsupported entities", skipped))
	}
	return result, nil
}

// bounds tracks an expanding 2D bounding box.
type bounds struct {
	minX, minY, maxX, maxY float64
}

func newBounds() *bounds {
	return &bounds{
		minX: math.Inf(1),
		minY: math.Inf(1),
		maxX: math.Inf(-1),
		maxY: math.Inf(-1),
	}
}

func (b *bounds) extend(x, y float64) {
	if x < b.minX {
		b.minX = x
	}
	if y < b.minY {
		b.minY = y
	}
	if x > b.maxX {
		b.maxX = x
	}
	if y > b.maxY {
		b.maxY = y
	}
}
