package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/guillocut/internal/model"
)

// point is a 2D drawing coordinate.
type point struct {
	x, y float64
}

// segment is a LINE or a piece of a sampled ARC, chained into closed shapes.
type segment struct {
	start point
	end   point
}

// bounds is an axis-aligned bounding box under construction.
type bounds struct {
	minX, minY, maxX, maxY float64
	empty                  bool
}

func newBounds() bounds {
	return bounds{empty: true}
}

func (b *bounds) add(p point) {
	if b.empty {
		b.minX, b.maxX, b.minY, b.maxY = p.x, p.x, p.y, p.y
		b.empty = false
		return
	}
	b.minX = math.Min(b.minX, p.x)
	b.maxX = math.Max(b.maxX, p.x)
	b.minY = math.Min(b.minY, p.y)
	b.maxY = math.Max(b.maxY, p.y)
}

// ImportDXF reads each closed shape of a DXF drawing (LWPOLYLINE, CIRCLE or
// a chain of LINE and ARC entities) as a piece the size of its bounding box,
// rounded to whole drawing units. Drawings carry no values, so every piece
// is worth its area.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var shapes []bounds
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if len(e.Vertices) < 3 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
				continue
			}
			b := newBounds()
			for _, v := range e.Vertices {
				b.add(point{v[0], v[1]})
			}
			shapes = append(shapes, b)

		case *entity.Circle:
			b := newBounds()
			b.add(point{e.Center[0] - e.Radius, e.Center[1] - e.Radius})
			b.add(point{e.Center[0] + e.Radius, e.Center[1] + e.Radius})
			shapes = append(shapes, b)

		case *entity.Arc:
			segments = append(segments, arcSegments(e, 32)...)

		case *entity.Line:
			segments = append(segments, segment{
				start: point{e.Start[0], e.Start[1]},
				end:   point{e.End[0], e.End[1]},
			})
		}
	}

	shapes = append(shapes, chainSegments(segments, 0.01)...)

	if len(shapes) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	for i, b := range shapes {
		w := int(math.Round(b.maxX - b.minX))
		h := int(math.Round(b.maxY - b.minY))
		if w < 1 || h < 1 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape %d (%.2f x %.2f)", i+1, b.maxX-b.minX, b.maxY-b.minY))
			continue
		}
		result.Pieces = append(result.Pieces, model.NewPiece(fmt.Sprintf("DXF Piece %d", i+1), w, h, float64(w*h)))
	}

	if len(result.Pieces) > 0 {
		result.Warnings = append(result.Warnings, "DXF has no value column, piece values set to their area")
	}
	return result
}

// arcSegments samples a DXF ARC into connected segments.
func arcSegments(a *entity.Arc, n int) []segment {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius

	start := a.Angle[0] * math.Pi / 180
	end := a.Angle[1] * math.Pi / 180
	if end <= start {
		end += 2 * math.Pi
	}

	segs := make([]segment, 0, n)
	prev := point{cx + r*math.Cos(start), cy + r*math.Sin(start)}
	for i := 1; i <= n; i++ {
		angle := start + float64(i)/float64(n)*(end-start)
		next := point{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
		segs = append(segs, segment{start: prev, end: next})
		prev = next
	}
	return segs
}

// chainSegments joins segments whose endpoints lie within tolerance and
// returns the bounding box of every chain that closes on itself.
func chainSegments(segs []segment, tolerance float64) []bounds {
	used := make([]bool, len(segs))
	var shapes []bounds

	for startIdx := range segs {
		if used[startIdx] {
			continue
		}
		used[startIdx] = true
		first := segs[startIdx].start
		tail := segs[startIdx].end

		b := newBounds()
		b.add(first)
		b.add(tail)
		count := 1

		for changed := true; changed; {
			changed = false
			for i, seg := range segs {
				if used[i] {
					continue
				}
				var next point
				switch {
				case pointsClose(tail, seg.start, tolerance):
					next = seg.end
				case pointsClose(tail, seg.end, tolerance):
					next = seg.start
				default:
					continue
				}
				used[i] = true
				tail = next
				b.add(next)
				count++
				changed = true
				break
			}
		}

		if count >= 3 && pointsClose(first, tail, tolerance) {
			shapes = append(shapes, b)
		}
	}
	return shapes
}

func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.x-b.x, a.y-b.y) <= tolerance
}
