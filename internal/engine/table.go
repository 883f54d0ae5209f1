package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/guillocut/internal/model"
)

// split records which of the two single-cut decompositions produced a cell's value.
type split uint8

const (
	splitNone       split = iota // Sub-board left unused
	splitHorizontal              // Cut across the full width above the piece
	splitVertical                // Cut across the full height beside the piece
)

// valueTable holds the optimal value of every i x j sub-board of a board,
// flattened row-major with stride height+1. Row 0 and column 0 stay zero.
type valueTable struct {
	width, height int
	stride        int
	values        []float64

	// Choice tracking, only allocated when a plan will be reconstructed.
	pieces []int32
	splits []split
}

// tableCells returns the number of cells of a width x height table, or
// false when the count does not fit in an int.
func tableCells(width, height int) (int, bool) {
	if width < 0 || height < 0 || width >= math.MaxInt/(height+1) {
		return 0, false
	}
	return (width + 1) * (height + 1), true
}

func newValueTable(width, height int, track bool) *valueTable {
	cells, ok := tableCells(width, height)
	if !ok {
		panic(fmt.Sprintf("value table %dx%d overflows int", width, height))
	}
	t := &valueTable{
		width:  width,
		height: height,
		stride: height + 1,
		values: make([]float64, cells),
	}
	if track {
		t.pieces = make([]int32, cells)
		for i := range t.pieces {
			t.pieces[i] = -1
		}
		t.splits = make([]split, cells)
	}
	return t
}

func (t *valueTable) at(i, j int) float64 {
	return t.values[i*t.stride+j]
}

// fill computes every cell in order of increasing width then height, so each
// term of the recurrence refers to a cell that is already final. pieces must
// have positive dimensions.
func (t *valueTable) fill(pieces []model.Piece) {
	track := t.pieces != nil
	for i := 1; i <= t.width; i++ {
		for j := 1; j <= t.height; j++ {
			best := 0.0
			bestPiece := int32(-1)
			bestSplit := splitNone

			for k, p := range pieces {
				if p.Width > i || p.Height > j {
					continue
				}
				// Piece in the corner, one cut across the full width above it,
				// then the strip beside the piece.
				h := p.Value + t.at(i, j-p.Height) + t.at(i-p.Width, p.Height)
				if h > best {
					best, bestPiece, bestSplit = h, int32(k), splitHorizontal
				}
				// One cut across the full height beside the piece, then the
				// column above it.
				v := p.Value + t.at(p.Width, j-p.Height) + t.at(i-p.Width, j)
				if v > best {
					best, bestPiece, bestSplit = v, int32(k), splitVertical
				}
			}

			idx := i*t.stride + j
			t.values[idx] = best
			if track {
				t.pieces[idx] = bestPiece
				t.splits[idx] = bestSplit
			}
		}
	}
}

// region is a pending sub-board during plan reconstruction.
type region struct {
	x, y, w, h int
	depth      int
}

// reconstruct walks the choice table breadth first from the full board and
// emits placements, guillotine cuts and unused regions. Outer cuts come first.
func (t *valueTable) reconstruct(board model.Board, pieces []model.Piece) model.Plan {
	plan := model.Plan{
		Board:      board,
		Value:      t.at(board.Width, board.Height),
		Placements: []model.Placement{},
		Cuts:       []model.Cut{},
		Offcuts:    []model.Offcut{},
	}

	queue := []region{{x: 0, y: 0, w: board.Width, h: board.Height}}
	for head := 0; head < len(queue); head++ {
		r := queue[head]
		if r.w == 0 || r.h == 0 {
			continue
		}

		idx := r.w*t.stride + r.h
		k := t.pieces[idx]
		if k < 0 {
			plan.Offcuts = append(plan.Offcuts, model.Offcut{X: r.x, Y: r.y, Width: r.w, Height: r.h})
			continue
		}

		p := pieces[k]
		plan.Placements = append(plan.Placements, model.Placement{Piece: p, X: r.x, Y: r.y})

		switch t.splits[idx] {
		case splitHorizontal:
			d := r.depth
			if r.h > p.Height {
				plan.Cuts = append(plan.Cuts, model.Cut{
					Orientation: model.Horizontal, X: r.x, Y: r.y + p.Height, Length: r.w, Depth: d,
				})
				queue = append(queue, region{x: r.x, y: r.y + p.Height, w: r.w, h: r.h - p.Height, depth: d + 1})
				d++
			}
			if r.w > p.Width {
				plan.Cuts = append(plan.Cuts, model.Cut{
					Orientation: model.Vertical, X: r.x + p.Width, Y: r.y, Length: p.Height, Depth: d,
				})
				queue = append(queue, region{x: r.x + p.Width, y: r.y, w: r.w - p.Width, h: p.Height, depth: d + 1})
			}

		case splitVertical:
			d := r.depth
			if r.w > p.Width {
				plan.Cuts = append(plan.Cuts, model.Cut{
					Orientation: model.Vertical, X: r.x + p.Width, Y: r.y, Length: r.h, Depth: d,
				})
				queue = append(queue, region{x: r.x + p.Width, y: r.y, w: r.w - p.Width, h: r.h, depth: d + 1})
				d++
			}
			if r.h > p.Height {
				plan.Cuts = append(plan.Cuts, model.Cut{
					Orientation: model.Horizontal, X: r.x, Y: r.y + p.Height, Length: p.Width, Depth: d,
				})
				queue = append(queue, region{x: r.x, y: r.y + p.Height, w: p.Width, h: r.h - p.Height, depth: d + 1})
			}
		}
	}
	return plan
}
