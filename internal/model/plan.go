package model

import (
	"fmt"
	"sort"
)

// Orientation is the direction of a guillotine cut.
type Orientation string

const (
	Horizontal Orientation = "horizontal" // Runs along the X axis at fixed Y
	Vertical   Orientation = "vertical"   // Runs along the Y axis at fixed X
)

// Placement is one piece positioned on the board.
type Placement struct {
	Piece Piece `json:"piece"`
	X     int   `json:"x"` // From left edge
	Y     int   `json:"y"` // From bottom edge
}

// Contains reports whether the placement lies entirely inside the board.
func (p Placement) Contains(b Board) bool {
	return p.X >= 0 && p.Y >= 0 &&
		p.X+p.Piece.Width <= b.Width && p.Y+p.Piece.Height <= b.Height
}

// Overlaps reports whether two placements share any area.
func (p Placement) Overlaps(o Placement) bool {
	return p.X < o.X+o.Piece.Width && o.X < p.X+p.Piece.Width &&
		p.Y < o.Y+o.Piece.Height && o.Y < p.Y+p.Piece.Height
}

// Cut is a straight guillotine cut through a sub-board.
type Cut struct {
	Orientation Orientation `json:"orientation"`
	X           int         `json:"x"`      // Start point
	Y           int         `json:"y"`      // Start point
	Length      int         `json:"length"` // Along the cut direction
	Depth       int         `json:"depth"`  // Nesting level in the cut tree, 0 = first cut
}

// End returns the far end point of the cut.
func (c Cut) End() (int, int) {
	if c.Orientation == Horizontal {
		return c.X + c.Length, c.Y
	}
	return c.X, c.Y + c.Length
}

// Plan is an optimal decomposition of a board.
type Plan struct {
	Board      Board       `json:"board"`
	Value      float64     `json:"value"`
	Placements []Placement `json:"placements"`
	Cuts       []Cut       `json:"cuts"`
	Offcuts    []Offcut    `json:"offcuts"`
}

// UsedArea returns the total area covered by placed pieces.
func (p Plan) UsedArea() int {
	total := 0
	for _, pl := range p.Placements {
		total += pl.Piece.Area()
	}
	return total
}

// TotalArea returns the board area.
func (p Plan) TotalArea() int {
	return p.Board.Area()
}

// Efficiency returns the usage percentage.
func (p Plan) Efficiency() float64 {
	ta := p.TotalArea()
	if ta == 0 {
		return 0
	}
	return float64(p.UsedArea()) / float64(ta) * 100.0
}

// PlacedValue sums the values of all placements.
func (p Plan) PlacedValue() float64 {
	var total float64
	for _, pl := range p.Placements {
		total += pl.Piece.Value
	}
	return total
}

// Check reports the first placement that leaves the board or overlaps an
// earlier one.
func (p Plan) Check() error {
	for i, pl := range p.Placements {
		if !pl.Contains(p.Board) {
			return fmt.Errorf("placement %d (%s at %d,%d) leaves board %s", i+1, pl.Piece.Label, pl.X, pl.Y, p.Board)
		}
		for j := 0; j < i; j++ {
			if pl.Overlaps(p.Placements[j]) {
				return fmt.Errorf("placement %d (%s at %d,%d) overlaps placement %d", i+1, pl.Piece.Label, pl.X, pl.Y, j+1)
			}
		}
	}
	return nil
}

// PieceCount is a per-piece tally of a plan.
type PieceCount struct {
	Piece Piece `json:"piece"`
	Count int   `json:"count"`
}

// PieceCounts tallies placements by piece ID, sorted by label then ID.
func (p Plan) PieceCounts() []PieceCount {
	idx := make(map[string]int)
	var counts []PieceCount
	for _, pl := range p.Placements {
		i, ok := idx[pl.Piece.ID]
		if !ok {
			i = len(counts)
			idx[pl.Piece.ID] = i
			counts = append(counts, PieceCount{Piece: pl.Piece})
		}
		counts[i].Count++
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Piece.Label != counts[j].Piece.Label {
			return counts[i].Piece.Label < counts[j].Piece.Label
		}
		return counts[i].Piece.ID < counts[j].Piece.ID
	})
	return counts
}
