package model

import "sort"

// Offcut is a rectangular region of a plan left without pieces.
type Offcut struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns the offcut area.
func (o Offcut) Area() int {
	return o.Width * o.Height
}

// AsBoard returns the offcut as a board that can be solved again.
func (o Offcut) AsBoard() Board {
	return Board{Width: o.Width, Height: o.Height}
}

// UsableOffcuts returns offcuts whose both sides are at least minSide,
// largest area first.
func (p Plan) UsableOffcuts(minSide int) []Offcut {
	var usable []Offcut
	for _, o := range p.Offcuts {
		if o.Width >= minSide && o.Height >= minSide {
			usable = append(usable, o)
		}
	}
	sort.SliceStable(usable, func(i, j int) bool {
		return usable[i].Area() > usable[j].Area()
	})
	return usable
}

// WasteArea returns the total area of all offcuts.
func (p Plan) WasteArea() int {
	total := 0
	for _, o := range p.Offcuts {
		total += o.Area()
	}
	return total
}
