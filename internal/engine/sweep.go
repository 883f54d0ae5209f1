package engine

import (
	"fmt"

	"github.com/piwi3910/guillocut/internal/model"
)

// SweepPoint is the optimal value of one board size.
type SweepPoint struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Value  float64 `json:"value"`
}

// SweepWidths returns the optimal value for every width in [from, to] at a
// fixed height. The table of the widest board already holds every narrower
// board, so the sweep costs a single fill.
func (o *Optimizer) SweepWidths(from, to, height int, catalog model.Catalog) ([]SweepPoint, error) {
	if from < 0 || to < from {
		return nil, fmt.Errorf("width range %d..%d: %w", from, to, ErrInvalidDimension)
	}
	widest := model.Board{Width: to, Height: height}
	pieces, err := o.prepare(widest, catalog)
	if err != nil {
		return nil, err
	}

	t := newValueTable(to, height, false)
	t.fill(pieces)

	points := make([]SweepPoint, 0, to-from+1)
	for w := from; w <= to; w++ {
		points = append(points, SweepPoint{Width: w, Height: height, Value: t.at(w, height)})
	}
	return points, nil
}
