package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/piwi3910/guillocut/internal/model"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrNegativeValue    = errors.New("negative piece value")
	ErrInvalidValue     = errors.New("piece value is not a finite number")
	ErrTableTooLarge    = errors.New("value table too large")
)

// MaxValue returns the maximum total value obtainable by cutting a
// width x height board into copies of pieces with guillotine cuts.
//
// It never fails: a board with a non-positive side is worth 0, and pieces
// that cannot be placed (non-positive sides, larger than the board) are
// ignored. Negative values are never chosen because every sub-board starts
// from the option of leaving it unused. It panics when the table size does
// not fit in an int; Optimizer.Solve reports ErrTableTooLarge instead.
func MaxValue(width, height int, pieces []model.Piece) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	usable := placeable(pieces, width, height)
	if len(usable) == 0 {
		return 0
	}
	t := newValueTable(width, height, false)
	t.fill(usable)
	return t.at(width, height)
}

// placeable keeps pieces with positive sides that fit a width x height board.
func placeable(pieces []model.Piece, width, height int) []model.Piece {
	out := make([]model.Piece, 0, len(pieces))
	for _, p := range pieces {
		if p.Width < 1 || p.Height < 1 {
			continue
		}
		if p.Fits(width, height) {
			out = append(out, p)
		}
	}
	return out
}

// Optimizer solves boards against a catalog with validation and plan
// reconstruction. It is safe for concurrent use: every call allocates its
// own tables.
type Optimizer struct {
	Settings model.Settings
}

func New(settings model.Settings) *Optimizer {
	return &Optimizer{Settings: settings}
}

// Validate checks the board and catalog against the optimizer's policy.
func (o *Optimizer) Validate(board model.Board, catalog model.Catalog) error {
	if board.Width < 0 || board.Height < 0 {
		return fmt.Errorf("board %s: %w", board, ErrInvalidDimension)
	}
	for i, p := range catalog {
		if p.Width < 1 || p.Height < 1 {
			return fmt.Errorf("piece %d (%s) is %dx%d: %w", i+1, p.Label, p.Width, p.Height, ErrInvalidDimension)
		}
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			return fmt.Errorf("piece %d (%s): %w", i+1, p.Label, ErrInvalidValue)
		}
		if p.Value < 0 && o.Settings.NegativeValues != model.NegativeAllow {
			return fmt.Errorf("piece %d (%s) has value %g: %w", i+1, p.Label, p.Value, ErrNegativeValue)
		}
	}
	return nil
}

// prepare validates input and returns the pieces that can take part in a
// board of the given size.
func (o *Optimizer) prepare(board model.Board, catalog model.Catalog) ([]model.Piece, error) {
	if err := o.Validate(board, catalog); err != nil {
		return nil, err
	}
	pieces := catalog
	if o.Settings.AllowRotation {
		pieces = catalog.WithRotations()
	}

	cells, ok := tableCells(board.Width, board.Height)
	if !ok {
		return nil, fmt.Errorf("board %s: %w", board, ErrTableTooLarge)
	}
	if o.Settings.MaxCells > 0 && cells > o.Settings.MaxCells {
		return nil, fmt.Errorf("board %s needs %d cells, limit is %d: %w",
			board, cells, o.Settings.MaxCells, ErrTableTooLarge)
	}
	return pieces.Fitting(board.Width, board.Height), nil
}

// Solve computes the optimal plan for board: its value, the placements of
// every piece, the guillotine cuts that separate them and the unused regions.
func (o *Optimizer) Solve(board model.Board, catalog model.Catalog) (model.Plan, error) {
	pieces, err := o.prepare(board, catalog)
	if err != nil {
		return model.Plan{}, err
	}

	start := time.Now()
	t := newValueTable(board.Width, board.Height, true)
	t.fill(pieces)
	plan := t.reconstruct(board, pieces)

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		if err := plan.Check(); err != nil {
			log.Error().Err(err).Str("board", board.String()).Msg("reconstructed plan is inconsistent")
		}
	}

	log.Debug().
		Str("board", board.String()).
		Int("pieces", len(pieces)).
		Int("placements", len(plan.Placements)).
		Float64("value", plan.Value).
		Dur("elapsed", time.Since(start)).
		Msg("solved board")

	return plan, nil
}

// Value is Solve without plan reconstruction.
func (o *Optimizer) Value(board model.Board, catalog model.Catalog) (float64, error) {
	pieces, err := o.prepare(board, catalog)
	if err != nil {
		return 0, err
	}
	return MaxValue(board.Width, board.Height, pieces), nil
}
