package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Piece is a reusable rectangular cutting pattern with a value.
// Supply is unbounded: the optimizer may place any number of copies.
type Piece struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Value  float64 `json:"value"`
}

func NewPiece(label string, w, h int, value float64) Piece {
	return Piece{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  w,
		Height: h,
		Value:  value,
	}
}

// Area returns the piece area in board units.
func (p Piece) Area() int {
	return p.Width * p.Height
}

// Fits reports whether the piece fits a board of the given size without rotation.
func (p Piece) Fits(w, h int) bool {
	return p.Width <= w && p.Height <= h
}

// Rotated returns the piece turned 90 degrees as a new catalog entry.
func (p Piece) Rotated() Piece {
	r := p
	r.ID = p.ID + "-r"
	r.Label = p.Label + " (rotated)"
	r.Width, r.Height = p.Height, p.Width
	return r
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %dx%d:%g", p.Label, p.Width, p.Height, p.Value)
}

// Catalog is the ordered set of piece types available for a board.
// Order does not change the optimal value, only which of several equally
// good plans is reported.
type Catalog []Piece

// WithRotations appends a rotated entry for every non-square piece whose
// rotation is not already present with the same value.
func (c Catalog) WithRotations() Catalog {
	type shape struct {
		w, h  int
		value float64
	}
	seen := make(map[shape]bool, len(c)*2)
	for _, p := range c {
		seen[shape{p.Width, p.Height, p.Value}] = true
	}

	out := make(Catalog, len(c), len(c)*2)
	copy(out, c)
	for _, p := range c {
		if p.Width == p.Height {
			continue
		}
		key := shape{p.Height, p.Width, p.Value}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p.Rotated())
	}
	return out
}

// Fitting returns the pieces that fit a w x h board.
func (c Catalog) Fitting(w, h int) Catalog {
	return lo.Filter(c, func(p Piece, _ int) bool {
		return p.Fits(w, h)
	})
}

// Labels returns piece labels in catalog order.
func (c Catalog) Labels() []string {
	return lo.Map(c, func(p Piece, _ int) string {
		return p.Label
	})
}

// Board is the stock being cut. Only its dimensions matter.
type Board struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns the board area.
func (b Board) Area() int {
	return b.Width * b.Height
}

// Transposed returns the board with width and height swapped.
func (b Board) Transposed() Board {
	return Board{Width: b.Height, Height: b.Width}
}

func (b Board) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// NegativeValuePolicy controls how pieces with a negative value are treated.
type NegativeValuePolicy string

const (
	NegativeReject NegativeValuePolicy = "reject" // Fail validation
	NegativeAllow  NegativeValuePolicy = "allow"  // Keep; the optimizer never selects them
)

// Settings holds optimizer configuration.
type Settings struct {
	NegativeValues NegativeValuePolicy `json:"negative_values"`
	AllowRotation  bool                `json:"allow_rotation"` // Add rotated catalog entries before solving
	MaxCells       int                 `json:"max_cells"`      // Upper bound on value table cells, 0 = unlimited
	Workers        int                 `json:"workers"`        // Concurrent solves in batch mode, 0 = GOMAXPROCS

	Machine MachineSettings `json:"machine"`
}

// MachineSettings holds CNC configuration for cutting a plan.
type MachineSettings struct {
	ToolDiameter float64 `json:"tool_diameter"` // End mill diameter in board units
	FeedRate     float64 `json:"feed_rate"`     // Cutting feed rate units/min
	PlungeRate   float64 `json:"plunge_rate"`   // Plunge feed rate units/min
	SpindleSpeed int     `json:"spindle_speed"` // RPM
	SafeZ        float64 `json:"safe_z"`        // Safe retract height
	CutDepth     float64 `json:"cut_depth"`     // Total material thickness
	PassDepth    float64 `json:"pass_depth"`    // Depth per pass
	UnitScale    float64 `json:"unit_scale"`    // Machine units per board unit
	GCodeProfile string  `json:"gcode_profile"` // Name of the GCode profile to use
}

func DefaultSettings() Settings {
	return Settings{
		NegativeValues: NegativeReject,
		AllowRotation:  false,
		MaxCells:       0,
		Workers:        0,
		Machine: MachineSettings{
			ToolDiameter: 6.0,
			FeedRate:     1500.0,
			PlungeRate:   500.0,
			SpindleSpeed: 18000,
			SafeZ:        5.0,
			CutDepth:     18.0,
			PassDepth:    6.0,
			UnitScale:    1.0,
			GCodeProfile: "Generic",
		},
	}
}

// Project ties a board, catalog and settings together for save/load.
type Project struct {
	Name     string   `json:"name"`
	Board    Board    `json:"board"`
	Pieces   Catalog  `json:"pieces"`
	Settings Settings `json:"settings"`
	Result   *Plan    `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Pieces:   Catalog{},
		Settings: DefaultSettings(),
	}
}
