package gcode

import (
	"fmt"

	"github.com/piwi3910/guillocut/internal/model"
)

const tolerance = 1e-6

// Violation is a toolpath move that would damage the board or the machine bed.
type Violation struct {
	Line   int
	Move   MoveType
	X, Y   float64
	Z      float64
	Reason string
}

// CheckToolpath replays a parsed toolpath against the board outline: feed
// moves must stay on the board, no move may go below the cut depth and
// rapid moves must never travel inside the material.
func CheckToolpath(moves []Move, board model.Board, settings model.MachineSettings) []Violation {
	scale := settings.UnitScale
	if scale <= 0 {
		scale = 1
	}
	maxX := float64(board.Width) * scale
	maxY := float64(board.Height) * scale

	var violations []Violation
	for _, m := range moves {
		v := Violation{Line: m.Line, Move: m.Type, X: m.ToX, Y: m.ToY, Z: m.ToZ}
		switch {
		case m.ToZ < -settings.CutDepth-tolerance:
			v.Reason = fmt.Sprintf("depth %.3f exceeds cut depth %.3f", -m.ToZ, settings.CutDepth)
		case m.Type == MoveRapid && m.FromZ < -tolerance:
			v.Reason = "rapid move inside material"
		case m.ToZ < -tolerance && !onBoard(m.ToX, m.ToY, maxX, maxY):
			v.Reason = "cutting outside the board"
		default:
			continue
		}
		violations = append(violations, v)
	}
	return violations
}

func onBoard(x, y, maxX, maxY float64) bool {
	return x >= -tolerance && y >= -tolerance && x <= maxX+tolerance && y <= maxY+tolerance
}

// FormatViolations produces human-readable warning messages.
func FormatViolations(violations []Violation) []string {
	warnings := make([]string, 0, len(violations))
	for _, v := range violations {
		warnings = append(warnings, fmt.Sprintf("line %d: %s to X%.3f Y%.3f Z%.3f: %s",
			v.Line, v.Move, v.X, v.Y, v.Z, v.Reason))
	}
	return warnings
}
