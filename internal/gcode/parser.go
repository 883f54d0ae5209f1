package gcode

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MoveType classifies a parsed G0/G1 command.
type MoveType int

const (
	MoveRapid   MoveType = iota // G0 in XY
	MoveFeed                    // G1 cutting in XY
	MovePlunge                  // Z down without XY travel
	MoveRetract                 // Z up
)

func (m MoveType) String() string {
	switch m {
	case MoveRapid:
		return "rapid"
	case MoveFeed:
		return "feed"
	case MovePlunge:
		return "plunge"
	case MoveRetract:
		return "retract"
	}
	return "unknown"
}

// Move is one absolute-coordinate motion read back from GCode.
type Move struct {
	Type          MoveType
	FromX, FromY  float64
	FromZ         float64
	ToX, ToY, ToZ float64
	FeedRate      float64
	Line          int // 1-based source line
}

// Length returns the XY travel distance of the move.
func (m Move) Length() float64 {
	return math.Hypot(m.ToX-m.FromX, m.ToY-m.FromY)
}

var coordRe = regexp.MustCompile(`([XYZF])(-?\d+\.?\d*)`)

// Parse reads G0/G1 commands from GCode, tracking the absolute machine
// position, and skips everything else including comments in either the
// semicolon or the parenthesis style.
func Parse(code string) []Move {
	var moves []Move
	curX, curY, curZ, curFeed := 0.0, 0.0, 0.0, 0.0

	for n, line := range strings.Split(code, "\n") {
		line = stripComment(line)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		word := strings.Fields(upper)[0]
		isRapid := word == "G0" || word == "G00"
		if !isRapid && word != "G1" && word != "G01" {
			continue
		}

		newX, newY, newZ, newFeed := curX, curY, curZ, curFeed
		for _, m := range coordRe.FindAllStringSubmatch(upper, -1) {
			val, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			switch m[1] {
			case "X":
				newX = val
			case "Y":
				newY = val
			case "Z":
				newZ = val
			case "F":
				newFeed = val
			}
		}

		moves = append(moves, Move{
			Type:     classifyMove(isRapid, curX, curY, curZ, newX, newY, newZ),
			FromX:    curX,
			FromY:    curY,
			FromZ:    curZ,
			ToX:      newX,
			ToY:      newY,
			ToZ:      newZ,
			FeedRate: newFeed,
			Line:     n + 1,
		})
		curX, curY, curZ, curFeed = newX, newY, newZ, newFeed
	}
	return moves
}

func stripComment(line string) string {
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = line[:idx]
	}
	if idx := strings.Index(line, "("); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

func classifyMove(isRapid bool, fromX, fromY, fromZ, toX, toY, toZ float64) MoveType {
	zDelta := toZ - fromZ
	hasXY := fromX != toX || fromY != toY

	switch {
	case zDelta > 0.001 && !hasXY:
		return MoveRetract
	case isRapid:
		return MoveRapid
	case zDelta < -0.001 && !hasXY:
		return MovePlunge
	default:
		return MoveFeed
	}
}

// Stats summarizes a toolpath.
type Stats struct {
	Moves       int
	Plunges     int
	FeedLength  float64
	RapidLength float64
	MinZ        float64
}

// Summarize totals the travel of a parsed toolpath.
func Summarize(moves []Move) Stats {
	var s Stats
	s.Moves = len(moves)
	for _, m := range moves {
		switch m.Type {
		case MoveFeed:
			s.FeedLength += m.Length()
		case MoveRapid:
			s.RapidLength += m.Length()
		case MovePlunge:
			s.Plunges++
		}
		s.MinZ = math.Min(s.MinZ, m.ToZ)
	}
	return s
}
