package model

import (
	"math"
	"strings"
	"testing"
)

func testPlan() Plan {
	a := Piece{ID: "a", Label: "A", Width: 2, Height: 3, Value: 10}
	b := Piece{ID: "b", Label: "B", Width: 1, Height: 2, Value: 5}
	return Plan{
		Board: Board{Width: 4, Height: 4},
		Value: 25,
		Placements: []Placement{
			{Piece: a, X: 0, Y: 0},
			{Piece: b, X: 2, Y: 0},
			{Piece: b, X: 3, Y: 0},
		},
		Offcuts: []Offcut{
			{X: 0, Y: 3, Width: 2, Height: 1},
			{X: 2, Y: 2, Width: 2, Height: 2},
		},
	}
}

func TestPlanAreas(t *testing.T) {
	p := testPlan()
	if p.UsedArea() != 10 {
		t.Errorf("expected used area 10, got %d", p.UsedArea())
	}
	if p.TotalArea() != 16 {
		t.Errorf("expected total area 16, got %d", p.TotalArea())
	}
	if math.Abs(p.Efficiency()-62.5) > 1e-9 {
		t.Errorf("expected efficiency 62.5, got %f", p.Efficiency())
	}
	if p.WasteArea() != 6 {
		t.Errorf("expected waste 6, got %d", p.WasteArea())
	}
	if p.PlacedValue() != 20 {
		t.Errorf("expected placed value 20, got %f", p.PlacedValue())
	}
}

func TestPlanEfficiencyEmptyBoard(t *testing.T) {
	if e := (Plan{}).Efficiency(); e != 0 {
		t.Errorf("expected 0 efficiency for empty board, got %f", e)
	}
}

func TestPlanPieceCounts(t *testing.T) {
	counts := testPlan().PieceCounts()
	if len(counts) != 2 {
		t.Fatalf("expected 2 piece types, got %d", len(counts))
	}
	if counts[0].Piece.Label != "A" || counts[0].Count != 1 {
		t.Errorf("unexpected first count %+v", counts[0])
	}
	if counts[1].Piece.Label != "B" || counts[1].Count != 2 {
		t.Errorf("unexpected second count %+v", counts[1])
	}
}

func TestPlacementOverlaps(t *testing.T) {
	pc := Piece{Width: 2, Height: 2}
	base := Placement{Piece: pc, X: 1, Y: 1}
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"same spot", 1, 1, true},
		{"partial", 2, 2, true},
		{"adjacent right", 3, 1, false},
		{"adjacent above", 1, 3, false},
		{"far away", 10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := Placement{Piece: pc, X: tt.x, Y: tt.y}
			if got := base.Overlaps(other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlacementContains(t *testing.T) {
	b := Board{Width: 4, Height: 4}
	in := Placement{Piece: Piece{Width: 2, Height: 2}, X: 2, Y: 2}
	out := Placement{Piece: Piece{Width: 2, Height: 2}, X: 3, Y: 2}
	if !in.Contains(b) {
		t.Error("expected placement inside board")
	}
	if out.Contains(b) {
		t.Error("expected placement outside board")
	}
}

func TestPlanCheck(t *testing.T) {
	p := testPlan()
	if err := p.Check(); err != nil {
		t.Errorf("valid plan: %v", err)
	}

	outside := testPlan()
	outside.Placements[2].X = 4
	if err := outside.Check(); err == nil || !strings.Contains(err.Error(), "leaves board") {
		t.Errorf("expected board error, got %v", err)
	}

	overlap := testPlan()
	overlap.Placements[2].X = 2
	if err := overlap.Check(); err == nil || !strings.Contains(err.Error(), "overlaps placement 2") {
		t.Errorf("expected overlap error, got %v", err)
	}
}

func TestCutEnd(t *testing.T) {
	h := Cut{Orientation: Horizontal, X: 1, Y: 2, Length: 3}
	if x, y := h.End(); x != 4 || y != 2 {
		t.Errorf("horizontal end = (%d, %d)", x, y)
	}
	v := Cut{Orientation: Vertical, X: 1, Y: 2, Length: 3}
	if x, y := v.End(); x != 1 || y != 5 {
		t.Errorf("vertical end = (%d, %d)", x, y)
	}
}

func TestUsableOffcuts(t *testing.T) {
	p := testPlan()
	usable := p.UsableOffcuts(2)
	if len(usable) != 1 {
		t.Fatalf("expected 1 usable offcut, got %d", len(usable))
	}
	if usable[0].AsBoard() != (Board{Width: 2, Height: 2}) {
		t.Errorf("unexpected offcut %+v", usable[0])
	}
	all := p.UsableOffcuts(1)
	if len(all) != 2 || all[0].Area() < all[1].Area() {
		t.Errorf("expected both offcuts, largest first: %+v", all)
	}
}
