package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/guillocut/internal/model"
)

func TestSaveAndLoadProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelves.json")

	p := model.NewProject()
	p.Name = "Shelves"
	p.Board = model.Board{Width: 5, Height: 8}
	p.Pieces = model.Catalog{
		model.NewPiece("Small", 2, 3, 10),
		model.NewPiece("Large", 3, 4, 15),
	}
	p.Settings.AllowRotation = true
	p.Result = &model.Plan{
		Board:      p.Board,
		Value:      15,
		Placements: []model.Placement{{Piece: p.Pieces[1], X: 0, Y: 0}},
		Cuts:       []model.Cut{{Orientation: model.Horizontal, X: 0, Y: 4, Length: 5}},
	}

	if err := SaveProject(path, p); err != nil {
		t.Fatalf("SaveProject failed: %v", err)
	}

	loaded, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if loaded.Name != "Shelves" || loaded.Board != p.Board {
		t.Errorf("unexpected project header %q %v", loaded.Name, loaded.Board)
	}
	if len(loaded.Pieces) != 2 || loaded.Pieces[1].ID != p.Pieces[1].ID {
		t.Errorf("pieces not preserved: %+v", loaded.Pieces)
	}
	if !loaded.Settings.AllowRotation {
		t.Error("expected AllowRotation to survive the round trip")
	}
	if loaded.Result == nil || loaded.Result.Value != 15 || len(loaded.Result.Cuts) != 1 {
		t.Errorf("plan not preserved: %+v", loaded.Result)
	}
}

func TestLoadProjectMissingSettingsKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minimal.json")
	data := []byte(`{"name":"Minimal","board":{"width":2,"height":2},"pieces":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if p.Pieces == nil {
		t.Error("Pieces should not be nil after loading")
	}
	if p.Settings.NegativeValues != model.NegativeReject {
		t.Errorf("expected default negative policy, got %q", p.Settings.NegativeValues)
	}
	if p.Settings.Machine.GCodeProfile != "Generic" {
		t.Errorf("expected default GCode profile, got %q", p.Settings.Machine.GCodeProfile)
	}
}

func TestLoadProjectErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadProject(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProject(bad); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
