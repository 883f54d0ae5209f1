package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/guillocut/internal/model"
)

func TestLoadInventoryCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	inv, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(inv.Tools) == 0 || len(inv.Boards) == 0 {
		t.Fatal("expected default tools and boards")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected default inventory to be saved: %v", err)
	}
}

func TestSaveAndLoadInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")

	inv := model.Inventory{
		Tools:  []model.ToolProfile{model.NewToolProfile("Saw", 3.2, 2000, 800, 5000, 20)},
		Boards: []model.BoardPreset{model.NewBoardPreset("Offcut 50x80", 50, 80, "Oak")},
	}
	if err := SaveInventory(path, inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	loaded, err := LoadInventory(path)
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if len(loaded.Tools) != 1 || loaded.Tools[0].Name != "Saw" {
		t.Errorf("unexpected tools %+v", loaded.Tools)
	}
	b := loaded.FindBoardByName("Offcut 50x80")
	if b == nil || b.Board() != (model.Board{Width: 50, Height: 80}) {
		t.Errorf("unexpected boards %+v", loaded.Boards)
	}
}

func TestLoadInventoryInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte("[1,2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInventory(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestMergeInventory(t *testing.T) {
	existing := model.DefaultInventory()
	tool := model.NewToolProfile("Extra", 1, 1, 1, 1, 1)
	imported := model.Inventory{
		Tools:  []model.ToolProfile{existing.Tools[0], tool},
		Boards: []model.BoardPreset{existing.Boards[0]},
	}

	merged := MergeInventory(existing, imported)

	if len(merged.Tools) != len(existing.Tools)+1 {
		t.Errorf("expected one new tool, got %d tools", len(merged.Tools))
	}
	if len(merged.Boards) != len(existing.Boards) {
		t.Errorf("duplicate board was merged: %d boards", len(merged.Boards))
	}
	if merged.FindToolByName("Extra") == nil {
		t.Error("expected imported tool to be present")
	}
}
