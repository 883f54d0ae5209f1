package project

import (
	"path/filepath"

	"github.com/piwi3910/guillocut/internal/model"
)

// DefaultInventoryPath returns ~/.guillocut/inventory.json.
func DefaultInventoryPath() string {
	return filepath.Join(DefaultConfigDir(), "inventory.json")
}

// SaveInventory writes the inventory to the specified JSON file.
func SaveInventory(path string, inv model.Inventory) error {
	return writeJSON(path, inv)
}

// LoadInventory reads the inventory from path. A missing file is replaced
// by the default inventory, which is saved for next time.
func LoadInventory(path string) (model.Inventory, error) {
	var inv model.Inventory
	found, err := readJSON(path, &inv)
	if err != nil {
		return model.Inventory{}, err
	}
	if !found {
		inv = model.DefaultInventory()
		return inv, SaveInventory(path, inv)
	}
	return inv, nil
}

// MergeInventory adds the tools and boards of imported whose IDs are not
// already present in existing.
func MergeInventory(existing, imported model.Inventory) model.Inventory {
	toolIDs := make(map[string]bool, len(existing.Tools))
	for _, t := range existing.Tools {
		toolIDs[t.ID] = true
	}
	boardIDs := make(map[string]bool, len(existing.Boards))
	for _, b := range existing.Boards {
		boardIDs[b.ID] = true
	}

	for _, t := range imported.Tools {
		if !toolIDs[t.ID] {
			existing.Tools = append(existing.Tools, t)
			toolIDs[t.ID] = true
		}
	}
	for _, b := range imported.Boards {
		if !boardIDs[b.ID] {
			existing.Boards = append(existing.Boards, b)
			boardIDs[b.ID] = true
		}
	}
	return existing
}
