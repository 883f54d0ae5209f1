package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/guillocut/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultGCodeProfile = "Grbl"
	inv := model.DefaultInventory()
	profiles := []model.GCodeProfile{model.NewCustomProfile("Shop Router")}

	if err := ExportAllData(path, cfg, inv, profiles); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Version != BackupVersion {
		t.Errorf("expected version %s, got %s", BackupVersion, backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.DefaultGCodeProfile != "Grbl" {
		t.Errorf("expected Grbl, got %s", backup.Config.DefaultGCodeProfile)
	}
	if len(backup.Inventory.Boards) != len(inv.Boards) {
		t.Errorf("expected %d boards, got %d", len(inv.Boards), len(backup.Inventory.Boards))
	}
	if len(backup.Profiles) != 1 || backup.Profiles[0].Name != "Shop Router" {
		t.Errorf("unexpected profiles %+v", backup.Profiles)
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestImportAllDataNilSlices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	data := []byte(`{"version":"1.0.0","config":{"recent_projects":null}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Config.RecentProjects == nil || backup.Profiles == nil {
		t.Error("slices should not be nil after import")
	}
}

func TestImportAllDataErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ImportAllData(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(bad); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
