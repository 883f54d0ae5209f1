package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/guillocut/internal/model"
)

func resetCustomProfiles(t *testing.T) {
	t.Helper()
	saved := model.CustomProfiles
	model.CustomProfiles = nil
	t.Cleanup(func() { model.CustomProfiles = saved })
}

func TestSaveAndLoadCustomProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")

	shop := model.NewCustomProfile("Shop Router")
	shop.DecimalPlaces = 2
	shop.IsBuiltIn = true // never trusted from disk

	if err := SaveCustomProfiles(path, []model.GCodeProfile{shop}); err != nil {
		t.Fatalf("SaveCustomProfiles failed: %v", err)
	}

	loaded, err := LoadCustomProfiles(path)
	if err != nil {
		t.Fatalf("LoadCustomProfiles failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(loaded))
	}
	if loaded[0].Name != "Shop Router" || loaded[0].DecimalPlaces != 2 {
		t.Errorf("unexpected profile %+v", loaded[0])
	}
	if loaded[0].IsBuiltIn {
		t.Error("loaded profiles must not be built-in")
	}
}

func TestLoadCustomProfilesMissingFile(t *testing.T) {
	profiles, err := LoadCustomProfiles(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profiles == nil || len(profiles) != 0 {
		t.Errorf("expected empty slice, got %v", profiles)
	}
}

func TestRegisterCustomProfiles(t *testing.T) {
	resetCustomProfiles(t)
	path := filepath.Join(t.TempDir(), "profiles.json")

	shadow := model.NewCustomProfile("Grbl")
	if err := SaveCustomProfiles(path, []model.GCodeProfile{model.NewCustomProfile("Shop Router"), shadow}); err != nil {
		t.Fatal(err)
	}

	err := RegisterCustomProfiles(path)
	if err == nil {
		t.Error("expected an error for the profile shadowing Grbl")
	}
	if got := model.GetProfile("Shop Router"); got.Name != "Shop Router" {
		t.Errorf("expected Shop Router to be registered, got %s", got.Name)
	}
	if !model.GetProfile("Grbl").IsBuiltIn {
		t.Error("built-in Grbl must not be replaced")
	}
}

func TestExportAndImportProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.json")

	if err := ExportProfile(path, model.GetProfile("Mach3")); err != nil {
		t.Fatalf("ExportProfile failed: %v", err)
	}
	p, err := ImportProfile(path)
	if err != nil {
		t.Fatalf("ImportProfile failed: %v", err)
	}
	if p.Name != "Mach3" || p.IsBuiltIn {
		t.Errorf("unexpected imported profile %+v", p)
	}
	if p.CommentPrefix != "(" {
		t.Errorf("expected Mach3 comment prefix, got %q", p.CommentPrefix)
	}
}

func TestImportProfileWithoutName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nameless.json")
	if err := os.WriteFile(path, []byte(`{"description":"no name"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportProfile(path); err == nil {
		t.Error("expected error for profile without name")
	}
}
