package project

import (
	"errors"
	"fmt"
	"time"

	"github.com/piwi3910/guillocut/internal/model"
)

// BackupVersion is written into every backup file.
const BackupVersion = "1.0.0"

// BackupData bundles all application data into a single file.
type BackupData struct {
	Version   string               `json:"version"`
	CreatedAt string               `json:"created_at"`
	Config    model.AppConfig      `json:"config"`
	Inventory model.Inventory      `json:"inventory"`
	Profiles  []model.GCodeProfile `json:"profiles"`
}

// ExportAllData writes config, inventory and custom profiles to exportPath.
func ExportAllData(exportPath string, config model.AppConfig, inv model.Inventory, profiles []model.GCodeProfile) error {
	backup := BackupData{
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Inventory: inv,
		Profiles:  profiles,
	}
	if err := writeJSON(exportPath, backup); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup file. The caller applies the contained data.
func ImportAllData(importPath string) (BackupData, error) {
	var backup BackupData
	found, err := readJSON(importPath, &backup)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if !found {
		return BackupData{}, errors.New("failed to read backup file: not found")
	}
	if backup.Version == "" {
		return BackupData{}, errors.New("invalid backup file: missing version field")
	}
	if backup.Config.RecentProjects == nil {
		backup.Config.RecentProjects = []string{}
	}
	if backup.Profiles == nil {
		backup.Profiles = []model.GCodeProfile{}
	}
	return backup, nil
}
