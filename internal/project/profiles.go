package project

import (
	"errors"
	"path/filepath"

	"github.com/piwi3910/guillocut/internal/model"
)

// DefaultProfilesPath returns ~/.guillocut/profiles.json.
func DefaultProfilesPath() string {
	return filepath.Join(DefaultConfigDir(), "profiles.json")
}

// SaveCustomProfiles saves custom profiles to a JSON file.
func SaveCustomProfiles(path string, profiles []model.GCodeProfile) error {
	return writeJSON(path, profiles)
}

// LoadCustomProfiles loads custom profiles from a JSON file. It returns an
// empty slice if the file does not exist. Loaded profiles are never built-in.
func LoadCustomProfiles(path string) ([]model.GCodeProfile, error) {
	profiles := []model.GCodeProfile{}
	if _, err := readJSON(path, &profiles); err != nil {
		return nil, err
	}
	for i := range profiles {
		profiles[i].IsBuiltIn = false
	}
	return profiles, nil
}

// RegisterCustomProfiles loads profiles from path and adds them to the
// model registry. Profiles that shadow a built-in name are skipped and
// reported in the returned error.
func RegisterCustomProfiles(path string) error {
	profiles, err := LoadCustomProfiles(path)
	if err != nil {
		return err
	}
	var errs []error
	for _, p := range profiles {
		if err := model.AddCustomProfile(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ImportProfile imports a single shared profile from a JSON file.
func ImportProfile(path string) (model.GCodeProfile, error) {
	var profile model.GCodeProfile
	found, err := readJSON(path, &profile)
	if err != nil {
		return model.GCodeProfile{}, err
	}
	if !found || profile.Name == "" {
		return model.GCodeProfile{}, errors.New("imported profile has no name")
	}
	profile.IsBuiltIn = false
	return profile, nil
}

// ExportProfile writes a single profile to a JSON file for sharing.
func ExportProfile(path string, profile model.GCodeProfile) error {
	profile.IsBuiltIn = false
	return writeJSON(path, profile)
}
