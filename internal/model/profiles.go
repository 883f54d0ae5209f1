package model

import "fmt"

// GCodeProfile describes the dialect of a CNC controller.
type GCodeProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsBuiltIn   bool   `json:"is_built_in"`

	StartCode    []string `json:"start_code"`
	SpindleStart string   `json:"spindle_start"` // e.g. "M3 S%d"
	SpindleStop  string   `json:"spindle_stop"`
	RapidMove    string   `json:"rapid_move"`
	FeedMove     string   `json:"feed_move"`
	EndCode      []string `json:"end_code"` // [SafeZ] is replaced with the retract height

	CommentPrefix string `json:"comment_prefix"`
	CommentSuffix string `json:"comment_suffix"`
	DecimalPlaces int    `json:"decimal_places"`
}

// GCodeProfiles are the built-in controller dialects. Generic must stay last.
var GCodeProfiles = []GCodeProfile{
	builtIn("Grbl", "Grbl (Arduino CNC shields)", []string{"G90", "G21", "G17"}, []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M2"}, ";", "", 3),
	builtIn("Mach3", "Mach3 CNC control software", []string{"G90", "G21", "G17", "G94"}, []string{"G0 Z[SafeZ]", "G28 X0 Y0", "M30"}, "(", ")", 4),
	builtIn("LinuxCNC", "LinuxCNC (formerly EMC2)", []string{"G90", "G21", "G17", "G94"}, []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M2"}, ";", "", 4),
	builtIn("Generic", "Generic standard GCode", []string{"G90", "G21"}, []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M2"}, ";", "", 3),
}

func builtIn(name, desc string, start, end []string, cPrefix, cSuffix string, decimals int) GCodeProfile {
	return GCodeProfile{
		Name:          name,
		Description:   desc,
		IsBuiltIn:     true,
		StartCode:     start,
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       end,
		CommentPrefix: cPrefix,
		CommentSuffix: cSuffix,
		DecimalPlaces: decimals,
	}
}

// CustomProfiles holds user-defined profiles loaded at startup.
var CustomProfiles []GCodeProfile

// AllProfiles returns built-in profiles followed by custom ones.
func AllProfiles() []GCodeProfile {
	all := make([]GCodeProfile, 0, len(GCodeProfiles)+len(CustomProfiles))
	all = append(all, GCodeProfiles...)
	return append(all, CustomProfiles...)
}

// GetProfile returns a profile by name, or the Generic profile if not found.
func GetProfile(name string) GCodeProfile {
	for _, p := range AllProfiles() {
		if p.Name == name {
			return p
		}
	}
	return GCodeProfiles[len(GCodeProfiles)-1]
}

// GetProfileNames returns the names of all available profiles.
func GetProfileNames() []string {
	var names []string
	for _, p := range AllProfiles() {
		names = append(names, p.Name)
	}
	return names
}

// NewCustomProfile returns a non-built-in copy of Generic under a new name.
func NewCustomProfile(name string) GCodeProfile {
	p := GetProfile("Generic")
	p.Name = name
	p.Description = "Custom profile"
	p.IsBuiltIn = false
	return p
}

// AddCustomProfile adds a custom profile or replaces one with the same name.
func AddCustomProfile(p GCodeProfile) error {
	for _, b := range GCodeProfiles {
		if b.Name == p.Name {
			return fmt.Errorf("profile %q is built-in", p.Name)
		}
	}
	p.IsBuiltIn = false
	for i := range CustomProfiles {
		if CustomProfiles[i].Name == p.Name {
			CustomProfiles[i] = p
			return nil
		}
	}
	CustomProfiles = append(CustomProfiles, p)
	return nil
}

// RemoveCustomProfile deletes a custom profile by name.
func RemoveCustomProfile(name string) error {
	for _, b := range GCodeProfiles {
		if b.Name == name {
			return fmt.Errorf("profile %q is built-in", name)
		}
	}
	for i := range CustomProfiles {
		if CustomProfiles[i].Name == name {
			CustomProfiles = append(CustomProfiles[:i], CustomProfiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("profile %q not found", name)
}
