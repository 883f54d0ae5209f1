package model

import "github.com/google/uuid"

// ToolProfile is a reusable cutting tool configuration.
type ToolProfile struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ToolDiameter float64 `json:"tool_diameter"`
	FeedRate     float64 `json:"feed_rate"`
	PlungeRate   float64 `json:"plunge_rate"`
	SpindleSpeed int     `json:"spindle_speed"`
	PassDepth    float64 `json:"pass_depth"`
}

func NewToolProfile(name string, diameter, feedRate, plungeRate float64, spindleSpeed int, passDepth float64) ToolProfile {
	return ToolProfile{
		ID:           uuid.New().String()[:8],
		Name:         name,
		ToolDiameter: diameter,
		FeedRate:     feedRate,
		PlungeRate:   plungeRate,
		SpindleSpeed: spindleSpeed,
		PassDepth:    passDepth,
	}
}

// ApplyTo copies the tool parameters into machine settings.
func (tp ToolProfile) ApplyTo(m *MachineSettings) {
	m.ToolDiameter = tp.ToolDiameter
	m.FeedRate = tp.FeedRate
	m.PlungeRate = tp.PlungeRate
	m.SpindleSpeed = tp.SpindleSpeed
	m.PassDepth = tp.PassDepth
}

// BoardPreset is a named standard board size.
type BoardPreset struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Material string `json:"material"`
}

func NewBoardPreset(name string, width, height int, material string) BoardPreset {
	return BoardPreset{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Width:    width,
		Height:   height,
		Material: material,
	}
}

// Board returns the preset dimensions as a Board.
func (bp BoardPreset) Board() Board {
	return Board{Width: bp.Width, Height: bp.Height}
}

// Inventory holds saved tools and board presets.
type Inventory struct {
	Tools  []ToolProfile `json:"tools"`
	Boards []BoardPreset `json:"boards"`
}

// DefaultInventory returns an inventory with common sheet goods in millimetres.
func DefaultInventory() Inventory {
	return Inventory{
		Tools: []ToolProfile{
			NewToolProfile("6mm End Mill", 6.0, 1500, 500, 18000, 6.0),
			NewToolProfile("3mm End Mill", 3.0, 1000, 300, 20000, 3.0),
			NewToolProfile("1/4\" End Mill (6.35mm)", 6.35, 1500, 500, 18000, 6.0),
		},
		Boards: []BoardPreset{
			NewBoardPreset("Plywood 2440x1220", 2440, 1220, "Plywood"),
			NewBoardPreset("MDF 2440x1220", 2440, 1220, "MDF"),
			NewBoardPreset("MDF 1220x610", 1220, 610, "MDF"),
			NewBoardPreset("Acrylic 600x400", 600, 400, "Acrylic"),
		},
	}
}

// FindToolByName returns a pointer to the first tool with the given name, or nil.
func (inv *Inventory) FindToolByName(name string) *ToolProfile {
	for i := range inv.Tools {
		if inv.Tools[i].Name == name {
			return &inv.Tools[i]
		}
	}
	return nil
}

// FindBoardByName returns a pointer to the first board preset with the given name, or nil.
func (inv *Inventory) FindBoardByName(name string) *BoardPreset {
	for i := range inv.Boards {
		if inv.Boards[i].Name == name {
			return &inv.Boards[i]
		}
	}
	return nil
}

// BoardNames lists board preset names.
func (inv *Inventory) BoardNames() []string {
	names := make([]string, len(inv.Boards))
	for i, b := range inv.Boards {
		names[i] = b.Name
	}
	return names
}
