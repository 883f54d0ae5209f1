package gcode

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/piwi3910/guillocut/internal/model"
)

// Generator produces GCode for the guillotine cut sequence of a plan.
type Generator struct {
	Settings model.MachineSettings
	profile  model.GCodeProfile
}

func New(settings model.MachineSettings) *Generator {
	return &Generator{
		Settings: settings,
		profile:  model.GetProfile(settings.GCodeProfile),
	}
}

// Generate emits the header, every cut of the plan as straight feed moves
// repeated per pass depth, and the footer. Outer cuts come first so each
// sub-board is separated before it is divided further.
func (g *Generator) Generate(plan model.Plan) string {
	var b strings.Builder

	g.writeHeader(&b, plan)

	for i, c := range OrderedCuts(plan.Cuts) {
		g.writeCut(&b, c, i+1)
	}

	g.writeFooter(&b)
	return b.String()
}

// OrderedCuts returns the cuts sorted by depth in the cut tree, keeping the
// plan order among cuts of equal depth.
func OrderedCuts(cuts []model.Cut) []model.Cut {
	ordered := make([]model.Cut, len(cuts))
	copy(ordered, cuts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Depth < ordered[j].Depth
	})
	return ordered
}

// Passes returns the number of depth passes needed to cut through the board.
func (g *Generator) Passes() int {
	if g.Settings.PassDepth <= 0 || g.Settings.CutDepth <= 0 {
		return 1
	}
	return int(math.Ceil(g.Settings.CutDepth / g.Settings.PassDepth))
}

func (g *Generator) scale() float64 {
	if g.Settings.UnitScale <= 0 {
		return 1
	}
	return g.Settings.UnitScale
}

func (g *Generator) writeHeader(b *strings.Builder, plan model.Plan) {
	p := g.profile

	b.WriteString(g.comment("guillocut GCode"))
	b.WriteString(g.comment(fmt.Sprintf("Board: %d x %d, scale %s", plan.Board.Width, plan.Board.Height, g.format(g.scale()))))
	b.WriteString(g.comment(fmt.Sprintf("Pieces: %d, Cuts: %d, Value: %g", len(plan.Placements), len(plan.Cuts), plan.Value)))
	b.WriteString(g.comment(fmt.Sprintf("Tool: %.1f, Feed: %.0f/min, Plunge: %.0f/min",
		g.Settings.ToolDiameter, g.Settings.FeedRate, g.Settings.PlungeRate)))
	b.WriteString(g.comment(fmt.Sprintf("Depth: %.1f in %d passes", g.Settings.CutDepth, g.Passes())))
	b.WriteString(g.comment(fmt.Sprintf("Profile: %s", p.Name)))
	b.WriteString("\n")

	for _, code := range p.StartCode {
		b.WriteString(code + "\n")
	}

	if p.SpindleStart != "" {
		b.WriteString(fmt.Sprintf(p.SpindleStart+"\n", g.Settings.SpindleSpeed))
	}

	b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
	b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(0), g.format(0)))

	b.WriteString("\n")
}

func (g *Generator) writeFooter(b *strings.Builder) {
	p := g.profile

	b.WriteString("\n")
	b.WriteString(g.comment("=== Job complete ==="))

	for _, code := range p.EndCode {
		b.WriteString(strings.ReplaceAll(code, "[SafeZ]", g.format(g.Settings.SafeZ)) + "\n")
	}

	if p.SpindleStop != "" {
		b.WriteString(p.SpindleStop + "\n")
	}
}

func (g *Generator) writeCut(b *strings.Builder, c model.Cut, num int) {
	p := g.profile
	s := g.scale()

	ex, ey := c.End()
	x0, y0 := float64(c.X)*s, float64(c.Y)*s
	x1, y1 := float64(ex)*s, float64(ey)*s

	b.WriteString(g.comment(fmt.Sprintf("--- Cut %d: %s from %d,%d length %d, depth %d ---",
		num, c.Orientation, c.X, c.Y, c.Length, c.Depth)))

	passes := g.Passes()
	for pass := 1; pass <= passes; pass++ {
		depth := float64(pass) * g.Settings.PassDepth
		if passes == 1 || depth > g.Settings.CutDepth {
			depth = g.Settings.CutDepth
		}

		if passes > 1 {
			b.WriteString(g.comment(fmt.Sprintf("Pass %d/%d, depth=%s", pass, passes, g.format(depth))))
		}
		b.WriteString(fmt.Sprintf("%s X%s Y%s\n", p.RapidMove, g.format(x0), g.format(y0)))
		b.WriteString(fmt.Sprintf("%s Z%s F%s\n", p.FeedMove, g.format(-depth), g.format(g.Settings.PlungeRate)))
		b.WriteString(fmt.Sprintf("%s X%s Y%s F%s\n", p.FeedMove, g.format(x1), g.format(y1), g.format(g.Settings.FeedRate)))
		b.WriteString(fmt.Sprintf("%s Z%s\n", p.RapidMove, g.format(g.Settings.SafeZ)))
	}

	b.WriteString("\n")
}

func (g *Generator) comment(text string) string {
	if g.profile.CommentSuffix != "" {
		return g.profile.CommentPrefix + " " + text + " " + g.profile.CommentSuffix + "\n"
	}
	return g.profile.CommentPrefix + " " + text + "\n"
}

// format formats a coordinate according to the profile's decimal places.
func (g *Generator) format(v float64) string {
	return fmt.Sprintf("%.*f", g.profile.DecimalPlaces, v)
}
