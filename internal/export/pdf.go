// Package export renders optimized cutting plans to PDF, label sheets,
// Excel workbooks and HTML charts.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/guillocut/internal/model"
)

// ErrEmptyPlan is returned when a plan has nothing to render.
var ErrEmptyPlan = errors.New("plan has no board to render")

// pieceColor represents an RGB color for a placed piece.
type pieceColor struct {
	R, G, B int
}

var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	summaryWidth = 80.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// colorIndex assigns each piece ID a stable color slot in order of first
// appearance, so every copy of a piece shares a color.
func colorIndex(plan model.Plan) map[string]int {
	idx := make(map[string]int)
	for _, p := range plan.Placements {
		if _, ok := idx[p.Piece.ID]; !ok {
			idx[p.Piece.ID] = len(idx)
		}
	}
	return idx
}

// ExportPDF writes a single-page cutting plan: the board diagram with every
// placement and cut line, a legend of piece types and a summary block.
func ExportPDF(path string, plan model.Plan) error {
	if plan.Board.Width <= 0 || plan.Board.Height <= 0 {
		return ErrEmptyPlan
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	renderPlanPage(pdf, plan)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// renderPlanPage draws the board, placements, cuts, legend and summary.
func renderPlanPage(pdf *fpdf.Fpdf, plan model.Plan) {
	board := plan.Board

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Cutting Plan: board %s, value %s", board, formatValue(plan.Value))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Pieces: %d | Cuts: %d | Used area: %d | Total area: %d | Efficiency: %.1f%%",
		len(plan.Placements), len(plan.Cuts), plan.UsedArea(), plan.TotalArea(), plan.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight - summaryWidth - 5
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/float64(board.Width), drawHeight/float64(board.Height))
	canvasW := float64(board.Width) * scale
	canvasH := float64(board.Height) * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Board coordinates grow upwards, page coordinates downwards.
	toPage := func(x, y, h int) (float64, float64) {
		return offsetX + float64(x)*scale, offsetY + float64(board.Height-y-h)*scale
	}

	// Board background (offcut color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	colors := colorIndex(plan)
	for _, p := range plan.Placements {
		col := pieceColors[colors[p.Piece.ID]%len(pieceColors)]
		pw := float64(p.Piece.Width) * scale
		ph := float64(p.Piece.Height) * scale
		px, py := toPage(p.X, p.Y, p.Piece.Height)

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.Piece.Label
			dims := fmt.Sprintf("%dx%d", p.Piece.Width, p.Piece.Height)
			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawCuts(pdf, plan.Cuts, toPage, scale)
	drawDimensionAnnotations(pdf, board, offsetX, offsetY, canvasW, canvasH)
	drawLegend(pdf, plan, colors, offsetY+canvasH+6)
	drawSummary(pdf, plan, pageWidth-marginRight-summaryWidth, drawAreaTop)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by guillocut - guillotine board optimizer", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// drawCuts renders cut lines, thinner for deeper cuts in the cut tree.
func drawCuts(pdf *fpdf.Fpdf, cuts []model.Cut, toPage func(x, y, h int) (float64, float64), scale float64) {
	pdf.SetDrawColor(200, 0, 0)
	for _, c := range cuts {
		pdf.SetLineWidth(math.Max(0.15, 0.6-0.1*float64(c.Depth)))
		x1, y1 := toPage(c.X, c.Y, 0)
		ex, ey := c.End()
		x2, y2 := toPage(ex, ey, 0)
		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds width and height labels outside the board rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, board model.Board, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d", board.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%d", board.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawLegend renders one swatch per piece type with its count.
func drawLegend(pdf *fpdf.Fpdf, plan model.Plan, colors map[string]int, startY float64) {
	counts := plan.PieceCounts()
	if len(counts) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Pieces placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight - summaryWidth

	for _, pc := range counts {
		col := pieceColors[colors[pc.Piece.ID]%len(pieceColors)]
		label := fmt.Sprintf("%s (%dx%d) x%d", pc.Piece.Label, pc.Piece.Width, pc.Piece.Height, pc.Count)
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// drawSummary renders the statistics table to the right of the diagram.
func drawSummary(pdf *fpdf.Fpdf, plan model.Plan, x, y float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(x, y)
	pdf.CellFormat(summaryWidth, 7, "Summary", "", 0, "L", false, 0, "")
	y += 9

	items := []struct {
		label string
		value string
	}{
		{"Board", plan.Board.String()},
		{"Maximum Value", formatValue(plan.Value)},
		{"Pieces Placed", fmt.Sprintf("%d", len(plan.Placements))},
		{"Cuts", fmt.Sprintf("%d", len(plan.Cuts))},
		{"Offcuts", fmt.Sprintf("%d", len(plan.Offcuts))},
		{"Waste Area", fmt.Sprintf("%d", plan.WasteArea())},
		{"Efficiency", fmt.Sprintf("%.1f%%", plan.Efficiency())},
	}

	pdf.SetFont("Helvetica", "", 9)
	for i, item := range items {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetXY(x, y)
		pdf.CellFormat(summaryWidth/2, 6, item.label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(summaryWidth/2, 6, item.value, "1", 0, "R", true, 0, "")
		y += 6
	}
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

// formatValue prints whole values without decimals.
func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
