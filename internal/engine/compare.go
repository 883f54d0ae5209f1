package engine

import (
	"fmt"

	"github.com/piwi3910/guillocut/internal/model"
)

// ComparisonScenario defines a named board and settings to compare.
type ComparisonScenario struct {
	Name     string
	Board    model.Board
	Settings model.Settings
}

// ComparisonResult holds the plan and computed statistics for a single scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Plan         model.Plan
	Value        float64
	PieceCount   int
	CutCount     int
	WastePercent float64
	Err          error
}

// CompareScenarios solves each scenario and returns the results in scenario
// order. A scenario that fails validation carries its error instead of a plan.
func CompareScenarios(scenarios []ComparisonScenario, catalog model.Catalog) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		opt := New(scenario.Settings)
		plan, err := opt.Solve(scenario.Board, catalog)
		if err != nil {
			results = append(results, ComparisonResult{Scenario: scenario, Err: err})
			continue
		}

		waste := 0.0
		if plan.TotalArea() > 0 {
			waste = 100.0 - plan.Efficiency()
		}

		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Plan:         plan,
			Value:        plan.Value,
			PieceCount:   len(plan.Placements),
			CutCount:     len(plan.Cuts),
			WastePercent: waste,
		})
	}

	return results
}

// BestResult returns the successful result with the highest value; the
// earliest scenario wins ties. ok is false when every scenario failed.
func BestResult(results []ComparisonResult) (best ComparisonResult, ok bool) {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if !ok || r.Value > best.Value {
			best, ok = r, true
		}
	}
	return best, ok
}

// BuildDefaultScenarios generates what-if variants of the current board and settings.
func BuildDefaultScenarios(board model.Board, base model.Settings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", Board: board, Settings: base},
	}

	alt := base
	alt.AllowRotation = !base.AllowRotation
	name := "With Rotation"
	if base.AllowRotation {
		name = "Without Rotation"
	}
	scenarios = append(scenarios, ComparisonScenario{Name: name, Board: board, Settings: alt})

	if board.Width != board.Height {
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Board Turned (%s)", board.Transposed()),
			Board:    board.Transposed(),
			Settings: base,
		})
	}

	return scenarios
}
