package export

import (
	"os"
	"testing"

	"github.com/piwi3910/guillocut/internal/engine"
	"github.com/piwi3910/guillocut/internal/model"
)

func referenceCatalog() model.Catalog {
	return model.Catalog{
		{ID: "a", Label: "Small", Width: 2, Height: 3, Value: 10},
		{ID: "b", Label: "Strip", Width: 1, Height: 2, Value: 5},
		{ID: "c", Label: "Large", Width: 3, Height: 4, Value: 15},
	}
}

// buildTestPlan solves the reference board so exports see a real cut tree.
func buildTestPlan(t *testing.T) model.Plan {
	t.Helper()
	plan, err := engine.New(model.DefaultSettings()).Solve(model.Board{Width: 5, Height: 8}, referenceCatalog())
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	return plan
}

func assertFileWritten(t *testing.T, path string, minSize int64) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() < minSize {
		t.Errorf("file seems too small: %d bytes", info.Size())
	}
}
