package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/piwi3910/guillocut/internal/engine"
	"github.com/piwi3910/guillocut/internal/model"
)

func TestExportSweepChart(t *testing.T) {
	points, err := engine.New(model.DefaultSettings()).SweepWidths(1, 10, 8, referenceCatalog())
	if err != nil {
		t.Fatalf("SweepWidths returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportSweepChart(&buf, points); err != nil {
		t.Fatalf("ExportSweepChart returned error: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "<html") {
		t.Error("expected an HTML document")
	}
	if !strings.Contains(html, "Optimal value by board width") {
		t.Error("expected chart title in output")
	}
}

func TestExportSweepChart_NoPoints(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportSweepChart(&buf, nil); !errors.Is(err, ErrNoPoints) {
		t.Fatalf("expected ErrNoPoints, got %v", err)
	}
}
