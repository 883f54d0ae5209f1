package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/piwi3910/guillocut/internal/engine"
)

// ErrNoPoints is returned when a sweep has nothing to chart.
var ErrNoPoints = errors.New("no sweep points to chart")

// ExportSweepChart renders an HTML line chart of optimal value against board width.
func ExportSweepChart(w io.Writer, points []engine.SweepPoint) error {
	if len(points) == 0 {
		return ErrNoPoints
	}

	widths := make([]int, 0, len(points))
	values := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		widths = append(widths, p.Width)
		values = append(values, opts.LineData{Value: p.Value})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Optimal value by board width",
			Subtitle: fmt.Sprintf("height %d, widths %d..%d", points[0].Height, points[0].Width, points[len(points)-1].Width),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "width"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "value"}),
	)
	line.SetXAxis(widths).AddSeries("value", values)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
