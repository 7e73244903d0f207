package chart

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/susu3304/ggclubstats/internal/stats"
)

var (
	barFill   = drawing.ColorFromHex("87ceeb") // sky blue
	barStroke = drawing.ColorBlack
	avgColor  = drawing.ColorRed
	refColor  = drawing.ColorFromHex("888888")
)

// RenderXPPerDay writes a PNG bar chart of daily XP totals to path, with a
// dashed line at avg and a solid reference line at stats.ReferenceXP.
func RenderXPPerDay(days []stats.DayTotal, avg float64, path string) error {
	if len(days) == 0 {
		return fmt.Errorf("no day totals to render")
	}

	bars := make([]chart.Value, 0, len(days))
	maxY := float64(stats.ReferenceXP)
	if avg > maxY {
		maxY = avg
	}
	for _, d := range days {
		bars = append(bars, chart.Value{
			Label: d.Date,
			Value: float64(d.XP),
			Style: chart.Style{FillColor: barFill, StrokeColor: barStroke, StrokeWidth: 1},
		})
		if float64(d.XP) > maxY {
			maxY = float64(d.XP)
		}
	}

	graph := chart.BarChart{
		Title:    "Club XP per day",
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Bars:     bars,
		XAxis:    chart.Style{TextRotationDegrees: 90},
		YAxis: chart.YAxis{
			Name:  "Total XP",
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
			GridMajorStyle: chart.Style{
				StrokeColor:     avgColor,
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{4, 2},
			},
			GridMinorStyle: chart.Style{
				StrokeColor: refColor,
				StrokeWidth: 1,
			},
			GridLines: []chart.GridLine{
				{Value: avg},
				{Value: stats.ReferenceXP, IsMinor: true},
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
