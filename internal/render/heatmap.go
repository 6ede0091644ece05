// Package render draws heatmap PNGs from completed grids using gonum/plot.
package render

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/strideworks/stridemap/schema"
)

// Default canvas size matches the notebook output the tool replaces.
const (
	CanvasWidth  = 10 * vg.Inch
	CanvasHeight = 7 * vg.Inch
)

// Options configures a heatmap rendering.
type Options struct {
	Title   string         // Plot title
	Order   []time.Weekday // Weekday axis order, top row first
	Buckets int            // Number of discrete color buckets
}

// weeklyGrid adapts completed grid cells to plotter.GridXYZ.
// Columns are hours of day, rows are weekdays. Cells arrive weekday-major in
// axis order (top first); plot rows grow bottom-up, so row r maps to
// order[rows-1-r].
type weeklyGrid struct {
	order []time.Weekday
	cells []schema.GridCell
}

func (g *weeklyGrid) Dims() (c, r int) { return schema.HoursPerDay, len(g.order) }

func (g *weeklyGrid) X(c int) float64 { return float64(c) }

func (g *weeklyGrid) Y(r int) float64 { return float64(r) }

func (g *weeklyGrid) Z(c, r int) float64 {
	day := len(g.order) - 1 - r
	return g.cells[day*schema.HoursPerDay+c].Value
}

// WeeklyHeatmap builds the weekday x hour tile plot from a completed grid.
// The grid must be complete: len(cells) == len(order) * 24, weekday-major in
// the same order.
func WeeklyHeatmap(cells []schema.GridCell, opts Options) (*plot.Plot, error) {
	if len(opts.Order) == 0 {
		opts.Order = schema.SundayFirst.Sequence()
	}
	if want := len(opts.Order) * schema.HoursPerDay; len(cells) != want {
		return nil, fmt.Errorf("incomplete grid: got %d cells, want %d", len(cells), want)
	}
	if opts.Buckets < 2 {
		opts.Buckets = 2
	}

	grid := &weeklyGrid{order: opts.Order, cells: cells}
	hm := plotter.NewHeatMap(grid, palette.Heat(opts.Buckets, 1))

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Hour of day"
	p.Add(hm)

	p.X.Tick.Marker = plot.ConstantTicks(hourTicks())
	p.Y.Tick.Marker = plot.ConstantTicks(weekdayTicks(opts.Order))
	return p, nil
}

// SaveWeeklyHeatmap renders the weekly heatmap to a PNG file.
func SaveWeeklyHeatmap(cells []schema.GridCell, opts Options, path string) error {
	p, err := WeeklyHeatmap(cells, opts)
	if err != nil {
		return err
	}
	return p.Save(CanvasWidth, CanvasHeight, path)
}

// hourTicks labels every third hour to keep the axis readable at 10 inches.
func hourTicks() []plot.Tick {
	var ticks []plot.Tick
	for h := 0; h < schema.HoursPerDay; h++ {
		t := plot.Tick{Value: float64(h)}
		if h%3 == 0 {
			t.Label = fmt.Sprintf("%d", h)
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// weekdayTicks labels each grid row with its weekday, top row first.
func weekdayTicks(order []time.Weekday) []plot.Tick {
	n := len(order)
	ticks := make([]plot.Tick, n)
	for i, day := range order {
		// order[0] is the top row, which plots at the highest Y value.
		ticks[i] = plot.Tick{Value: float64(n - 1 - i), Label: schema.WeekdayLabel(day)}
	}
	return ticks
}
