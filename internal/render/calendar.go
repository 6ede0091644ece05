package render

import (
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/strideworks/stridemap/schema"
)

// yearBandHeight is the canvas height reserved per year band.
const yearBandHeight = 1.8 * vg.Inch

// maxWeekColumns is the widest possible week axis: 53 ISO-ish weeks plus a
// possible partial leading week.
const maxWeekColumns = 54

// calendarGrid adapts one year of daily values to plotter.GridXYZ.
// Columns are week-of-year, rows are weekdays (Sunday at the top). Days
// outside the year are NaN so the heatmap leaves them blank; days inside the
// year with no activity are zero.
type calendarGrid struct {
	values [schema.DaysPerWeek][maxWeekColumns]float64
	weeks  int
}

func (g *calendarGrid) Dims() (c, r int) { return g.weeks, schema.DaysPerWeek }

func (g *calendarGrid) X(c int) float64 { return float64(c) }

func (g *calendarGrid) Y(r int) float64 { return float64(r) }

func (g *calendarGrid) Z(c, r int) float64 {
	// Row 0 plots at the bottom; Sunday belongs at the top.
	return g.values[schema.DaysPerWeek-1-r][c]
}

// buildCalendarGrid lays one year's days onto the week x weekday lattice.
func buildCalendarGrid(year int, days map[time.Time]float64, loc *time.Location) *calendarGrid {
	g := &calendarGrid{}
	for d := range g.values {
		for w := range g.values[d] {
			g.values[d][w] = math.NaN()
		}
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	offset := int(jan1.Weekday()) // Sunday-based week start

	for day := jan1; day.Year() == year; day = day.AddDate(0, 0, 1) {
		week := (day.YearDay() - 1 + offset) / schema.DaysPerWeek
		g.values[int(day.Weekday())][week] = days[day]
		if week+1 > g.weeks {
			g.weeks = week + 1
		}
	}
	return g
}

// SaveCalendarHeatmap renders one band of week x weekday tiles per year, stacked
// vertically into a single PNG. Day values are aggregated upstream; any date
// present in days must be midnight-truncated.
func SaveCalendarHeatmap(days []schema.DayValue, opts Options, path string) error {
	if len(days) == 0 {
		return fmt.Errorf("no daily values to render")
	}
	if opts.Buckets < 2 {
		opts.Buckets = 2
	}

	perYear := make(map[int]map[time.Time]float64)
	loc := days[0].Date.Location()
	for _, dv := range days {
		y := dv.Date.Year()
		if perYear[y] == nil {
			perYear[y] = make(map[time.Time]float64)
		}
		perYear[y][dv.Date] = dv.Value
	}

	years := make([]int, 0, len(perYear))
	for y := range perYear {
		years = append(years, y)
	}
	sort.Ints(years)

	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	pal := cm.Palette(opts.Buckets)

	plots := make([][]*plot.Plot, len(years))
	for i, year := range years {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("%s (%d)", opts.Title, year)
		p.Y.Tick.Marker = plot.ConstantTicks(weekdayTicks(schema.SundayFirst.Sequence()))
		p.X.Tick.Marker = monthTicks(year, loc)

		grid := buildCalendarGrid(year, perYear[year], loc)
		p.Add(plotter.NewHeatMap(grid, pal))
		plots[i] = []*plot.Plot{p}
	}

	img := vgimg.New(CanvasWidth, yearBandHeight*vg.Length(len(years)))
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: len(years), Cols: 1, PadY: vg.Millimeter}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	return nil
}

// monthTicks places a label at the first week of each month.
func monthTicks(year int, loc *time.Location) plot.ConstantTicks {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	offset := int(jan1.Weekday())

	ticks := make([]plot.Tick, 0, 12)
	for m := time.January; m <= time.December; m++ {
		first := time.Date(year, m, 1, 0, 0, 0, 0, loc)
		week := (first.YearDay() - 1 + offset) / schema.DaysPerWeek
		ticks = append(ticks, plot.Tick{Value: float64(week), Label: m.String()[:3]})
	}
	return ticks
}
