package core

import (
	"time"

	"github.com/strideworks/stridemap/schema"
)

// CompleteGrid densifies a sparse (weekday, hour) aggregate into the full
// cartesian product of the weekday order and all 24 hours. Every domain key
// gets exactly one cell: the aggregate's value when the key is present, zero
// otherwise. Without this step a heatmap would omit empty cells entirely
// instead of drawing them as zero.
//
// Cells are returned weekday-major in the given order, hours ascending, so
// the result is stable and directly renderable. len(result) is always
// len(order) * 24; for the full week that is schema.GridSize (168).
func CompleteGrid(values map[schema.GridKey]float64, order []time.Weekday) []schema.GridCell {
	cells := make([]schema.GridCell, 0, len(order)*schema.HoursPerDay)
	for _, day := range order {
		for hour := range schema.HoursPerDay {
			key := schema.GridKey{Weekday: day, Hour: hour}
			cells = append(cells, schema.GridCell{
				Weekday: day,
				Hour:    hour,
				Value:   values[key], // zero when absent
			})
		}
	}
	return cells
}
