package core

import (
	"sort"
	"time"

	"github.com/strideworks/stridemap/schema"
)

// WeeklyAgg holds per-(weekday, hour) aggregates over a set of activities.
// Only keys with at least one activity are present; CompleteGrid densifies
// the maps into the full 7x24 domain.
type WeeklyAgg struct {
	Counts       map[schema.GridKey]int
	DistanceSums map[schema.GridKey]float64
}

// AggregateWeekly groups activities by (weekday, hour of day).
func AggregateWeekly(acts []schema.Activity) *WeeklyAgg {
	agg := &WeeklyAgg{
		Counts:       make(map[schema.GridKey]int),
		DistanceSums: make(map[schema.GridKey]float64),
	}
	for _, a := range acts {
		fields := Derive(a.StartTime)
		key := schema.GridKey{Weekday: fields.Weekday, Hour: fields.Hour}
		agg.Counts[key]++
		agg.DistanceSums[key] += a.DistanceKm
	}
	return agg
}

// CountValues returns activity counts per grid key.
func (a *WeeklyAgg) CountValues() map[schema.GridKey]float64 {
	out := make(map[schema.GridKey]float64, len(a.Counts))
	for k, n := range a.Counts {
		out[k] = float64(n)
	}
	return out
}

// MeanDistanceValues returns the mean distance per grid key. Keys are only
// present where at least one activity exists, so no division by zero occurs.
func (a *WeeklyAgg) MeanDistanceValues() map[schema.GridKey]float64 {
	out := make(map[schema.GridKey]float64, len(a.Counts))
	for k, n := range a.Counts {
		out[k] = a.DistanceSums[k] / float64(n)
	}
	return out
}

// Values selects the aggregate for the given metric.
func (a *WeeklyAgg) Values(metric schema.Metric) map[schema.GridKey]float64 {
	if metric == schema.DistanceMetric {
		return a.MeanDistanceValues()
	}
	return a.CountValues()
}

// Summarize computes whole-dataset statistics over the filtered activities.
func Summarize(acts []schema.Activity) schema.SummaryStats {
	var s schema.SummaryStats
	s.Activities = len(acts)
	for _, a := range acts {
		s.TotalDistanceKm += a.DistanceKm
		if a.DistanceKm > s.MaxDistanceKm {
			s.MaxDistanceKm = a.DistanceKm
		}
		if a.Calories != nil {
			s.TotalCalories += *a.Calories
		}
		if s.First.IsZero() || a.StartTime.Before(s.First) {
			s.First = a.StartTime
		}
		if a.StartTime.After(s.Last) {
			s.Last = a.StartTime
		}
	}
	if s.Activities > 0 {
		s.MeanDistanceKm = s.TotalDistanceKm / float64(s.Activities)
	}
	return s
}

// WeeklyTotals aggregates distance and counts per ISO (year, week),
// sorted chronologically.
func WeeklyTotals(acts []schema.Activity) []schema.WeekTotal {
	type yearWeek struct{ year, week int }
	totals := make(map[yearWeek]*schema.WeekTotal)
	for _, a := range acts {
		y, w := DeriveISOYearWeek(a.StartTime)
		key := yearWeek{y, w}
		t, ok := totals[key]
		if !ok {
			t = &schema.WeekTotal{Year: y, Week: w}
			totals[key] = t
		}
		t.Activities++
		t.DistanceKm += a.DistanceKm
	}

	out := make([]schema.WeekTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Week < out[j].Week
	})
	return out
}

// MonthlyTotals aggregates distance and counts per calendar (year, month),
// sorted chronologically.
func MonthlyTotals(acts []schema.Activity) []schema.MonthTotal {
	type yearMonth struct {
		year  int
		month time.Month
	}
	totals := make(map[yearMonth]*schema.MonthTotal)
	for _, a := range acts {
		fields := Derive(a.StartTime)
		key := yearMonth{fields.Year, fields.Month}
		t, ok := totals[key]
		if !ok {
			t = &schema.MonthTotal{Year: fields.Year, Month: fields.Month}
			totals[key] = t
		}
		t.Activities++
		t.DistanceKm += a.DistanceKm
	}

	out := make([]schema.MonthTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// SportCounts returns activity counts per sport, sorted by count descending
// then name for stable output.
func SportCounts(acts []schema.Activity) []schema.SportCount {
	counts := make(map[schema.SportKind]int)
	for _, a := range acts {
		counts[a.Sport]++
	}
	out := make([]schema.SportCount, 0, len(counts))
	for sport, n := range counts {
		out = append(out, schema.SportCount{Sport: sport, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Sport < out[j].Sport
	})
	return out
}

// DailyValues aggregates activities per calendar day for the calendar
// heatmap: counts or summed distance per day, sorted by date.
func DailyValues(acts []schema.Activity, metric schema.Metric) []schema.DayValue {
	perDay := make(map[time.Time]float64)
	for _, a := range acts {
		day := time.Date(a.StartTime.Year(), a.StartTime.Month(), a.StartTime.Day(), 0, 0, 0, 0, a.StartTime.Location())
		if metric == schema.DistanceMetric {
			perDay[day] += a.DistanceKm
		} else {
			perDay[day]++
		}
	}

	out := make([]schema.DayValue, 0, len(perDay))
	for day, v := range perDay {
		out = append(out, schema.DayValue{Date: day, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
