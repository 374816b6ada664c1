package capacity

import (
	"math"

	"kitchen-golang/internal/daterange"
	"kitchen-golang/internal/laborcost"
	"kitchen-golang/internal/roster"
	"kitchen-golang/internal/storage"
	"kitchen-golang/internal/timemetrics"
)

// DayAggregate is one calendar day of workforce utilization. Days without
// jobs still appear with zero values so gaps stay visible on the chart.
type DayAggregate struct {
	DateKey          string  `json:"date"`
	DateLabel        string  `json:"date_label"`
	PlannedMinutes   float64 `json:"planned_total_minutes"`
	ActualMinutes    float64 `json:"actual_total_minutes"`
	OperatorCount    int     `json:"unique_operator_count"`
	CapacityMinutes  float64 `json:"capacity_minutes"`
	PlannedPct       float64 `json:"planned_pct"`
	ActualPct        float64 `json:"actual_pct"`
	RemainingMinutes float64 `json:"remaining_minutes"`
	RemainingPct     float64 `json:"remaining_pct"`
}

// RangeSummary is the whole-range rollup of the day aggregates.
type RangeSummary struct {
	PlannedMinutes   float64 `json:"planned_total_minutes"`
	ActualMinutes    float64 `json:"actual_total_minutes"`
	CapacityMinutes  float64 `json:"capacity_minutes"`
	RemainingMinutes float64 `json:"remaining_minutes"`
	OperatorDays     int     `json:"operator_days"`
	PlannedPct       float64 `json:"planned_pct"`
	ActualPct        float64 `json:"actual_pct"`
}

type bucket struct {
	planned float64
	actual  float64
	names   map[string]bool
}

// Aggregate buckets jobs by production day over the range. Per-job minutes
// are weighted by effective headcount (each operator consumes capacity for
// the full job duration); the day's capacity comes from the union of
// production operator names across its jobs, not the sum of headcounts.
func Aggregate(jobs []*storage.Job, r daterange.Range) []*DayAggregate {
	buckets := make(map[string]*bucket)

	for _, job := range jobs {
		key := daterange.Key(daterange.Day(job.ProductionDate))
		b := buckets[key]
		if b == nil {
			b = &bucket{names: make(map[string]bool)}
			buckets[key] = b
		}

		head := float64(roster.EffectiveHeadcount(job))
		b.planned += timemetrics.ElapsedMinutes(job.PlannedStart, job.PlannedEnd) * head
		b.actual += timemetrics.ElapsedMinutes(job.ActualStart, job.ActualEnd) * head

		for _, name := range roster.ProductionNames(job) {
			b.names[name] = true
		}
	}

	days := make([]*DayAggregate, 0, r.NumDays())
	for d := range r.Days() {
		key := daterange.Key(d)
		agg := &DayAggregate{
			DateKey:   key,
			DateLabel: daterange.Format(d),
		}

		if b := buckets[key]; b != nil {
			agg.PlannedMinutes = b.planned
			agg.ActualMinutes = b.actual
			agg.OperatorCount = len(b.names)
			agg.CapacityMinutes = float64(agg.OperatorCount) * laborcost.WorkdayMinutes
		}

		agg.PlannedPct = pct(agg.PlannedMinutes, agg.CapacityMinutes)
		agg.ActualPct = pct(agg.ActualMinutes, agg.CapacityMinutes)
		agg.RemainingMinutes = math.Max(0, agg.CapacityMinutes-agg.PlannedMinutes)
		agg.RemainingPct = pct(agg.RemainingMinutes, agg.CapacityMinutes)

		days = append(days, agg)
	}

	return days
}

// Summarize rolls the day aggregates up to range totals.
func Summarize(days []*DayAggregate) RangeSummary {
	var sum RangeSummary

	for _, day := range days {
		sum.PlannedMinutes += day.PlannedMinutes
		sum.ActualMinutes += day.ActualMinutes
		sum.CapacityMinutes += day.CapacityMinutes
		sum.RemainingMinutes += day.RemainingMinutes
		sum.OperatorDays += day.OperatorCount
	}

	sum.PlannedPct = pct(sum.PlannedMinutes, sum.CapacityMinutes)
	sum.ActualPct = pct(sum.ActualMinutes, sum.CapacityMinutes)

	return sum
}

// pct is value over capacity as a percentage, 0 at zero capacity. A day
// with no staff is an expected state, not a division error.
func pct(value, capacityMinutes float64) float64 {
	if capacityMinutes == 0 {
		return 0
	}
	return value / capacityMinutes * 100
}
