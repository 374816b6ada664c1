package report

import (
	"sort"
	"time"

	"kitchen-golang/internal/bomcost"
	"kitchen-golang/internal/daterange"
	"kitchen-golang/internal/jobmatch"
	"kitchen-golang/internal/laborcost"
	"kitchen-golang/internal/roster"
	"kitchen-golang/internal/storage"
	"kitchen-golang/internal/timemetrics"
)

// LaborParams are the wage and markup percentages applied uniformly to
// every row of one report render. Always passed explicitly; there is no
// ambient configuration the engine reads on its own.
type LaborParams struct {
	DailyWage   float64 `json:"daily_wage"`
	OverheadPct float64 `json:"overhead_pct"`
	UtilityPct  float64 `json:"utility_pct"`
}

// Query describes one report render.
type Query struct {
	Range  daterange.Range
	Search string
	Strict bool
}

// Row is one job's derived report record. Computed on demand, never stored.
type Row struct {
	JobID             int      `json:"id"`
	JobCode           string   `json:"job_code"`
	JobName           string   `json:"job_name"`
	ProductionDate    string   `json:"production_date"`
	Status            string   `json:"status"`
	TotalWeight       float64  `json:"total_weight"`
	TotalMaterialCost float64  `json:"total_material_cost"`
	PricePerUnit      *float64 `json:"price_per_unit"`
	PlannedMinutes    float64  `json:"planned_minutes"`
	ActualMinutes     float64  `json:"actual_minutes"`
	PlannedWindow     string   `json:"planned_window"`
	ActualWindow      string   `json:"actual_window"`
	Operators         []string `json:"operators"`
	Headcount         int      `json:"headcount"`
	LaborCost         float64  `json:"labor_cost"`
	LaborCostOverhead float64  `json:"labor_cost_overhead"`
	LaborCostFull     float64  `json:"labor_cost_full"`
	LaborCostPerUnit  *float64 `json:"labor_cost_per_unit"`

	date         time.Time
	plannedStart *time.Time
}

// BuildRows derives one report row per job. With Strict set and a search
// present, jobs are first collapsed to the single target the query resolves
// to; substring matching is the source's job. Ordering is production date
// descending, then planned start descending with nulls last, then job id
// descending — except a single-day query with no search keeps source order.
func BuildRows(
	jobs []*storage.Job,
	bomIndex map[string][]*storage.BomLine,
	priceIndex map[string]*storage.MaterialPrice,
	jobIndex []storage.JobRef,
	q Query,
	params LaborParams,
) []*Row {
	if q.Strict && q.Search != "" {
		target := jobmatch.ResolveTarget(q.Search, jobIndex)
		jobs = jobmatch.FilterByTarget(jobs, target)
	}

	rows := make([]*Row, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, buildRow(job, bomIndex[job.JobCode], priceIndex, params))
	}

	if !(q.Range.SingleDay() && q.Search == "") {
		sortRows(rows)
	}

	return rows
}

func buildRow(job *storage.Job, lines []*storage.BomLine, priceIndex map[string]*storage.MaterialPrice, params LaborParams) *Row {
	totals := bomcost.Rollup(lines, priceIndex)
	operators := roster.ProductionNames(job)
	headcount := roster.EffectiveHeadcount(job)

	planned := timemetrics.ElapsedMinutes(job.PlannedStart, job.PlannedEnd)
	actual := timemetrics.ElapsedMinutes(job.ActualStart, job.ActualEnd)

	// Cost follows recorded time; fall back to the plan while the floor has
	// not clocked the job yet.
	costMinutes := actual
	if costMinutes == 0 {
		costMinutes = planned
	}

	base := laborcost.Manhour(costMinutes, params.DailyWage, headcount)

	row := &Row{
		JobID:             job.ID,
		JobCode:           job.JobCode,
		JobName:           job.JobName,
		ProductionDate:    daterange.Key(daterange.Day(job.ProductionDate)),
		Status:            job.Status,
		TotalWeight:       totals.TotalWeight,
		TotalMaterialCost: totals.TotalCost,
		PlannedMinutes:    planned,
		ActualMinutes:     actual,
		PlannedWindow:     timemetrics.FormatRange(job.PlannedStart, job.PlannedEnd),
		ActualWindow:      timemetrics.FormatRange(job.ActualStart, job.ActualEnd),
		Operators:         operators,
		Headcount:         headcount,
		LaborCost:         base,
		LaborCostOverhead: laborcost.WithOverhead(base, params.OverheadPct),
		LaborCostFull:     laborcost.WithUtility(base, params.OverheadPct, params.UtilityPct),

		date:         daterange.Day(job.ProductionDate),
		plannedStart: job.PlannedStart,
	}

	if unit, ok := totals.PricePerUnit(); ok {
		row.PricePerUnit = &unit
	}
	if perUnit, ok := laborcost.PerUnit(base, job.OutputQty); ok {
		row.LaborCostPerUnit = &perUnit
	}

	return row
}

func sortRows(rows []*Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := rows[i], rows[j]

		if !ri.date.Equal(rj.date) {
			return ri.date.After(rj.date)
		}

		switch {
		case ri.plannedStart == nil && rj.plannedStart != nil:
			return false
		case ri.plannedStart != nil && rj.plannedStart == nil:
			return true
		case ri.plannedStart != nil && rj.plannedStart != nil:
			if !ri.plannedStart.Equal(*rj.plannedStart) {
				return ri.plannedStart.After(*rj.plannedStart)
			}
		}

		return ri.JobID > rj.JobID
	})
}

// Page is one slice of the sorted rows.
type Page struct {
	Rows       []*Row `json:"rows"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalRows  int    `json:"total_rows"`
	TotalPages int    `json:"total_pages"`
}

// Paginate is a pure slice over the rows. Out-of-range page numbers clamp
// into [1, totalPages] instead of erroring.
func Paginate(rows []*Row, pageSize, pageNumber int) Page {
	if pageSize <= 0 {
		pageSize = 50
	}

	totalPages := (len(rows) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return Page{
		Rows:       rows[start:end],
		Page:       pageNumber,
		PageSize:   pageSize,
		TotalRows:  len(rows),
		TotalPages: totalPages,
	}
}
