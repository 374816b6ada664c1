package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kitchen-golang/internal/daterange"
	"kitchen-golang/internal/storage"
)

func at(d, h, min int) *time.Time {
	t := time.Date(2025, 9, d, h, min, 0, 0, time.UTC)
	return &t
}

func day(d int) time.Time {
	return time.Date(2025, 9, d, 0, 0, 0, 0, time.UTC)
}

func multiDay(t *testing.T) daterange.Range {
	t.Helper()
	r, err := daterange.Make("2025-09-01", "2025-09-05")
	assert.NoError(t, err)
	return r
}

var params = LaborParams{DailyWage: 480, OverheadPct: 10, UtilityPct: 5}

func TestBuildRows_Ordering(t *testing.T) {
	jobs := []*storage.Job{
		{ID: 1, JobCode: "101001", ProductionDate: day(1), PlannedStart: at(1, 8, 0)},
		{ID: 2, JobCode: "101002", ProductionDate: day(3)},
		{ID: 3, JobCode: "101003", ProductionDate: day(3), PlannedStart: at(3, 6, 0)},
		{ID: 4, JobCode: "101004", ProductionDate: day(3), PlannedStart: at(3, 9, 0)},
		{ID: 5, JobCode: "101005", ProductionDate: day(2)},
	}

	rows := BuildRows(jobs, nil, nil, nil, Query{Range: multiDay(t)}, params)

	got := make([]int, 0, len(rows))
	for _, r := range rows {
		got = append(got, r.JobID)
	}

	// Date desc; within 09-03 planned start desc with the null last.
	assert.Equal(t, []int{4, 3, 2, 5, 1}, got)
}

func TestBuildRows_TieBreakByIDDesc(t *testing.T) {
	jobs := []*storage.Job{
		{ID: 7, ProductionDate: day(1), PlannedStart: at(1, 8, 0)},
		{ID: 9, ProductionDate: day(1), PlannedStart: at(1, 8, 0)},
	}

	rows := BuildRows(jobs, nil, nil, nil, Query{Range: multiDay(t)}, params)

	assert.Equal(t, 9, rows[0].JobID)
	assert.Equal(t, 7, rows[1].JobID)
}

func TestBuildRows_SingleDayKeepsSourceOrder(t *testing.T) {
	r, err := daterange.Make("2025-09-01", "2025-09-01")
	assert.NoError(t, err)

	jobs := []*storage.Job{
		{ID: 3, ProductionDate: day(1)},
		{ID: 1, ProductionDate: day(1)},
		{ID: 2, ProductionDate: day(1)},
	}

	rows := BuildRows(jobs, nil, nil, nil, Query{Range: r}, params)

	assert.Equal(t, 3, rows[0].JobID)
	assert.Equal(t, 1, rows[1].JobID)
	assert.Equal(t, 2, rows[2].JobID)
}

func TestBuildRows_StrictFiltering(t *testing.T) {
	jobs := []*storage.Job{
		{ID: 1, JobCode: "235001", JobName: "ขนมปังหมูหยอง", ProductionDate: day(1)},
		{ID: 2, JobCode: "990012", JobName: "งาน 235001 เก่า", ProductionDate: day(1)},
	}
	index := []storage.JobRef{{JobCode: "235001", JobName: "ขนมปังหมูหยอง"}}

	rows := BuildRows(jobs, nil, nil, index, Query{
		Range:  multiDay(t),
		Search: "235001",
		Strict: true,
	}, params)

	assert.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].JobID)
}

func TestBuildRows_CostAndLaborTiers(t *testing.T) {
	jobs := []*storage.Job{
		{
			ID:              1,
			JobCode:         "235001",
			ProductionDate:  day(1),
			ActualStart:     at(1, 8, 0),
			ActualEnd:       at(1, 9, 36), // 96 minutes
			OperatorsJoined: "Somchai, Malee",
			OutputQty:       96,
		},
	}
	bomIndex := map[string][]*storage.BomLine{
		"235001": {
			{MaterialID: "FG", Quantity: 5, FinishedGood: true},
			{MaterialID: "RM", Quantity: 2, Price: 10},
		},
	}

	rows := BuildRows(jobs, bomIndex, nil, nil, Query{Range: multiDay(t)}, params)

	row := rows[0]
	assert.Equal(t, 2.0, row.TotalWeight)
	assert.Equal(t, 20.0, row.TotalMaterialCost)
	assert.NotNil(t, row.PricePerUnit)
	assert.Equal(t, 10.0, *row.PricePerUnit)

	// 480 wage x 2 workers / 480 x 96 min.
	assert.InDelta(t, 192.0, row.LaborCost, 1e-9)
	assert.InDelta(t, 211.2, row.LaborCostOverhead, 1e-9)
	assert.InDelta(t, 220.8, row.LaborCostFull, 1e-9)
	assert.NotNil(t, row.LaborCostPerUnit)
	assert.InDelta(t, 2.0, *row.LaborCostPerUnit, 1e-9)
}

func TestBuildRows_NoBomMeansZeroTotals(t *testing.T) {
	jobs := []*storage.Job{
		{ID: 1, JobCode: "", ProductionDate: day(1)},
	}

	rows := BuildRows(jobs, nil, nil, nil, Query{Range: multiDay(t)}, params)

	assert.Equal(t, 0.0, rows[0].TotalWeight)
	assert.Equal(t, 0.0, rows[0].TotalMaterialCost)
	assert.Nil(t, rows[0].PricePerUnit)
}

func TestPaginate_Clamping(t *testing.T) {
	rows := make([]*Row, 25)
	for i := range rows {
		rows[i] = &Row{JobID: i + 1}
	}

	page := Paginate(rows, 10, 99)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Rows, 5)
	assert.Equal(t, 21, page.Rows[0].JobID)

	page = Paginate(rows, 10, 0)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Rows, 10)

	page = Paginate(nil, 10, 5)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Rows, 0)
}

func TestExportTable_DisplayStrings(t *testing.T) {
	unit := 1234.5
	rows := []*Row{
		{
			JobCode:           "235001",
			JobName:           "ขนมปังหมูหยอง",
			ProductionDate:    "2025-09-01",
			TotalWeight:       1500,
			TotalMaterialCost: 12345.678,
			PricePerUnit:      &unit,
			PlannedMinutes:    90,
			Operators:         []string{"Somchai", "Malee"},
			Headcount:         2,
		},
	}

	table := ExportTable(rows)

	assert.Len(t, table, 1)
	assert.Len(t, table[0], len(ExportHeaders))
	assert.Equal(t, "235001", table[0][0])
	assert.Equal(t, "1,500.00", table[0][4])
	assert.Equal(t, "12,345.68", table[0][5])
	assert.Equal(t, "1,234.50", table[0][6])
	assert.Equal(t, "01:30", table[0][9])
	assert.Equal(t, "Somchai, Malee", table[0][11])
}

func TestExportTable_UndefinedUnitPriceShowsPlaceholder(t *testing.T) {
	table := ExportTable([]*Row{{}})
	assert.Equal(t, "-", table[0][6])
}
