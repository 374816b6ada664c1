package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"kitchen-golang/internal/timemetrics"
)

// ExportHeaders are the columns of the tabular export, matching what the
// dashboard table shows.
var ExportHeaders = []string{
	"รหัสงาน",          // job code
	"ชื่องาน",          // job name
	"วันที่ผลิต",       // production date
	"สถานะ",            // status
	"น้ำหนักรวม",       // total weight
	"ต้นทุนวัตถุดิบ",   // material cost
	"ราคาต่อหน่วย",     // price per unit
	"เวลาตามแผน",       // planned window
	"เวลาจริง",         // actual window
	"นาทีตามแผน",       // planned minutes
	"นาทีจริง",         // actual minutes
	"พนักงาน",          // operators
	"จำนวนคน",          // headcount
	"ค่าแรง",           // labor cost
	"ค่าแรง+โสหุ้ย",    // + overhead
	"ค่าแรงรวมทั้งหมด", // + overhead + utility
}

var printer = message.NewPrinter(language.Thai)

// ExportTable renders the rows as display strings, numbers formatted with
// locale separators so the export matches the screen, not the raw floats.
func ExportTable(rows []*Row) [][]string {
	table := make([][]string, 0, len(rows))

	for _, row := range rows {
		table = append(table, []string{
			row.JobCode,
			row.JobName,
			row.ProductionDate,
			row.Status,
			formatNumber(row.TotalWeight),
			formatNumber(row.TotalMaterialCost),
			formatOptional(row.PricePerUnit),
			row.PlannedWindow,
			row.ActualWindow,
			timemetrics.FormatHM(row.PlannedMinutes),
			timemetrics.FormatHM(row.ActualMinutes),
			strings.Join(row.Operators, ", "),
			printer.Sprintf("%d", row.Headcount),
			formatNumber(row.LaborCost),
			formatNumber(row.LaborCostOverhead),
			formatNumber(row.LaborCostFull),
		})
	}

	return table
}

func formatNumber(v float64) string {
	return printer.Sprintf("%.2f", v)
}

func formatOptional(v *float64) string {
	if v == nil {
		return timemetrics.RangePlaceholder
	}
	return formatNumber(*v)
}
