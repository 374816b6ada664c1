package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"kitchen-golang/internal/report"
	"kitchen-golang/internal/service/reporting"
)

type ReportBuilder interface {
	BuildReport(ctx context.Context, p reporting.Params) (*reporting.Result, error)
}

type GenerateExcelService struct {
	reports ReportBuilder
}

func NewGenerateService(reports ReportBuilder) *GenerateExcelService {
	return &GenerateExcelService{reports: reports}
}

var attendanceHeaders = []string{
	"วันที่",          // date
	"นาทีตามแผน",      // planned minutes
	"นาทีจริง",        // actual minutes
	"จำนวนพนักงาน",    // unique operators
	"กำลังการผลิต",    // capacity minutes
	"% ตามแผน",        // planned pct
	"% จริง",          // actual pct
	"นาทีคงเหลือ",     // remaining minutes
}

// GenerateExcel builds the cost report workbook: one sheet of report rows
// rendered through the display-string export table, one sheet of the
// per-day capacity aggregates.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, p reporting.Params) ([]byte, error) {
	result, err := g.reports.BuildReport(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("fetch data: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	costSheet := "ต้นทุนการผลิต"
	f.SetSheetName("Sheet1", costSheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	for i, name := range report.ExportHeaders {
		f.SetCellValue(costSheet, cellName(i+1, 1), name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(report.ExportHeaders), 1)
	f.SetCellStyle(costSheet, "A1", lastCol, headerStyle)

	for rowIdx, cells := range report.ExportTable(result.Rows) {
		rowNum := rowIdx + 2
		for colIdx, value := range cells {
			f.SetCellValue(costSheet, cellName(colIdx+1, rowNum), value)
		}
	}

	f.SetPanes(costSheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(costSheet, "A", "P", 15)

	attSheet := "กำลังคนรายวัน"
	if _, err := f.NewSheet(attSheet); err != nil {
		return nil, fmt.Errorf("attendance sheet: %w", err)
	}

	for i, name := range attendanceHeaders {
		f.SetCellValue(attSheet, cellName(i+1, 1), name)
	}
	lastCol, _ = excelize.CoordinatesToCellName(len(attendanceHeaders), 1)
	f.SetCellStyle(attSheet, "A1", lastCol, headerStyle)

	for rowIdx, day := range result.Days {
		rowNum := rowIdx + 2
		f.SetCellValue(attSheet, cellName(1, rowNum), day.DateLabel)
		f.SetCellValue(attSheet, cellName(2, rowNum), day.PlannedMinutes)
		f.SetCellValue(attSheet, cellName(3, rowNum), day.ActualMinutes)
		f.SetCellValue(attSheet, cellName(4, rowNum), day.OperatorCount)
		f.SetCellValue(attSheet, cellName(5, rowNum), day.CapacityMinutes)
		f.SetCellValue(attSheet, cellName(6, rowNum), day.PlannedPct)
		f.SetCellValue(attSheet, cellName(7, rowNum), day.ActualPct)
		f.SetCellValue(attSheet, cellName(8, rowNum), day.RemainingMinutes)
	}
	f.SetColWidth(attSheet, "A", "H", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
