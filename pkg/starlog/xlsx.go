package starlog

import (
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) {
	simpleUtil.CheckErr(
		xlsx.SetSheetRow(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row)),
			&value,
		),
	)
}

// WriteXlsx writes the table as a workbook with one Metrics sheet.
func (s *Summary) WriteXlsx(path string) {
	var (
		xlsx  = excelize.NewFile()
		sheet = "Metrics"
	)
	simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", sheet))

	var title = []interface{}{"Metrics"}
	for _, sample := range s.Samples {
		title = append(title, sample)
	}
	SetRow(xlsx, sheet, 1, 1, title)

	for i, key := range s.Keys {
		var row = []interface{}{key}
		for _, sample := range s.Samples {
			row = append(row, s.Data[sample][key])
		}
		SetRow(xlsx, sheet, 1, i+2, row)
	}
	simpleUtil.CheckErr(xlsx.SetColWidth(sheet, "A", "A", 42))
	simpleUtil.CheckErr(xlsx.SaveAs(path))
}
