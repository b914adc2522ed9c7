package basefreq

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

// WriteXlsx writes the frequency table as a workbook with one BaseFreq sheet.
func (pf *PosFreq) WriteXlsx(path string) {
	var (
		xlsx  = excelize.NewFile()
		sheet = "BaseFreq"
	)
	simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", sheet))
	SetRow(xlsx, sheet, 1, 1, []interface{}{"Base Position", "A", "T", "C", "G", "N"})
	for i := 0; i < pf.NumBases; i++ {
		var row = []interface{}{pf.Pos[i]}
		for j := range Bases {
			row = append(row, pf.Freq[j][i])
		}
		SetRow(xlsx, sheet, 1, i+2, row)
	}
	simpleUtil.CheckErr(xlsx.SetColWidth(sheet, "A", "A", 14))
	simpleUtil.CheckErr(xlsx.SaveAs(path))
}
