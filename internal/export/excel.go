// Package export encodes report rows into spreadsheet payloads. It is
// the in-process stand-in for the tabular-file encoder collaborator:
// pure serialization of whatever row set it is handed.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nehawork/smart-attendence/internal/model"
)

// MIMEXLSX is the content type of the generated workbook.
const MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LeaveReportFilename is the download name offered to clients.
const LeaveReportFilename = "leave_report.xlsx"

const leaveSheet = "Leave Report"

var leaveHeader = []string{"ID", "Student Name", "Class", "Division", "Leave From", "Leave To"}

// LeaveReport serializes leave rows into a single-sheet XLSX workbook.
// Rows are written in the order given; an empty slice yields a workbook
// with only the header row.
func LeaveReport(rows []model.Leave) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", leaveSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for col, name := range leaveHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(leaveSheet, cell, name); err != nil {
			return nil, err
		}
	}
	for i, row := range rows {
		values := []any{row.ID, row.StudentName, row.Class, row.Division, row.LeaveFrom, row.LeaveTo}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(leaveSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
