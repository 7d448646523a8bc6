package render

import (
	"fmt"
	"io"

	"github.com/stemsi/registrar/internal/service"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

type sheet struct {
	name    string
	headers []string
	rows    [][]string
}

// WriteWorkbook writes every table of s to w as an xlsx workbook with one
// sheet per table.
func WriteWorkbook(w io.Writer, s service.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []sheet{
		{name: "Majors", headers: MajorHeaders, rows: MajorCells(s.Majors)},
		{name: "Students", headers: StudentHeaders, rows: StudentCells(s.Students)},
		{name: "Instructors", headers: InstructorHeaders, rows: InstructorCells(s.Instructors)},
		{name: "Courses", headers: CourseHeaders, rows: CourseCells(s.Courses)},
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sh.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", sh.name, err)
		}
		if err := writeSheet(f, sh); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sh sheet) error {
	if err := f.SetSheetRow(sh.name, "A1", &sh.headers); err != nil {
		return fmt.Errorf("write %s header: %w", sh.name, err)
	}
	for i, row := range sh.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sh.name, i+1, err)
		}
	}
	return nil
}
