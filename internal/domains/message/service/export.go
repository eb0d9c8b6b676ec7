package service

import (
	"time"

	"github.com/xuri/excelize/v2"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// sheet describes one spreadsheet export: a header row and one row per item
type sheet[T any] struct {
	name    string
	headers []string
	row     func(*T) []interface{}
}

func (s sheet[T]) build(items []*T) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", s.name); err != nil {
		return nil, err
	}

	for col, header := range s.headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(s.name, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(s.headers), 1)
		_ = f.SetCellStyle(s.name, "A1", last, headerStyle)
	}

	for i, it := range items {
		for col, v := range s.row(it) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(s.name, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func optionalCell(s *string) interface{} {
	if s == nil {
		return ""
	}
	return *s
}

func timeCell(t *time.Time) interface{} {
	if t == nil {
		return ""
	}
	return t.Format(exportTimeLayout)
}
