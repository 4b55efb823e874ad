package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"Metrica/internal/calc/batch"
	"Metrica/internal/calc/bmi"
)

// Result wraps the batch outcome with the spreadsheet row number (1-based)
// each item came from.
type Result struct {
	Sheet   string `json:"sheet"`
	Rows    []int  `json:"rows"`
	Skipped int    `json:"skipped"`
	batch.Result
}

// Import reads the first sheet of an xlsx workbook and evaluates every
// data row. The first row is a header.
func Import(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Result{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return Result{}, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	out := Result{Sheet: sheet}
	var items []bmi.Input
	for i := 1; i < len(rows); i++ {
		in, ok := parseRow(rows[i])
		if !ok {
			out.Skipped++
			continue
		}
		items = append(items, in)
		out.Rows = append(out.Rows, i+1)
	}
	res, err := batch.Calculate(items)
	if err != nil {
		return Result{}, err
	}
	out.Result = res
	return out, nil
}

// parseRow expects: weight, height, fatIndex, muscleIndex, gender, age.
// Only the first two are required.
func parseRow(row []string) (bmi.Input, bool) {
	if len(row) < 2 {
		return bmi.Input{}, false
	}
	cell := func(i int) bmi.Field {
		if i < len(row) {
			return bmi.Field(strings.TrimSpace(row[i]))
		}
		return ""
	}
	return bmi.Input{
		Weight:      cell(0),
		Height:      cell(1),
		FatIndex:    cell(2),
		MuscleIndex: cell(3),
		Gender:      cell(4),
		Age:         cell(5),
	}, true
}
