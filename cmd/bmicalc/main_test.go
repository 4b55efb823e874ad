package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Metrica/internal/calc/bmi"
	"Metrica/internal/calc/export"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalc_Text(t *testing.T) {
	out, err := run(t, "", "calc", "--weight", "70", "--height", "175", "--age", "30", "--fat-index", "10", "--muscle-index", "50")
	require.NoError(t, err)
	require.Contains(t, out, "BMI:           22.9 (Normal Weight)")
	require.Contains(t, out, "Ideal weight:  70.7 kg")
	require.Contains(t, out, "BMR:           1649 kcal/day")
	require.Contains(t, out, "Excellent body composition")
	require.Contains(t, out, "Lowest health risks")
}

func TestCalc_JSON(t *testing.T) {
	out, err := run(t, "", "calc", "--weight", "110", "--height", "170", "-f", "json")
	require.NoError(t, err)
	rec, err := export.Decode([]byte(out), export.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, bmi.Obese, rec.Category)
}

func TestCalc_ValidationError(t *testing.T) {
	_, err := run(t, "", "calc", "--weight", "70", "--height", "301")
	require.ErrorIs(t, err, bmi.ErrImplausibleHeight)

	_, err = run(t, "", "calc", "--height", "175")
	require.ErrorIs(t, err, bmi.ErrInvalidMeasurement)
}

func TestCalc_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bmicalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("calc:\n  weight: 50\n  height: 170\n  format: yaml\n"), 0o644))

	out, err := run(t, "", "calc", "--config", path)
	require.NoError(t, err)
	rec, err := export.Decode([]byte(out), export.FormatYAML)
	require.NoError(t, err)
	require.Equal(t, bmi.Underweight, rec.Category)

	// Command-line flags win over the file.
	out, err = run(t, "", "calc", "--config", path, "--weight", "70", "--height", "175", "--format", "text")
	require.NoError(t, err)
	require.Contains(t, out, "Normal Weight")
}

func TestDecode_Stdin(t *testing.T) {
	in := `{"bmi": 26.1, "category": "Overweight", "timestamp": "2024-01-01T00:00:00Z", "additionalInfo": {"fatIndex": 22, "muscleIndex": 38}}`
	out, err := run(t, in, "decode", "-")
	require.NoError(t, err)
	require.Contains(t, out, "26.1 (Overweight)")
	require.Contains(t, out, "Fat index:     22")

	_, err = run(t, "{", "decode", "-")
	require.ErrorIs(t, err, export.ErrSerialization)
}

func TestDecode_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.yml")
	data := "bmi: 17.3\ncategory: Underweight\ntimestamp: 2024-01-01T00:00:00Z\nadditionalInfo:\n  fatIndex: 0\n  muscleIndex: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, err := run(t, "", "decode", path)
	require.NoError(t, err)
	require.Contains(t, out, "17.3 (Underweight)")
}

func TestImport(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]any{
		{"weight", "height"},
		{70, 175},
		{70, 0},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	path := filepath.Join(t.TempDir(), "in.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	out, err := run(t, "", "import", path)
	require.NoError(t, err)
	require.Contains(t, out, "row 2: 22.9 Normal Weight")
	require.Contains(t, out, "row 3: error:")
	require.Contains(t, out, "1 ok, 1 failed, 0 skipped")

	_, err = run(t, "", "import", filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
}
