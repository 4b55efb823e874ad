package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"Metrica/internal/calc/bmi"
)

type Meta struct {
	Title   string
	Subject string
	Date    time.Time
}

// Render writes an A4 PDF summary of res to w.
func Render(w io.Writer, meta Meta, res bmi.Result) error {
	if meta.Title == "" {
		meta.Title = "BMI Calculation Results"
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(meta.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Subject != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Subject: %s", meta.Subject)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Date.Format("2006-01-02")))
	pdf.Ln(10)

	r, g, b := hexColor(res.Color)
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(r, g, b)
	pdf.Cell(0, 14, fmt.Sprintf("%.1f", bmi.Round(res.BMI, 1)))
	pdf.Ln(14)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, res.Category.String())
	pdf.Ln(12)
	pdf.SetTextColor(0, 0, 0)

	m := res.Measurement
	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Weight", fmt.Sprintf("%.1f kg", m.WeightKg)},
		{"Height", fmt.Sprintf("%.1f cm", m.HeightCm)},
		{"Fatness Index", fmt.Sprintf("%g%%", m.FatIndex)},
		{"Muscle Index", fmt.Sprintf("%g%%", m.MuscleIndex)},
		{"Ideal Weight", fmt.Sprintf("%.1f kg", bmi.Round(res.IdealWeightKg, 1))},
	}
	if res.BMR != nil {
		rows = append(rows, [2]string{"Basal Metabolic Rate", fmt.Sprintf("%.0f kcal/day", *res.BMR)})
	}
	for _, row := range rows {
		pdf.CellFormat(60, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	if len(res.Advisories) > 0 {
		section(pdf, "Additional Analysis")
		for _, a := range res.Advisories {
			pdf.MultiCell(0, 6, tr("- "+a), "", "L", false)
		}
		pdf.Ln(4)
	}

	section(pdf, "Personalized Recommendations")
	for _, rec := range res.Recommendations {
		pdf.MultiCell(0, 6, tr("- "+rec), "", "L", false)
	}
	pdf.Ln(4)

	section(pdf, "Health Risk Assessment")
	pdf.MultiCell(0, 6, tr(res.RiskNarrative), "", "L", false)

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
}

// hexColor parses "#rrggbb". Anything else is black.
func hexColor(s string) (r, g, b int) {
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
