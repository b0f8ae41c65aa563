// Package report renders a tracked week as a printable PDF bill.
package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"homewatt/internal/service"
)

// WeeklyPDF renders the weekly report as a landscape A4 document: housing
// info, one row per recorded day, then the weekly totals and the projected
// monthly bill.
func WeeklyPDF(r *service.WeeklyReport) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(277, 15, "HomeWatt - Weekly Energy Report")
	pdf.Ln(18)

	pdf.Line(10, pdf.GetY(), 287, pdf.GetY())
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 11)
	drawInfoSection(pdf, tr, r)

	pdf.Ln(3)
	pdf.Line(10, pdf.GetY(), 287, pdf.GetY())
	pdf.Ln(5)

	drawDayTable(pdf, tr, r)

	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 102, 204)
	pdf.Cell(90, 8, fmt.Sprintf("Weekly total: %.2f kWh", r.Summary.TotalKWh))
	pdf.Cell(90, 8, fmt.Sprintf("Daily average: %.2f kWh", r.Summary.AverageKWh))
	pdf.Cell(97, 8, fmt.Sprintf("Peak day: %s", r.Summary.PeakDay))
	pdf.Ln(8)
	pdf.Cell(90, 8, fmt.Sprintf("Weekly cost: %.2f", r.WeeklyCost))
	pdf.Cell(90, 8, fmt.Sprintf("Projected monthly bill: %.2f", r.MonthlyCost))
	pdf.SetTextColor(0, 0, 0)

	if len(r.Recommendations) > 0 {
		pdf.Ln(10)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(277, 8, "Energy saving tips")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		for i, rec := range r.Recommendations {
			pdf.Cell(277, 6, tr(fmt.Sprintf("%d. %s", i+1, rec)))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawInfoSection(pdf *gofpdf.Fpdf, tr func(string) string, r *service.WeeklyReport) {
	pdf.Cell(30, 8, "Housing type:")
	pdf.SetTextColor(0, 102, 204)
	pdf.Cell(40, 8, string(r.HousingType))
	pdf.SetTextColor(0, 0, 0)

	pdf.Cell(30, 8, "Configuration:")
	pdf.Cell(40, 8, string(r.RoomConfig))

	pdf.Cell(35, 8, "Avg temperature:")
	pdf.Cell(40, 8, tr(fmt.Sprintf("%.1f °C", r.AvgTemperatureC)))

	pdf.Cell(20, 8, "Session:")
	pdf.Cell(80, 8, r.SessionID)
	pdf.Ln(8)
}

func drawDayTable(pdf *gofpdf.Fpdf, tr func(string) string, r *service.WeeklyReport) {
	headers := []struct {
		width float64
		name  string
	}{
		{32, "Day"},
		{32, "Temperature"},
		{32, "Weather"},
		{26, "Lighting"},
		{26, "Fan/AC"},
		{28, "Appliances"},
		{30, "Water Heater"},
		{28, "Refrigerator"},
		{24, "Total kWh"},
		{19, "Cost"},
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	for _, h := range headers {
		pdf.CellFormat(h.width, 9, h.name, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(9)

	pdf.SetFont("Arial", "", 9)
	fill := false
	for _, d := range r.Days {
		if fill {
			pdf.SetFillColor(249, 249, 249)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		pdf.CellFormat(32, 8, string(d.Day), "1", 0, "L", true, 0, "")
		pdf.CellFormat(32, 8, tr(fmt.Sprintf("%.1f °C", d.TemperatureC)), "1", 0, "R", true, 0, "")
		pdf.CellFormat(32, 8, d.Weather, "1", 0, "L", true, 0, "")
		pdf.CellFormat(26, 8, fmt.Sprintf("%.2f", d.Breakdown.Lighting), "1", 0, "R", true, 0, "")
		pdf.CellFormat(26, 8, fmt.Sprintf("%.2f", d.Breakdown.FanAC), "1", 0, "R", true, 0, "")
		pdf.CellFormat(28, 8, fmt.Sprintf("%.2f", d.Breakdown.Appliances), "1", 0, "R", true, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", d.Breakdown.WaterHeater), "1", 0, "R", true, 0, "")
		pdf.CellFormat(28, 8, fmt.Sprintf("%.2f", d.Breakdown.Refrigerator), "1", 0, "R", true, 0, "")
		pdf.CellFormat(24, 8, fmt.Sprintf("%.2f", d.Breakdown.Total), "1", 0, "R", true, 0, "")

		pdf.SetTextColor(204, 0, 0)
		pdf.CellFormat(19, 8, fmt.Sprintf("%.2f", d.Cost), "1", 0, "R", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(8)

		fill = !fill
	}
}
