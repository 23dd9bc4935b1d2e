package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/okraft/skillscope/internal/domain/model"
)

// PDF table layout constants (millimeters, A4 portrait).
const (
	pdfColSkill    = 70.0
	pdfColNumeric  = 25.0
	pdfColPriority = 30.0
	pdfRowHeight   = 8.0
	pdfTitleSize   = 16.0
	pdfBodySize    = 10.0
)

// GapReportPDF renders the gap table as a printable PDF report. Rows keep
// their input order; priority cells are tinted with the same scheme as
// the dashboard table, with unknown priorities rendered neutrally.
func GapReportPDF(gaps []model.GapRecord, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.CellFormat(0, 12, "Skills Gap Analysis", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", pdfBodySize)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, "Generated "+generatedAt.Format(time.RFC1123), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", pdfBodySize)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(230, 232, 238)
	pdf.CellFormat(pdfColSkill, pdfRowHeight, "Skill", "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfColNumeric, pdfRowHeight, "Required", "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColNumeric, pdfRowHeight, "Current", "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColNumeric, pdfRowHeight, "Gap", "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColPriority, pdfRowHeight, "Priority", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", pdfBodySize)
	for _, g := range gaps {
		pdf.CellFormat(pdfColSkill, pdfRowHeight, g.Skill, "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfColNumeric, pdfRowHeight, strconv.Itoa(g.Required), "1", 0, "R", false, 0, "")
		pdf.CellFormat(pdfColNumeric, pdfRowHeight, strconv.Itoa(g.Current), "1", 0, "R", false, 0, "")
		pdf.CellFormat(pdfColNumeric, pdfRowHeight, strconv.Itoa(g.Gap), "1", 0, "R", false, 0, "")

		r, gr, b := priorityFill(g.Priority)
		pdf.SetFillColor(r, gr, b)
		pdf.CellFormat(pdfColPriority, pdfRowHeight, string(g.Priority), "1", 1, "C", true, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return buf.Bytes(), nil
}

// priorityFill maps a priority to its table cell tint.
func priorityFill(p model.Priority) (r, g, b int) {
	switch p {
	case model.PriorityHigh:
		return 248, 205, 205
	case model.PriorityMedium:
		return 252, 234, 199
	case model.PriorityLow:
		return 209, 237, 212
	default:
		return 235, 235, 235
	}
}
