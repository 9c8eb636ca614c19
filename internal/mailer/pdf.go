package mailer

import (
	"bytes"
	"fmt"

	"gatorengineered/internal/contact"

	"github.com/jung-kurt/gofpdf"
)

// LeadSummaryPDF renders a one-page summary of the submission for the owner
// notification attachment.
func LeadSummaryPDF(s contact.Submission) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Lead Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(24, 53, 109)
	pdf.Cell(0, 12, "Gator Engineered - New Lead")
	pdf.Ln(16)

	hasWebsite := "No"
	if s.HasWebsite {
		hasWebsite = "Yes"
	}
	fields := [][2]string{
		{"Name", s.Name},
		{"Email", s.Email},
		{"Has website", hasWebsite},
		{"Website", s.Website},
		{"Phone", s.Phone},
		{"Submitted", s.SubmittedAt()},
		{"Page", s.Meta.Page},
		{"Source", s.Meta.Source},
		{"Time on form", fmt.Sprintf("%d ms", s.Meta.TimeSpentMs)},
		{"IP", s.IP},
	}

	pdf.SetTextColor(28, 28, 31)
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 7, f[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 7, f[1], "", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Message")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, s.Message, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("mailer: render lead summary pdf: %w", err)
	}
	return buf.Bytes(), nil
}
