package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"go.trai.ch/logshare/internal/core/domain"
)

const (
	pdfMargin   = 15.0
	pdfFont     = "Helvetica"
	pdfMonoFont = "Courier"
)

// PDFEncoder writes a paginated PDF document.
type PDFEncoder struct {
	pageSize domain.PageSize
}

// NewPDFEncoder creates a PDFEncoder for the given paper size.
func NewPDFEncoder(pageSize domain.PageSize) *PDFEncoder {
	if pageSize == "" {
		pageSize = domain.PageA4
	}
	return &PDFEncoder{pageSize: pageSize}
}

// Encode writes doc to w.
func (e *PDFEncoder) Encode(w io.Writer, doc *domain.Document) error {
	pdf := fpdf.New("P", "mm", string(e.pageSize), "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("logshare", true)
	pdf.SetCreationDate(doc.CreatedAt)
	pdf.AliasNbPages("")

	// Core fonts are not Unicode; map text onto their code page.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin + 5)
		pdf.SetFont(pdfFont, "", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", 16)
	pdf.MultiCell(0, 8, tr(doc.Title), "", "L", false)
	pdf.SetFont(pdfFont, "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Exported %s, %s",
		doc.CreatedAt.UTC().Format(time.RFC3339), recordCount(doc.Records))), "", "L", false)
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	for _, block := range doc.Blocks {
		pdf.SetTextColor(0, 0, 0)
		switch block.Kind {
		case domain.BlockHeading:
			pdf.Ln(2)
			pdf.SetFont(pdfFont, "B", 12)
			if isErrorLevel(block.Level) {
				pdf.SetTextColor(190, 30, 45)
			}
			pdf.MultiCell(0, 6, tr(block.Text), "", "L", false)
		case domain.BlockField:
			pdf.SetFont(pdfFont, "", 9)
			pdf.MultiCell(0, 5, tr(block.Label+": "+block.Text), "", "L", false)
		case domain.BlockText:
			style := ""
			if block.Label != "" {
				style = "B"
			}
			pdf.SetFont(pdfFont, style, 10)
			pdf.MultiCell(0, 5, tr(block.Text), "", "L", false)
		case domain.BlockBody:
			pdf.SetFont(pdfMonoFont, "", 8)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4, tr(strings.ReplaceAll(block.Text, "\t", "    ")), "", "L", true)
		case domain.BlockNotice:
			pdf.SetFont(pdfFont, "I", 9)
			pdf.SetTextColor(170, 110, 0)
			if isErrorLevel(block.Level) {
				pdf.SetTextColor(190, 30, 45)
			}
			text := block.Text
			if block.Label != "" {
				text = block.Label + ": " + text
			}
			pdf.MultiCell(0, 5, tr(text), "", "L", false)
		case domain.BlockSeparator:
			pdf.Ln(3)
			pdf.SetDrawColor(200, 200, 200)
			y := pdf.GetY()
			pdf.Line(pdfMargin, y, pageWidth-pdfMargin, y)
			pdf.Ln(3)
		}
	}

	return pdf.Output(w)
}

func isErrorLevel(level domain.LogLevel) bool {
	return level == domain.LogLevelError || level == domain.LogLevelCritical
}
