package formatter

import (
	"bytes"
	"fmt"

	"github.com/hrishabhb/PharmAssistAI/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"
	pdfFontName      = "Arial"
)

type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

func (pf *PDFFormatter) Format(sheet *entity.StudySheet) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont(pdfFontName, "B", 20)
	pdf.Cell(0, 10, baseTitle)
	pdf.Ln(14)

	_, lineHeight := pdf.GetFontSize()

	pf.section(pdf, "Question", sheet.Question, lineHeight)
	pf.section(pdf, "Answer", sheet.Answer, lineHeight)

	if len(sheet.Flashcards) > 0 {
		pdf.SetFont(pdfFontName, "B", 14)
		pdf.Cell(0, 8, "Flashcards")
		pdf.Ln(10)

		pdf.SetFont(pdfFontName, "", 12)
		for i, card := range sheet.Flashcards {
			pdf.SetFont(pdfFontName, "B", 12)
			pdf.MultiCell(0, lineHeight*1.5, fmt.Sprintf("%d. %s", i+1, card.Question), "", "", false)
			pdf.SetFont(pdfFontName, "", 12)
			pdf.MultiCell(0, lineHeight*1.5, card.Answer, "", "", false)
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (pf *PDFFormatter) section(pdf *gofpdf.Fpdf, title, text string, lineHeight float64) {
	pdf.SetFont(pdfFontName, "B", 14)
	pdf.Cell(0, 8, title)
	pdf.Ln(10)

	pdf.SetFont(pdfFontName, "", 12)
	pdf.MultiCell(0, lineHeight*1.5, text, "", "", false)
	pdf.Ln(6)
}

func (pf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (pf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
