package letter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFConverter lays the letter out as a single A4 text flow. It is the
// default when no export command is configured.
type PDFConverter struct {
	FontSize float64 // points; 0 means 12
}

func (c PDFConverter) Convert(ctx context.Context, text string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	size := c.FontSize
	if size <= 0 {
		size = 12
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Personligt brev", true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	pdf.SetFont("Arial", "", size)

	// Core fonts are cp1252; this covers å, ä and ö.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(0, size*0.5, tr(text), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
