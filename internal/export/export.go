// Package export turns a finished letter into files or the clipboard.
// Exporters are pure consumers of the final text: they never feed back
// into the drafting state, and a failure is surfaced as a message only.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fumiama/go-docx"
	"github.com/go-pdf/fpdf"
)

// Clipboard copies the letter to the system clipboard.
func Clipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// DocxFile writes the letter to a Word document, one paragraph per line.
func DocxFile(text, path string) error {
	doc := docx.New().WithDefaultTheme()
	for _, line := range strings.Split(text, "\n") {
		doc.AddParagraph().AddText(line)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

// PDFFile writes the letter to an A4 PDF.
func PDFFile(text, path string) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(57, 57, 57) // ~2cm
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	// Danish letters are covered by the cp1252 translator.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(0, 16, tr(text), "", "L", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
