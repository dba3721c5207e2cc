// Package pdfdoc renders itinerary text to a PDF held entirely in memory;
// whoever calls it decides whether the bytes become a download or a file.
package pdfdoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// Export serialises the itinerary text into a one-column A4 document and
// returns the PDF bytes plus a suggested filename.
func Export(destination, itinerary string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Itinerary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Trip Itinerary")
	pdf.Ln(12)

	if destination != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Destination: "+destination)
		pdf.Ln(10)
	}

	pdf.SetFont("Helvetica", "", 11)
	// gofpdf's core fonts are cp1252-only; translate what we can and strip
	// the rest so exports of translated itineraries don't error out.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(0, 6, tr(itinerary), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("pdf output: %w", err)
	}

	filename := fmt.Sprintf("itinerary_%s.pdf", safeFilenamePart(destination))
	return buf.Bytes(), filename, nil
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "trip"
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "trip"
	}
	return b.String()
}
