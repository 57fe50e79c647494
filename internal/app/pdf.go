package app

import (
	"bufio"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// writeBriefPDF renders the formatted brief as a minimal A4 PDF. The built-in
// core fonts cannot draw Hangul, so callers wanting Korean output must supply
// a TTF via fontPath; it is embedded as a UTF-8 font.
func writeBriefPDF(title, body, fontPath, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Helvetica"
	if fontPath != "" {
		family = strings.TrimSuffix(filepath.Base(fontPath), filepath.Ext(fontPath))
		pdf.AddUTF8Font(family, "", fontPath)
		pdf.AddUTF8Font(family, "B", fontPath)
	}
	pdf.AddPage()

	pdf.SetFont(family, "B", 14)
	pdf.MultiCell(0, 8, title, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont(family, "", 11)
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			pdf.Ln(5)
			continue
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
	}

	return pdf.OutputFileAndClose(outPath)
}
