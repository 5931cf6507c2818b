package report

import "github.com/jung-kurt/gofpdf"

// PDF layout constants, in points on a US Letter page.
const (
	pdfMargin = 54
	pdfImageW = 450
	pdfImageH = 300
)

func writePDF(doc *document, path string) error {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	usable := pageW - 2*pdfMargin

	// Title block.
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(usable, 30, doc.Title, "", 1, "L", false, 0, "")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(usable, 18, doc.Author, "", 1, "C", false, 0, "")
	pdf.Ln(18)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(usable, 22, text, "", 1, "L", false, 0, "")
		pdf.Ln(4)
	}

	// Dataset overview: two-column key/value table, every cell shaded.
	heading(sectionOverview)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(211, 211, 211)
	for _, row := range doc.Overview {
		pdf.CellFormat(usable/2, 20, row[0], "1", 0, "C", true, 0, "")
		pdf.CellFormat(usable/2, 20, row[1], "1", 1, "C", true, 0, "")
	}
	pdf.Ln(20)

	// Platform performance: shaded bold header row, grid on all cells.
	heading(sectionPlatform)
	colW := usable / float64(len(doc.Platform.Header))
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for _, h := range doc.Platform.Header {
		pdf.CellFormat(colW, 20, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range doc.Platform.Rows {
		for _, cell := range row {
			pdf.CellFormat(colW, 18, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(20)

	// Visualizations: fixed-size images, each preceded by its title.
	heading(sectionVisualizations)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	for _, img := range doc.Images {
		if pdf.GetY()+pdfImageH+40 > pageH-pdfMargin {
			pdf.AddPage()
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(usable, 18, img.Title, "", 1, "L", false, 0, "")
		x := pdfMargin + (usable-pdfImageW)/2
		pdf.ImageOptions(img.Path, x, pdf.GetY(), pdfImageW, pdfImageH, true, opts, 0, "")
		pdf.Ln(20)
	}

	return pdf.OutputFileAndClose(path)
}
