package report

import (
	"fmt"
	"os"

	"github.com/fumiama/go-docx"
)

func writeWord(doc *document, path string) error {
	w := docx.New().WithDefaultTheme()

	// Title block. Run sizes are half-points.
	w.AddParagraph().AddText(doc.Title).Size("44").Bold()
	w.AddParagraph().Justification("center").AddText(doc.Author).Size("24").Color("595959")
	w.AddParagraph()

	heading := func(text string) {
		w.AddParagraph().AddText(text).Size("32").Bold()
	}
	setCell := func(t *docx.Table, r, c int, text string, bold bool) {
		run := t.TableRows[r].TableCells[c].AddParagraph().AddText(text)
		if bold {
			run.Bold()
		}
	}

	// Dataset overview: grid table with a labelled header row.
	heading(sectionOverview)
	overview := w.AddTable(len(doc.Overview)+1, 2, 0, nil)
	setCell(overview, 0, 0, "Metric", true)
	setCell(overview, 0, 1, "Value", true)
	for i, row := range doc.Overview {
		setCell(overview, i+1, 0, row[0], false)
		setCell(overview, i+1, 1, row[1], false)
	}
	w.AddParagraph()

	// Platform performance: header row distinguished by bold runs.
	heading(sectionPlatform)
	platform := w.AddTable(len(doc.Platform.Rows)+1, len(doc.Platform.Header), 0, nil)
	for c, h := range doc.Platform.Header {
		setCell(platform, 0, c, h, true)
	}
	for r, row := range doc.Platform.Rows {
		for c, cell := range row {
			setCell(platform, r+1, c, cell, false)
		}
	}
	w.AddParagraph()

	// Visualizations. The renderer emits 96 DPI images six inches wide, so
	// the natural embed size matches the fixed physical width the report
	// calls for.
	heading(sectionVisualizations)
	for _, img := range doc.Images {
		w.AddParagraph().AddText(img.Title).Bold()
		para := w.AddParagraph().Justification("center")
		if _, err := para.AddInlineDrawingFrom(img.Path); err != nil {
			return fmt.Errorf("failed to embed image %s: %w", img.Path, err)
		}
		w.AddParagraph()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
