package app

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/pixelfold/albumgrid/internal/layout"
)

// slotRects places each ordinal slot on a 3-column grid, in grid units.
// The large slot spans 2x2, smalls fill the remaining cells, and the wide
// slot is a full-width band under the square block.
var slotRects = [layout.MaxSlots]struct{ x, y, w, h int }{
	{0, 0, 2, 2},
	{2, 0, 1, 1},
	{2, 1, 1, 1},
	{0, 2, 1, 1},
	{1, 2, 1, 1},
	{0, 3, 3, 1},
}

// writeContactSheet renders the computed grid as a one-page PDF preview:
// one outlined rectangle per entry in its slot geometry, labelled with the
// ordinal, declared dimensions, and URL. Overlay slots get a filled caption
// band along their bottom edge. This is a layout preview, not an image
// export; photo bytes are never downloaded.
func writeContactSheet(doc Document, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	title := doc.Title
	if title == "" {
		title = "Album grid"
	}
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, doc.SourceURL, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	if doc.Unavailable {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, doc.Message, "", "L", false)
		return pdf.OutputFileAndClose(outPath)
	}

	const (
		cell = 58.0
		gap  = 3.0
	)
	left, top := pdf.GetX(), pdf.GetY()

	for i, e := range doc.Entries {
		r := slotRects[i]
		x := left + float64(r.x)*cell
		y := top + float64(r.y)*cell
		w := float64(r.w)*cell - gap
		h := float64(r.h)*cell - gap

		pdf.Rect(x, y, w, h, "D")
		if e.Overlay {
			pdf.SetFillColor(230, 230, 230)
			pdf.Rect(x, y+h-8, w, 8, "F")
		}
		pdf.SetXY(x+2, y+2)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(w-4, 5, fmt.Sprintf("#%d  %s", i, e.Size), "", 1, "L", false, 0, "")
		pdf.SetX(x + 2)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(w-4, 4, fmt.Sprintf("%dx%d", e.Width, e.Height), "", 1, "L", false, 0, "")
		pdf.SetX(x + 2)
		pdf.CellFormat(w-4, 4, truncate(e.URL, 60), "", 1, "L", false, 0, "")
	}

	return pdf.OutputFileAndClose(outPath)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
