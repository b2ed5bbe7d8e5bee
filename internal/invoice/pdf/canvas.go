package pdf

import (
	"os"
	"path/filepath"

	"github.com/phpdave11/gofpdf"
)

// Canvas is the page surface an invoice layout is drawn on. Coordinates are
// in millimeters; negative X positions are relative to the right edge of the
// page, negative Y positions to the bottom.
type Canvas interface {
	AddPage()
	// SetFont selects the style ("", "B" or "I") and size of the base font.
	SetFont(style string, size float64)
	SetXY(x, y float64)
	SetX(x float64)
	SetY(y float64)
	Y() float64
	// Cell draws a single line of text. When fill is set the cell background
	// uses the shading color, when newline is set the cursor moves to the
	// next line.
	Cell(w, h float64, text, align string, fill, newline bool)
	// MultiCell draws word-wrapped text across as many lines as needed.
	MultiCell(w, h float64, text string)
	Image(path string, x, y, w float64)
	// Output writes the document to the given file path, creating parent
	// directories best-effort.
	Output(path string) error
}

type fpdfCanvas struct {
	pdf *gofpdf.Fpdf
	// tr transcodes UTF-8 to the cp1252 encoding the PDF text renderer
	// expects. Every string drawn on the canvas goes through it exactly
	// once; accented characters render incorrectly otherwise.
	tr func(string) string
}

// NewCanvas opens an A4 portrait document with the given footer lines
// repeated on every page.
func NewCanvas(footer []string) Canvas {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		offset := float64(len(footer)*5 + 20)
		pdf.SetY(-offset)
		pdf.SetFont("Helvetica", "I", 10)
		for _, line := range footer {
			pdf.CellFormat(0, 5, tr(line), "", 1, "C", false, 0, "")
		}
	})
	pdf.SetFillColor(225, 225, 225)

	return &fpdfCanvas{pdf: pdf, tr: tr}
}

func (c *fpdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *fpdfCanvas) SetFont(style string, size float64) {
	c.pdf.SetFont("Helvetica", style, size)
}

func (c *fpdfCanvas) SetXY(x, y float64) {
	c.pdf.SetXY(x, y)
}

func (c *fpdfCanvas) SetX(x float64) {
	c.pdf.SetX(x)
}

func (c *fpdfCanvas) SetY(y float64) {
	c.pdf.SetY(y)
}

func (c *fpdfCanvas) Y() float64 {
	return c.pdf.GetY()
}

func (c *fpdfCanvas) Cell(w, h float64, text, align string, fill, newline bool) {
	ln := 0
	if newline {
		ln = 1
	}
	c.pdf.CellFormat(w, h, c.tr(text), "", ln, align, fill, 0, "")
}

func (c *fpdfCanvas) MultiCell(w, h float64, text string) {
	c.pdf.MultiCell(w, h, c.tr(text), "", "", false)
}

func (c *fpdfCanvas) Image(path string, x, y, w float64) {
	c.pdf.ImageOptions(path, x, y, w, 0, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
}

func (c *fpdfCanvas) Output(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		// Best effort, the file write below surfaces the real error.
		_ = os.MkdirAll(dir, 0o775)
	}
	return c.pdf.OutputFileAndClose(path)
}
