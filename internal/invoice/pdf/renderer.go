package pdf

import (
	"os"
	"path/filepath"

	"github.com/flusio/soutenir/internal/config"
	"github.com/flusio/soutenir/internal/invoice/domain"
)

// Renderer lays out an invoice on a one-page fixed layout: logo top-left,
// global information right-aligned, customer identity below it, a purchase
// table, a totals block and a legal footer.
type Renderer struct {
	logo string
}

func NewRenderer(cfg config.Config) *Renderer {
	return &Renderer{
		logo: filepath.Join(cfg.AssetsPath, "logo.png"),
	}
}

// CreatePDF writes the invoice as a PDF file at the given path.
func (r *Renderer) CreatePDF(invoice domain.Invoice, path string) error {
	canvas := NewCanvas(invoice.Footer)
	r.Render(invoice, canvas)
	return canvas.Output(path)
}

// Render draws the invoice onto the canvas.
func (r *Renderer) Render(invoice domain.Invoice, c Canvas) {
	c.AddPage()
	c.SetFont("", 12)

	if _, err := os.Stat(r.logo); err == nil {
		c.Image(r.logo, 20, 20, 60)
	}

	r.addGlobalInfo(c, invoice.GlobalInfo, 20)
	r.addCustomer(c, invoice.Customer, c.Y())
	r.addPurchases(c, invoice.Purchases, c.Y()+20)
	r.addTotal(c, invoice.Total, c.Y()+20)
}

func (r *Renderer) addGlobalInfo(c Canvas, fields []domain.Field, y float64) {
	c.SetY(y)
	for _, field := range fields {
		c.SetX(-100)
		c.SetFont("", 12)
		c.Cell(40, 10, field.Label, "", false, false)
		c.SetFont("B", 12)
		c.Cell(0, 10, field.Value, "", false, true)
	}
}

func (r *Renderer) addCustomer(c Canvas, lines []string, y float64) {
	c.SetY(y)
	c.SetX(-100)

	c.SetFont("", 12)
	c.Cell(0, 10, "Identité client", "", false, true)

	c.SetFont("B", 12)
	for _, line := range lines {
		c.SetX(-100)
		c.Cell(0, 5, line, "", false, true)
	}
}

func (r *Renderer) addPurchases(c Canvas, purchases []domain.Line, y float64) {
	c.SetXY(20, y)
	c.SetFont("B", 12)
	c.Cell(90, 10, "Description", "", true, false)
	c.Cell(25, 10, "Quantité", "", true, false)
	c.Cell(25, 10, "Prix HT", "", true, false)
	c.Cell(25, 10, "Total", "", true, true)

	c.SetFont("", 12)
	c.SetXY(20, c.Y()+5)
	for _, purchase := range purchases {
		c.MultiCell(90, 5, purchase.Description)

		c.SetXY(110, c.Y()-10)
		c.Cell(25, 5, purchase.Quantity, "", false, false)
		c.Cell(25, 5, purchase.Price, "", false, false)
		c.Cell(25, 5, purchase.Total, "", false, true)

		c.SetXY(20, c.Y()+10)
	}
}

func (r *Renderer) addTotal(c Canvas, total domain.Total, y float64) {
	c.SetY(y)
	c.SetFont("B", 12)

	c.SetX(135)
	c.Cell(25, 10, "Prix HT", "", true, false)
	c.Cell(25, 10, total.TaxExcluded, "", false, true)

	c.SetX(135)
	c.Cell(25, 10, "TVA", "", true, false)
	c.Cell(25, 10, total.Tax, "", false, true)

	c.SetX(135)
	c.Cell(25, 10, "Total TTC", "", true, false)
	c.Cell(25, 10, total.TaxIncluded, "", false, true)
}
