package domain

// Invoice is the printable projection of a payment. It is built per render
// call and never persisted.
type Invoice struct {
	GlobalInfo []Field
	Customer   []string
	Purchases  []Line
	Total      Total
	Footer     []string
}

// Field is one labelled value of the global information block.
type Field struct {
	Label string
	Value string
}

// Line is one row of the purchase table.
type Line struct {
	Description string
	Quantity    string
	Price       string
	Total       string
}

// Total holds the tax-excluded and tax-included amounts. The billing entity
// is below the tax registration threshold, so both match and the tax column
// carries a fixed notice.
type Total struct {
	TaxExcluded string
	Tax         string
	TaxIncluded string
}

// FooterLines are printed centered at the bottom of every page.
var FooterLines = []string{
	"Marien Fressinaud Mas de Feix / Flus – 57 rue du Vercors, 38000 Grenoble – support@flus.io",
	"micro-entreprise – N° Siret 878 196 278 00013 – 878 196 278 R.C.S. Grenoble",
	"TVA non applicable, art. 293 B du CGI",
}
