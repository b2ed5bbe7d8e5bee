// Package reference holds the static lookup tables shared by the billing
// domain, starting with the supported countries.
package reference

// Country associates an ISO 3166-1 alpha-2 code with its French label.
type Country struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Customers can only be billed from EU member states; labels are the ones
// printed on invoices.
var countries = []Country{
	{"AT", "Autriche"},
	{"BE", "Belgique"},
	{"BG", "Bulgarie"},
	{"CY", "Chypre"},
	{"CZ", "République tchèque"},
	{"DE", "Allemagne"},
	{"DK", "Danemark"},
	{"EE", "Estonie"},
	{"ES", "Espagne"},
	{"FI", "Finlande"},
	{"FR", "France"},
	{"GR", "Grèce"},
	{"HR", "Croatie"},
	{"HU", "Hongrie"},
	{"IE", "Irelande"},
	{"IT", "Italie"},
	{"LT", "Lituanie"},
	{"LU", "Luxembourg"},
	{"LV", "Lettonie"},
	{"MT", "Malte"},
	{"NL", "Pays-Bas"},
	{"PL", "Pologne"},
	{"PT", "Portugal"},
	{"RO", "Roumanie"},
	{"SE", "Suède"},
	{"SI", "Slovénie"},
	{"SK", "Slovaquie"},
}

var labelsByCode = func() map[string]string {
	m := make(map[string]string, len(countries))
	for _, c := range countries {
		m[c.Code] = c.Label
	}
	return m
}()

// Countries returns the supported countries in table order.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// Codes returns the supported country codes in table order.
func Codes() []string {
	codes := make([]string, 0, len(countries))
	for _, c := range countries {
		codes = append(codes, c.Code)
	}
	return codes
}

// CodeToLabel returns the display label for a code. The second return value
// is false when the code is not supported.
func CodeToLabel(code string) (string, bool) {
	label, ok := labelsByCode[code]
	return label, ok
}

// IsSupported reports whether the code is part of the published table.
func IsSupported(code string) bool {
	_, ok := labelsByCode[code]
	return ok
}
