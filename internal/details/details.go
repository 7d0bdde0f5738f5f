// Package details builds what the product-details screen shows: the
// navigation parameters that carry a product between screens, and the
// labelled rows rendered from them.
package details

import (
	"net/url"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/barcode"
	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/models"
)

// Row is one labelled line of the details screen.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// View is the rendered details screen. Image is empty when the product has
// none; the client then shows its own placeholder.
type View struct {
	Image string `json:"image,omitempty"`
	Rows  []Row  `json:"rows"`
}

type field struct {
	param string
	label string
	get   func(p *models.Product) *string
}

// fields lists product fields in the order the details screen shows them.
var fields = []field{
	{"name", "Name", func(p *models.Product) *string { return &p.Name }},
	{"brand", "Brand", func(p *models.Product) *string { return &p.Brand }},
	{"category", "Category", func(p *models.Product) *string { return &p.Category }},
	{"size", "Size", func(p *models.Product) *string { return &p.Size }},
	{"price", "Price", func(p *models.Product) *string { return &p.Price }},
	{"barcode", "Barcode", func(p *models.Product) *string { return &p.Barcode }},
	{"description", "Description", func(p *models.Product) *string { return &p.Description }},
	{"ingredients", "Ingredients", func(p *models.Product) *string { return &p.Ingredients }},
	{"image", "", func(p *models.Product) *string { return &p.Image }},
}

// ToParams encodes p as navigation parameters. Empty fields are left out
// entirely so the receiving screen cannot mistake them for values.
func ToParams(p models.Product) url.Values {
	params := url.Values{}
	for _, f := range fields {
		if v := strings.TrimSpace(*f.get(&p)); v != "" {
			params.Set(f.param, v)
		}
	}
	return params
}

// FromParams decodes navigation parameters back into a product. Missing or
// blank parameters, including the literal strings "undefined" and "null"
// some clients send for absent values, stay empty. The barcode is normalized
// and left empty when it is not a valid barcode.
func FromParams(params url.Values) models.Product {
	var p models.Product
	for _, f := range fields {
		v := strings.TrimSpace(params.Get(f.param))
		if isAbsent(v) {
			continue
		}
		if f.param == "barcode" {
			code, err := barcode.Normalize(v)
			if err != nil {
				continue
			}
			v = code
		}
		*f.get(&p) = v
	}
	return p
}

// Render builds the details view for p, skipping fields it does not have.
func Render(p models.Product) View {
	view := View{
		Image: strings.TrimSpace(p.Image),
		Rows:  make([]Row, 0, len(fields)),
	}
	for _, f := range fields {
		if f.label == "" {
			continue
		}
		v := strings.TrimSpace(*f.get(&p))
		if isAbsent(v) {
			continue
		}
		if f.param == "price" {
			v = "$" + v
		}
		view.Rows = append(view.Rows, Row{Label: f.label, Value: v})
	}
	return view
}

func isAbsent(v string) bool {
	return v == "" || v == "undefined" || v == "null"
}
