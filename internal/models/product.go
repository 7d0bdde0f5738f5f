package models

// Product is the canonical product record returned for a scanned barcode,
// whichever upstream source supplied it. Only Barcode is guaranteed; every
// other field is best-effort and left empty (omitted from JSON) when no
// source provided it.
type Product struct {
	Barcode     string `json:"barcode"`
	Name        string `json:"name,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Price       string `json:"price,omitempty"`
	Ingredients string `json:"ingredients,omitempty"`
	Size        string `json:"size,omitempty"`
}
