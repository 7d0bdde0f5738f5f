package service

import "strings"

// BeautyKeywords is the vocabulary that marks a category as beauty or
// cosmetics. Matching is a case-insensitive substring test.
var BeautyKeywords = []string{
	"beauty", "cosmetic", "makeup", "skincare", "personal care",
	"fragrance", "perfume", "hair care", "nail", "lip", "face", "eye",
	"mascara", "foundation", "moisturizer", "serum", "cleanser", "toner",
	"sunscreen", "shampoo", "conditioner",
}

// DomainClassifier decides whether a product category belongs to the
// target domain.
type DomainClassifier struct {
	keywords []string
}

// NewDomainClassifier creates a classifier over the given keywords
func NewDomainClassifier(keywords ...string) *DomainClassifier {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}
	return &DomainClassifier{keywords: lowered}
}

// Matches reports whether category contains any keyword. An empty category
// never matches.
func (c *DomainClassifier) Matches(category string) bool {
	category = strings.ToLower(category)
	if strings.TrimSpace(category) == "" {
		return false
	}
	for _, k := range c.keywords {
		if strings.Contains(category, k) {
			return true
		}
	}
	return false
}
