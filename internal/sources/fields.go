package sources

import (
	"regexp"
	"strings"
)

// firstNonEmpty returns the first candidate that is non-blank after
// trimming, in the order given. Synonym lists for each canonical field are
// evaluated through this helper so their priority is the slice order.
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if v := strings.TrimSpace(c); v != "" {
			return v
		}
	}
	return ""
}

// quantityPattern matches a decimal amount immediately followed by a unit.
// The amount must start after a non-word, non-separator character so a
// match never begins in the middle of a number. Decimal commas are accepted.
// Longer units are listed first so "fl oz" wins over "oz".
var quantityPattern = regexp.MustCompile(`(?i)(?:^|[^\w.,])(\d*[.,]?\d+)\s*(fl\.?\s*oz|oz|ml|kg|lb|g)\b`)

var spaces = regexp.MustCompile(`\s+`)

// ExtractSize finds the first quantity+unit annotation across texts, checked
// in order, and returns it as "<amount> <unit>" with a lower-case unit.
// It returns "" when no text carries one.
func ExtractSize(texts ...string) string {
	for _, text := range texts {
		m := quantityPattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		unit := strings.ToLower(strings.ReplaceAll(m[2], ".", ""))
		unit = spaces.ReplaceAllString(unit, " ")
		if unit == "floz" {
			unit = "fl oz"
		}
		return normalizeAmount(m[1]) + " " + unit
	}
	return ""
}

// normalizeAmount writes a decimal comma as a dot and adds the leading zero
// to amounts like ".5".
func normalizeAmount(amount string) string {
	amount = strings.Replace(amount, ",", ".", 1)
	if strings.HasPrefix(amount, ".") {
		amount = "0" + amount
	}
	return amount
}
