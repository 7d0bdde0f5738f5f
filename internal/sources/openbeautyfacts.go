package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cast"

	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/models"
)

// OpenBeautyFacts is the secondary, domain-specialized source. It shares the
// Open Food Facts product API, with the barcode embedded in the path.
type OpenBeautyFacts struct {
	baseURL string
	http    httpClient
}

// offResponse is the v0 product payload. Status is 1 on a match; it arrives
// as a number from most mirrors and as a string from some.
type offResponse struct {
	Status        any         `json:"status"`
	StatusVerbose string      `json:"status_verbose"`
	Product       *offProduct `json:"product"`
}

type offProduct struct {
	ProductName            string   `json:"product_name"`
	ProductNameEN          string   `json:"product_name_en"`
	AbbreviatedProductName string   `json:"abbreviated_product_name"`
	GenericName            string   `json:"generic_name"`
	GenericNameEN          string   `json:"generic_name_en"`
	Brands                 string   `json:"brands"`
	BrandOwner             string   `json:"brand_owner"`
	Categories             string   `json:"categories"`
	CategoriesTags         []string `json:"categories_tags"`
	ImageURL               string   `json:"image_url"`
	ImageFrontURL          string   `json:"image_front_url"`
	ImageFrontSmallURL     string   `json:"image_front_small_url"`
	IngredientsText        string   `json:"ingredients_text"`
	IngredientsTextEN      string   `json:"ingredients_text_en"`
	Quantity               string   `json:"quantity"`
	NetWeight              string   `json:"net_weight"`
	ProductQuantity        any      `json:"product_quantity"`
	ProductQuantityUnit    string   `json:"product_quantity_unit"`
}

// NewOpenBeautyFacts creates the secondary source client
func NewOpenBeautyFacts(opts Options) *OpenBeautyFacts {
	return &OpenBeautyFacts{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    newHTTPClient(opts),
	}
}

func (s *OpenBeautyFacts) Name() string { return "openbeautyfacts" }

// Lookup fetches /api/v0/product/{barcode}.json.
func (s *OpenBeautyFacts) Lookup(ctx context.Context, barcode string) Outcome {
	endpoint := s.baseURL + "/api/v0/product/" + url.PathEscape(barcode) + ".json"

	var payload offResponse
	status, err := s.http.getJSON(ctx, endpoint, &payload)
	if err != nil {
		if status == http.StatusNotFound {
			return Empty()
		}
		return TransportError(fmt.Errorf("%s: %w", s.Name(), err))
	}

	if cast.ToInt(payload.Status) != 1 || payload.Product == nil {
		return Empty()
	}

	return Found(mapOFFProduct(barcode, payload.Product))
}

// mapOFFProduct converts an Open Beauty Facts product into the canonical
// product. Each field takes the first non-empty synonym in list order.
func mapOFFProduct(barcode string, p *offProduct) models.Product {
	firstTag := ""
	if len(p.CategoriesTags) > 0 {
		firstTag = p.CategoriesTags[0]
	}

	return models.Product{
		Barcode:     barcode,
		Name:        firstNonEmpty(p.ProductName, p.ProductNameEN, p.AbbreviatedProductName),
		Brand:       firstNonEmpty(p.Brands, p.BrandOwner),
		Category:    firstNonEmpty(p.Categories, firstTag),
		Description: firstNonEmpty(p.GenericName, p.GenericNameEN, p.ProductName),
		Image:       firstNonEmpty(p.ImageURL, p.ImageFrontURL, p.ImageFrontSmallURL),
		Ingredients: firstNonEmpty(p.IngredientsText, p.IngredientsTextEN),
		Size:        firstNonEmpty(p.Quantity, p.NetWeight, structuredQuantity(p)),
	}
}

// structuredQuantity joins product_quantity and its unit. Both must be set.
func structuredQuantity(p *offProduct) string {
	amount := strings.TrimSpace(cast.ToString(p.ProductQuantity))
	unit := strings.TrimSpace(p.ProductQuantityUnit)
	if amount == "" || amount == "0" || unit == "" {
		return ""
	}
	return amount + " " + unit
}
