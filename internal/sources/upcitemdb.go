package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/models"
)

const upcItemDBLookupPath = "/prod/trial/lookup"

// UPCItemDB is the primary source: a general commercial product database
// queried with the barcode as a query parameter.
type UPCItemDB struct {
	baseURL string
	http    httpClient
}

// upcItemResponse is the lookup payload returned by UPCitemdb.
type upcItemResponse struct {
	Code    string    `json:"code"`
	Total   int       `json:"total"`
	Message string    `json:"message"`
	Items   []upcItem `json:"items"`
}

type upcItem struct {
	EAN                 string     `json:"ean"`
	UPC                 string     `json:"upc"`
	Title               string     `json:"title"`
	Brand               string     `json:"brand"`
	Category            string     `json:"category"`
	Description         string     `json:"description"`
	Size                string     `json:"size"`
	Images              []string   `json:"images"`
	Offers              []upcOffer `json:"offers"`
	LowestRecordedPrice any        `json:"lowest_recorded_price"`
}

// Prices are numbers in practice but are decoded loosely.
type upcOffer struct {
	Merchant string `json:"merchant"`
	Price    any    `json:"price"`
}

// NewUPCItemDB creates the primary source client
func NewUPCItemDB(opts Options) *UPCItemDB {
	return &UPCItemDB{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    newHTTPClient(opts),
	}
}

func (s *UPCItemDB) Name() string { return "upcitemdb" }

// Lookup queries the lookup endpoint. A response without code "OK" or
// without items is an empty result, as is a 404.
func (s *UPCItemDB) Lookup(ctx context.Context, barcode string) Outcome {
	endpoint := s.baseURL + upcItemDBLookupPath + "?" + url.Values{"upc": {barcode}}.Encode()

	var payload upcItemResponse
	status, err := s.http.getJSON(ctx, endpoint, &payload)
	if err != nil {
		if status == http.StatusNotFound {
			return Empty()
		}
		return TransportError(fmt.Errorf("%s: %w", s.Name(), err))
	}

	if !strings.EqualFold(payload.Code, "OK") || len(payload.Items) == 0 {
		return Empty()
	}

	return Found(mapUPCItem(barcode, payload.Items[0]))
}

// mapUPCItem converts the first UPCitemdb item into the canonical product.
func mapUPCItem(barcode string, item upcItem) models.Product {
	return models.Product{
		Barcode:     barcode,
		Name:        firstNonEmpty(item.Title),
		Brand:       firstNonEmpty(item.Brand),
		Category:    firstNonEmpty(item.Category),
		Description: firstNonEmpty(item.Description),
		Image:       firstNonEmpty(item.Images...),
		Price:       upcPrice(item),
		Size:        firstNonEmpty(item.Size, ExtractSize(item.Title, item.Description)),
	}
}

// upcPrice prefers the first positive offer price and falls back to the
// lowest recorded price.
func upcPrice(item upcItem) string {
	for _, offer := range item.Offers {
		if p := formatPrice(offer.Price); p != "" {
			return p
		}
	}
	return formatPrice(item.LowestRecordedPrice)
}

func formatPrice(v any) string {
	if v == nil {
		return ""
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || f <= 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}
