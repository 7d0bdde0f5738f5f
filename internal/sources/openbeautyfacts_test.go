package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOBFTestServer(t *testing.T, status int, body string) (*OpenBeautyFacts, *string) {
	t.Helper()

	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return NewOpenBeautyFacts(Options{BaseURL: srv.URL, Timeout: time.Second}), &path
}

func TestOpenBeautyFacts_Lookup_Found(t *testing.T) {
	body := `{
		"status": 1,
		"status_verbose": "product found",
		"product": {
			"product_name": "Crème Hydratante",
			"product_name_en": "Moisturizing Cream",
			"brands": "Nivea",
			"brand_owner": "Beiersdorf",
			"categories": "Skincare, Moisturizers",
			"categories_tags": ["en:skincare"],
			"generic_name": "",
			"generic_name_en": "Face cream",
			"image_front_url": "https://img.example/front.jpg",
			"image_front_small_url": "https://img.example/small.jpg",
			"ingredients_text_en": "Aqua, Glycerin",
			"quantity": "50 ml"
		}
	}`
	src, path := newOBFTestServer(t, http.StatusOK, body)

	out := src.Lookup(context.Background(), "4005900036469")

	require.Equal(t, KindFound, out.Kind)
	assert.Equal(t, "/api/v0/product/4005900036469.json", *path)

	p := out.Product
	assert.Equal(t, "4005900036469", p.Barcode)
	assert.Equal(t, "Crème Hydratante", p.Name, "product_name takes precedence over product_name_en")
	assert.Equal(t, "Nivea", p.Brand)
	assert.Equal(t, "Skincare, Moisturizers", p.Category)
	assert.Equal(t, "Face cream", p.Description)
	assert.Equal(t, "https://img.example/front.jpg", p.Image)
	assert.Equal(t, "Aqua, Glycerin", p.Ingredients)
	assert.Equal(t, "50 ml", p.Size)
	assert.Empty(t, p.Price)
}

func TestMapOFFProduct_Fallbacks(t *testing.T) {
	p := mapOFFProduct("12345678", &offProduct{
		AbbreviatedProductName: "Lip Balm",
		BrandOwner:             "Acme Corp",
		CategoriesTags:         []string{"en:lip-care", "en:balms"},
		ImageFrontSmallURL:     "https://img.example/small.jpg",
		ProductQuantity:        4.8,
		ProductQuantityUnit:    "g",
	})

	assert.Equal(t, "Lip Balm", p.Name)
	assert.Equal(t, "Acme Corp", p.Brand)
	assert.Equal(t, "en:lip-care", p.Category)
	assert.Empty(t, p.Description, "abbreviated name is not a description synonym")
	assert.Equal(t, "https://img.example/small.jpg", p.Image)
	assert.Equal(t, "4.8 g", p.Size)
}

func TestMapOFFProduct_DescriptionFallsBackToName(t *testing.T) {
	p := mapOFFProduct("12345678", &offProduct{ProductName: "Serum", NetWeight: "30 ml"})

	assert.Equal(t, "Serum", p.Description)
	assert.Equal(t, "30 ml", p.Size)
}

func TestMapOFFProduct_QuantityNeedsUnit(t *testing.T) {
	p := mapOFFProduct("12345678", &offProduct{ProductQuantity: "100"})
	assert.Empty(t, p.Size)
}

func TestOpenBeautyFacts_Lookup_Empty(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"status zero", http.StatusOK, `{"status":0,"status_verbose":"product not found"}`},
		{"string status zero", http.StatusOK, `{"status":"0"}`},
		{"status one without product", http.StatusOK, `{"status":1}`},
		{"not found status", http.StatusNotFound, `{"status":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, _ := newOBFTestServer(t, tt.status, tt.body)
			out := src.Lookup(context.Background(), "12345678")
			assert.Equal(t, KindEmpty, out.Kind)
		})
	}
}

func TestOpenBeautyFacts_Lookup_StringStatus(t *testing.T) {
	src, _ := newOBFTestServer(t, http.StatusOK, `{"status":"1","product":{"product_name":"Toner"}}`)

	out := src.Lookup(context.Background(), "12345678")

	require.Equal(t, KindFound, out.Kind)
	assert.Equal(t, "Toner", out.Product.Name)
}

func TestOpenBeautyFacts_Lookup_TransportError(t *testing.T) {
	src, _ := newOBFTestServer(t, http.StatusBadGateway, `<html>bad gateway</html>`)

	out := src.Lookup(context.Background(), "12345678")

	assert.Equal(t, KindTransportError, out.Kind)
	assert.ErrorContains(t, out.Err, "openbeautyfacts")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "found", KindFound.String())
	assert.Equal(t, "empty", KindEmpty.String())
	assert.Equal(t, "transport_error", KindTransportError.String())
}
