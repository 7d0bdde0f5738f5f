package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/barcode"
	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/details"
	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/service"
)

// ProductResolver resolves a raw scanned barcode
type ProductResolver interface {
	Resolve(ctx context.Context, raw string) (*service.Resolution, error)
}

// ProductHandler handles barcode lookup HTTP requests
type ProductHandler struct {
	resolver ProductResolver
	logger   *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(resolver ProductResolver, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// LookupResponse is returned by the lookup endpoint. When Found is false
// Product carries only the normalized barcode.
type LookupResponse struct {
	Found       bool           `json:"found"`
	Source      string         `json:"source,omitempty"`
	DomainMatch bool           `json:"domain_match"`
	Product     models.Product `json:"product"`
}

// DetailsResponse is the details screen for a product: the navigation
// parameters that carry it and the rendered view.
type DetailsResponse struct {
	Found  bool              `json:"found"`
	Params map[string]string `json:"params"`
	View   details.View      `json:"view"`
}

// LookupProduct handles GET /api/product/{barcode}
// - 200: product resolved
// - 400: Invalid barcode
// - 404: no source knows the barcode (body still carries the barcode)
func (h *ProductHandler) LookupProduct(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "barcode")

	res, err := h.resolver.Resolve(r.Context(), raw)
	switch {
	case err == nil:
		WriteJSON(w, http.StatusOK, LookupResponse{
			Found:       true,
			Source:      res.Source,
			DomainMatch: res.DomainMatch,
			Product:     res.Product,
		}, h.logger)
	case errors.Is(err, barcode.ErrInvalidBarcode):
		h.logger.Warn("invalid barcode", "barcode", raw)
		WriteError(w, http.StatusBadRequest, "Invalid barcode", h.logger)
	case errors.Is(err, service.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, LookupResponse{
			Product: models.Product{Barcode: barcode.Digits(raw)},
		}, h.logger)
	default:
		h.logger.Error("failed to resolve barcode", "barcode", raw, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
	}
}

// ProductDetails handles GET /api/product/{barcode}/details
// Unknown and invalid barcodes still get a details view; it simply has
// fewer rows.
func (h *ProductHandler) ProductDetails(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "barcode")

	res, err := h.resolver.Resolve(r.Context(), raw)
	switch {
	case err == nil:
		h.writeDetails(w, true, res.Product)
	case errors.Is(err, service.ErrNotFound):
		h.writeDetails(w, false, models.Product{Barcode: barcode.Digits(raw)})
	case errors.Is(err, barcode.ErrInvalidBarcode):
		h.logger.Warn("invalid barcode", "barcode", raw)
		h.writeDetails(w, false, models.Product{})
	default:
		h.logger.Error("failed to resolve barcode", "barcode", raw, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
	}
}

// RenderDetails handles GET /api/details?barcode=...&name=...
// It renders the details screen straight from navigation parameters.
func (h *ProductHandler) RenderDetails(w http.ResponseWriter, r *http.Request) {
	p := details.FromParams(r.URL.Query())
	h.writeDetails(w, p.Barcode != "", p)
}

func (h *ProductHandler) writeDetails(w http.ResponseWriter, found bool, p models.Product) {
	params := make(map[string]string)
	for k, v := range details.ToParams(p) {
		params[k] = v[0]
	}

	WriteJSON(w, http.StatusOK, DetailsResponse{
		Found:  found,
		Params: params,
		View:   details.Render(p),
	}, h.logger)
}
