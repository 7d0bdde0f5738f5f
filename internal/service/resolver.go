package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/barcode"
	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/sources"
)

var (
	// ErrNotFound means no source had a usable record. It is a normal
	// outcome; callers render a placeholder rather than fail.
	ErrNotFound = errors.New("product not found")
)

// Resolution is a resolved product plus where it came from.
type Resolution struct {
	Product     models.Product `json:"product"`
	Source      string         `json:"source"`
	DomainMatch bool           `json:"domain_match"`
}

// Resolver maps scanned barcodes to products using a primary source and a
// domain-specialized secondary source, queried strictly in sequence.
type Resolver struct {
	primary      sources.Source
	secondary    sources.Source
	classifier   *DomainClassifier
	preferDomain bool
	logger       *slog.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLogger sets the logger used for lookup diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithClassifier replaces the default beauty vocabulary
func WithClassifier(c *DomainClassifier) Option {
	return func(r *Resolver) {
		r.classifier = c
	}
}

// WithPreferDomainSource makes a primary record whose category misses the
// domain vocabulary defer to the secondary source. The primary record is
// still returned when the secondary source has nothing.
func WithPreferDomainSource(prefer bool) Option {
	return func(r *Resolver) {
		r.preferDomain = prefer
	}
}

// NewResolver creates a new resolver
func NewResolver(primary, secondary sources.Source, opts ...Option) *Resolver {
	r := &Resolver{
		primary:    primary,
		secondary:  secondary,
		classifier: NewDomainClassifier(BeautyKeywords...),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve normalizes raw and looks it up. The only errors returned are
// barcode.ErrInvalidBarcode, before any network call, and ErrNotFound.
// Source failures are logged and treated as "no result".
func (r *Resolver) Resolve(ctx context.Context, raw string) (*Resolution, error) {
	code, err := barcode.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", raw, err)
	}

	log := r.logger.With("lookup_id", uuid.NewString(), "barcode", code)

	var deferred *Resolution

	primary := r.query(ctx, log, r.primary, code)
	if primary.Kind == sources.KindFound {
		res := r.resolution(r.primary, primary.Product)
		if res.DomainMatch || !r.preferDomain {
			log.Info("product resolved", "source", res.Source, "domain_match", res.DomainMatch)
			return res, nil
		}
		log.Info("primary result outside domain, consulting secondary source",
			"category", primary.Product.Category,
		)
		deferred = res
	}

	secondary := r.query(ctx, log, r.secondary, code)
	if secondary.Kind == sources.KindFound {
		res := r.resolution(r.secondary, secondary.Product)
		log.Info("product resolved", "source", res.Source, "domain_match", res.DomainMatch)
		return res, nil
	}

	if deferred != nil {
		log.Info("product resolved", "source", deferred.Source, "domain_match", false)
		return deferred, nil
	}

	log.Info("product not found in any source")
	return nil, ErrNotFound
}

func (r *Resolver) query(ctx context.Context, log *slog.Logger, src sources.Source, code string) sources.Outcome {
	out := src.Lookup(ctx, code)
	switch out.Kind {
	case sources.KindTransportError:
		log.Warn("source lookup failed", "source", src.Name(), "error", out.Err)
	default:
		log.Debug("source lookup finished", "source", src.Name(), "outcome", out.Kind.String())
	}
	return out
}

func (r *Resolver) resolution(src sources.Source, p models.Product) *Resolution {
	return &Resolution{
		Product:     p,
		Source:      src.Name(),
		DomainMatch: r.classifier.Matches(p.Category),
	}
}
