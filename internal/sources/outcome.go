package sources

import (
	"fmt"

	"github.com/Lixing-Zhang/kart-challenge/barcode-lookup/internal/models"
)

// Kind classifies the result of a single source query.
type Kind int

const (
	// KindEmpty means the source answered but had no record for the barcode.
	KindEmpty Kind = iota
	// KindFound means the source returned a record, mapped into Product.
	KindFound
	// KindTransportError means the source could not be queried or its
	// answer could not be understood. Err carries the detail.
	KindTransportError
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindFound:
		return "found"
	case KindTransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the typed result of one source lookup. Lookups never return a
// Go error; failures are reported as KindTransportError so the caller can
// decide on fallback from the value alone.
type Outcome struct {
	Kind    Kind
	Product models.Product
	Err     error
}

func Found(p models.Product) Outcome {
	return Outcome{Kind: KindFound, Product: p}
}

func Empty() Outcome {
	return Outcome{Kind: KindEmpty}
}

func TransportError(err error) Outcome {
	return Outcome{Kind: KindTransportError, Err: err}
}
