// Package export drives one pass over the variation stream and writes the
// MotorradbekleidungNET feed rows.
package export

import (
	"context"

	"github.com/plentyexport/motorradbekleidungnet-export/internal/itemcache"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/model"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/pricing"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/resolve"
)

// Batch is one shard of results delivered by the producer. Errors are
// partial-shard failures; the documents that did arrive are still processed.
type Batch struct {
	Total     int64
	Errors    []string
	Documents []model.VariationRecord
}

// BatchProducer streams paginated variation batches in item-id ascending
// order. The pipeline's item-boundary cache refresh depends on that order.
type BatchProducer interface {
	SetPageSize(n int)
	FetchNext(ctx context.Context) (Batch, error)
	HasMore() bool
}

// CoreServices are the export-core lookups consumed while building rows.
type CoreServices interface {
	resolve.NameLookup
	itemcache.Services

	// MutatedName returns the item name for the variation, truncated to
	// maxLength runes.
	MutatedName(v *model.VariationRecord, lang string, maxLength int) string

	// MutatedDescription returns the item description for the variation.
	MutatedDescription(v *model.VariationRecord, lang string) string

	// BarcodeByType returns the variation's barcode of the given type, or
	// empty.
	BarcodeByType(v *model.VariationRecord, barcodeType string) string

	// CategoryPath returns the full category path for a category id.
	CategoryPath(categoryID int64, lang string) (string, error)

	// GenerateSKU derives the marketplace SKU from the variation id, the
	// marketplace id and the raw SKU string.
	GenerateSKU(variationID int64, marketID float64, sku string) (string, error)

	// DeliveryPeriod returns the availability text for the variation.
	DeliveryPeriod(v *model.VariationRecord) string

	// Stock returns the offerable stock quantity.
	Stock(v *model.VariationRecord) int

	// PriceFacts returns the raw price facts of the variation.
	PriceFacts(v *model.VariationRecord) pricing.Facts
}

// Filter is the injected filtration predicate applied before row building.
type Filter interface {
	ShouldSkip(v *model.VariationRecord) bool
}

// RecordSink receives the header and one record per surviving variation.
type RecordSink interface {
	WriteHeader(fields []string) error
	WriteRow(fields []string) error
	Close() error
}
