package export

import "github.com/plentyexport/motorradbekleidungnet-export/internal/model"

// StockFilter is the default filtration predicate: when enabled it skips
// variations without positive offerable stock.
type StockFilter struct {
	services        CoreServices
	requirePositive bool
}

// NewStockFilter constructs a StockFilter.
func NewStockFilter(services CoreServices, requirePositive bool) *StockFilter {
	return &StockFilter{services: services, requirePositive: requirePositive}
}

// ShouldSkip implements Filter.
func (f *StockFilter) ShouldSkip(v *model.VariationRecord) bool {
	return f.requirePositive && f.services.Stock(v) <= 0
}
