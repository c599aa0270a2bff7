package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/plentyexport/motorradbekleidungnet-export/internal/model"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/pricing"
)

// Names are the localized display name tables for one language.
type Names struct {
	Attributes      map[int64]string `json:"attributes"`
	AttributeValues map[int64]string `json:"attributeValues"`
	Properties      map[int64]string `json:"properties"`
}

// PriceDoc are the raw price facts of one variation in the dataset.
type PriceDoc struct {
	Price                  float64 `json:"price"`
	SpecialPrice           float64 `json:"specialPrice"`
	RecommendedRetailPrice float64 `json:"recommendedRetailPrice"`
}

// Dataset backs the export-core lookups from declarative tables, typically
// loaded from a JSON file alongside the variation dump.
type Dataset struct {
	Names         map[string]Names   `json:"names"`
	Categories    map[int64]string   `json:"categories"`
	Manufacturers map[int64]string   `json:"manufacturers"`
	ShippingCosts map[int64]float64  `json:"shippingCosts"`
	Prices        map[int64]PriceDoc `json:"prices"`
	DeliveryTexts map[int]string     `json:"deliveryTexts"`
	Stocks        map[int64]int      `json:"stocks"`
	Images        map[int64][]string `json:"images"`
}

// LoadDataset reads a Dataset from a JSON file.
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &d, nil
}

// AttributeName implements resolve.NameLookup.
func (d *Dataset) AttributeName(attributeID int64, lang string) (string, bool) {
	name, ok := d.Names[lang].Attributes[attributeID]
	return name, ok
}

// AttributeValueName implements resolve.NameLookup.
func (d *Dataset) AttributeValueName(valueID int64, lang string) (string, bool) {
	name, ok := d.Names[lang].AttributeValues[valueID]
	return name, ok
}

// PropertyName implements resolve.NameLookup.
func (d *Dataset) PropertyName(propertyID int64, lang string) (string, bool) {
	name, ok := d.Names[lang].Properties[propertyID]
	return name, ok
}

// ShippingCost implements itemcache.Services.
func (d *Dataset) ShippingCost(itemID int64) (decimal.Decimal, bool) {
	cost, ok := d.ShippingCosts[itemID]
	if !ok {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(cost), true
}

// ExternalManufacturerName implements itemcache.Services.
func (d *Dataset) ExternalManufacturerName(manufacturerID int64) string {
	return d.Manufacturers[manufacturerID]
}

// ImageListInOrder implements itemcache.Services.
func (d *Dataset) ImageListInOrder(v *model.VariationRecord) []string {
	return d.Images[v.Item.ID]
}

// MutatedName returns the localized item name truncated to maxLength runes.
func (d *Dataset) MutatedName(v *model.VariationRecord, lang string, maxLength int) string {
	return truncateRunes(v.TextFor(lang).Name, maxLength)
}

// MutatedDescription returns the localized item description.
func (d *Dataset) MutatedDescription(v *model.VariationRecord, lang string) string {
	return v.TextFor(lang).Description
}

// BarcodeByType returns the variation's first barcode of the given type.
func (d *Dataset) BarcodeByType(v *model.VariationRecord, barcodeType string) string {
	for _, b := range v.Barcodes {
		if b.Type == barcodeType {
			return b.Code
		}
	}
	return ""
}

// CategoryPath returns the category path registered for the id.
func (d *Dataset) CategoryPath(categoryID int64, lang string) (string, error) {
	if categoryID == 0 {
		return "", nil
	}
	path, ok := d.Categories[categoryID]
	if !ok {
		return "", fmt.Errorf("category %d has no path", categoryID)
	}
	return path, nil
}

// GenerateSKU returns the raw SKU when present, otherwise derives one from
// the marketplace id and variation id.
func (d *Dataset) GenerateSKU(variationID int64, marketID float64, sku string) (string, error) {
	if sku != "" {
		return sku, nil
	}
	if variationID == 0 {
		return "", fmt.Errorf("variation id missing for sku generation")
	}
	return fmt.Sprintf("%d-%d", int64(marketID), variationID), nil
}

// DeliveryPeriod returns the delivery text for the variation's availability.
func (d *Dataset) DeliveryPeriod(v *model.VariationRecord) string {
	return d.DeliveryTexts[v.Variation.Availability.ID]
}

// Stock returns the offerable stock quantity of the variation.
func (d *Dataset) Stock(v *model.VariationRecord) int {
	return d.Stocks[v.ID]
}

// PriceFacts returns the raw price facts of the variation. Unknown
// variations have all-zero facts.
func (d *Dataset) PriceFacts(v *model.VariationRecord) pricing.Facts {
	doc := d.Prices[v.ID]
	return pricing.Facts{
		Price:                  decimal.NewFromFloat(doc.Price),
		SpecialPrice:           decimal.NewFromFloat(doc.SpecialPrice),
		RecommendedRetailPrice: decimal.NewFromFloat(doc.RecommendedRetailPrice),
	}
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
