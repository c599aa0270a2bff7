package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/plentyexport/motorradbekleidungnet-export/internal/model"
	"github.com/plentyexport/motorradbekleidungnet-export/internal/pricing"
)

const (
	nameMaxLength       = 150
	masterNameMaxLength = 256
)

var gramsPerKilogram = decimal.NewFromInt(1000)

// skipReason marks a business exclusion during row building.
type skipReason int

const (
	skipNone skipReason = iota
	// skipNoPrice excludes variations without a positive effective price.
	skipNoPrice
)

// rowOutcome is the explicit result of building one row: an emitted row, a
// business skip, or a failure. The pipeline driver is responsible for
// counting, logging and continuing. A zero skip and nil err mean the row is
// ready to emit.
type rowOutcome struct {
	row  Row
	skip skipReason
	err  error
}

// facetValues are the resolved facet strings for one variation, already gated
// by the per-facet active flags.
type facetValues struct {
	gender       string
	color        string
	size         string
	material     string
	drivingStyle string
}

// buildRow assembles the feed record for one variation. Per-item derived
// fields (shipping, manufacturer, images) come from the item cache, which the
// pipeline refreshes at item boundaries before calling this.
func (p *Pipeline) buildRow(v *model.VariationRecord, attributes, valueCombination string, facets facetValues) rowOutcome {
	sel := pricing.Select(p.services.PriceFacts(v))
	if !sel.HasPrice || !sel.Price.IsPositive() {
		return rowOutcome{skip: skipNoPrice}
	}

	sku, err := p.services.GenerateSKU(v.ID, p.cfg.MarketplaceID, v.FirstSKU())
	if err != nil {
		return rowOutcome{err: fmt.Errorf("generate sku: %w", err)}
	}
	category, err := p.services.CategoryPath(v.DefaultCategoryID(), p.cfg.Lang)
	if err != nil {
		return rowOutcome{err: fmt.Errorf("category path: %w", err)}
	}

	name := p.services.MutatedName(v, p.cfg.Lang, nameMaxLength)
	if attributes != "" {
		name += ", " + attributes
	}
	masterName := ""
	if attributes != "" {
		masterName = p.services.MutatedName(v, p.cfg.Lang, masterNameMaxLength)
	}

	gender := facets.gender
	if gender == "" {
		gender = p.cfg.Gender.Default
	}

	srp := ""
	if sel.HasOldPrice {
		srp = sel.OldPrice.StringFixed(2)
	}

	row := Row{
		SKU:              sku,
		MasterSKU:        "P_" + strconv.FormatInt(v.Item.ID, 10),
		GTIN:             p.services.BarcodeByType(v, p.cfg.BarcodeType),
		OEMProductNumber: v.Variation.Model,
		Name:             name,
		MasterName:       masterName,
		VariantName:      valueCombination,
		Manufacturer:     p.cache.ManufacturerName(v.Item.Manufacturer.ID),
		Description:      p.services.MutatedDescription(v, p.cfg.Lang),
		ImageURL:         strings.Join(p.cache.ImageList(v), " "),
		Category:         category,
		Size:             facets.size,
		Colour:           facets.color,
		Material:         facets.material,
		Gender:           gender,
		DrivingStyle:     facets.drivingStyle,
		Price:            sel.Price.StringFixed(2),
		Shipping:         p.cache.ShippingCost(v.Item.ID),
		SRP:              srp,
		DateChanged:      v.Variation.UpdatedAt,
		DateValidFrom:    v.Variation.ReleasedAt,
		DateValidTo:      v.Variation.AvailableUntil,
		Availability:     p.cache.AvailabilityLabel(v.Variation.Availability.ID),
		DeliveryPeriod:   p.services.DeliveryPeriod(v),
		OfferedAmount:    strconv.Itoa(p.services.Stock(v)),
		Weight:           decimal.NewFromInt(v.Variation.WeightG).Div(gramsPerKilogram).StringFixed(2),
	}
	return rowOutcome{row: row}
}
