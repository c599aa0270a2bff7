// Package itemcache memoizes per-item derived fields for the export stream.
//
// The variation stream is ordered by item id ascending, so only the current
// item's entries are ever live. Refresh replaces the per-item state at every
// item boundary instead of accumulating entries for the whole run.
package itemcache

import (
	"github.com/shopspring/decimal"

	"github.com/plentyexport/motorradbekleidungnet-export/internal/model"
)

// Services are the external lookups the cache memoizes.
type Services interface {
	// ShippingCost returns the shipping cost for an item, ok == false when no
	// cost is configured.
	ShippingCost(itemID int64) (decimal.Decimal, bool)

	// ExternalManufacturerName returns the marketplace-facing manufacturer
	// name, or empty.
	ExternalManufacturerName(manufacturerID int64) string

	// ImageListInOrder returns the item's image URLs in position order.
	ImageListInOrder(v *model.VariationRecord) []string
}

// Cache holds the per-item derived fields plus the run-wide availability
// label table.
type Cache struct {
	services     Services
	availability map[int]string
	shippingCost map[int64]string
	manufacturer map[int64]string
	images       map[int64][]string
}

// New constructs a Cache. The availability labels are fixed for the whole
// run; slots without a configured label must be empty strings.
func New(services Services, availabilityLabels map[int]string) *Cache {
	labels := make(map[int]string, len(availabilityLabels))
	for id, label := range availabilityLabels {
		labels[id] = label
	}
	return &Cache{
		services:     services,
		availability: labels,
		shippingCost: make(map[int64]string),
		manufacturer: make(map[int64]string),
		images:       make(map[int64][]string),
	}
}

// Refresh recomputes the per-item fields for the variation's parent item,
// replacing any previous per-item state. Call it whenever the stream moves to
// a new item, including the very first record.
func (c *Cache) Refresh(v *model.VariationRecord) {
	c.shippingCost = make(map[int64]string)
	c.manufacturer = make(map[int64]string)

	if cost, ok := c.services.ShippingCost(v.Item.ID); ok {
		c.shippingCost[v.Item.ID] = cost.StringFixed(2)
	}
	if id := v.Item.Manufacturer.ID; id != 0 {
		c.manufacturer[id] = c.services.ExternalManufacturerName(id)
	}
}

// ShippingCost returns the cached shipping cost for the item, formatted with
// two decimals, or empty when not computed.
func (c *Cache) ShippingCost(itemID int64) string {
	return c.shippingCost[itemID]
}

// ManufacturerName returns the cached manufacturer name, or empty.
func (c *Cache) ManufacturerName(manufacturerID int64) string {
	return c.manufacturer[manufacturerID]
}

// AvailabilityLabel returns the configured label for an availability status
// id, or empty for unknown ids and unconfigured slots.
func (c *Cache) AvailabilityLabel(statusID int) string {
	return c.availability[statusID]
}

// ImageList returns the item's image URLs, computed once per item.
func (c *Cache) ImageList(v *model.VariationRecord) []string {
	if list, ok := c.images[v.Item.ID]; ok {
		return list
	}
	c.images = map[int64][]string{
		v.Item.ID: c.services.ImageListInOrder(v),
	}
	return c.images[v.Item.ID]
}
